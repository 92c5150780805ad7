package config

import (
	"testing"

	"git.lost.host/meutraa/bms/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	dir := t.TempDir()

	cmd, err := Parse([]string{"--seed", "7", "-e", "sjis", "index", "-j", "3", dir})
	require.NoError(t, err)
	assert.Equal(t, Index.FullCommand(), cmd)
	assert.Equal(t, dir, *IndexDirectory)
	assert.Equal(t, 3, *Workers)

	opts := ParserOptions()
	assert.Equal(t, int64(7), opts.Seed)
	assert.Equal(t, parser.EncodingShiftJIS, opts.Encoding)
	assert.True(t, opts.Cascade)

	cmd, err = Parse([]string{"--seed", "0", "serve", "--listen", ":9000"})
	require.NoError(t, err)
	assert.Equal(t, "serve", cmd)
	assert.Equal(t, ":9000", *Listen)
	assert.NotEqual(t, int64(0), ParserOptions().Seed)

	_, err = Parse([]string{"--encoding", "latin1", "serve"})
	assert.Error(t, err)

	_, err = Parse([]string{"info", dir + "/missing.bms"})
	assert.Error(t, err)
}
