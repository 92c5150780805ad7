package parser

import (
	"testing"

	"git.lost.host/meutraa/bms/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSectorsOrder(t *testing.T) {
	var signatures game.Signatures
	events := []tempoEvent{
		{tempoStop, 2, 0.25},
		{tempoChange, 1, 240},
	}

	sectors := buildSectors(120, &signatures, events)
	assert.Equal(t, []game.Sector{
		{Position: 0, Time: 0, BPM: 120, Inclusive: true},
		{Position: 1, Time: 2, BPM: 240, Inclusive: true},
		{Position: 2, Time: 3, BPM: 0, Inclusive: true},
		{Position: 2, Time: 3.25, BPM: 240, Inclusive: false},
	}, sectors)
}

func TestBuildSectorsTies(t *testing.T) {
	var signatures game.Signatures
	events := []tempoEvent{
		{tempoChange, 1, 200},
		{tempoChange, 0.5, 60},
		{tempoChange, 1, 300},
	}

	sectors := buildSectors(120, &signatures, events)
	require.Len(t, sectors, 4)
	assert.Equal(t, 200.0, sectors[2].BPM)
	assert.Equal(t, 300.0, sectors[3].BPM)
	assert.Equal(t, 300.0, game.ActiveSector(sectors, 1).BPM)

	// Both changes at 1 start from the 60 BPM sector
	assert.InDelta(t, 1+0.5*240/60, sectors[2].Time, 1e-9)
	assert.Equal(t, sectors[2].Time, sectors[3].Time)
}

func TestBuildSectorsSignatures(t *testing.T) {
	var signatures game.Signatures
	require.NoError(t, signatures.Set(0, 0.5))

	sectors := buildSectors(120, &signatures, []tempoEvent{{tempoChange, 1, 60}, {tempoStop, 1.5, 1}})
	require.Len(t, sectors, 4)
	assert.InDelta(t, 1.0, sectors[1].Time, 1e-9)
	assert.InDelta(t, 1+0.5*240/60, sectors[2].Time, 1e-9)
	assert.InDelta(t, 1+0.5*240/60+240/60, sectors[3].Time, 1e-9)
}

func TestResolveObjects(t *testing.T) {
	c := &game.Chart{}
	c.Sectors = buildSectors(120, &c.Signatures, []tempoEvent{{tempoStop, 1, 1}})

	objects := resolve(c, []game.Object{
		{Position: 1.5, Payload: game.BGM{Key: 3}},
		{Position: 1, Payload: game.BGM{Key: 2}},
		{Position: 0.5, Payload: game.BGM{Key: 1}},
		{Position: 1, Payload: game.BGM{Key: 4}},
	})

	keys := []int{}
	for _, o := range objects {
		keys = append(keys, o.Payload.(game.BGM).Key)
	}
	assert.Equal(t, []int{1, 2, 4, 3}, keys)
	assert.InDelta(t, 1.0, objects[0].Time, 1e-9)
	assert.InDelta(t, 2.0, objects[1].Time, 1e-9)
	assert.InDelta(t, 2.0, objects[2].Time, 1e-9)
	assert.InDelta(t, 5.0, objects[3].Time, 1e-9)
}
