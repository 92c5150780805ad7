package parser

import (
	"math"
	"testing"

	"git.lost.host/meutraa/bms/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var laneTests = map[[2]int][3]int{
	// channel, group: player, line, ok
	{37, groupNote}:       {1, 1, 1}, // 11
	{42, groupNote}:       {1, 6, 1}, // 16
	{43, groupNote}:       {0, 0, 0}, // 17
	{81, groupNote}:       {2, 9, 1}, // 29
	{109, groupInvisible}: {1, 1, 1}, // 31
	{153, groupInvisible}: {2, 9, 1}, // 49
	{181, groupLongNote}:  {1, 1, 1}, // 51
	{218, groupLongNote}:  {2, 2, 1}, // 62
	{469, groupBomb}:      {1, 1, 1}, // D1
	{513, groupBomb}:      {2, 9, 1}, // E9
	{37, groupBomb}:       {0, 0, 0},
	{1, groupNote}:        {0, 0, 0},
}

func TestLane(t *testing.T) {
	for in, expected := range laneTests {
		player, line, ok := lane(in[0], in[1])
		out := [3]int{player, line, 0}
		if ok {
			out[2] = 1
		}
		if out != expected {
			t.Log("in      ", in)
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestDecodePositions(t *testing.T) {
	d := newDecoder(quiet)
	require.NoError(t, d.Decode(3, channelBGM, "0100020000000003"))
	require.Len(t, d.objects, 3)

	assert.Equal(t, 3.0, d.objects[0].Position)
	assert.Equal(t, 3.25, d.objects[1].Position)
	assert.Equal(t, 3.875, d.objects[2].Position)
	assert.Equal(t, []int{1, 1, 2}, []int{d.objects[0].Denom, d.objects[1].Denom, d.objects[2].Denom})
	assert.True(t, math.IsNaN(d.objects[0].Time), "time is unset before resolution")
}

func TestDecodeOddLength(t *testing.T) {
	d := newDecoder(quiet)
	require.NoError(t, d.Decode(0, channelBGM, "01010"))
	assert.Len(t, d.objects, 2)
}

func TestDecodeLongNoteToggle(t *testing.T) {
	d := newDecoder(quiet)
	channel := 181 // 51
	assert.Empty(t, d.open)
	assert.False(t, d.toggle(channel+36)) // First use of 61 opens
	assert.Equal(t, map[int]bool{217: true}, d.open)
	delete(d.open, channel+36)
	require.NoError(t, d.Decode(0, channel, "01000100"))
	require.NoError(t, d.Decode(1, channel, "01"))
	require.NoError(t, d.Decode(0, channel+1, "01"))

	ends := []bool{}
	for _, o := range d.objects {
		ends = append(ends, o.Payload.(game.Note).End)
	}
	assert.Equal(t, []bool{false, true, false, false}, ends)
	assert.Equal(t, map[int]bool{181: true, 182: true}, d.open)
}

func TestDecodeTempoEvents(t *testing.T) {
	d := newDecoder(quiet)
	d.bpms[2] = 180
	d.stops[1] = 0.5

	require.NoError(t, d.Decode(0, channelBPM, "0078"))
	require.NoError(t, d.Decode(1, channelBPMTable, "0203"))
	require.NoError(t, d.Decode(2, channelStopTable, "01"))

	assert.Empty(t, d.objects)
	assert.Equal(t, []tempoEvent{
		{tempoChange, 0.5, 120},
		{tempoChange, 1, 180},
		{tempoStop, 2, 0.5},
	}, d.events)
}

func TestDecodeUnknownChannel(t *testing.T) {
	d := newDecoder(quiet)
	require.NoError(t, d.Decode(0, 43, "01"))     // 17
	require.NoError(t, d.Decode(0, 1295, "!!!!")) // ZZ
	assert.Empty(t, d.objects)
}
