package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameInput_JSONMarshal(t *testing.T) {
	input := FrameInput{
		F: 10,
		L: true,
		J: true,
		H: true,
	}

	data, err := json.Marshal(input)
	require.NoError(t, err)

	var decoded FrameInput
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)

	assert.Equal(t, input.F, decoded.F)
	assert.Equal(t, input.L, decoded.L)
	assert.False(t, decoded.R)
	assert.Equal(t, input.J, decoded.J)
	assert.Equal(t, input.H, decoded.H)
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version:   "1.0",
		Encounter: "ridley",
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, J: true},
			{F: 2, A: true, H: true},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.Left)
	assert.True(t, input.Right)
	assert.True(t, input.Jump)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Fire)
	assert.True(t, input.Heavy)

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	data := CreateTestReplayData("sporeSpawn", 5)
	replayer := NewReplayer(data)

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
}

func TestReplayer_TotalFrames(t *testing.T) {
	data := CreateTestReplayData("sporeSpawn", 10)
	replayer := NewReplayer(data)

	assert.Equal(t, 10, replayer.TotalFrames())
}

func TestReplayer_Encounter(t *testing.T) {
	data := CreateTestReplayData("draygon", 1)
	replayer := NewReplayer(data)

	assert.Equal(t, "draygon", replayer.Encounter())
}

func TestReplayer_Reset(t *testing.T) {
	data := ReplayData{
		Version:   "1.0",
		Encounter: "kraid",
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true},
		},
	}

	replayer := NewReplayer(data)

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 2, replayer.CurrentFrame())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData("phantoon", 100)

	assert.Equal(t, "1.0", data.Version)
	assert.Equal(t, "phantoon", data.Encounter)
	assert.Len(t, data.Frames, 100)
	assert.Equal(t, 42, data.Frames[42].F)
	assert.False(t, data.Frames[42].L)
}

func TestLoad_RoundTrip(t *testing.T) {
	data := ReplayData{
		Version:   "1.0",
		Encounter: "motherBrain",
		StartTime: "2026-08-26T00:00:00Z",
		Frames: []FrameInput{
			{F: 0, R: true},
			{F: 1, R: true, A: true},
		},
	}

	path := filepath.Join(t.TempDir(), "fight.json")
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, data.Encounter, loaded.Encounter)
	require.Len(t, loaded.Frames, 2)
	assert.True(t, loaded.Frames[1].A)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
