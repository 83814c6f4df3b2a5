package storage

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/diffuse1d/internal/diffusion"
	"github.com/san-kum/diffuse1d/internal/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult() *diffusion.Result {
	return &diffusion.Result{
		Final:      field.Field{500, 250, 0},
		Frames:     []field.Field{{500, 0, 0}, {500, 250, 0}},
		Times:      []float64{0, 0.00125},
		Metrics:    map[string]float64{"mass_drift": 0.25},
		StepsTaken: 1,
	}
}

func testMeta() RunMetadata {
	return RunMetadata{
		Profile:     "step",
		Length:      1,
		Dx:          0.5,
		Diffusivity: 100,
		Dt:          0.00125,
		Steps:       1,
		Left:        500,
		Right:       0,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runID, err := st.Save(testMeta(), testResult())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(runID, "step_"))

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, runID, meta.ID)
	assert.Equal(t, "step", meta.Profile)
	assert.Equal(t, 0.00125, meta.Dt)
	assert.Equal(t, 0.25, meta.Metrics["mass_drift"])

	frames, times, err := st.LoadFrames(runID)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	require.Len(t, times, 2)
	assert.Equal(t, field.Field{500, 0, 0}, frames[0])
	assert.Equal(t, field.Field{500, 250, 0}, frames[1])
	assert.Equal(t, 0.00125, times[1])
}

func TestSaveWithoutFrames(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	result := testResult()
	result.Frames = nil
	result.Times = nil

	runID, err := st.Save(testMeta(), result)
	require.NoError(t, err)

	// The final field is written even when no frames were recorded.
	frames, _, err := st.LoadFrames(runID)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, result.Final, frames[0])
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = st.Save(testMeta(), testResult())
	require.NoError(t, err)

	runs, err = st.List()
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestListMissingDir(t *testing.T) {
	st := New("/nonexistent/diffuse1d-test")
	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestExportJSON(t *testing.T) {
	meta := testMeta()
	meta.ID = "step_1"
	result := testResult()

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, &meta, result.Frames, result.Times))

	var data ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "step_1", data.ID)
	require.Len(t, data.Frames, 2)
	assert.Equal(t, []float64{500, 250, 0}, data.Frames[1])
}

func TestExportCSV(t *testing.T) {
	result := testResult()

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, result.Frames, result.Times))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "time,c0,c1,c2", lines[0])
	assert.Contains(t, lines[2], "500,250,0")
}
