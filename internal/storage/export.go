package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/diffuse1d/internal/field"
)

type ExportData struct {
	ID          string             `json:"id"`
	Profile     string             `json:"profile"`
	Length      float64            `json:"length"`
	Dx          float64            `json:"dx"`
	Diffusivity float64            `json:"diffusivity"`
	Dt          float64            `json:"dt"`
	Steps       int                `json:"steps"`
	Times       []float64          `json:"times"`
	Frames      [][]float64        `json:"frames"`
	Metrics     map[string]float64 `json:"metrics"`
}

// ExportJSON writes a run's metadata and frames as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, frames []field.Field, times []float64) error {
	data := ExportData{
		ID:          meta.ID,
		Profile:     meta.Profile,
		Length:      meta.Length,
		Dx:          meta.Dx,
		Diffusivity: meta.Diffusivity,
		Dt:          meta.Dt,
		Steps:       meta.Steps,
		Times:       times,
		Frames:      make([][]float64, len(frames)),
		Metrics:     meta.Metrics,
	}
	for i, f := range frames {
		data.Frames[i] = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes frames as rows of time followed by node values.
func ExportCSV(w io.Writer, frames []field.Field, times []float64) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if len(frames) == 0 {
		return nil
	}

	header := []string{"time"}
	for i := range frames[0] {
		header = append(header, "c"+strconv.Itoa(i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, f := range frames {
		row := make([]string, 0, len(f)+1)
		row = append(row, strconv.FormatFloat(times[i], 'f', 6, 64))
		for _, val := range f {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return nil
}
