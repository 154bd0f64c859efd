package driver

import (
	"encoding/json"
	"fmt"
	"io"

	"lust/internal/observ"
)

// TimingPayload — машиночитаемый отчёт `--timings` для json-вывода.
type TimingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

func NewTimingPayload(kind, path string, t *observ.Timer) TimingPayload {
	if kind == "" {
		kind = "pipeline"
	}
	rep := t.Report()
	return TimingPayload{Kind: kind, Path: path, TotalMS: rep.TotalMS, Phases: rep.Phases}
}

// WriteTimings печатает отчёт таймера: json одной строкой или текстовую сводку.
func WriteTimings(w io.Writer, payload TimingPayload, t *observ.Timer, asJSON bool) error {
	if asJSON {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
	header := fmt.Sprintf("timings (%s)", payload.Kind)
	if payload.Path != "" {
		header += ": " + payload.Path
	}
	_, err := fmt.Fprintf(w, "%s\n%s", header, t.Summary())
	return err
}
