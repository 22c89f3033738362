package forecaster

import (
	"fmt"
	"io"
	"time"

	"github.com/aouyang1/go-trendpredictor/forecast"
	"github.com/goccy/go-json"
)

// Model is a serializeable snapshot of the options and every fitted window forecast
type Model struct {
	Options        *Options         `json:"options"`
	TrainStartTime time.Time        `json:"train_start_time"`
	TrainEndTime   time.Time        `json:"train_end_time"`
	Forecasts      []forecast.Model `json:"forecasts"`
}

func (m Model) TablePrint(w io.Writer) error {
	trainWindow := "None"
	if !m.TrainStartTime.IsZero() {
		trainWindow = fmt.Sprintf("%s to %s", m.TrainStartTime.Format(dayLayout), m.TrainEndTime.Format(dayLayout))
	}
	if _, err := fmt.Fprintf(w, "Training Window: %s\n", trainWindow); err != nil {
		return err
	}
	for _, fm := range m.Forecasts {
		name := "Moving Average"
		if fm.Options != nil {
			name = fmt.Sprintf("Moving Average %s", fm.Options.Name())
		}
		if _, err := fmt.Fprintf(w, "%s:\n", name); err != nil {
			return err
		}
		if err := fm.TablePrint(w, "  ", "  "); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteModel encodes the fitted model as indented json
func (f *Forecaster) WriteModel(w io.Writer) error {
	m, err := f.Model()
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to encode model, %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	return nil
}

// ReadModel decodes a model previously written by WriteModel
func ReadModel(r io.Reader) (Model, error) {
	var m Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return Model{}, fmt.Errorf("unable to decode model, %w", err)
	}
	return m, nil
}
