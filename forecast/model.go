package forecast

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aouyang1/go-trendpredictor/forecast/util"
)

// Model represents a serializeable format of a forecast storing the forecast options, fit scores,
// and fitted values
type Model struct {
	Options     *Options  `json:"options"`
	TrainSize   int       `json:"train_size"`
	Scores      *Scores   `json:"scores"`
	Predictions []float64 `json:"predictions"`
	Residual    []float64 `json:"residual"`
	Next        *float64  `json:"next,omitempty"`
}

func (m Model) TablePrint(w io.Writer, prefix, indent string) error {
	if _, err := fmt.Fprintf(w, "%s%sForecast:\n", prefix, util.IndentExpand(indent, 0)); err != nil {
		return err
	}

	if m.Options != nil {
		if _, err := fmt.Fprintf(w, "%s%sWindow: %d\n", prefix, util.IndentExpand(indent, 1), m.Options.Window); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "%s%sTraining Size: %d    Predictions: %d\n",
		prefix, util.IndentExpand(indent, 1),
		m.TrainSize, len(m.Predictions)); err != nil {
		return err
	}

	next := "None"
	if m.Next != nil {
		next = fmt.Sprintf("%.2f", *m.Next)
	}
	if _, err := fmt.Fprintf(w, "%s%sNext: %s\n", prefix, util.IndentExpand(indent, 1), next); err != nil {
		return err
	}

	if m.Scores == nil {
		_, err := fmt.Fprintf(w, "%s%sScores: None\n", prefix, util.IndentExpand(indent, 0))
		return err
	}
	return m.Scores.tablePrint(w, prefix, indent, 0)
}

func (s Scores) tablePrint(w io.Writer, prefix, indent string, indentGrowth int) error {
	if _, err := fmt.Fprintf(w, "%s%sScores:\n", prefix, util.IndentExpand(indent, indentGrowth)); err != nil {
		return err
	}
	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "%s%sCount\tMAE\tAccuracy\tMAPE\tMSE\tR2\t\n",
		prefix, util.IndentExpand(indent, indentGrowth+1)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tbl, "%s%s%d\t%.3f\t%.1f%%\t%.3f\t%.3f\t%.3f\t\n",
		prefix, util.IndentExpand(indent, indentGrowth+1),
		s.Count, s.MAE, s.Accuracy, s.MAPE, s.MSE, s.R2); err != nil {
		return err
	}
	return tbl.Flush()
}
