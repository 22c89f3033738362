package forecaster

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// ScoresPrint writes the average error and accuracy of every fitted forecast
func (f *Forecaster) ScoresPrint(w io.Writer) error {
	if f.fitResults == nil {
		return ErrUnfitForecaster
	}
	for _, res := range f.fitResults {
		name := strings.ToLower(res.Name)
		if res.Scores == nil {
			if _, err := fmt.Fprintf(w, "%s forecast: not enough data to score\n", name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s forecast: $%.2f average error\n", name, res.Scores.MAE); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s forecast: %.1f%% accuracy\n", name, res.Scores.Accuracy); err != nil {
			return err
		}
	}
	return nil
}

// SummaryTable writes one row per day with the actual price and each window's forecast for that
// day. Days before a window has a forecast are shown as --.
func (f *Forecaster) SummaryTable(w io.Writer) error {
	td := f.TrainingData()
	if td == nil {
		return ErrEmptyTimeDataset
	}

	tbl := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := []string{"Day", "Date", "Actual"}
	for _, res := range f.fitResults {
		header = append(header, res.Name)
	}
	if _, err := fmt.Fprintf(tbl, "%s\t\n", strings.Join(header, "\t")); err != nil {
		return err
	}

	for i, day := range td.Days() {
		row := []string{
			fmt.Sprintf("%d", day),
			td.T[i].Format(dayLayout),
			fmt.Sprintf("$%.2f", td.Y[i]),
		}
		for _, res := range f.fitResults {
			val, ok := res.ForecastAt(day)
			if !ok {
				row = append(row, "--")
				continue
			}
			row = append(row, fmt.Sprintf("$%.2f", val))
		}
		if _, err := fmt.Fprintf(tbl, "%s\t\n", strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return tbl.Flush()
}
