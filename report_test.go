package forecaster

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoresPrint(t *testing.T) {
	testData := map[string]struct {
		windows  []int
		expected string
	}{
		"scored windows": {
			windows: []int{1, 2},
			expected: `1-day forecast: $10.00 average error
1-day forecast: 60.0% accuracy
2-day forecast: $15.00 average error
2-day forecast: 40.0% accuracy
`,
		},
		"window too long": {
			windows: []int{2, 4},
			expected: `2-day forecast: $15.00 average error
2-day forecast: 40.0% accuracy
4-day forecast: not enough data to score
`,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			f, err := New(NewWindowsOptions(td.windows...))
			require.Nil(t, err)
			require.Nil(t, f.Fit(generateDays(4), []float64{10, 20, 30, 40}))

			var buf bytes.Buffer
			require.Nil(t, f.ScoresPrint(&buf))
			assert.Equal(t, td.expected, buf.String())
		})
	}
}

func TestSummaryTable(t *testing.T) {
	f, err := New(NewWindowsOptions(1, 2))
	require.Nil(t, err)
	require.Nil(t, f.Fit(generateDays(4), []float64{10, 20, 30, 40}))

	var buf bytes.Buffer
	require.Nil(t, f.SummaryTable(&buf))

	expected := `  Day        Date  Actual   1-Day   2-Day
    1  1970-01-01  $10.00      --      --
    2  1970-01-02  $20.00  $10.00      --
    3  1970-01-03  $30.00  $20.00  $15.00
    4  1970-01-04  $40.00  $30.00  $25.00
`
	assert.Equal(t, expected, buf.String())
}

func TestReportUnfit(t *testing.T) {
	f, err := New(nil)
	require.Nil(t, err)

	var buf bytes.Buffer
	assert.ErrorIs(t, f.ScoresPrint(&buf), ErrUnfitForecaster)
	assert.ErrorIs(t, f.SummaryTable(&buf), ErrEmptyTimeDataset)
	assert.ErrorIs(t, f.PlotFit(&buf, nil), ErrEmptyTimeDataset)
}
