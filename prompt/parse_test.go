package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrices(t *testing.T) {
	testData := map[string]struct {
		line     string
		expected []float64
		err      error
		pos      int
		token    string
	}{
		"example prices": {
			line:     ExamplePrices,
			expected: []float64{100, 102, 105, 103, 107, 110, 108, 112, 115, 113},
		},
		"mixed whitespace and decimals": {
			line:     "  100.5\t101.25   99 \n",
			expected: []float64{100.5, 101.25, 99},
		},
		"empty line": {
			line: "",
			err:  ErrEmptyInput,
		},
		"only whitespace": {
			line: " \t ",
			err:  ErrEmptyInput,
		},
		"non numeric token": {
			line:  "100 abc 102",
			err:   ErrNonNumericToken,
			pos:   2,
			token: "abc",
		},
		"comma separated": {
			line:  "100,102",
			err:   ErrNonNumericToken,
			pos:   1,
			token: "100,102",
		},
		"nan token": {
			line:  "100 NaN",
			err:   ErrNonFiniteValue,
			pos:   2,
			token: "NaN",
		},
		"infinite token": {
			line:  "inf 100",
			err:   ErrNonFiniteValue,
			pos:   1,
			token: "inf",
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			prices, err := ParsePrices(td.line)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				if td.pos > 0 {
					var tokenErr *TokenError
					require.True(t, errors.As(err, &tokenErr))
					assert.Equal(t, td.pos, tokenErr.Pos)
					assert.Equal(t, td.token, tokenErr.Token)
				}
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, prices)
		})
	}
}

func TestNonFiniteIsNonNumeric(t *testing.T) {
	_, err := ParsePrices("NaN")
	assert.ErrorIs(t, err, ErrNonNumericToken)
	assert.ErrorIs(t, err, ErrNonFiniteValue)
}

func TestParseWindow(t *testing.T) {
	testData := map[string]struct {
		line      string
		numPrices int
		expected  int
		err       error
	}{
		"three day":              {line: "3", numPrices: 10, expected: 3},
		"surrounding whitespace": {line: " 5 \n", numPrices: 10, expected: 5},
		"largest window":         {line: "9", numPrices: 10, expected: 9},
		"empty":                  {line: "", numPrices: 10, err: ErrEmptyInput},
		"not a number":           {line: "three", numPrices: 10, err: ErrNonNumericToken},
		"fractional":             {line: "2.5", numPrices: 10, err: ErrNonNumericToken},
		"zero":                   {line: "0", numPrices: 10, err: ErrInvalidWindow},
		"negative":               {line: "-3", numPrices: 10, err: ErrInvalidWindow},
		"window equals length":   {line: "10", numPrices: 10, err: ErrInvalidWindow},
		"too many tokens":        {line: "3 5", numPrices: 10, err: ErrInvalidWindow},
		"single price":           {line: "1", numPrices: 1, err: ErrInvalidWindow},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			window, err := ParseWindow(td.line, td.numPrices)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, window)
		})
	}
}
