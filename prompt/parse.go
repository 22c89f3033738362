// Package prompt reads price series and forecast windows typed by a user and reports the
// resulting moving average forecast
package prompt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrEmptyInput      = errors.New("empty input")
	ErrNonNumericToken = errors.New("non-numeric token")
	ErrNonFiniteValue  = fmt.Errorf("value is NaN or infinite, %w", ErrNonNumericToken)
	ErrInvalidWindow   = errors.New("invalid window")
)

// TokenError reports the offending token of a line and its 1-indexed position
type TokenError struct {
	Pos   int
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("token %d %q, %s", e.Pos, e.Token, e.Err)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// ParsePrices parses whitespace separated prices
func ParsePrices(line string) ([]float64, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}

	prices := make([]float64, 0, len(tokens))
	for i, token := range tokens {
		val, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, &TokenError{Pos: i + 1, Token: token, Err: ErrNonNumericToken}
		}
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, &TokenError{Pos: i + 1, Token: token, Err: ErrNonFiniteValue}
		}
		prices = append(prices, val)
	}
	return prices, nil
}

// ParseWindow parses the number of days to average. The window must leave at least one price
// to compare against, so it is bounded to [1, numPrices-1].
func ParseWindow(line string, numPrices int) (int, error) {
	tokens := strings.Fields(line)
	switch len(tokens) {
	case 0:
		return 0, ErrEmptyInput
	case 1:
	default:
		return 0, fmt.Errorf("expected a single number but got %d, %w", len(tokens), ErrInvalidWindow)
	}

	window, err := strconv.Atoi(tokens[0])
	if err != nil {
		return 0, &TokenError{Pos: 1, Token: tokens[0], Err: ErrNonNumericToken}
	}
	if window < 1 || window >= numPrices {
		return 0, fmt.Errorf("window %d outside [1, %d], %w", window, numPrices-1, ErrInvalidWindow)
	}
	return window, nil
}
