package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aouyang1/go-trendpredictor/forecast"
)

const ExamplePrices = "100 102 105 103 107 110 108 112 115 113"

// Session asks for a price series and a window, then prints the moving average forecast
// for the user's numbers
type Session struct {
	in  *bufio.Scanner
	out io.Writer

	// first error writing to out, later writes are skipped
	writeErr error
}

func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// readLine returns the next line of input. End of input reads as an empty line.
func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		return "", s.in.Err()
	}
	return s.in.Text(), nil
}

func (s *Session) printf(format string, a ...any) {
	if s.writeErr != nil {
		return
	}
	_, s.writeErr = fmt.Fprintf(s.out, format, a...)
}

// Run performs a single interactive forecast. A blank price line ends the session without an
// error. Invalid input is explained to the user and returned. A failed write to the output
// takes precedence over any input error.
func (s *Session) Run() error {
	err := s.run()
	if s.writeErr != nil {
		return fmt.Errorf("unable to write to session output, %w", s.writeErr)
	}
	return err
}

func (s *Session) run() error {
	s.printf("\nWant to try your own prices?\nExample: %s\n", ExamplePrices)
	s.printf("\nEnter your prices (space separated) or press Enter to exit: ")

	line, err := s.readLine()
	if err != nil {
		return err
	}
	if strings.TrimSpace(line) == "" {
		return nil
	}

	prices, err := ParsePrices(line)
	if err != nil {
		s.explain(err, 0)
		return err
	}
	s.printf("\nUsing your %d prices...\n", len(prices))

	s.printf("How many days to average? (3 or 5): ")
	line, err = s.readLine()
	if err != nil {
		return err
	}
	window, err := ParseWindow(line, len(prices))
	if err != nil {
		s.explain(err, len(prices))
		return err
	}

	fc, err := forecast.New(forecast.NewWindowOptions(window))
	if err != nil {
		return err
	}
	if err := fc.Fit(prices); err != nil {
		return err
	}
	s.report(prices, fc)
	return nil
}

func (s *Session) report(prices []float64, fc *forecast.Forecast) {
	window := fc.Window()
	predictions := fc.Predictions()

	s.printf("\nYour forecasts:\n")
	for i, p := range predictions {
		s.printf("Day %d: Predicted $%.2f\n", i+window+1, p)
	}
	if next, err := fc.Next(); err == nil {
		s.printf("Day %d: Predicted $%.2f (next day)\n", len(prices)+1, next)
	}

	residual := fc.Residuals()
	if len(residual) > 0 {
		s.printf("\nFirst forecast was: $%.2f\n", predictions[0])
		s.printf("Actual was: $%.2f\n", prices[window])
		s.printf("Difference: $%.2f\n", residual[0])
	}

	if scores := fc.Scores(); scores != nil {
		s.printf("\nAverage error: $%.2f\n", scores.MAE)
		s.printf("Accuracy: %.1f%%\n", scores.Accuracy)
	}
}

func (s *Session) explain(err error, numPrices int) {
	var tokenErr *TokenError
	switch {
	case errors.Is(err, ErrNonFiniteValue) && errors.As(err, &tokenErr):
		s.printf("Oops! %q (entry %d) is not a finite number.\n", tokenErr.Token, tokenErr.Pos)
	case errors.As(err, &tokenErr):
		s.printf("Oops! %q (entry %d) is not a number. Please enter numbers like: 100 102 105 103\n",
			tokenErr.Token, tokenErr.Pos)
	case errors.Is(err, ErrEmptyInput):
		s.printf("Oops! Nothing was entered.\n")
	case errors.Is(err, ErrInvalidWindow) && numPrices < 2:
		s.printf("Oops! At least 2 prices are needed to make a forecast.\n")
	case errors.Is(err, ErrInvalidWindow):
		s.printf("Oops! Days to average must be a single whole number between 1 and %d.\n", numPrices-1)
	default:
		s.printf("Oops! %s\n", err)
	}
}
