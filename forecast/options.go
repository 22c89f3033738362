package forecast

import "fmt"

const (
	DefaultWindow    = 3
	DefaultPrecision = 2
)

// Options configures a moving average forecast. Window is the number of trailing
// observations averaged for a single prediction and Precision is the number of
// decimal places each prediction is rounded to.
type Options struct {
	Window    int `json:"window" yaml:"window"`
	Precision int `json:"precision" yaml:"precision"`
}

// NewDefaultOptions returns a 3 day window rounded to cents
func NewDefaultOptions() *Options {
	return &Options{
		Window:    DefaultWindow,
		Precision: DefaultPrecision,
	}
}

// NewWindowOptions returns default options using the provided window
func NewWindowOptions(window int) *Options {
	opt := NewDefaultOptions()
	opt.Window = window
	return opt
}

// Name is the display label of the forecast e.g. 3-Day
func (o *Options) Name() string {
	return fmt.Sprintf("%d-Day", o.Window)
}

func (o *Options) Valid() error {
	if o.Window < 1 {
		return fmt.Errorf("window of %d, %w", o.Window, ErrInvalidWindow)
	}
	if o.Precision < 0 {
		return fmt.Errorf("precision of %d, %w", o.Precision, ErrInvalidPrecision)
	}
	return nil
}
