package listview

import "fmt"

// RowIndexError indicates a row lookup outside [0, RowCount). Any caller
// hitting it has already violated a window invariant, so it is reported
// rather than clamped.
type RowIndexError struct {
	Index int
	Count int
}

func (e *RowIndexError) Error() string {
	return fmt.Sprintf("row index %d out of range [0, %d)", e.Index, e.Count)
}

// InvalidRangeError indicates reversed or degenerate bounds passed to
// HeightBetween. It signals a logic error in the caller, not a runtime
// fault.
type InvalidRangeError struct {
	First, Second int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid row range: second index %d not after first %d", e.Second, e.First)
}

// UnknownSectionError indicates a section lookup for an identifier that
// is not present in the current data.
type UnknownSectionError struct {
	Section string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown section %q", e.Section)
}

// ConfigError indicates a controller configuration that would produce
// undefined windowing behavior. The controller refuses to operate.
type ConfigError struct {
	Option string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Option, e.Reason)
}
