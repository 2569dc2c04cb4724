package types

import "github.com/moznion/go-optional"

// Series is a numeric series aligned index-for-index with a bar series.
// Positions before an indicator's window has filled hold no value.
type Series []optional.Option[float64]

// NewSeries creates a series of the given length with every position undefined.
func NewSeries(length int) Series {
	s := make(Series, length)
	for i := range s {
		s[i] = optional.None[float64]()
	}

	return s
}

// SeriesFromValues creates a fully defined series from raw values.
func SeriesFromValues(values []float64) Series {
	s := make(Series, len(values))
	for i, v := range values {
		s[i] = optional.Some(v)
	}

	return s
}

// At returns the value at index i, or None when i is out of range.
func (s Series) At(i int) optional.Option[float64] {
	if i < 0 || i >= len(s) {
		return optional.None[float64]()
	}

	return s[i]
}

// Latest returns the value at the last position.
func (s Series) Latest() optional.Option[float64] {
	return s.At(len(s) - 1)
}

// Previous returns the value at the second to last position.
func (s Series) Previous() optional.Option[float64] {
	return s.At(len(s) - 2)
}

// FirstDefined returns the index of the first defined value, or -1 when the
// series holds no value at all.
func (s Series) FirstDefined() int {
	for i, v := range s {
		if v.IsSome() {
			return i
		}
	}

	return -1
}
