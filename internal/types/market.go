package types

import "time"

// Bar is a single OHLCV price bar.
type Bar struct {
	// Time is the bar timestamp. Bars in a series are ordered strictly
	// ascending by time.
	Time time.Time `json:"time"`
	// Open is the opening price of the bar.
	Open float64 `json:"open"`
	// High is the highest price of the bar.
	High float64 `json:"high"`
	// Low is the lowest price of the bar.
	Low float64 `json:"low"`
	// Close is the closing price of the bar.
	Close float64 `json:"close"`
	// Volume is the traded volume of the bar.
	Volume float64 `json:"volume"`
}

// Closes extracts the closing prices from a bar series.
func Closes(bars []Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, bar := range bars {
		closes[i] = bar.Close
	}

	return closes
}
