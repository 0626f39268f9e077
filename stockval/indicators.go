// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import "github.com/cinar/indicator"

// ClosePrices returns the close prices as floats, for indicator calculation.
func (x CandleList) ClosePrices() []float64 {
	prices := make([]float64, len(x))
	for i := range x {
		if x[i].ClosePrice != nil {
			prices[i], _ = x[i].ClosePrice.Float64()
		}
	}
	return prices
}

// Sma returns the simple moving average of the close prices over numPeriods candles.
func (x CandleList) Sma(numPeriods int) []float64 {
	if numPeriods <= 0 || len(x) == 0 {
		return nil
	}
	return indicator.Sma(numPeriods, x.ClosePrices())
}
