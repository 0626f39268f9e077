// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import (
	"math"
	"math/rand"
	"time"
)

type SynthOptions struct {
	StartPrice float64
	// Annual volatility in percent.
	VolatilityPercent float64
	// Average volume per candle.
	Volume float64
	// Candles per year, used to scale the volatility.
	CandlesPerYear float64
}

var DefaultSynthOptions = SynthOptions{
	StartPrice:        95.5,
	VolatilityPercent: 20,
	Volume:            1000,
	CandlesPerYear:    252 * 13,
}

// Synthesize creates random candles at the given times, following a
// geometric brownian motion.
func Synthesize(times []time.Time, o SynthOptions, rnd *rand.Rand) CandleList {
	data := make(CandleList, 0, len(times))
	volatility := o.VolatilityPercent / 100
	step := volatility * math.Sqrt(1/math.Max(o.CandlesPerYear, 1))
	price := math.Max(0.01, o.StartPrice)
	for _, t := range times {
		open := price
		price = math.Max(0.01, price*(1+step*rnd.NormFloat64()))
		high := math.Max(open, price) * (1 + math.Abs(step*rnd.NormFloat64())/2)
		low := math.Max(0.01, math.Min(open, price)*(1-math.Abs(step*rnd.NormFloat64())/2))
		volume := math.Max(10, o.Volume*(1+(rnd.Float64()*0.5-0.25)))
		data = append(data, CandleData{
			Timestamp:  t,
			OpenPrice:  RoundTwoDigits(ConvertFloatToDecimal(open, 64)),
			HighPrice:  RoundTwoDigits(ConvertFloatToDecimal(high, 64)),
			LowPrice:   RoundTwoDigits(ConvertFloatToDecimal(low, 64)),
			ClosePrice: RoundTwoDigits(ConvertFloatToDecimal(price, 64)),
			Volume:     ConvertFloatToDecimal(math.Floor(volume), 64),
		})
	}
	return data
}
