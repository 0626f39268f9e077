// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import (
	"sort"
	"time"

	"github.com/ericlagergren/decimal"
)

type CandleData struct {
	Timestamp  time.Time
	OpenPrice  *decimal.Big
	HighPrice  *decimal.Big
	LowPrice   *decimal.Big
	ClosePrice *decimal.Big
	Volume     *decimal.Big
}

// Time returns the start of the candle.
func (c CandleData) Time() time.Time {
	return c.Timestamp
}

// For sorting
type CandleList []CandleData

func (x CandleList) Len() int           { return len(x) }
func (x CandleList) Less(i, j int) bool { return x[i].Timestamp.Before(x[j].Timestamp) }
func (x CandleList) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }

// Normalize sorts the candles by time and removes duplicates in place.
// Of multiple candles with the same timestamp, the last one is kept.
func Normalize(data CandleList) CandleList {
	sort.Stable(data)
	// Remove adjacent duplicates.
	k := 0
	for i := range data {
		data[k] = data[i]
		if i < len(data)-1 {
			if !data[i].Timestamp.Equal(data[i+1].Timestamp) {
				k++
			}
		} else {
			k++
		}
	}
	return data[:k]
}

// Change returns the percentage change of the close price from the first to
// the last candle, nil if there are less than two candles.
func (x CandleList) Change() *decimal.Big {
	if len(x) < 2 || x[0].ClosePrice == nil || x[len(x)-1].ClosePrice == nil {
		return nil
	}
	return RoundTwoDigits(CalculateDeltaPercentage(x[0].ClosePrice, x[len(x)-1].ClosePrice))
}

// Timestamps returns the start times of all candles.
func (x CandleList) Timestamps() []time.Time {
	t := make([]time.Time, len(x))
	for i := range x {
		t[i] = x[i].Timestamp
	}
	return t
}
