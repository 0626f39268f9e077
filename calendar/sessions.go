// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calendar

import (
	"time"

	"finscale/candles"
)

func (b BankCalendar) Location() *time.Location {
	return b.location
}

// Sessions returns the candle start times of resolution r within [from, to),
// skipping weekends, bank holidays and the hours the market is closed.
// Intraday candles cover the regular trading hours, or the extended hours if
// extended is set. Longer candles start at midnight of their first trading
// day, in the location of the bank.
func (b BankCalendar) Sessions(from, to time.Time, r candles.CandleResolution, extended bool) []time.Time {
	var sessions []time.Time
	if !from.Before(to) {
		return sessions
	}
	first := from.In(b.location)
	last := to.In(b.location)
	var lastPeriod time.Time
	for day := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, b.location); !day.After(last); day = day.AddDate(0, 0, 1) {
		trading, _, h := b.GetTradingHours(day)
		if !trading {
			continue
		}
		if r.IsIntraday() {
			start, end := h.Bounds(extended)
			for t := start; t.Before(end); t = t.Add(r.GetDuration(t)) {
				if !t.Before(from) && t.Before(to) {
					sessions = append(sessions, t)
				}
			}
			continue
		}
		period := r.GetCandleStartTime(day)
		if period.Equal(lastPeriod) {
			continue
		}
		lastPeriod = period
		if !day.Before(from) && day.Before(to) {
			sessions = append(sessions, day)
		}
	}
	return sessions
}

// TradingState describes the market state at t, "" while the regular
// session is open.
func (b BankCalendar) TradingState(t time.Time) string {
	trading, _, h := b.GetTradingHours(t)
	if !trading {
		return "Market Closed"
	}
	return h.GetTradingState(t)
}
