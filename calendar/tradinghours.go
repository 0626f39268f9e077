// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calendar

import "time"

type TradingHours struct {
	Open     time.Time
	Close    time.Time
	PreOpen  time.Time
	ExtClose time.Time
}

// Bounds returns start and end of the regular session, or of the extended
// session including pre-market and after-hours trading.
func (h TradingHours) Bounds(extended bool) (start, end time.Time) {
	if extended {
		return h.PreOpen, h.ExtClose
	}
	return h.Open, h.Close
}

func (h TradingHours) GetTradingState(t time.Time) string {
	if t.Before(h.PreOpen) || !t.Before(h.ExtClose) {
		return "Market Closed"
	} else if t.Before(h.Open) {
		return "Pre-Market"
	} else if t.Before(h.Close) {
		return ""
	} else {
		return "After-Hours"
	}
}
