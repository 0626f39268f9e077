// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calendar

import (
	"testing"
	"time"

	"finscale/candles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionsIntraday(t *testing.T) {
	c := NewUSBankCalendar()
	loc := c.Location()
	// Friday and Monday, the weekend is skipped.
	s := c.Sessions(time.Date(2026, 1, 9, 0, 0, 0, 0, loc), time.Date(2026, 1, 13, 0, 0, 0, 0, loc), candles.CandleThirtyMinutes, false)
	require.Len(t, s, 26)
	assert.True(t, s[0].Equal(time.Date(2026, 1, 9, 9, 30, 0, 0, loc)))
	assert.True(t, s[12].Equal(time.Date(2026, 1, 9, 15, 30, 0, 0, loc)))
	assert.True(t, s[13].Equal(time.Date(2026, 1, 12, 9, 30, 0, 0, loc)))
	for i := 1; i < len(s); i++ {
		assert.True(t, s[i-1].Before(s[i]))
	}
}

func TestSessionsBounds(t *testing.T) {
	c := NewUSBankCalendar()
	loc := c.Location()
	s := c.Sessions(time.Date(2026, 1, 9, 10, 0, 0, 0, loc), time.Date(2026, 1, 9, 11, 0, 0, 0, loc), candles.CandleFifteenMinutes, false)
	require.Len(t, s, 4)
	assert.True(t, s[0].Equal(time.Date(2026, 1, 9, 10, 0, 0, 0, loc)))
	assert.True(t, s[3].Equal(time.Date(2026, 1, 9, 10, 45, 0, 0, loc)))

	assert.Empty(t, c.Sessions(s[3], s[0], candles.CandleOneMinute, false))
	assert.Empty(t, c.Sessions(s[0], s[0], candles.CandleOneMinute, false))
}

func TestSessionsPartialDay(t *testing.T) {
	c := NewUSBankCalendar()
	loc := c.Location()
	s := c.Sessions(time.Date(2025, 12, 24, 0, 0, 0, 0, loc), time.Date(2025, 12, 25, 0, 0, 0, 0, loc), candles.CandleThirtyMinutes, false)
	require.Len(t, s, 7)
	assert.True(t, s[6].Equal(time.Date(2025, 12, 24, 12, 30, 0, 0, loc)))
}

func TestSessionsExtendedHours(t *testing.T) {
	c := NewUSBankCalendar()
	loc := c.Location()
	s := c.Sessions(time.Date(2026, 1, 9, 0, 0, 0, 0, loc), time.Date(2026, 1, 10, 0, 0, 0, 0, loc), candles.CandleSixtyMinutes, true)
	// 4:00 until 20:00
	require.Len(t, s, 16)
	assert.True(t, s[0].Equal(time.Date(2026, 1, 9, 4, 0, 0, 0, loc)))
	assert.True(t, s[15].Equal(time.Date(2026, 1, 9, 19, 0, 0, 0, loc)))
}

func TestSessionsDaily(t *testing.T) {
	c := NewUSBankCalendar()
	loc := c.Location()
	s := c.Sessions(time.Date(2025, 12, 22, 0, 0, 0, 0, loc), time.Date(2026, 1, 3, 0, 0, 0, 0, loc), candles.CandleOneDay, false)
	expected := []time.Time{
		time.Date(2025, 12, 22, 0, 0, 0, 0, loc),
		time.Date(2025, 12, 23, 0, 0, 0, 0, loc),
		time.Date(2025, 12, 24, 0, 0, 0, 0, loc),
		time.Date(2025, 12, 26, 0, 0, 0, 0, loc),
		time.Date(2025, 12, 29, 0, 0, 0, 0, loc),
		time.Date(2025, 12, 30, 0, 0, 0, 0, loc),
		time.Date(2025, 12, 31, 0, 0, 0, 0, loc),
		time.Date(2026, 1, 2, 0, 0, 0, 0, loc),
	}
	require.Len(t, s, len(expected))
	for i := range expected {
		assert.True(t, expected[i].Equal(s[i]), "session %d: %v", i, s[i])
	}
}

func TestSessionsWeekly(t *testing.T) {
	c := NewUSBankCalendar()
	loc := c.Location()
	s := c.Sessions(time.Date(2026, 1, 1, 0, 0, 0, 0, loc), time.Date(2026, 2, 1, 0, 0, 0, 0, loc), candles.CandleOneWeek, false)
	expected := []time.Time{
		time.Date(2026, 1, 2, 0, 0, 0, 0, loc),
		time.Date(2026, 1, 5, 0, 0, 0, 0, loc),
		time.Date(2026, 1, 12, 0, 0, 0, 0, loc),
		// Martin Luther King Jr. Day
		time.Date(2026, 1, 20, 0, 0, 0, 0, loc),
		time.Date(2026, 1, 26, 0, 0, 0, 0, loc),
	}
	require.Len(t, s, len(expected))
	for i := range expected {
		assert.True(t, expected[i].Equal(s[i]), "session %d: %v", i, s[i])
	}
}

func TestSessionsMonthly(t *testing.T) {
	c := NewUSBankCalendar()
	loc := c.Location()
	s := c.Sessions(time.Date(2026, 1, 1, 0, 0, 0, 0, loc), time.Date(2026, 4, 1, 0, 0, 0, 0, loc), candles.CandleOneMonth, false)
	require.Len(t, s, 3)
	assert.True(t, s[0].Equal(time.Date(2026, 1, 2, 0, 0, 0, 0, loc)))
	assert.True(t, s[1].Equal(time.Date(2026, 2, 2, 0, 0, 0, 0, loc)))
	assert.True(t, s[2].Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, loc)))
}

func TestTradingState(t *testing.T) {
	c := NewUSBankCalendar()
	loc := c.Location()
	assert.Equal(t, "Market Closed", c.TradingState(time.Date(2026, 1, 10, 10, 0, 0, 0, loc)))
	assert.Equal(t, "", c.TradingState(time.Date(2026, 1, 9, 10, 0, 0, 0, loc)))
	assert.Equal(t, "Pre-Market", c.TradingState(time.Date(2026, 1, 9, 8, 0, 0, 0, loc)))
	assert.Equal(t, "After-Hours", c.TradingState(time.Date(2026, 1, 9, 17, 0, 0, 0, loc)))
	assert.Equal(t, "Market Closed", c.TradingState(time.Date(2026, 1, 9, 21, 0, 0, 0, loc)))
}
