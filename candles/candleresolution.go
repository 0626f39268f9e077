// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package candles

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type CandleResolution int32

const (
	CandleOneMinute CandleResolution = iota
	CandleFiveMinutes
	CandleFifteenMinutes
	CandleThirtyMinutes
	CandleSixtyMinutes
	CandleOneDay
	CandleOneWeek
	CandleOneMonth
)

const NumCandleResolutions = CandleOneMonth + 1

var ErrUnknownResolution = errors.New("unknown candle resolution")

var resolutionNames = [NumCandleResolutions]string{
	"1m",
	"5m",
	"15m",
	"30m",
	"60m",
	"1d",
	"1w",
	"1M",
}

// Alternative spellings accepted when parsing.
var resolutionAliases = map[string]CandleResolution{
	"1 min":   CandleOneMinute,
	"5 min":   CandleFiveMinutes,
	"15 min":  CandleFifteenMinutes,
	"30 min":  CandleThirtyMinutes,
	"60 min":  CandleSixtyMinutes,
	"1h":      CandleSixtyMinutes,
	"1 day":   CandleOneDay,
	"1 week":  CandleOneWeek,
	"1 month": CandleOneMonth,
}

// ParseResolution parses the short form ("1m", "5m", ..., "1d", "1w", "1M")
// of a resolution. Longer forms like "15 min" are accepted as well.
func ParseResolution(s string) (CandleResolution, error) {
	s = strings.TrimSpace(s)
	for i, n := range resolutionNames {
		if s == n {
			return CandleResolution(i), nil
		}
	}
	if r, ok := resolutionAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownResolution, s)
}

func (r CandleResolution) IsValid() bool {
	return r >= 0 && r < NumCandleResolutions
}

func (r CandleResolution) String() string {
	if !r.IsValid() {
		return fmt.Sprintf("CandleResolution(%d)", int32(r))
	}
	return resolutionNames[r]
}

// IsIntraday returns whether there is more than one candle per trading day.
func (r CandleResolution) IsIntraday() bool {
	return r < CandleOneDay
}

func (r CandleResolution) MarshalYAML() (interface{}, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownResolution, int32(r))
	}
	return r.String(), nil
}

func (r *CandleResolution) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseResolution(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r CandleResolution) GetDuration(context time.Time) time.Duration {
	switch r {
	case CandleOneMinute:
		return time.Minute
	case CandleFiveMinutes:
		return time.Minute * 5
	case CandleFifteenMinutes:
		return time.Minute * 15
	case CandleThirtyMinutes:
		return time.Minute * 30
	case CandleSixtyMinutes:
		return time.Hour
	case CandleOneDay:
		return getDayDuration(context)
	case CandleOneWeek:
		d, _ := getWeekDuration(context)
		return d
	case CandleOneMonth:
		d, _ := getMonthDuration(context)
		return d
	default:
		panic("unsupported candle resolution")
	}
}

func (r CandleResolution) GetDeltaCandleCount(candleTime time.Time, tradeTime time.Time) int {
	unitCount := -1
	// Each duration may be different, therefore we loop.
	// TcandleStart <= Ttrade < TnextCandleStart, so candleTime==tradeTime means current candle.
	for candleTime.Before(tradeTime) {
		unitCount++
		candleTime = candleTime.Add(r.GetDuration(candleTime))
	}
	return unitCount
}

func (r CandleResolution) GetNthCandleTime(t time.Time, n int) time.Time {
	// Get 0th candle time first, so that n = 0 works.
	t = r.GetCandleStartTime(t)
	if n < 0 {
		for i := 0; i > n; i-- {
			// Go one second back to the previous interval to get the correct duration.
			t = t.Add(-r.GetDuration(t.Add(-time.Second)))
		}
	}
	for i := 0; i < n; i++ {
		t = t.Add(r.GetDuration(t))
	}
	return t
}

// GetCandleStartTime returns the start of the candle containing t.
// Intraday candles start in the location of t, longer candles at midnight UTC.
func (r CandleResolution) GetCandleStartTime(t time.Time) time.Time {
	switch r {
	case CandleOneMinute:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	case CandleFiveMinutes:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute()/5*5, 0, 0, t.Location())
	case CandleFifteenMinutes:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute()/15*15, 0, 0, t.Location())
	case CandleThirtyMinutes:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute()/30*30, 0, 0, t.Location())
	case CandleSixtyMinutes:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	case CandleOneDay:
		// We use UTC start of day as normalised start of day-based candles.
		// The broker may use timestamps of closing time, which may even be non-constant.
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	case CandleOneWeek:
		// Candlestick weeks start on Mondays. Golang Weeks start on Sundays.
		weekdayDiff := int(t.Weekday()) - int(time.Monday)
		if weekdayDiff < 0 {
			weekdayDiff = 7 + weekdayDiff
		}
		return time.Date(t.Year(), t.Month(), t.Day()-weekdayDiff, 0, 0, 0, 0, time.UTC)
	case CandleOneMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		panic("unsupported candle resolution")
	}
}

func getDayDuration(t time.Time) time.Duration {
	y := t.Year()
	m := t.Month()
	d := t.Day()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location()).Sub(
		time.Date(y, m, d, 0, 0, 0, 0, t.Location()),
	)
}

func getWeekDuration(t time.Time) (time.Duration, time.Time) {
	// Candlestick weeks start on Mondays. Golang Weeks start on Sundays.
	weekdayDiff := int(t.Weekday()) - int(time.Monday)
	if weekdayDiff < 0 {
		weekdayDiff = 7 + weekdayDiff
	}
	y, m, d := t.Date()
	d -= weekdayDiff
	s := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return time.Date(y, m, d+7, 0, 0, 0, 0, t.Location()).Sub(s), s
}

func getMonthDuration(t time.Time) (time.Duration, time.Time) {
	// Use "Sub" call so that daylight saving time is considered.
	y := t.Year()
	m := t.Month()
	s := time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	return time.Date(y, m+1, 1, 0, 0, 0, 0, t.Location()).Sub(s), s
}
