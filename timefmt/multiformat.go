// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package timefmt

import "time"

// Interval floors operate in the location of the given time.

func FloorSecond(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, t.Location())
}

func FloorMinute(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
}

func FloorHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

func FloorDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FloorWeek returns the start of the Sunday based week containing t.
func FloorWeek(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()-int(t.Weekday()), 0, 0, 0, 0, t.Location())
}

func FloorMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func FloorYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// MultiFormats are the patterns of the format cascade.
type MultiFormats struct {
	Millisecond string
	Second      string
	Minute      string
	Hour        string
	Day         string
	Week        string
	Month       string
	Year        string
}

var DefaultMultiFormats = MultiFormats{
	Millisecond: ".%L",
	Second:      ":%S",
	Minute:      "%H:%M",
	Hour:        "%H:%M",
	Day:         "%e",
	Week:        "%e",
	Month:       "%b",
	Year:        "%Y",
}

// MultiPattern picks the pattern for t by testing on which calendar
// boundaries t sits exactly, finest first.
func (m MultiFormats) MultiPattern(t time.Time) string {
	switch {
	case FloorSecond(t).Before(t):
		return m.Millisecond
	case FloorMinute(t).Before(t):
		return m.Second
	case FloorHour(t).Before(t):
		return m.Minute
	case FloorDay(t).Before(t):
		return m.Hour
	case FloorMonth(t).Before(t):
		if FloorWeek(t).Before(t) {
			return m.Day
		}
		return m.Week
	case FloorYear(t).Before(t):
		return m.Month
	default:
		return m.Year
	}
}

// MultiFormat labels t with the format cascade of the locale.
func (l *Locale) MultiFormat(t time.Time, m MultiFormats) string {
	return l.Format(m.MultiPattern(t), t)
}

// MultiFormat labels t with the default cascade in en-US.
func MultiFormat(t time.Time) string {
	return EnUS.MultiFormat(t, DefaultMultiFormats)
}
