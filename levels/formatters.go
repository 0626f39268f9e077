// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package levels

import (
	"fmt"
	"strings"
)

type FormatKey int

const (
	MillisecondFormat FormatKey = iota
	SecondFormat
	MinuteFormat
	HourFormat
	DayFormat
	WeekFormat
	MonthFormat
	QuarterFormat
	YearFormat
)

const NumFormatKeys = YearFormat + 1

func (k FormatKey) String() string {
	switch k {
	case MillisecondFormat:
		return "millisecond"
	case SecondFormat:
		return "second"
	case MinuteFormat:
		return "minute"
	case HourFormat:
		return "hour"
	case DayFormat:
		return "day"
	case WeekFormat:
		return "week"
	case MonthFormat:
		return "month"
	case QuarterFormat:
		return "quarter"
	case YearFormat:
		return "year"
	default:
		return fmt.Sprintf("FormatKey(%d)", int(k))
	}
}

// ParseFormatKey returns the key with the given name, e.g. "week".
func ParseFormatKey(name string) (FormatKey, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := MillisecondFormat; k < NumFormatKeys; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown format key %q", name)
}

// Formatters maps each format key to a percent-directive date pattern.
type Formatters struct {
	Year        string `yaml:",omitempty"`
	Quarter     string `yaml:",omitempty"`
	Month       string `yaml:",omitempty"`
	Week        string `yaml:",omitempty"`
	Day         string `yaml:",omitempty"`
	Hour        string `yaml:",omitempty"`
	Minute      string `yaml:",omitempty"`
	Second      string `yaml:",omitempty"`
	Millisecond string `yaml:",omitempty"`
}

var DefaultFormatters = Formatters{
	Year:        "%Y",
	Quarter:     "%b",
	Month:       "%b",
	Week:        "%e",
	Day:         "%e",
	Hour:        "%H:%M",
	Minute:      "%H:%M",
	Second:      "%H:%M:%S",
	Millisecond: ".%L",
}

func (f Formatters) Pattern(k FormatKey) string {
	switch k {
	case MillisecondFormat:
		return f.Millisecond
	case SecondFormat:
		return f.Second
	case MinuteFormat:
		return f.Minute
	case HourFormat:
		return f.Hour
	case DayFormat:
		return f.Day
	case WeekFormat:
		return f.Week
	case MonthFormat:
		return f.Month
	case QuarterFormat:
		return f.Quarter
	case YearFormat:
		return f.Year
	default:
		return ""
	}
}

// Merge returns a copy of f where every non-empty pattern of o replaces the
// pattern of f.
func (f Formatters) Merge(o Formatters) Formatters {
	pick := func(base, override string) string {
		if override != "" {
			return override
		}
		return base
	}
	return Formatters{
		Year:        pick(f.Year, o.Year),
		Quarter:     pick(f.Quarter, o.Quarter),
		Month:       pick(f.Month, o.Month),
		Week:        pick(f.Week, o.Week),
		Day:         pick(f.Day, o.Day),
		Hour:        pick(f.Hour, o.Hour),
		Minute:      pick(f.Minute, o.Minute),
		Second:      pick(f.Second, o.Second),
		Millisecond: pick(f.Millisecond, o.Millisecond),
	}
}

// With returns a copy of f with the pattern of k replaced.
func (f Formatters) With(k FormatKey, pattern string) Formatters {
	switch k {
	case MillisecondFormat:
		f.Millisecond = pattern
	case SecondFormat:
		f.Second = pattern
	case MinuteFormat:
		f.Minute = pattern
	case HourFormat:
		f.Hour = pattern
	case DayFormat:
		f.Day = pattern
	case WeekFormat:
		f.Week = pattern
	case MonthFormat:
		f.Month = pattern
	case QuarterFormat:
		f.Quarter = pattern
	case YearFormat:
		f.Year = pattern
	}
	return f
}
