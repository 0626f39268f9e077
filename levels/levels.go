// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package levels

import "time"

// BoundaryFlags describes which calendar granularities start at a record,
// relative to its predecessor.
type BoundaryFlags struct {
	// Date is the record timestamp in epoch milliseconds.
	Date                int64
	StartOfSecond       bool
	StartOf5Seconds     bool
	StartOf15Seconds    bool
	StartOf30Seconds    bool
	StartOfMinute       bool
	StartOf5Minutes     bool
	StartOf15Minutes    bool
	StartOf30Minutes    bool
	StartOfHour         bool
	StartOfEighthOfADay bool
	StartOfQuarterDay   bool
	StartOfHalfDay      bool
	StartOfDay          bool
	StartOfWeek         bool
	StartOfMonth        bool
	StartOfQuarter      bool
	StartOfYear         bool
}

// Levels, finest first. A higher level is more significant when ticks compete.
const (
	LevelMillisecond = iota
	LevelSecond
	Level5Seconds
	Level15Seconds
	Level30Seconds
	LevelMinute
	Level5Minutes
	Level15Minutes
	Level30Minutes
	LevelHour
	Level2Hours
	LevelEighthOfADay
	LevelQuarterDay
	LevelHalfDay
	LevelDay
	LevelEvenDay
	LevelWeek
	LevelMonth
	LevelQuarter
	LevelYear
	Level2Years
	Level4Years
	Level12Years
)

const MaxLevel = Level12Years

// Entry is the classification result of a single record.
type Entry struct {
	Level  int
	Format FormatKey
}

type rung struct {
	name   string
	level  int
	format FormatKey
	match  func(f *BoundaryFlags, t time.Time, position int) bool
}

// The ladder is evaluated coarsest first, the first match wins.
var ladder = []rung{
	{"year/12", Level12Years, YearFormat, func(f *BoundaryFlags, t time.Time, _ int) bool {
		return f.StartOfYear && t.Year()%12 == 0
	}},
	{"year/4", Level4Years, YearFormat, func(f *BoundaryFlags, t time.Time, _ int) bool {
		return f.StartOfYear && t.Year()%4 == 0
	}},
	{"year/2", Level2Years, YearFormat, func(f *BoundaryFlags, t time.Time, _ int) bool {
		return f.StartOfYear && t.Year()%2 == 0
	}},
	{"year", LevelYear, YearFormat, func(f *BoundaryFlags, _ time.Time, _ int) bool { return f.StartOfYear }},
	{"quarter", LevelQuarter, QuarterFormat, func(f *BoundaryFlags, _ time.Time, _ int) bool { return f.StartOfQuarter }},
	{"month", LevelMonth, MonthFormat, func(f *BoundaryFlags, _ time.Time, _ int) bool { return f.StartOfMonth }},
	{"week", LevelWeek, WeekFormat, func(f *BoundaryFlags, _ time.Time, _ int) bool { return f.StartOfWeek }},
	// Every other day start, thins daily labels.
	{"day/2", LevelEvenDay, DayFormat, func(f *BoundaryFlags, _ time.Time, position int) bool {
		return f.StartOfDay && position%2 == 0
	}},
	{"day", LevelDay, DayFormat, func(f *BoundaryFlags, _ time.Time, _ int) bool { return f.StartOfDay }},
	{"12h", LevelHalfDay, HourFormat, func(f *BoundaryFlags, _ time.Time, _ int) bool { return f.StartOfHalfDay }},
	{"6h", LevelQuarterDay, HourFormat, func(f *BoundaryFlags, _ time.Time, _ int) bool { return f.StartOfQuarterDay }},
	{"3h", LevelEighthOfADay, HourFormat, func(f *BoundaryFlags, _ time.Time, _ int) bool { return f.StartOfEighthOfADay }},
	{"2h", Level2Hours, HourFormat, func(f *BoundaryFlags, t time.Time, _ int) bool {
		return f.StartOfHour && t.Hour()%2 == 0
	}},
	{"1h", LevelHour, HourFormat, func(f *BoundaryFlags, _ time.Time, _ int) bool { return f.StartOfHour }},
	{"30min", Level30Minutes, MinuteFormat, func(f *BoundaryFlags, _ time.Time, _ int) bool { return f.StartOf30Minutes }},
	{"15min", Level15Minutes, MinuteFormat, func(f *BoundaryFlags, _ time.Time, _ int) bool { return f.StartOf15Minutes }},
	{"5min", Level5Minutes, MinuteFormat, func(f *BoundaryFlags, _ time.Time, _ int) bool { return f.StartOf5Minutes }},
	{"1min", LevelMinute, MinuteFormat, func(f *BoundaryFlags, _ time.Time, _ int) bool { return f.StartOfMinute }},
	{"30s", Level30Seconds, SecondFormat, func(f *BoundaryFlags, _ time.Time, _ int) bool { return f.StartOf30Seconds }},
	{"15s", Level15Seconds, SecondFormat, func(f *BoundaryFlags, _ time.Time, _ int) bool { return f.StartOf15Seconds }},
	{"5s", Level5Seconds, SecondFormat, func(f *BoundaryFlags, _ time.Time, _ int) bool { return f.StartOf5Seconds }},
	{"1s", LevelSecond, SecondFormat, func(f *BoundaryFlags, _ time.Time, _ int) bool { return f.StartOfSecond }},
	{"ms", LevelMillisecond, MillisecondFormat, func(*BoundaryFlags, time.Time, int) bool { return true }},
}

// Classify returns the coarsest ladder entry matching the flags of a record.
// Calendar components are read in the location of t. A rung whose pattern in
// f is empty is skipped. If no rung applies, the millisecond entry is returned.
func Classify(flags BoundaryFlags, t time.Time, position int, f Formatters) Entry {
	for i := range ladder {
		r := &ladder[i]
		if r.match(&flags, t, position) && f.Pattern(r.format) != "" {
			return Entry{Level: r.level, Format: r.format}
		}
	}
	return Entry{Level: LevelMillisecond, Format: MillisecondFormat}
}

// Rung describes one step of the classification ladder.
type Rung struct {
	Name   string
	Level  int
	Format FormatKey
}

// Ladder returns the classification ladder, coarsest first.
func Ladder() []Rung {
	rungs := make([]Rung, len(ladder))
	for i, r := range ladder {
		rungs[i] = Rung{Name: r.name, Level: r.level, Format: r.format}
	}
	return rungs
}

// Name returns the ladder name of a level, or "" if the level is unknown.
func Name(level int) string {
	if level < 0 || level > MaxLevel {
		return ""
	}
	return ladder[MaxLevel-level].name
}
