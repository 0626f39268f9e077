// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package levels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLadderOrder(t *testing.T) {
	rungs := Ladder()
	assert.Len(t, rungs, MaxLevel+1)
	for i, r := range rungs {
		assert.Equal(t, MaxLevel-i, r.Level, r.Name)
	}
	assert.Equal(t, YearFormat, rungs[0].Format)
	assert.Equal(t, MillisecondFormat, rungs[len(rungs)-1].Format)
}

func TestClassifyYear(t *testing.T) {
	flags := BoundaryFlags{StartOfYear: true, StartOfMonth: true, StartOfDay: true}
	e := Classify(flags, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), 1, DefaultFormatters)
	assert.Equal(t, Entry{Level: Level4Years, Format: YearFormat}, e)

	e = Classify(flags, time.Date(2028, 1, 3, 0, 0, 0, 0, time.UTC), 1, DefaultFormatters)
	assert.Equal(t, Level12Years, e.Level)

	e = Classify(flags, time.Date(2027, 1, 4, 0, 0, 0, 0, time.UTC), 1, DefaultFormatters)
	assert.Equal(t, LevelYear, e.Level)

	e = Classify(flags, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), 1, DefaultFormatters)
	assert.Equal(t, Level2Years, e.Level)
}

func TestClassifyPlainHour(t *testing.T) {
	flags := BoundaryFlags{StartOfHour: true, StartOfMinute: true}
	e := Classify(flags, time.Date(2026, 1, 5, 11, 0, 0, 0, time.UTC), 3, DefaultFormatters)
	assert.Equal(t, Entry{Level: LevelHour, Format: HourFormat}, e)

	e = Classify(flags, time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC), 3, DefaultFormatters)
	assert.Equal(t, Level2Hours, e.Level)
}

func TestClassifyDayAlternation(t *testing.T) {
	flags := BoundaryFlags{StartOfDay: true}
	day := time.Date(2026, 1, 6, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, LevelEvenDay, Classify(flags, day, 4, DefaultFormatters).Level)
	assert.Equal(t, LevelDay, Classify(flags, day, 5, DefaultFormatters).Level)
}

func TestClassifyFallback(t *testing.T) {
	e := Classify(BoundaryFlags{}, time.Now(), 0, DefaultFormatters)
	assert.Equal(t, Entry{Level: LevelMillisecond, Format: MillisecondFormat}, e)

	e = Classify(BoundaryFlags{StartOfMonth: true}, time.Now(), 0, Formatters{})
	assert.Equal(t, Entry{Level: LevelMillisecond, Format: MillisecondFormat}, e)
}

func TestClassifySkipsBlankPatterns(t *testing.T) {
	f := DefaultFormatters
	f.Quarter = ""
	flags := BoundaryFlags{StartOfQuarter: true, StartOfMonth: true, StartOfDay: true}
	e := Classify(flags, time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC), 1, f)
	assert.Equal(t, Entry{Level: LevelMonth, Format: MonthFormat}, e)
}

func TestFormattersMerge(t *testing.T) {
	m := DefaultFormatters.Merge(Formatters{Quarter: "Q%q", Day: "%d"})
	assert.Equal(t, "Q%q", m.Quarter)
	assert.Equal(t, "%d", m.Day)
	assert.Equal(t, DefaultFormatters.Year, m.Year)
	assert.Equal(t, DefaultFormatters.Millisecond, m.Pattern(MillisecondFormat))
}

func TestName(t *testing.T) {
	assert.Equal(t, "quarter", Name(LevelQuarter))
	assert.Equal(t, "30min", Name(Level30Minutes))
	assert.Equal(t, "", Name(MaxLevel+1))
	assert.Equal(t, "week", WeekFormat.String())
}

func TestFormatKeys(t *testing.T) {
	for k := MillisecondFormat; k < NumFormatKeys; k++ {
		parsed, err := ParseFormatKey(k.String())
		assert.NoError(t, err)
		assert.Equal(t, k, parsed)

		f := DefaultFormatters.With(k, "x")
		assert.Equal(t, "x", f.Pattern(k))
	}
	k, err := ParseFormatKey(" Week ")
	assert.NoError(t, err)
	assert.Equal(t, WeekFormat, k)
	_, err = ParseFormatKey("fortnight")
	assert.Error(t, err)
	assert.Equal(t, "%e", DefaultFormatters.With(YearFormat, "%y").Week)
}
