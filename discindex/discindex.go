// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package discindex

import (
	"time"

	"finscale/levels"
	"finscale/timefmt"
)

// Index maps one record onto the dense integer axis.
// Entries are never modified after they have been built, so slices of them
// may be shared between scales.
type Index struct {
	Index  int
	Level  int
	Date   time.Time
	Format timefmt.Formatter
}

// Label formats the date of the entry.
func (i Index) Label() string {
	if i.Format == nil {
		return ""
	}
	return i.Format(i.Date)
}

// FirstFlags returns the flags of a record without predecessor.
// The first record is always treated as start of day, regardless of where it
// actually sits in the calendar.
func FirstFlags(t time.Time) levels.BoundaryFlags {
	return levels.BoundaryFlags{
		Date:       t.UnixMilli(),
		StartOfDay: true,
	}
}

// Flags compares the calendar components of cur and its predecessor prev.
// Components are read in the location of each time.
func Flags(prev, cur time.Time) levels.BoundaryFlags {
	curSecond, prevSecond := cur.Second(), prev.Second()
	curMinute, prevMinute := cur.Minute(), prev.Minute()
	curHour := cur.Hour()
	curDay, prevDay := int(cur.Weekday()), int(prev.Weekday())
	// Zero based months, quarters start at 0, 3, 6 and 9.
	curMonth, prevMonth := int(cur.Month())-1, int(prev.Month())-1

	f := levels.BoundaryFlags{Date: cur.UnixMilli()}

	f.StartOfSecond = curSecond != prevSecond
	f.StartOf5Seconds = f.StartOfSecond && curSecond%5 <= prevSecond%5
	f.StartOf15Seconds = f.StartOfSecond && curSecond%15 <= prevSecond%15
	f.StartOf30Seconds = f.StartOfSecond && curSecond%30 <= prevSecond%30

	f.StartOfMinute = curMinute != prevMinute
	f.StartOf5Minutes = f.StartOfMinute && curMinute%5 <= prevMinute%5
	f.StartOf15Minutes = f.StartOfMinute && curMinute%15 <= prevMinute%15
	f.StartOf30Minutes = f.StartOfMinute && curMinute%30 <= prevMinute%30

	f.StartOfHour = curHour != prev.Hour()
	f.StartOfEighthOfADay = f.StartOfHour && curHour%3 == 0
	f.StartOfQuarterDay = f.StartOfHour && curHour%6 == 0
	f.StartOfHalfDay = f.StartOfHour && curHour%12 == 0

	f.StartOfDay = curDay != prevDay
	// Sunday = 0 ... Saturday = 6, so the week starts whenever the weekday goes back.
	f.StartOfWeek = curDay < prevDay
	f.StartOfMonth = curMonth != prevMonth
	f.StartOfQuarter = f.StartOfMonth && curMonth%3 <= prevMonth%3
	f.StartOfYear = cur.Year() != prev.Year()
	return f
}
