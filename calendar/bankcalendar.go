// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

const observedHolidayPostfix = "(observed)"

// BankCalendar knows the trading days and hours of an exchange.
// The gaps between its sessions are what a discontinuous index removes.
type BankCalendar struct {
	location   *time.Location
	calendar   *cal.BusinessCalendar
	open       clock
	close      clock
	earlyClose clock
	preMarket  time.Duration
	afterHours time.Duration
	// Holidays with an early close on the trading day before.
	earlyCloseBefore []*cal.Holiday
	// Holidays with an early close on the trading day after.
	earlyCloseAfter []*cal.Holiday
}

// Holiday is a day without trading.
type Holiday struct {
	Date     time.Time
	Name     string
	Observed bool
}

type clock struct {
	hours   int
	minutes int
}

func (c clock) on(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, c.hours, c.minutes, 0, 0, day.Location())
}

func NewUSBankCalendar() BankCalendar {
	// NYSE uses ET, which can be either EST or EDT.
	// Luckily, changing to/from daylight saving time does not occur during market hours.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic("NYSE time location not supported")
	}
	c := cal.NewBusinessCalendar()
	// Source for bank holidays: https://www.federalreserve.gov/aboutthefed/k8.htm
	c.AddHoliday(
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ColumbusDay,
		us.VeteransDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	)
	c.Cacheable = true
	return BankCalendar{
		calendar:         c,
		location:         loc,
		open:             clock{hours: 9, minutes: 30},
		close:            clock{hours: 16},
		earlyClose:       clock{hours: 13},
		preMarket:        time.Hour*5 + time.Minute*30,
		afterHours:       time.Hour * 4,
		earlyCloseBefore: []*cal.Holiday{us.IndependenceDay, us.ChristmasDay},
		earlyCloseAfter:  []*cal.Holiday{us.ThanksgivingDay},
	}
}

func (b BankCalendar) IsBankHoliday(t time.Time) (bool, string) {
	actual, observed, h := b.calendar.IsHoliday(t.In(b.location))
	if !actual && !observed {
		return false, ""
	} else if !actual {
		return true, h.Name + " " + observedHolidayPostfix
	} else {
		return true, h.Name
	}
}

// Holidays returns the bank holidays within [from, to), observed days included.
func (b BankCalendar) Holidays(from, to time.Time) []Holiday {
	var holidays []Holiday
	first := from.In(b.location)
	for day := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, b.location); day.Before(to); day = day.AddDate(0, 0, 1) {
		actual, observed, h := b.calendar.IsHoliday(day)
		if !actual && !observed {
			continue
		}
		holidays = append(holidays, Holiday{Date: day, Name: h.Name, Observed: !actual})
	}
	return holidays
}

func isOneOf(name string, holidays []*cal.Holiday) bool {
	for _, h := range holidays {
		if h.Name == name {
			return true
		}
	}
	return false
}

func (b BankCalendar) IsTradingDay(t time.Time) (trading bool, partial bool) {
	day := t.In(b.location)
	trading = b.calendar.IsWorkday(day)
	if !trading {
		return
	}
	if holiday, name := b.IsBankHoliday(day.AddDate(0, 0, 1)); holiday && isOneOf(name, b.earlyCloseBefore) {
		partial = true
	} else if holiday, name := b.IsBankHoliday(day.AddDate(0, 0, -1)); holiday && isOneOf(name, b.earlyCloseAfter) {
		partial = true
	}
	return
}

func (b BankCalendar) GetTradingHours(t time.Time) (trading, partial bool, h TradingHours) {
	day := t.In(b.location)
	trading, partial = b.IsTradingDay(day)
	if !trading {
		return
	}
	h.Open = b.open.on(day)
	if partial {
		h.Close = b.earlyClose.on(day)
	} else {
		h.Close = b.close.on(day)
	}
	h.PreOpen = h.Open.Add(-b.preMarket)
	h.ExtClose = h.Close.Add(b.afterHours)
	return
}

// NextTradingDay returns midnight of the first trading day after t.
func (b BankCalendar) NextTradingDay(t time.Time) time.Time {
	day := t.In(b.location)
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, b.location)
	for {
		day = day.AddDate(0, 0, 1)
		if trading, _ := b.IsTradingDay(day); trading {
			return day
		}
	}
}
