// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"log"
	"time"

	"finscale/candles"
	"finscale/levels"
	"finscale/linscale"
	"finscale/timefmt"

	"github.com/barkimedes/go-deepcopy"
)

type AppConfig struct {
	Axis     AxisConfig
	Calendar CalendarConfig
}

type AxisConfig struct {
	// Use UTC instead of the local time of the records.
	UTC bool `yaml:",omitempty"`
	// IANA time zone name the records are displayed in, ignored if UTC is set.
	Location     string `yaml:",omitempty"`
	InitialIndex int    `yaml:",omitempty"`
	TickCount    int    `yaml:",omitempty"`
	// Only the patterns which differ from the defaults are stored.
	Formatters levels.Formatters `yaml:",omitempty"`
	// nil means en-US.
	Locale *timefmt.Locale `yaml:",omitempty"`
}

type CalendarConfig struct {
	Resolution    candles.CandleResolution
	ExtendedHours bool `yaml:",omitempty"`
}

func NewAppConfig() AppConfig {
	return AppConfig{
		Axis:     NewAxisConfig(),
		Calendar: NewCalendarConfig(),
	}
}

func NewAxisConfig() AxisConfig {
	return AxisConfig{
		TickCount:  linscale.DefaultTickCount,
		Formatters: levels.DefaultFormatters,
	}
}

func NewCalendarConfig() CalendarConfig {
	return CalendarConfig{
		Resolution: candles.CandleThirtyMinutes,
	}
}

// LoadLocation returns the location the records are converted to before
// indexing, nil to keep the location of each record.
func (a AxisConfig) LoadLocation() (*time.Location, error) {
	if a.UTC {
		return time.UTC, nil
	}
	if a.Location == "" {
		return nil, nil
	}
	return time.LoadLocation(a.Location)
}

func (a *AppConfig) deepCopy() AppConfig {
	c, err := deepcopy.Anything(a)
	if err != nil {
		panic(err)
	}
	return *c.(*AppConfig)
}

func (a *AppConfig) Sanitize() {
	a.Axis.sanitize()
	if !a.Calendar.Resolution.IsValid() {
		a.Calendar.Resolution = candles.CandleThirtyMinutes
	}
	a.RestoreDefaults()
}

func (a *AxisConfig) sanitize() {
	if a.TickCount <= 0 {
		a.TickCount = linscale.DefaultTickCount
	}
	if a.Location != "" {
		if _, err := time.LoadLocation(a.Location); err != nil {
			log.Printf("Ignoring invalid time zone \"%s\": %v", a.Location, err)
			a.Location = ""
		}
	}
}

// We do not want to store default values in the configuration file,
// in order to be able to change them in later releases.
func (a *AppConfig) RemoveDefaults() {
	if a.Axis.TickCount == linscale.DefaultTickCount {
		a.Axis.TickCount = 0
	}
	f := &a.Axis.Formatters
	def := levels.DefaultFormatters
	removeDefault(&f.Year, def.Year)
	removeDefault(&f.Quarter, def.Quarter)
	removeDefault(&f.Month, def.Month)
	removeDefault(&f.Week, def.Week)
	removeDefault(&f.Day, def.Day)
	removeDefault(&f.Hour, def.Hour)
	removeDefault(&f.Minute, def.Minute)
	removeDefault(&f.Second, def.Second)
	removeDefault(&f.Millisecond, def.Millisecond)
	if a.Axis.Locale != nil && *a.Axis.Locale == timefmt.EnUS {
		a.Axis.Locale = nil
	}
}

// Restore default values which are not stored in the configuration file.
func (a *AppConfig) RestoreDefaults() {
	if a.Axis.TickCount <= 0 {
		a.Axis.TickCount = linscale.DefaultTickCount
	}
	a.Axis.Formatters = levels.DefaultFormatters.Merge(a.Axis.Formatters)
}

func removeDefault(value *string, def string) {
	if *value == def {
		*value = ""
	}
}
