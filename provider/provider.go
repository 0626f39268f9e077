// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package provider

import (
	"fmt"
	"log"
	"time"

	"finscale/config"
	"finscale/discindex"
	"finscale/finscale"
	"finscale/levels"
	"finscale/timefmt"
)

// Timestamped records carry the start time of their period.
type Timestamped interface {
	Time() time.Time
}

// Indexed is the default augmented record, a record paired with its index
// entry.
type Indexed[T any] struct {
	Record T
	Idx    *discindex.Index
}

// Provider prepares records of type T for display on an index-backed scale.
// D is the augmented record type which carries the index entry.
// Providers are immutable, every With method returns a modified copy.
type Provider[T, D any] struct {
	initialIndex  int
	dateAccessor  func(T) time.Time
	indexAccessor func(D) *discindex.Index
	indexMutator  func(T, *discindex.Index) D
	index         []discindex.Index
	location      *time.Location
	locale        *timefmt.Locale
	formatters    levels.Formatters
	registry      *timefmt.Registry
	logger        *log.Logger
}

// Result is what Build returns.
type Result[T, D any] struct {
	Data   []D
	XScale *finscale.Scale
	// XAccessor returns the index of an augmented record, false if it has none.
	XAccessor func(D) (int, bool)
	// DisplayXAccessor returns the time of a record as it is shown.
	DisplayXAccessor func(T) time.Time
}

// New returns a provider for records with a Time method.
func New[T Timestamped]() *Provider[T, Indexed[T]] {
	return NewCustom(
		func(d T) time.Time { return d.Time() },
		func(d T, idx *discindex.Index) Indexed[T] { return Indexed[T]{Record: d, Idx: idx} },
		func(d Indexed[T]) *discindex.Index { return d.Idx },
	)
}

// NewCustom returns a provider with custom accessors.
func NewCustom[T, D any](
	dateAccessor func(T) time.Time,
	indexMutator func(T, *discindex.Index) D,
	indexAccessor func(D) *discindex.Index,
) *Provider[T, D] {
	return &Provider[T, D]{
		dateAccessor:  dateAccessor,
		indexMutator:  indexMutator,
		indexAccessor: indexAccessor,
		formatters:    levels.DefaultFormatters,
		registry:      timefmt.DefaultRegistry(),
		logger:        log.Default(),
	}
}

// FromConfig returns a provider for records with a Time method, set up
// according to the axis configuration.
func FromConfig[T Timestamped](c config.AxisConfig) (*Provider[T, Indexed[T]], error) {
	return New[T]().WithConfig(c)
}

func (p *Provider[T, D]) clone() *Provider[T, D] {
	c := *p
	return &c
}

func (p *Provider[T, D]) WithInitialIndex(i int) *Provider[T, D] {
	c := p.clone()
	c.initialIndex = i
	return c
}

func (p *Provider[T, D]) WithInputDateAccessor(f func(T) time.Time) *Provider[T, D] {
	c := p.clone()
	c.dateAccessor = f
	return c
}

func (p *Provider[T, D]) WithIndexAccessor(f func(D) *discindex.Index) *Provider[T, D] {
	c := p.clone()
	c.indexAccessor = f
	return c
}

func (p *Provider[T, D]) WithIndexMutator(f func(T, *discindex.Index) D) *Provider[T, D] {
	c := p.clone()
	c.indexMutator = f
	return c
}

// WithIndex makes Build use a precomputed index instead of calculating one.
func (p *Provider[T, D]) WithIndex(index []discindex.Index) *Provider[T, D] {
	c := p.clone()
	c.index = index
	return c
}

// UTC makes the provider read the calendar components of all dates in UTC.
func (p *Provider[T, D]) UTC() *Provider[T, D] {
	return p.In(time.UTC)
}

// In makes the provider read the calendar components of all dates in loc.
// A nil location keeps the location of each date.
func (p *Provider[T, D]) In(loc *time.Location) *Provider[T, D] {
	c := p.clone()
	c.location = loc
	return c
}

// WithLocale sets the locale and overrides any subset of the current
// formatters. A nil argument leaves the corresponding setting unchanged.
func (p *Provider[T, D]) WithLocale(l *timefmt.Locale, f *levels.Formatters) *Provider[T, D] {
	c := p.clone()
	if l != nil {
		c.locale = l
		c.registry = timefmt.NewRegistry(*l)
	}
	if f != nil {
		c.formatters = c.formatters.Merge(*f)
	}
	return c
}

// WithFormatters replaces the whole formatter table. Levels whose pattern is
// empty are never assigned, their records fall through to finer levels.
func (p *Provider[T, D]) WithFormatters(f levels.Formatters) *Provider[T, D] {
	c := p.clone()
	c.formatters = f
	return c
}

// WithLogger sets the logger for data anomalies.
func (p *Provider[T, D]) WithLogger(l *log.Logger) *Provider[T, D] {
	c := p.clone()
	c.logger = l
	return c
}

// WithConfig applies an axis configuration.
func (p *Provider[T, D]) WithConfig(a config.AxisConfig) (*Provider[T, D], error) {
	loc, err := a.LoadLocation()
	if err != nil {
		return nil, fmt.Errorf("invalid axis time zone: %v", err)
	}
	return p.WithInitialIndex(a.InitialIndex).In(loc).WithLocale(a.Locale, &a.Formatters), nil
}

func (p *Provider[T, D]) InitialIndex() int { return p.initialIndex }
func (p *Provider[T, D]) InputDateAccessor() func(T) time.Time { return p.dateAccessor }
func (p *Provider[T, D]) IndexAccessor() func(D) *discindex.Index { return p.indexAccessor }
func (p *Provider[T, D]) IndexMutator() func(T, *discindex.Index) D { return p.indexMutator }
func (p *Provider[T, D]) Index() []discindex.Index { return p.index }
func (p *Provider[T, D]) Location() *time.Location { return p.location }
func (p *Provider[T, D]) Locale() *timefmt.Locale { return p.locale }
func (p *Provider[T, D]) Formatters() levels.Formatters { return p.formatters }

func (p *Provider[T, D]) calculator() *discindex.Calculator[T] {
	return &discindex.Calculator[T]{
		DateAccessor: p.dateAccessor,
		InitialIndex: p.initialIndex,
		Formatters:   p.formatters,
		Registry:     p.registry,
		Location:     p.location,
	}
}

// IndexCalculator returns the function Build uses to calculate the index.
func (p *Provider[T, D]) IndexCalculator() func([]T) []discindex.Index {
	return p.calculator().Calculate
}

// Build indexes the records and returns them together with a scale over the
// index. Records are expected in ascending time order.
func (p *Provider[T, D]) Build(data []T) Result[T, D] {
	calc := p.calculator()
	index := p.index
	if index == nil {
		index = calc.Calculate(data)
	}
	n := len(data)
	if len(index) != n {
		p.logger.Printf("Index length %d does not match data length %d, using the shorter one.", len(index), len(data))
		n = min(n, len(index))
	}
	out := make([]D, n)
	for i := 0; i < n; i++ {
		out[i] = p.indexMutator(data[i], &index[i])
	}
	xScale, err := finscale.New(index)
	if err != nil {
		// The index is never nil here.
		panic(err)
	}
	indexAccessor := p.indexAccessor
	return Result[T, D]{
		Data:   out,
		XScale: xScale,
		XAccessor: func(d D) (int, bool) {
			idx := indexAccessor(d)
			if idx == nil {
				return 0, false
			}
			return idx.Index, true
		},
		DisplayXAccessor: calc.Date,
	}
}
