// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package discindex

import (
	"time"

	"finscale/levels"
	"finscale/timefmt"
)

// Calculator builds the discontinuous index of an ordered record sequence.
type Calculator[T any] struct {
	// DateAccessor extracts the timestamp of a record. It may be called more
	// than once per record and must not have side effects.
	DateAccessor func(T) time.Time
	// InitialIndex is the index of the first record.
	InitialIndex int
	Formatters   levels.Formatters
	// Registry provides the formatters, the default en-US registry if nil.
	Registry *timefmt.Registry
	// Location, if set, is applied to every extracted time before its
	// calendar components are read.
	Location *time.Location
}

// Date returns the timestamp of a record as the calculator sees it.
func (c *Calculator[T]) Date(d T) time.Time {
	t := c.DateAccessor(d)
	if c.Location != nil {
		t = t.In(c.Location)
	}
	return t
}

// Calculate returns one entry per record. Records are expected in ascending
// time order; the result is dense regardless of gaps between the records.
func (c *Calculator[T]) Calculate(data []T) []Index {
	registry := c.Registry
	if registry == nil {
		registry = timefmt.DefaultRegistry()
	}
	index := make([]Index, len(data))
	var prev time.Time
	for i, d := range data {
		cur := c.Date(d)
		var flags levels.BoundaryFlags
		if i == 0 {
			flags = FirstFlags(cur)
		} else {
			flags = Flags(prev, cur)
		}
		entry := levels.Classify(flags, cur, i, c.Formatters)
		index[i] = Index{
			Index:  c.InitialIndex + i,
			Level:  entry.Level,
			Date:   time.UnixMilli(flags.Date).In(cur.Location()),
			Format: registry.Formatter(c.Formatters.Pattern(entry.Format)),
		}
		prev = cur
	}
	return index
}
