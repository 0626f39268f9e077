// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package finscale

import (
	"errors"
	"fmt"
	"math"
	"time"

	"finscale/discindex"
	"finscale/linscale"
)

var ErrNoIndex = errors.New("scale requires an index, use the provider to create one")

// Scale maps the discontinuous index onto pixels. Domain and range are in
// index space, gaps in time (weekends, holidays, nights) take no space.
// A Scale must not be modified concurrently, use Copy to hand out instances.
type Scale struct {
	index   []discindex.Index
	backing linscale.Continuous
}

func New(index []discindex.Index) (*Scale, error) {
	return NewWithBacking(index, linscale.NewLinear())
}

// NewWithBacking creates a scale on top of the given linear scale, which is
// owned by the new scale afterwards.
func NewWithBacking(index []discindex.Index, backing linscale.Continuous) (*Scale, error) {
	if index == nil {
		return nil, ErrNoIndex
	}
	if backing == nil {
		backing = linscale.NewLinear()
	}
	return &Scale{index: index, backing: backing}, nil
}

func (s *Scale) Apply(x float64) float64 {
	return s.backing.Apply(x)
}

// Invert maps a pixel back to index space. The result is rounded to 4
// decimals, repeated pan and zoom would otherwise accumulate jitter.
func (s *Scale) Invert(px float64) float64 {
	return math.Round(s.backing.Invert(px)*10000) / 10000
}

func (s *Scale) Domain() (lo, hi float64) {
	return s.backing.Domain()
}

func (s *Scale) SetDomain(lo, hi float64) *Scale {
	s.backing.SetDomain(lo, hi)
	return s
}

func (s *Scale) Range() (lo, hi float64) {
	return s.backing.Range()
}

func (s *Scale) SetRange(lo, hi float64) *Scale {
	s.backing.SetRange(lo, hi)
	return s
}

func (s *Scale) SetRangeRound(lo, hi float64) *Scale {
	s.backing.SetRangeRound(lo, hi)
	return s
}

func (s *Scale) Clamp() bool {
	return s.backing.Clamp()
}

func (s *Scale) SetClamp(clamp bool) *Scale {
	s.backing.SetClamp(clamp)
	return s
}

func (s *Scale) Interpolator() linscale.Interpolator {
	return s.backing.Interpolator()
}

func (s *Scale) SetInterpolator(i linscale.Interpolator) *Scale {
	s.backing.SetInterpolator(i)
	return s
}

func (s *Scale) Nice(count int) *Scale {
	s.backing.Nice(count)
	return s
}

func (s *Scale) Unknown() float64 {
	return s.backing.Unknown()
}

func (s *Scale) SetUnknown(u float64) *Scale {
	s.backing.SetUnknown(u)
	return s
}

func (s *Scale) Index() []discindex.Index {
	return s.index
}

// SetIndex replaces the index. A nil index is ignored.
func (s *Scale) SetIndex(index []discindex.Index) *Scale {
	if index != nil {
		s.index = index
	}
	return s
}

// Copy returns a scale sharing the index, but with its own linear scale.
func (s *Scale) Copy() *Scale {
	return &Scale{index: s.index, backing: s.backing.Copy()}
}

// lookup returns the entry of index value x. x is floored and re-based onto
// the first entry, so offset indexes resolve to the right position.
func (s *Scale) lookup(x float64) (*discindex.Index, bool) {
	if len(s.index) == 0 || math.IsNaN(x) {
		return nil, false
	}
	pos := math.Floor(x) - float64(s.index[0].Index)
	if pos < 0 || pos >= float64(len(s.index)) {
		return nil, false
	}
	return &s.index[int(pos)], true
}

// Value returns the date at index value x.
func (s *Scale) Value(x float64) (time.Time, bool) {
	e, ok := s.lookup(x)
	if !ok {
		return time.Time{}, false
	}
	return e.Date, true
}

// TickFormat returns a function labelling index values with the format of
// their entry. Values outside of the index are labelled "".
func (s *Scale) TickFormat() func(x float64) string {
	return func(x float64) string {
		e, ok := s.lookup(x)
		if !ok {
			return ""
		}
		return e.Label()
	}
}

// Level returns the level of the entry at index value x.
func (s *Scale) Level(x float64) (int, bool) {
	e, ok := s.lookup(x)
	if !ok {
		return 0, false
	}
	return e.Level, true
}

// Tick is a tick ready for rendering.
type Tick struct {
	Index int
	X     float64
	Date  time.Time
	Level int
	Label string
}

// Labels returns the ticks for count together with their position and label.
func (s *Scale) Labels(count int) []Tick {
	ticks := s.Ticks(count)
	labels := make([]Tick, 0, len(ticks))
	for _, t := range ticks {
		e, ok := s.lookup(float64(t))
		if !ok {
			continue
		}
		labels = append(labels, Tick{
			Index: t,
			X:     s.Apply(float64(t)),
			Date:  e.Date,
			Level: e.Level,
			Label: e.Label(),
		})
	}
	return labels
}

func (s *Scale) String() string {
	lo, hi := s.Domain()
	rlo, rhi := s.Range()
	return fmt.Sprintf("finscale [%g,%g] => [%g,%g], %d entries", lo, hi, rlo, rhi, len(s.index))
}
