// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package linscale

import "math"

const DefaultTickCount = 10

// Interpolator returns a function mapping t in [0, 1] onto the interval [a, b].
type Interpolator func(a, b float64) func(t float64) float64

func InterpolateNumber(a, b float64) func(t float64) float64 {
	return func(t float64) float64 {
		return a*(1-t) + b*t
	}
}

func InterpolateRound(a, b float64) func(t float64) float64 {
	return func(t float64) float64 {
		return math.Round(a*(1-t) + b*t)
	}
}

// Continuous is a scale mapping a continuous domain onto a continuous range.
type Continuous interface {
	Apply(x float64) float64
	Invert(y float64) float64
	Domain() (lo, hi float64)
	SetDomain(lo, hi float64)
	Range() (lo, hi float64)
	SetRange(lo, hi float64)
	// SetRangeRound sets the range and switches to rounding interpolation.
	SetRangeRound(lo, hi float64)
	Clamp() bool
	SetClamp(clamp bool)
	Interpolator() Interpolator
	SetInterpolator(i Interpolator)
	// Nice extends the domain so that it starts and ends on round values.
	Nice(count int)
	// Unknown is returned by Apply for NaN input.
	Unknown() float64
	SetUnknown(u float64)
	// Ticks returns round values within the domain, about count of them.
	// A count of zero or less means DefaultTickCount.
	Ticks(count int) []float64
	Copy() Continuous
}

// Linear is the default Continuous implementation.
type Linear struct {
	domain      [2]float64
	rng         [2]float64
	clamp       bool
	interpolate Interpolator
	unknown     float64
}

func NewLinear() *Linear {
	return &Linear{
		domain:      [2]float64{0, 1},
		rng:         [2]float64{0, 1},
		interpolate: InterpolateNumber,
		unknown:     math.NaN(),
	}
}

// normalize returns the relative position of x within [a, b].
func normalize(a, b, x float64) float64 {
	if b == a {
		if math.IsNaN(b) {
			return math.NaN()
		}
		return 0.5
	}
	return (x - a) / (b - a)
}

func clampUnit(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

func (s *Linear) Apply(x float64) float64 {
	if math.IsNaN(x) {
		return s.unknown
	}
	t := normalize(s.domain[0], s.domain[1], x)
	if s.clamp {
		t = clampUnit(t)
	}
	return s.interpolate(s.rng[0], s.rng[1])(t)
}

func (s *Linear) Invert(y float64) float64 {
	t := normalize(s.rng[0], s.rng[1], y)
	if s.clamp {
		t = clampUnit(t)
	}
	return InterpolateNumber(s.domain[0], s.domain[1])(t)
}

func (s *Linear) Domain() (float64, float64) {
	return s.domain[0], s.domain[1]
}

func (s *Linear) SetDomain(lo, hi float64) {
	s.domain = [2]float64{lo, hi}
}

func (s *Linear) Range() (float64, float64) {
	return s.rng[0], s.rng[1]
}

func (s *Linear) SetRange(lo, hi float64) {
	s.rng = [2]float64{lo, hi}
}

func (s *Linear) SetRangeRound(lo, hi float64) {
	s.rng = [2]float64{lo, hi}
	s.interpolate = InterpolateRound
}

func (s *Linear) Clamp() bool {
	return s.clamp
}

func (s *Linear) SetClamp(clamp bool) {
	s.clamp = clamp
}

func (s *Linear) Interpolator() Interpolator {
	return s.interpolate
}

func (s *Linear) SetInterpolator(i Interpolator) {
	if i == nil {
		i = InterpolateNumber
	}
	s.interpolate = i
}

func (s *Linear) Unknown() float64 {
	return s.unknown
}

func (s *Linear) SetUnknown(u float64) {
	s.unknown = u
}

func (s *Linear) Ticks(count int) []float64 {
	if count <= 0 {
		count = DefaultTickCount
	}
	return ticks(s.domain[0], s.domain[1], count)
}

func (s *Linear) Nice(count int) {
	if count <= 0 {
		count = DefaultTickCount
	}
	s.domain[0], s.domain[1] = nice(s.domain[0], s.domain[1], count)
}

func (s *Linear) Copy() Continuous {
	c := *s
	return &c
}
