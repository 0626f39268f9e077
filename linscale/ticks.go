// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package linscale

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// Tick levels run through the spacings 1, 2, 5, 10, 20, 50, ... where level 0
// is a spacing of 1. Negative levels are spacings below 1.
var stepMultipliers = [3]float64{1, 2, 5}

// step is the tick spacing of a level. Spacings below 1 are kept as their
// inverse to avoid accumulating rounding errors, i.e. 0.1 is stored as inc 10.
type step struct {
	size float64
	inc  float64
}

func stepAt(level int) step {
	exp := level / 3
	m := level % 3
	if m < 0 {
		m += 3
		exp--
	}
	mult := stepMultipliers[m]
	if exp >= 0 {
		return step{size: mult * math.Pow(10, float64(exp))}
	}
	return step{inc: math.Pow(10, float64(-exp)) / mult}
}

func (s step) ordinal(x float64) float64 {
	if s.inc > 0 {
		return x * s.inc
	}
	return x / s.size
}

func (s step) value(i float64) float64 {
	if s.inc > 0 {
		return i / s.inc
	}
	return i * s.size
}

// bounds returns the first and last ordinal of the ticks within [lo, hi].
func (s step) bounds(lo, hi float64) (float64, float64) {
	i0 := math.Round(s.ordinal(lo))
	if s.value(i0) < lo {
		i0++
	}
	i1 := math.Round(s.ordinal(hi))
	if s.value(i1) > hi {
		i1--
	}
	return i0, i1
}

// Above this many ticks a level is rejected without materializing it.
const maxTickCount = 1 << 24

func tickCount(lo, hi float64, level int) int {
	i0, i1 := stepAt(level).bounds(lo, hi)
	n := i1 - i0 + 1
	switch {
	case math.IsNaN(n), n > maxTickCount:
		return maxTickCount + 1
	case n < 0:
		return 0
	}
	return int(n)
}

func ticksAt(lo, hi float64, level int) []float64 {
	s := stepAt(level)
	i0, i1 := s.bounds(lo, hi)
	if i1 < i0 || i1-i0+1 > maxTickCount {
		return nil
	}
	t := make([]float64, 0, int(i1-i0)+1)
	for i := i0; i <= i1; i++ {
		v := s.value(i)
		if v == 0 {
			// no negative zero
			v = 0
		}
		t = append(t, v)
	}
	return t
}

// ticker enumerates the tick levels of the interval [lo, hi].
type ticker struct {
	lo, hi float64
}

func (t ticker) CountTicks(level int) int {
	return tickCount(t.lo, t.hi, level)
}

func (t ticker) TicksAtLevel(level int) interface{} {
	return ticksAt(t.lo, t.hi, level)
}

func finite(v ...float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Thresholds between the spacings 1, 2, 5 and 10 of a decade.
var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// stepLevel returns the level whose spacing is closest to (hi-lo)/count.
func stepLevel(lo, hi float64, count int) (int, bool) {
	step := (hi - lo) / float64(count)
	if !finite(step) || step <= 0 {
		return 0, false
	}
	power := int(math.Floor(math.Log10(step)))
	e := step / math.Pow(10, float64(power))
	switch {
	case e >= e10:
		return 3 * (power + 1), true
	case e >= e5:
		return 3*power + 2, true
	case e >= e2:
		return 3*power + 1, true
	}
	return 3 * power, true
}

// A level this far above the closest spacing always fits the tick limit.
const maxLevelSteps = 60

// findLevel returns the level of the ticks for count ticks in [lo, hi],
// coarsened if that level has more than maxTickCount ticks.
// lo must be below hi.
func findLevel(t ticker, count int) (int, bool) {
	level, ok := stepLevel(t.lo, t.hi, count)
	if !ok {
		return 0, false
	}
	o := scale.TickOptions{Max: maxTickCount, MinLevel: level, MaxLevel: level + maxLevelSteps}
	return o.FindLevel(t, level)
}

// ticks returns round values within the domain, in domain order. The
// spacing is the multiple 1, 2 or 5 of a power of ten closest to the domain
// extent divided by count, so the result may exceed count.
func ticks(lo, hi float64, count int) []float64 {
	if count <= 0 || !finite(lo, hi) {
		return nil
	}
	if lo == hi {
		return []float64{lo}
	}
	reverse := lo > hi
	if reverse {
		lo, hi = hi, lo
	}
	tk := ticker{lo, hi}
	level, ok := findLevel(tk, count)
	if ok && count == 1 && tk.CountTicks(level) == 0 {
		// A single tick may need the spacing for two.
		level, ok = findLevel(tk, 2)
	}
	if !ok {
		return nil
	}
	t := tk.TicksAtLevel(level).([]float64)
	if reverse {
		for i, j := 0, len(t)-1; i < j; i, j = i+1, j-1 {
			t[i], t[j] = t[j], t[i]
		}
	}
	return t
}

// nice extends [lo, hi] to multiples of the tick spacing for count ticks.
// Extending may coarsen the spacing, so this is repeated until it is stable.
func nice(lo, hi float64, count int) (float64, float64) {
	if !finite(lo, hi) || lo == hi {
		return lo, hi
	}
	reverse := lo > hi
	if reverse {
		lo, hi = hi, lo
	}
	for i := 0; i < 10; i++ {
		level, ok := findLevel(ticker{lo, hi}, count)
		if !ok {
			break
		}
		s := stepAt(level)
		nlo := s.value(math.Floor(s.ordinal(lo)))
		nhi := s.value(math.Ceil(s.ordinal(hi)))
		if nlo == lo && nhi == hi {
			break
		}
		lo, hi = nlo, nhi
	}
	if reverse {
		return hi, lo
	}
	return lo, hi
}
