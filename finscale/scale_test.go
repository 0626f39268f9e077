// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package finscale

import (
	"fmt"
	"math"
	"testing"
	"time"

	"finscale/discindex"
	"finscale/linscale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// makeIndex creates an index starting at initial with one entry per level.
func makeIndex(initial int, lv ...int) []discindex.Index {
	index := make([]discindex.Index, len(lv))
	for i, l := range lv {
		l := l
		index[i] = discindex.Index{
			Index: initial + i,
			Level: l,
			Date:  day0.AddDate(0, 0, i),
			Format: func(t time.Time) string {
				return fmt.Sprintf("L%d %s", l, t.Format("Jan 2"))
			},
		}
	}
	return index
}

func newScale(t *testing.T, index []discindex.Index) *Scale {
	s, err := New(index)
	require.NoError(t, err)
	return s
}

// fixedTicks is a linear scale with predefined ticks.
type fixedTicks struct {
	*linscale.Linear
	ticks []float64
}

func (f *fixedTicks) Ticks(int) []float64 {
	return f.ticks
}

func (f *fixedTicks) Copy() linscale.Continuous {
	return &fixedTicks{Linear: f.Linear.Copy().(*linscale.Linear), ticks: f.ticks}
}

func TestNewWithoutIndex(t *testing.T) {
	s, err := New(nil)
	assert.ErrorIs(t, err, ErrNoIndex)
	assert.Nil(t, s)
}

func TestEmptyIndex(t *testing.T) {
	s := newScale(t, []discindex.Index{})
	assert.Empty(t, s.Ticks(10))
	_, ok := s.Value(0)
	assert.False(t, ok)
	assert.Equal(t, "", s.TickFormat()(0))
	assert.Empty(t, s.Labels(10))
}

func TestApplyInvert(t *testing.T) {
	s := newScale(t, makeIndex(0, 2, 0, 0)).SetDomain(0, 2).SetRange(0, 100)
	assert.Equal(t, 50.0, s.Apply(1))
	assert.Equal(t, 1.0, s.Invert(50))

	s.SetDomain(0, 3).SetRange(0, 1)
	assert.Equal(t, 0.3, s.Invert(0.1))
}

func TestRoundTrip(t *testing.T) {
	const n = 250
	s := newScale(t, makeIndex(0, make([]int, n)...)).SetDomain(0, n).SetRange(0, 913)
	for x := 0.0; x <= n; x += 0.37 {
		assert.InDelta(t, x, s.Invert(s.Apply(x)), 1e-4)
	}
}

func TestChaining(t *testing.T) {
	s := newScale(t, makeIndex(0, 2, 0, 0))
	assert.Same(t, s, s.SetDomain(0, 1).SetRange(0, 10).SetClamp(true).Nice(0).SetUnknown(-1))
	assert.True(t, s.Clamp())
	assert.Equal(t, -1.0, s.Unknown())
	assert.Equal(t, 10.0, s.Apply(5))
	assert.Equal(t, -1.0, s.Apply(math.NaN()))

	s.SetRangeRound(0, 10).SetDomain(0, 3)
	assert.Equal(t, 3.0, s.Apply(1))
	s.SetInterpolator(linscale.InterpolateNumber)
	assert.InDelta(t, 10.0/3, s.Apply(1), 1e-12)
	assert.NotNil(t, s.Interpolator())
}

func TestCopy(t *testing.T) {
	s := newScale(t, makeIndex(0, 2, 0, 0)).SetDomain(0, 10).SetRange(0, 100)
	c := s.Copy()
	lo, hi := c.Domain()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 10.0, hi)

	c.SetDomain(0, 5)
	_, hi = s.Domain()
	assert.Equal(t, 10.0, hi)
	assert.Same(t, &s.Index()[0], &c.Index()[0])
}

func TestValueAndTickFormat(t *testing.T) {
	s := newScale(t, makeIndex(0, 2, 0, 0))
	d, ok := s.Value(2)
	assert.True(t, ok)
	assert.True(t, d.Equal(day0.AddDate(0, 0, 2)))

	f := s.TickFormat()
	assert.Equal(t, "L2 Jan 1", f(0))
	assert.Equal(t, "L0 Jan 2", f(1.9))
	assert.Equal(t, f(1), f(1))
	assert.Equal(t, "", f(3))
	assert.Equal(t, "", f(-0.5))

	_, ok = s.Value(math.NaN())
	assert.False(t, ok)
}

func TestValueOffset(t *testing.T) {
	s := newScale(t, makeIndex(-2, 2, 0, 0, 1))
	d, ok := s.Value(-2)
	assert.True(t, ok)
	assert.True(t, d.Equal(day0))
	d, ok = s.Value(0.7)
	assert.True(t, ok)
	assert.True(t, d.Equal(day0.AddDate(0, 0, 2)))
	_, ok = s.Value(2)
	assert.False(t, ok)
	_, ok = s.Value(-3)
	assert.False(t, ok)

	s.SetIndex(makeIndex(5, 2, 0))
	d, ok = s.Value(5)
	assert.True(t, ok)
	assert.True(t, d.Equal(day0))
	_, ok = s.Value(0)
	assert.False(t, ok)
	level, ok := s.Level(6)
	assert.True(t, ok)
	assert.Equal(t, 0, level)
}

func TestSetIndex(t *testing.T) {
	index := makeIndex(0, 2, 0, 0)
	s := newScale(t, index)
	s.SetIndex(nil)
	assert.Len(t, s.Index(), 3)

	other := makeIndex(0, 1)
	s.SetIndex(other)
	assert.Len(t, s.Index(), 1)
	assert.Equal(t, "L1 Jan 1", s.TickFormat()(0))
}

func TestTicksPreferSignificantLevel(t *testing.T) {
	lv := make([]int, 10)
	lv[0] = 2
	s := newScale(t, makeIndex(0, lv...)).SetDomain(-0.1, 10.1).SetRange(0, 1)
	ticks := s.Ticks(5)
	assert.Contains(t, ticks, 0)
	assert.NotContains(t, ticks, 1)
}

func TestTicksLowDensity(t *testing.T) {
	s := newScale(t, makeIndex(0, 2, 0, 0)).SetDomain(0, 1).SetRange(0, 100)
	assert.Equal(t, []int{0, 1}, s.Ticks(2))
}

func TestTicksThinning(t *testing.T) {
	backing := &fixedTicks{Linear: linscale.NewLinear(), ticks: []float64{0, 2.5, 5}}
	s, err := NewWithBacking(makeIndex(0, 2, 0, 2, 0, 2), backing)
	require.NoError(t, err)
	s.SetDomain(-0.5, 6)
	assert.Equal(t, []int{0, 2, 4}, s.Ticks(3))
}

func TestTicksThinningDeletesEarlier(t *testing.T) {
	s := newScale(t, makeIndex(0, 1, 2, 0, 0)).SetDomain(0, 3)
	assert.Equal(t, []int{1}, s.Ticks(2))
}

func TestTicksEmptyBacking(t *testing.T) {
	backing := &fixedTicks{Linear: linscale.NewLinear()}
	s, err := NewWithBacking(makeIndex(0, 2, 0, 0), backing)
	require.NoError(t, err)
	s.SetDomain(-1, 1).SetRange(0, 100)
	assert.Empty(t, s.Ticks(10))
}

func TestTicksDefaultCount(t *testing.T) {
	lv := make([]int, 30)
	for i := 0; i < len(lv); i += 5 {
		lv[i] = 1
	}
	s := newScale(t, makeIndex(0, lv...)).SetDomain(0, 29)
	// Ten linear ticks every 2 give room for every fifth entry.
	assert.Equal(t, []int{0, 5, 10, 15, 20, 25}, s.Ticks(0))
	assert.Equal(t, s.Ticks(linscale.DefaultTickCount), s.Ticks(0))
	// Three linear ticks every 10 leave no room for them.
	assert.Empty(t, s.Ticks(3))
}

func TestTicksOutsideIndex(t *testing.T) {
	s := newScale(t, makeIndex(0, 2, 0, 0)).SetDomain(10, 20)
	assert.Empty(t, s.Ticks(10))
	s.SetDomain(-20, -10)
	assert.Empty(t, s.Ticks(10))
}

func TestTicksKeepSignificant(t *testing.T) {
	// Tens are level 2, other multiples of five are level 1, everything else 0.
	const n = 100
	lv := make([]int, n)
	for i := range lv {
		switch {
		case i%10 == 0:
			lv[i] = 2
		case i%5 == 0:
			lv[i] = 1
		}
	}
	hint := make([]float64, 20)
	for i := range hint {
		hint[i] = float64(i) * 400 / 19
	}
	backing := &fixedTicks{Linear: linscale.NewLinear(), ticks: hint}
	s, err := NewWithBacking(makeIndex(0, lv...), backing)
	require.NoError(t, err)
	s.SetDomain(0, n-1).SetRange(0, 800)

	ticks := s.Ticks(20)
	assert.Equal(t, []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90}, ticks)

	labels := s.Labels(20)
	require.Len(t, labels, len(ticks))
	assert.Equal(t, 10, labels[1].Index)
	assert.Equal(t, 2, labels[1].Level)
	assert.Equal(t, "L2 Jan 11", labels[1].Label)
	assert.InDelta(t, 10*800.0/99, labels[1].X, 1e-9)
}

func TestTicksOffsetIndex(t *testing.T) {
	lv := make([]int, 10)
	lv[0] = 2
	s := newScale(t, makeIndex(-5, lv...)).SetDomain(-5.1, 5.1).SetRange(0, 1)
	ticks := s.Ticks(5)
	assert.Contains(t, ticks, -5)
	assert.NotContains(t, ticks, -4)
	for _, x := range ticks {
		_, ok := s.Value(float64(x))
		assert.True(t, ok)
	}
}

func TestTicksSorted(t *testing.T) {
	lv := []int{0, 5, 1, 9, 0, 3, 12, 0, 0, 4, 22, 7}
	s := newScale(t, makeIndex(0, lv...)).SetDomain(0, float64(len(lv)-1))
	ticks := s.Ticks(10)
	for i := 1; i < len(ticks); i++ {
		assert.Less(t, ticks[i-1], ticks[i])
	}
}
