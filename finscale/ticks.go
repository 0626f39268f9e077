// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package finscale

import (
	"math"

	"finscale/levels"

	"golang.org/x/exp/slices"
)

// Ticks returns the index values to label for roughly count ticks.
//
// The linear ticks of the backing scale only provide a hint for the number
// of ticks. Ticks are selected from the most significant level downwards,
// as long as the selection stays below 1.5 times the hint scaled to the
// visible part of the index. Afterwards ticks closer than a minimum distance
// are thinned out, keeping the more significant of each pair. Thinning is a
// single pass over all pairs, three or more ticks close to each other may
// not be fully resolved.
func (s *Scale) Ticks(count int) []int {
	backingTicks := s.backing.Ticks(count)
	if len(s.index) == 0 {
		return []int{}
	}
	domainStart, domainEnd := s.backing.Domain()
	if domainStart > domainEnd {
		domainStart, domainEnd = domainEnd, domainStart
	}
	first := float64(s.index[0].Index)
	last := float64(s.index[len(s.index)-1].Index)

	// Visible bounds as positions in the index.
	startPos := math.Max(math.Ceil(domainStart), first) - first
	endPos := math.Min(math.Floor(domainEnd), last) - first
	if math.IsNaN(startPos) || math.IsNaN(endPos) || endPos < startPos {
		return []int{}
	}
	start, end := int(startPos), int(endPos)

	desiredTickCount := math.Ceil((endPos - startPos) / (domainEnd - domainStart) * float64(len(backingTicks)))

	buckets := make([][]int, levels.MaxLevel+1)
	for p := start; p <= end; p++ {
		e := &s.index[p]
		if e.Level < 0 || e.Level > levels.MaxLevel {
			continue
		}
		buckets[e.Level] = append(buckets[e.Level], e.Index)
	}

	ticks := make([]int, 0, int(math.Min(float64(end-start+1), 64)))
	for l := levels.MaxLevel; l >= 0; l-- {
		if float64(len(buckets[l])+len(ticks)) > desiredTickCount*1.5 {
			break
		}
		ticks = append(ticks, buckets[l]...)
	}
	slices.Sort(ticks)

	if end-start <= len(ticks) {
		return ticks
	}

	distance := 1.0
	if len(backingTicks) > 0 {
		distance = (backingTicks[len(backingTicks)-1] - backingTicks[0]) / float64(len(backingTicks)) / 4
	}
	distance = math.Ceil(distance * 1.5)

	level := func(x int) int {
		return s.index[x-s.index[0].Index].Level
	}
	// Deleted ticks still take part in the comparisons.
	deleted := make(map[int]bool)
	for i := 0; i < len(ticks)-1; i++ {
		for j := i + 1; j < len(ticks); j++ {
			if float64(ticks[j]-ticks[i]) > distance {
				break
			}
			if level(ticks[i]) >= level(ticks[j]) {
				deleted[ticks[j]] = true
			} else {
				deleted[ticks[i]] = true
			}
		}
	}
	kept := ticks[:0]
	for _, t := range ticks {
		if !deleted[t] {
			kept = append(kept, t)
		}
	}
	return kept
}
