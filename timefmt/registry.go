// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package timefmt

import (
	"time"

	"github.com/zhangyunhao116/skipmap"
)

// Formatter turns a date into a label.
type Formatter func(time.Time) string

// Registry hands out one Formatter per pattern for a fixed locale.
// It is safe for concurrent use.
type Registry struct {
	locale     Locale
	formatters *skipmap.StringMap[Formatter]
}

func NewRegistry(l Locale) *Registry {
	return &Registry{
		locale:     l,
		formatters: skipmap.NewString[Formatter](),
	}
}

var defaultRegistry = NewRegistry(EnUS)

// DefaultRegistry returns the shared en-US registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

func (r *Registry) Locale() Locale {
	return r.locale
}

func (r *Registry) Formatter(pattern string) Formatter {
	if f, ok := r.formatters.Load(pattern); ok {
		return f
	}
	l := &r.locale
	f, _ := r.formatters.LoadOrStore(pattern, func(t time.Time) string {
		return l.Format(pattern, t)
	})
	return f
}

func (r *Registry) Len() int {
	return r.formatters.Len()
}
