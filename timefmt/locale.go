// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package timefmt

import (
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// Locale holds the names and composite patterns used when formatting dates.
// The percent directives %a %A %b %B %p %c %x %X are resolved from the
// locale, every other directive is handled by strftime.
type Locale struct {
	Name        string
	DateTime    string
	Date        string
	Time        string
	Periods     [2]string
	Days        [7]string
	ShortDays   [7]string
	Months      [12]string
	ShortMonths [12]string
}

var EnUS = Locale{
	Name:        "en-US",
	DateTime:    "%x, %X %p",
	Date:        "%-m/%-d/%Y",
	Time:        "%-I:%M:%S",
	Periods:     [2]string{"AM", "PM"},
	Days:        [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	ShortDays:   [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	Months:      [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	ShortMonths: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

// Format formats t according to pattern.
func (l *Locale) Format(pattern string, t time.Time) string {
	return strftime.Format(l.expand(pattern, t, 0), t)
}

// Composite patterns may reference each other, but not endlessly.
const maxExpandDepth = 2

// expand replaces the locale dependent directives of pattern by literal text.
func (l *Locale) expand(pattern string, t time.Time, depth int) string {
	if strings.IndexByte(pattern, '%') < 0 {
		return pattern
	}
	var b strings.Builder
	b.Grow(len(pattern) + 16)
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' || i+1 >= len(pattern) {
			b.WriteByte(c)
			continue
		}
		j := i + 1
		if pattern[j] == '-' || pattern[j] == ':' {
			j++
			if j >= len(pattern) {
				b.WriteString(pattern[i:])
				break
			}
		}
		directive := pattern[i : j+1]
		switch pattern[j] {
		case 'a':
			writeLiteral(&b, l.ShortDays[t.Weekday()])
		case 'A':
			writeLiteral(&b, l.Days[t.Weekday()])
		case 'b', 'h':
			writeLiteral(&b, l.ShortMonths[t.Month()-1])
		case 'B':
			writeLiteral(&b, l.Months[t.Month()-1])
		case 'p':
			if t.Hour() < 12 {
				writeLiteral(&b, l.Periods[0])
			} else {
				writeLiteral(&b, l.Periods[1])
			}
		case 'q':
			b.WriteString(strconv.Itoa((int(t.Month())-1)/3 + 1))
		case 'c', 'x', 'X':
			sub := l.composite(pattern[j])
			if sub == "" || depth >= maxExpandDepth {
				b.WriteString(directive)
			} else {
				b.WriteString(l.expand(sub, t, depth+1))
			}
		default:
			b.WriteString(directive)
		}
		i = j
	}
	return b.String()
}

func (l *Locale) composite(directive byte) string {
	switch directive {
	case 'c':
		return l.DateTime
	case 'x':
		return l.Date
	default:
		return l.Time
	}
}

func writeLiteral(b *strings.Builder, s string) {
	b.WriteString(strings.ReplaceAll(s, "%", "%%"))
}
