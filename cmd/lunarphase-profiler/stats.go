package main

import (
	"fmt"
	"io"
	"math"
	"time"
)

type stats struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func (s *stats) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if s.count == 0 {
		s.min, s.max = v, v
	} else {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	s.sum += v
	s.count++
}

func (s *stats) avg() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.sum / float64(s.count)
}

func (s *stats) write(w io.Writer, title, avgLabel string) {
	fmt.Fprintf(w, "\n%s:\n", title)
	fmt.Fprintf(w, "  count: %d\n", s.count)
	fmt.Fprintf(w, "  min:   %.3f\n", s.min)
	fmt.Fprintf(w, "  max:   %.3f\n", s.max)
	fmt.Fprintf(w, "  %-5s  %.3f\n", avgLabel+":", s.avg())
}

// errorStats pairs absolute and signed errors of the same rows.
type errorStats struct {
	abs    stats
	signed stats
}

func (e *errorStats) add(got, ref time.Time) {
	e.abs.add(diffMinutes(got, ref))
	e.signed.add(diffMinutesSigned(got, ref))
}

func diffMinutes(a, b time.Time) float64 {
	// If either time is zero, treat as "no data".
	if a.IsZero() || b.IsZero() {
		return math.NaN()
	}

	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d.Minutes()
}

func diffMinutesSigned(a, b time.Time) float64 {
	if a.IsZero() || b.IsZero() {
		return math.NaN()
	}
	return a.Sub(b).Minutes()
}
