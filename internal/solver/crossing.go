package solver

// EventType describes the direction of the zero crossing we look for.
type EventType int

const (
	// CrossingUp means the samples move from non-positive to strictly positive.
	CrossingUp EventType = iota
	// CrossingDown means the samples move from non-negative to strictly negative.
	CrossingDown
)

// Result holds the output of a crossing search.
type Result struct {
	Index int  // index of the first sample past the crossing
	OK    bool // true if a crossing was found
}

// FindCrossing scans samples in order for the first pair (i-1, i) that
// crosses zero in the direction given by eventType, and returns i.
//
// Samples are typically signed offsets (seconds) from a query instant to a
// sequence of increasing event instants, so a CrossingUp marks the first
// event that has not yet occurred.
func FindCrossing(samples []float64, eventType EventType) Result {
	if len(samples) < 2 {
		return Result{OK: false}
	}

	prev := samples[0]
	for i := 1; i < len(samples); i++ {
		cur := samples[i]
		if hasCrossing(prev, cur, eventType) {
			return Result{Index: i, OK: true}
		}
		prev = cur
	}

	// No crossing found.
	return Result{OK: false}
}

func hasCrossing(a1, a2 float64, eventType EventType) bool {
	switch eventType {
	case CrossingUp:
		return a1 <= 0 && a2 > 0
	case CrossingDown:
		return a1 >= 0 && a2 < 0
	default:
		// Generic sign change
		return a1*a2 < 0
	}
}
