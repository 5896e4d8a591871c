package audio

import "time"

// Fader steps a volume linearly from From to To in Steps equal increments, one per Interval,
// starting at Start
type Fader struct {
	From, To float64
	Steps    int
	Interval time.Duration
	Start    time.Time
}

// NewFader spreads steps evenly over duration starting at start
func NewFader(from, to float64, steps int, duration time.Duration, start time.Time) Fader {
	if steps <= 0 {
		steps = 1
	}
	return Fader{
		From:     from,
		To:       to,
		Steps:    steps,
		Interval: duration / time.Duration(steps),
		Start:    start,
	}
}

// Level returns the volume at now and whether the fade has finished
func (f Fader) Level(now time.Time) (float64, bool) {
	if now.Before(f.Start) {
		return f.From, false
	}
	if f.Interval <= 0 || f.Steps <= 0 {
		return f.To, true
	}

	step := int(now.Sub(f.Start) / f.Interval)
	if step >= f.Steps {
		return f.To, true
	}
	return f.From + (f.To-f.From)*float64(step)/float64(f.Steps), false
}

// End returns when the fade reaches its target
func (f Fader) End() time.Time {
	return f.Start.Add(f.Interval * time.Duration(f.Steps))
}
