package engine

import "fmt"

// Tone colors a feedback message
type Tone int

const (
	ToneNeutral Tone = iota
	ToneMoss
	ToneRust
)

// Feedback is the message shown under the cards after a submission
type Feedback struct {
	Text string
	Tone Tone
}

// FeedbackFor words a verdict, livesLeft is the life count after the verdict was applied
func FeedbackFor(v Verdict, livesLeft int) Feedback {
	switch {
	case v.Ignored:
		return Feedback{}
	case v.Correct && v.Errors == 0:
		return Feedback{Text: fmt.Sprintf("Perfect clarity. +%d", v.Delta), Tone: ToneMoss}
	case v.Correct && v.Delta > 0:
		return Feedback{Text: fmt.Sprintf("The path reveals itself. +%d", v.Delta), Tone: ToneMoss}
	case v.Correct:
		return Feedback{Text: "The path reveals itself, at last.", Tone: ToneMoss}
	case v.Lockout && livesLeft <= 0:
		return Feedback{Text: "The path was beyond reach. A light fades.", Tone: ToneRust}
	case v.Lockout:
		return Feedback{Text: "The path reveals itself, but a light fades.", Tone: ToneRust}
	case v.PointsLeft > 0:
		return Feedback{
			Text: fmt.Sprintf("Not quite. %s remaining. %s left.",
				plural(v.PointsLeft, "point"), plural(v.AttemptsLeft, "attempt")),
			Tone: ToneRust,
		}
	default:
		return Feedback{
			Text: fmt.Sprintf("No points remain. %s before the path reveals itself.",
				plural(v.AttemptsLeft, "attempt")),
			Tone: ToneRust,
		}
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
