package engine

import "fmt"

// Verdict is the outcome of judging one submitted order
type Verdict struct {
	// Ignored is set when the round was already locked, nothing changed
	Ignored bool

	Correct bool
	Lockout bool

	// Delta is the score earned, zero unless Correct
	Delta int

	// Errors is the round's error count after this submission
	Errors int

	// PointsLeft and AttemptsLeft describe what remains after a miss
	PointsLeft   int
	AttemptsLeft int

	// Wrong lists the positions that differ from the solution
	Wrong []int
}

// Judge compares a submitted order against the solution
// A correct order locks the round and scores Rules.Points(errors)
// A miss increments the error count; reaching MaxErrors locks the round as a lockout
// Judging a locked round is a no-op
func (r *Round) Judge(order []int, rules Rules) (Verdict, error) {
	if r.locked {
		return Verdict{Ignored: true, Errors: r.errors}, nil
	}
	if !r.validOrder(order) {
		return Verdict{}, fmt.Errorf("%w: got %v", ErrInvalidOrder, order)
	}

	var wrong []int
	for i, id := range order {
		if id != r.correct[i] {
			wrong = append(wrong, i)
		}
	}

	if len(wrong) == 0 {
		r.locked = true
		return Verdict{
			Correct: true,
			Delta:   rules.Points(r.errors),
			Errors:  r.errors,
		}, nil
	}

	r.errors++
	v := Verdict{
		Errors:       r.errors,
		PointsLeft:   rules.Points(r.errors),
		AttemptsLeft: max(0, rules.MaxErrors-r.errors),
		Wrong:        wrong,
	}
	if r.errors >= rules.MaxErrors {
		r.locked = true
		v.Lockout = true
	}
	return v, nil
}
