// Package score grades a submitted sequence of lines against a level's solution.
package score

import (
	"fmt"
	"math"
	"time"

	"gitoffice/internal/code"
)

// PassRatio is the minimum total/possible ratio that passes a level.
const PassRatio = 0.5

// Score walks cor in order, consuming sub forward until each canonical line is found.
// Once sub is exhausted every remaining canonical line counts as a miss.
// The match never backtracks, so shuffled submissions undercount.
func Score(cor, sub []code.Painted) float64 {
	if len(cor) == 0 {
		return 0
	}
	correct := 0
	j := 0
outer:
	for _, want := range cor {
		for {
			if j >= len(sub) {
				break outer
			}
			got := sub[j]
			j++
			if got == want {
				correct++
				break
			}
		}
	}
	return float64(correct) / float64(len(cor))
}

// Result is the graded outcome of one submission.
type Result struct {
	TimeScore uint64
	CodeScore float64
	Total     uint64
	Possible  uint64
	Ratio     float64
	Passed    bool
}

// Evaluate combines the time left on the clock with the code score.
// The time term is shown in hundredths of a second; total and possible are in milliseconds.
func Evaluate(timeLeft, duration time.Duration, codeScore float64) Result {
	if timeLeft < 0 {
		timeLeft = 0
	}
	ms := timeLeft.Milliseconds()
	r := Result{
		TimeScore: uint64(ms / 10),
		CodeScore: codeScore,
		Total:     uint64(math.Floor(float64(ms)*codeScore + 1e-6)),
		Possible:  uint64(duration.Milliseconds()),
	}
	if r.Possible > 0 {
		r.Ratio = float64(r.Total) / float64(r.Possible)
	}
	r.Passed = r.Ratio >= PassRatio
	return r
}

// Feedback is the text printed to the terminal after a submission.
func (r Result) Feedback() string {
	verdict := "FAIL. Resetting playfield..."
	if r.Passed {
		verdict = "PASS. Loading next job..."
	}
	return fmt.Sprintf("\ntime: %d\naccuracy: %.2f%%\ntotal: %d\n%s\n>>",
		r.TimeScore, r.CodeScore*100, r.Total, verdict)
}
