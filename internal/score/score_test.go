package score

import (
	"testing"
	"time"

	"gitoffice/internal/code"

	"github.com/stretchr/testify/assert"
)

var (
	a = code.Painted{Code: "a := 1", Color: code.Green}
	b = code.Painted{Code: "b := 2", Color: code.Normal}
	c = code.Painted{Code: "return a + b", Color: code.Red}
	x = code.Painted{Code: "junk()", Color: code.Normal}
)

func TestScoreIdentity(t *testing.T) {
	cor := []code.Painted{a, b, c}
	assert.Equal(t, 1.0, Score(cor, cor))
}

func TestScoreEmptySubmission(t *testing.T) {
	assert.Equal(t, 0.0, Score([]code.Painted{a, b, c}, nil))
}

func TestScoreEmptyCanonical(t *testing.T) {
	assert.Equal(t, 0.0, Score(nil, []code.Painted{a}))
}

func TestScoreColorMustMatch(t *testing.T) {
	cor := []code.Painted{a, b, c}

	wrongA := a
	wrongA.Color = code.Red
	wrongC := c
	wrongC.Color = code.Green

	tests := []struct {
		name string
		sub  []code.Painted
		want float64
	}{
		// The scan for a runs off the end of the submission.
		{"miscoloured first line empties the score", []code.Painted{wrongA, b, c}, 0},
		{"miscoloured last line loses only that line", []code.Painted{a, b, wrongC}, 2.0 / 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(cor, tt.sub), 1e-9)
		})
	}
}

func TestScoreGreedyForward(t *testing.T) {
	cor := []code.Painted{a, b, c}

	tests := []struct {
		name string
		sub  []code.Painted
		want float64
	}{
		{"leading junk is skipped", []code.Painted{x, a, b, c}, 1.0},
		{"duplicate before target is consumed", []code.Painted{b, a, b, c}, 1.0},
		{"rotation loses lines a global alignment keeps", []code.Painted{b, c, a}, 1.0 / 3.0},
		{"exhaustion stops early", []code.Painted{a, c}, 1.0 / 3.0},
		{"trailing extras ignored", []code.Painted{a, b, c, x, x}, 1.0},
		{"reverse order", []code.Painted{c, b, a}, 1.0 / 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(cor, tt.sub), 1e-9)
		})
	}
}

func TestEvaluateFailScenario(t *testing.T) {
	r := Evaluate(90*time.Second, 180*time.Second, 0.6)
	assert.Equal(t, uint64(9000), r.TimeScore)
	assert.Equal(t, uint64(54000), r.Total)
	assert.Equal(t, uint64(180000), r.Possible)
	assert.InDelta(t, 0.3, r.Ratio, 1e-9)
	assert.False(t, r.Passed)
	assert.Equal(t, "\ntime: 9000\naccuracy: 60.00%\ntotal: 54000\nFAIL. Resetting playfield...\n>>", r.Feedback())
}

func TestEvaluatePass(t *testing.T) {
	r := Evaluate(150*time.Second, 180*time.Second, 1.0)
	assert.True(t, r.Passed)
	assert.Contains(t, r.Feedback(), "PASS. Loading next job...")
}

func TestEvaluateThresholdIsInclusive(t *testing.T) {
	r := Evaluate(100*time.Second, 200*time.Second, 1.0)
	assert.InDelta(t, 0.5, r.Ratio, 1e-9)
	assert.True(t, r.Passed)
}

func TestEvaluateNegativeTimeLeft(t *testing.T) {
	r := Evaluate(-time.Second, 180*time.Second, 1.0)
	assert.Zero(t, r.Total)
	assert.False(t, r.Passed)
}
