package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotal(t *testing.T) {
	assert.Equal(t, 0, Total(nil))
	assert.Equal(t, 0, Total(map[string]int{}))
	assert.Equal(t, 7, Total(map[string]int{"q1": 3, "q2": 4}))
	// No clamping: a negative answer passes straight through the sum.
	assert.Equal(t, -1, Total(map[string]int{"q1": -1}))
	assert.Equal(t, 27, Total(map[string]int{
		"q1": 3, "q2": 3, "q3": 3, "q4": 3, "q5": 3,
		"q6": 3, "q7": 3, "q8": 3, "q9": 3,
	}))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, PHQ9.Validate(nil))
	assert.NoError(t, PHQ9.Validate(map[string]int{"q1": 0, "q9": 3}))
	assert.Error(t, PHQ9.Validate(map[string]int{"q10": 1}), "phq9 has nine questions")
	assert.Error(t, PHQ9.Validate(map[string]int{"q1": 4}), "above max")
	assert.Error(t, PHQ9.Validate(map[string]int{"q1": -1}), "below zero")
	assert.NoError(t, FAST.Validate(map[string]int{"q6": 6}))
	assert.Error(t, FAST.Validate(map[string]int{"q7": 1}))
	assert.NoError(t, EQ5D5L.Validate(map[string]int{"q5": 5}))
}

func TestInstrumentShapes(t *testing.T) {
	cases := []struct {
		in        Instrument
		questions int
		max       int
	}{
		{PHQ9, 9, 3}, {GAD7, 7, 3}, {ASRM, 10, 3},
		{EQ5D5L, 5, 5}, {YBOCS, 10, 5}, {FAST, 6, 6},
		{CATQ, 10, 3}, {RAADSR, 10, 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.questions, c.in.Questions, c.in.Code)
		assert.Equal(t, c.max, c.in.Max, c.in.Code)
	}
}
