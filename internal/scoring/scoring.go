// Package scoring defines the fixed questionnaire instruments and the
// total computation shared by the weekly, monthly and quarterly forms.
package scoring

import "fmt"

// Instrument is one fixed questionnaire: question ids run q1..qN and every
// answer lies in [0, Max].
type Instrument struct {
	Code      string
	Questions int
	Max       int
}

var (
	PHQ9   = Instrument{Code: "phq9", Questions: 9, Max: 3}
	GAD7   = Instrument{Code: "gad7", Questions: 7, Max: 3}
	ASRM   = Instrument{Code: "asrm", Questions: 10, Max: 3}
	EQ5D5L = Instrument{Code: "eq5d5l", Questions: 5, Max: 5}
	YBOCS  = Instrument{Code: "ybocs", Questions: 10, Max: 5}
	FAST   = Instrument{Code: "fast", Questions: 6, Max: 6}
	CATQ   = Instrument{Code: "catq", Questions: 10, Max: 3}
	RAADSR = Instrument{Code: "raadsr", Questions: 10, Max: 3}
)

// Total sums the answers that are present. A missing question contributes
// zero; values are not clamped. Totals are always recomputed from the
// answer map at save time, never taken from the client.
func Total(answers map[string]int) int {
	sum := 0
	for _, v := range answers {
		sum += v
	}
	return sum
}

// Validate rejects answer maps holding unknown question ids or values
// outside the instrument's range. An empty or nil map is valid.
func (in Instrument) Validate(answers map[string]int) error {
	known := make(map[string]struct{}, in.Questions)
	for i := 1; i <= in.Questions; i++ {
		known[fmt.Sprintf("q%d", i)] = struct{}{}
	}
	for q, v := range answers {
		if _, ok := known[q]; !ok {
			return fmt.Errorf("%s: unknown question %q", in.Code, q)
		}
		if v < 0 || v > in.Max {
			return fmt.Errorf("%s: answer %s=%d outside [0,%d]", in.Code, q, v, in.Max)
		}
	}
	return nil
}
