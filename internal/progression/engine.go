package progression

import "github.com/alexanderramin/checkpoint/internal/domain"

// ComputeEnabled returns the prefix of checks the operator may answer.
//
// The boundary is the index, within the answered sequence, of the first "no";
// without a "no" it is the length of the answered sequence. The prefix runs
// through the boundary inclusive, so one check past the definite progress is
// always open, and a "no" keeps itself reachable so it can be changed.
func ComputeEnabled(checks []domain.Check, answers domain.Answers) []domain.Check {
	if len(checks) == 0 {
		return nil
	}
	answered := Answered(checks, answers)
	boundary := len(answered)
	for i, a := range answered {
		if !a.Value {
			boundary = i
			break
		}
	}
	end := boundary + 1
	if end > len(checks) {
		end = len(checks)
	}
	return checks[:end]
}

// CanSubmit reports whether submission is allowed: some answer is "no", or
// every check has been answered. An empty list never allows submission.
func CanSubmit(checks []domain.Check, answers domain.Answers) bool {
	if len(checks) == 0 {
		return false
	}
	answered := Answered(checks, answers)
	if len(answered) == len(checks) {
		return true
	}
	for _, a := range answered {
		if !a.Value {
			return true
		}
	}
	return false
}

// BuildPayload converts the answered checks into submission results in
// priority order.
func BuildPayload(checks []domain.Check, answers domain.Answers) []domain.Result {
	answered := Answered(checks, answers)
	out := make([]domain.Result, 0, len(answered))
	for _, a := range answered {
		out = append(out, domain.Result{
			CheckID: a.Check.ID,
			Result:  domain.ResultFromBool(a.Value),
		})
	}
	return out
}

// IsEnabled reports whether the check at position index is inside the
// enabled prefix.
func IsEnabled(checks []domain.Check, answers domain.Answers, index int) bool {
	return index >= 0 && index < len(ComputeEnabled(checks, answers))
}
