package domain

// Answers maps a check id to the operator's response (true = yes, false = no).
// A missing key means the check is unanswered.
//
// Answers is treated as a value: With returns a new map and never mutates the
// receiver, so handlers that closed over an older set keep seeing it intact.
type Answers map[string]bool

// Get returns the answer for id and whether one has been given.
func (a Answers) Get(id string) (value bool, ok bool) {
	value, ok = a[id]
	return value, ok
}

// With returns a copy of a with id set to value.
func (a Answers) With(id string, value bool) Answers {
	out := make(Answers, len(a)+1)
	for k, v := range a {
		out[k] = v
	}
	out[id] = value
	return out
}

// Len returns the number of answered checks, including ids that no longer
// name a check.
func (a Answers) Len() int { return len(a) }
