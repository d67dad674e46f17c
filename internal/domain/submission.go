package domain

import "time"

// Result is one answered check as sent to the checklist source.
type Result struct {
	CheckID string      `json:"checkId"`
	Result  ResultValue `json:"result"`
}

// Submission is a recorded set of results.
type Submission struct {
	ID        string    `json:"id"`
	Results   []Result  `json:"results"`
	Origin    string    `json:"origin,omitempty"` // "http", "local", "cli"
	CreatedAt time.Time `json:"createdAt"`
}

// Counts returns how many results were yes and how many were no.
func (s *Submission) Counts() (yes, no int) {
	for _, r := range s.Results {
		switch r.Result {
		case ResultYes:
			yes++
		case ResultNo:
			no++
		}
	}
	return yes, no
}
