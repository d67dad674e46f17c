package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/checkpoint/internal/domain"
)

// EmptyChecklistMessage is shown when a source returns no checks.
const EmptyChecklistMessage = "No verification options available."

// FormatChecks renders checks as a table in the order given. Callers pass
// checks already in priority order.
func FormatChecks(checks []domain.Check) string {
	if len(checks) == 0 {
		return Dim(EmptyChecklistMessage) + "\n"
	}
	rows := make([][]string, 0, len(checks))
	for i, c := range checks {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			c.ID,
			PriorityBadge(c.Priority),
			c.Description,
		})
	}
	return RenderTableAligned(
		[]string{"#", "ID", "PRIORITY", "DESCRIPTION"},
		rows,
		[]bool{true, false, true},
	)
}

// FormatSubmissions renders a history table, newest first as given.
func FormatSubmissions(subs []*domain.Submission, now time.Time) string {
	if len(subs) == 0 {
		return Dim("No submissions recorded yet.") + "\n"
	}
	rows := make([][]string, 0, len(subs))
	for _, s := range subs {
		yes, no := s.Counts()
		origin := s.Origin
		if origin == "" {
			origin = "-"
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			HumanTimestamp(s.CreatedAt, now),
			Dim(origin),
			StyleGreen.Render(fmt.Sprintf("%d", yes)),
			StyleRed.Render(fmt.Sprintf("%d", no)),
			outcome(s),
		})
	}
	return RenderTableAligned(
		[]string{"ID", "WHEN", "ORIGIN", "YES", "NO", "OUTCOME"},
		rows,
		[]bool{false, false, false, true, true},
	)
}

// FormatSubmission renders one submission's results in a box.
func FormatSubmission(s *domain.Submission, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Dim("ID     "), s.ID)
	fmt.Fprintf(&b, "%s  %s\n", Dim("WHEN   "), HumanTimestamp(s.CreatedAt, now))
	if s.Origin != "" {
		fmt.Fprintf(&b, "%s  %s\n", Dim("ORIGIN "), s.Origin)
	}
	b.WriteString("\n")
	b.WriteString(FormatResults(s.Results))
	return RenderBox("Submission", strings.TrimRight(b.String(), "\n"))
}

// FormatResults lists results in submission order.
func FormatResults(results []domain.Result) string {
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "  %s  %s\n", ResultPill(r.Result), r.CheckID)
	}
	return b.String()
}

// outcome summarizes a submission: rejected when any check was answered no.
func outcome(s *domain.Submission) string {
	_, no := s.Counts()
	if no > 0 {
		return StyleRed.Render("rejected")
	}
	return StyleGreen.Render("passed")
}
