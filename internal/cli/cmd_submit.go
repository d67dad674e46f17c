package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/checkpoint/internal/cli/formatter"
	"github.com/alexanderramin/checkpoint/internal/domain"
	"github.com/alexanderramin/checkpoint/internal/progression"
	"github.com/spf13/cobra"
)

func newSubmitCmd(app *App) *cobra.Command {
	var answerFlags []string

	cmd := &cobra.Command{
		Use:   "submit --answer ID=yes|no ...",
		Short: "Answer and submit the checklist without the TUI",
		Long: "Answer checks non-interactively. The same unlock rules as the TUI\n" +
			"apply: a check can only be answered once every check above it is\n" +
			"answered (yes, at the time it was opened), and the answers can be submitted once one of them is\n" +
			"no or all checks are answered.",
		Example: "  checkpoint submit --answer aaa=yes --answer ccc=no",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := parseAnswerFlags(answerFlags)
			if err != nil {
				return err
			}
			if err := app.ensureSource(); err != nil {
				return err
			}

			ctx := context.Background()
			stop := formatter.StartSpinner(cmd.ErrOrStderr(), "Fetching checks...", app.interactive())
			fetched, err := app.Source.FetchChecks(ctx)
			stop()
			if err != nil {
				return err
			}

			checks := progression.SortByPriority(fetched)
			if err := checkAnswersReachable(checks, answers); err != nil {
				return err
			}

			payload := progression.BuildPayload(checks, answers)
			stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Submitting...", app.interactive())
			err = app.Source.SubmitResults(ctx, payload)
			stop()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatResults(payload))
			fmt.Fprintf(out, "Submitted %d answer(s).\n", len(payload))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&answerFlags, "answer", "a", nil, "Answer as ID=yes or ID=no (repeatable)")
	_ = cmd.MarkFlagRequired("answer")

	return cmd
}

// parseAnswerFlags turns ID=value pairs into answers. Later pairs for the
// same ID win, as they would when re-answering in the TUI.
func parseAnswerFlags(pairs []string) (domain.Answers, error) {
	answers := domain.Answers{}
	for _, pair := range pairs {
		id, raw, ok := strings.Cut(pair, "=")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid --answer %q: want ID=yes or ID=no", pair)
		}
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "yes", "y", "1", "true":
			answers = answers.With(id, true)
		case "no", "n", "2", "false":
			answers = answers.With(id, false)
		default:
			return nil, fmt.Errorf("invalid --answer %q: value must be yes or no", pair)
		}
	}
	return answers, nil
}

// checkAnswersReachable rejects answers the TUI could not have produced:
// unknown checks, checks still locked behind an earlier answer, or a set
// that does not yet allow submission.
//
// A check opens once every check above it is answered yes, and an answer is
// never cleared, only changed. So the answered checks must form a prefix of
// the priority order; the values inside that prefix can be anything, because
// the operator can revise answers bottom-up while the ones above are still yes.
func checkAnswersReachable(checks []domain.Check, answers domain.Answers) error {
	known := make(map[string]bool, len(checks))
	for _, c := range checks {
		known[c.ID] = true
	}
	for id := range answers {
		if !known[id] {
			return fmt.Errorf("unknown check %q", id)
		}
	}

	gap := ""
	for _, c := range checks {
		if _, ok := answers.Get(c.ID); !ok {
			if gap == "" {
				gap = c.ID
			}
			continue
		}
		if gap != "" {
			return fmt.Errorf("check %q is locked: answer %q first", c.ID, gap)
		}
	}

	if !progression.CanSubmit(checks, answers) {
		var missing []string
		for _, c := range progression.ComputeEnabled(checks, answers) {
			if _, ok := answers.Get(c.ID); !ok {
				missing = append(missing, c.ID)
			}
		}
		return fmt.Errorf("cannot submit yet: answer %s, or answer any check no", strings.Join(missing, ", "))
	}
	return nil
}
