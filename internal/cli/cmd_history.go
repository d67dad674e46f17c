package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/checkpoint/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [ID]",
		Short: "Show recent submissions, or one submission in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.store()
			if err != nil {
				return err
			}
			ctx := context.Background()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				sub, err := svc.GetSubmission(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.FormatSubmission(sub, time.Now()))
				return nil
			}

			subs, err := svc.ListSubmissions(ctx, limit)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatSubmissions(subs, time.Now()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of submissions to show")

	return cmd
}
