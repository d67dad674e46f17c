package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/checkpoint/internal/cli/formatter"
	"github.com/alexanderramin/checkpoint/internal/domain"
	"github.com/alexanderramin/checkpoint/internal/progression"
	"github.com/spf13/cobra"
)

func newChecksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "checks",
		Short: "List the checks offered by the configured source, in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecks(cmd, app)
		},
	}
}

func runChecks(cmd *cobra.Command, app *App) error {
	if err := app.ensureSource(); err != nil {
		return err
	}
	stop := formatter.StartSpinner(cmd.ErrOrStderr(), "Fetching checks...", app.interactive())
	checks, err := app.Source.FetchChecks(context.Background())
	stop()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChecks(progression.SortByPriority(checks)))
	return nil
}

func newCheckCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Manage the local checklist catalogue",
	}

	cmd.AddCommand(
		newCheckAddCmd(app),
		newCheckRemoveCmd(app),
	)

	return cmd
}

func newCheckAddCmd(app *App) *cobra.Command {
	var id, description string
	var priority int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add or update a check",
		Long: "Add or update a check in the local catalogue. Without --id on an\n" +
			"interactive terminal, a form asks for the fields.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.store()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("id") {
				if !app.interactive() {
					return fmt.Errorf("--id is required when not running interactively")
				}
				fields := checkFormFields{Priority: strconv.Itoa(priority)}
				if err := checkForm(&fields).Run(); err != nil {
					return err
				}
				c, err := fields.check()
				if err != nil {
					return err
				}
				id, priority, description = c.ID, c.Priority, c.Description
			}

			c := domain.Check{ID: id, Priority: priority, Description: description}
			if err := svc.AddCheck(context.Background(), c); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved check %s (priority %d)\n", formatter.Bold(c.ID), c.Priority)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Check ID")
	cmd.Flags().IntVar(&priority, "priority", 0, "Priority; higher is asked first")
	cmd.Flags().StringVar(&description, "description", "", "Question shown to the operator")

	return cmd
}

func newCheckRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Remove a check from the local catalogue",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.store()
			if err != nil {
				return err
			}
			id := args[0]

			if !yes && app.interactive() {
				if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Remove check %q?", id)) {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := svc.RemoveCheck(context.Background(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed check %s\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}
