package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alexanderramin/checkpoint/internal/checklist"
	"github.com/alexanderramin/checkpoint/internal/config"
	"github.com/alexanderramin/checkpoint/internal/domain"
	"github.com/alexanderramin/checkpoint/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the configuration and collaborators used by CLI commands.
type App struct {
	Config config.Config

	// Checks is the local store. Commands that manage the catalogue or the
	// submission history need it.
	Checks service.ChecklistService

	// Source is the questionnaire's checklist collaborator. When nil it is
	// built from Config by NewSource before any command runs.
	Source    checklist.Source
	NewSource func(cfg config.Config) (checklist.Source, error)

	Logger *slog.Logger

	// IsInteractive reports whether stdin is a terminal. The bare root
	// command starts the TUI only when it returns true.
	IsInteractive func() bool

	// RunTUI starts the interactive questionnaire. Tests replace it.
	RunTUI func(app *App) error
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a.Logger
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) store() (service.ChecklistService, error) {
	if a.Checks == nil {
		return nil, fmt.Errorf("no local checklist store is configured")
	}
	return a.Checks, nil
}

// NewRootCmd creates the top-level "checkpoint" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var source sourceFlag
	var endpoint string

	root := &cobra.Command{
		Use:   "checkpoint",
		Short: "Answer a prioritized verification checklist",
		Long: "checkpoint walks through a prioritized list of verification checks.\n" +
			"Each check unlocks after the ones above it are answered yes; a single\n" +
			"no is enough to submit.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("source") {
				app.Config.Source = domain.SourceKind(source)
				app.Source = nil
			}
			if cmd.Flags().Changed("endpoint") {
				app.Config.Endpoint = endpoint
				if app.Config.Source == domain.SourceHTTP {
					app.Source = nil
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return runChecks(cmd, app)
			}
			if err := app.ensureSource(); err != nil {
				return err
			}
			run := app.RunTUI
			if run == nil {
				run = runTUI
			}
			return run(app)
		},
	}

	root.PersistentFlags().Var(&source, "source", "Checklist source (mock|http|local)")
	root.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Backend URL for the http source")

	root.AddCommand(
		newChecksCmd(app),
		newCheckCmd(app),
		newImportCmd(app),
		newServeCmd(app),
		newHistoryCmd(app),
		newSubmitCmd(app),
	)

	return root
}

// ensureSource builds the configured checklist source on first use.
func (a *App) ensureSource() error {
	if a.Source != nil {
		return nil
	}
	if a.NewSource == nil {
		return fmt.Errorf("no checklist source is configured")
	}
	src, err := a.NewSource(a.Config)
	if err != nil {
		return err
	}
	a.Source = src
	return nil
}

// sourceFlag is a pflag.Value that only accepts known source kinds.
type sourceFlag string

var _ pflag.Value = (*sourceFlag)(nil)

func (f *sourceFlag) String() string { return string(*f) }
func (f *sourceFlag) Type() string   { return "source" }

func (f *sourceFlag) Set(v string) error {
	if !domain.ValidSourceKinds[v] {
		return fmt.Errorf("want mock, http or local")
	}
	*f = sourceFlag(v)
	return nil
}
