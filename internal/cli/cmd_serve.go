package cli

import (
	"fmt"
	"log/slog"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/checkpoint/internal/checklist"
	"github.com/alexanderramin/checkpoint/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var listen string
	var failureRate float64
	var seed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local checklist over HTTP",
		Long: "Serve the local checklist catalogue and accept submissions over HTTP,\n" +
			"so other checkpoint instances can use --source http.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.store()
			if err != nil {
				return err
			}
			if failureRate < 0 || failureRate > 1 {
				return fmt.Errorf("--failure-rate must be between 0 and 1")
			}
			logger := app.logger()
			if !app.Config.LogCalls && app.Config.LogFile == "" {
				// No TUI to protect; request logs go to stderr.
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if seed {
				existing, err := svc.ListChecks(ctx)
				if err != nil {
					return err
				}
				if len(existing) == 0 {
					n, err := svc.ImportChecks(ctx, checklist.BuiltinCatalogue())
					if err != nil {
						return err
					}
					logger.Info("seeded empty catalogue", "checks", n)
				}
			}

			handler := server.NewHandler(svc, logger, server.NewMetrics())
			router := server.NewRouter(handler, server.RouterOptions{
				FailureRate: failureRate,
				Rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
			})

			out := cmd.OutOrStdout()
			return server.Serve(ctx, listen, router, logger, func(addr net.Addr) {
				fmt.Fprintf(out, "Serving checklist API on http://%s (ctrl+c to stop)\n", addr)
			})
		},
	}

	cmd.Flags().StringVar(&listen, "listen", app.Config.Listen, "Address to listen on")
	cmd.Flags().Float64Var(&failureRate, "failure-rate", app.Config.ServeFailureRate, "Share of API requests to fail with 503 (0-1)")
	cmd.Flags().BoolVar(&seed, "seed", false, "Load the built-in catalogue when the store is empty")

	return cmd
}
