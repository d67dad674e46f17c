package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/checkpoint/internal/cli/formatter"
	"github.com/alexanderramin/checkpoint/internal/importer"
	"github.com/alexanderramin/checkpoint/internal/progression"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a checklist catalogue from a YAML file",
		Long: "Import checks from a YAML file of the form:\n\n" +
			"  checks:\n" +
			"    - id: aaa\n" +
			"      priority: 10\n" +
			"      description: Face on the picture matches face on the document\n\n" +
			"Existing checks with the same id are updated. Nothing is written when\n" +
			"any entry is invalid.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := importer.Load(args[0])
			if err != nil {
				return err
			}
			if errs := importer.Validate(f); len(errs) > 0 {
				out := cmd.ErrOrStderr()
				fmt.Fprintf(out, "%s\n", formatter.StyleRed.Render(fmt.Sprintf("%d problem(s) in %s:", len(errs), args[0])))
				for _, e := range errs {
					fmt.Fprintf(out, "  - %v\n", e)
				}
				return errors.Join(errs...)
			}

			checks := f.ToChecks()
			if dryRun {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChecks(progression.SortByPriority(checks)))
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.Dim(fmt.Sprintf("%d check(s) valid; nothing written (dry run).", len(checks))))
				return nil
			}

			svc, err := app.store()
			if err != nil {
				return err
			}
			n, err := svc.ImportChecks(context.Background(), checks)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d check(s) from %s\n", n, args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and print the catalogue without writing")

	return cmd
}
