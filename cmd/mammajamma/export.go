package mammajamma

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/dasdy/mammajamma/export"
	"github.com/dasdy/mammajamma/layout"
	"github.com/dasdy/mammajamma/logging"
	"github.com/dasdy/mammajamma/model"
	"github.com/dasdy/mammajamma/theory"
	"github.com/spf13/cobra"
)

var outDir string

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export [KEY...]",
	Short: "Write the diagram of every key as SVG",
	Long: `Render the chord diagram of each key into its own SVG file.
Without arguments all twelve keys of the dropdown are exported.`,
	PersistentPreRun: prepareRun,
	RunE: func(_ *cobra.Command, args []string) error {
		ctx, stop := interruptContext(logging.PackageCtx("export"))
		defer stop()

		return runExport(ctx, outDir, keysFromArgs(args), os.Stderr)
	},
}

// interruptContext is cancelled on Ctrl-C, so an export stops between files.
func interruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}

func runExport(ctx context.Context, dir string, keys []model.Key, progress io.Writer) error {
	paths, err := export.WriteAll(ctx, dir, keys, theory.NewChordTable(), layout.DefaultGeometry(), progress)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Export finished", "dir", dir, "files", len(paths))

	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(
		&outDir,
		"out",
		"o",
		"./diagrams",
		"Output directory for the SVG files")
}
