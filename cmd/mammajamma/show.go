package mammajamma

import (
	"github.com/dasdy/mammajamma/layout"
	"github.com/dasdy/mammajamma/model"
	"github.com/dasdy/mammajamma/theory"
	"github.com/dasdy/mammajamma/web"
	"github.com/spf13/cobra"
)

var (
	port       int
	dev        bool
	defaultKey string
)

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:              "show",
	Short:            "Serve the chord diagram",
	Long:             `Run a web server with the chord diagram and a dropdown to pick the key.`,
	PersistentPreRun: prepareRun,
	RunE: func(_ *cobra.Command, _ []string) error {
		return web.StartServer(web.Options{
			Port:       port,
			DefaultKey: model.Key(defaultKey),
			Geometry:   layout.DefaultGeometry(),
			Dev:        dev,
		})
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().IntVarP(&port, "port", "p", 9000,
		"Port on which server should be watching")

	showCmd.Flags().BoolVar(&dev,
		"dev",
		false,
		"Enable developer mode")

	showCmd.Flags().StringVarP(&defaultKey,
		"default-key",
		"k",
		string(theory.DefaultKey),
		"Key selected when the page is opened")
}
