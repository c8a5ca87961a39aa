package mammajamma

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dasdy/mammajamma/layout"
	"github.com/dasdy/mammajamma/model"
	"github.com/dasdy/mammajamma/theory"
	"github.com/spf13/cobra"
)

var keyStyle = lipgloss.NewStyle().Bold(true).Width(8)

// chordsCmd represents the chords command.
var chordsCmd = &cobra.Command{
	Use:   "chords [KEY...]",
	Short: "Print the chords drawn on each petal",
	Long:  `Print the tonic and the petal chords of the given keys, or of all twelve keys.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := theory.NewChordTable()

		keys := keysFromArgs(args)

		for _, key := range keys {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderChordSet(key, table))
			if err != nil {
				return fmt.Errorf("could not print chords: %w", err)
			}
		}

		return nil
	},
}

func renderChordSet(key model.Key, table *theory.ChordTable) string {
	set := table.Lookup(key)

	header := keyStyle.Render(string(key)) + "tonic " + set.Tonic
	if !table.Has(key) {
		header += lipgloss.NewStyle().Faint(true).Render(" (not in table, showing " + string(table.DefaultKey()) + ")")
	}

	lines := []string{header}

	for _, spec := range layout.PetalSpecs() {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(spec.Color))
		names := layout.PetalChords(spec.Interval, set.Interval(spec.Interval))

		lines = append(lines, keyStyle.Render("")+style.Render(fmt.Sprintf("%-5s", spec.Label))+strings.Join(names, " "))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func init() {
	rootCmd.AddCommand(chordsCmd)
}
