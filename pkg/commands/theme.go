package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/trainer/pkg/commands/options"
	"tableflip.dev/trainer/pkg/runner/theme"
)

func addTheme(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "theme [get|set|toggle] [dark|light]",
		Short: "show or change the saved theme",
		Long: `Show or change the saved theme. A running ui picks up the change.

With no mode, set asks which theme to use.`,
		Example: `
trainer theme
trainer theme set dark
trainer theme toggle --json
`,
		ValidArgs: []string{string(theme.ActionGet), string(theme.ActionSet), string(theme.ActionToggle)},
		Args:      cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := theme.Theme{
				Action: theme.ActionGet,
				Output: oo.Format(),
				Out:    cmd.OutOrStdout(),
				In:     cmd.InOrStdin(),
			}
			if len(args) > 0 {
				t.Action = theme.Action(args[0])
			}
			if len(args) > 1 {
				t.Mode = args[1]
			}
			return oo.HandleError(t.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
