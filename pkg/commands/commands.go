package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "trainer",
		Short: base.Wrap80("Browse a workout catalog with tabs, history and swipe navigation."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addCatalog(topLevel)
	addTheme(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
