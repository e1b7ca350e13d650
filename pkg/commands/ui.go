package commands

import (
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/trainer/pkg/catalog"
	"tableflip.dev/trainer/pkg/commands/options"
	"tableflip.dev/trainer/pkg/runner/ui"
	"tableflip.dev/trainer/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}
	open := ""
	motion := true

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Long: base.Wrap80("Open the full-screen page viewer. Use the number keys or tab " +
			"to switch tabs, enter to follow a link, left and right (or a mouse swipe) " +
			"to move between pages of a section and esc to go back."),
		Example: `
trainer ui
trainer ui --open page-monday-ex1
trainer ui --catalog ./week.yaml --motion=false
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			if co.Path != "" {
				cfg = store.WithCatalog(cfg, co.Path)
			}
			i := ui.UI{Config: cfg, Open: open, Motion: motion}
			return i.Do(cmd.Context())
		},
	}

	options.AddCatalogArgs(cmd, co)
	cmd.Flags().StringVar(&open, "open", "",
		"Open this page id on start instead of the home tab.")
	cmd.Flags().BoolVar(&motion, "motion", true,
		"Animate page transitions.")
	_ = cmd.RegisterFlagCompletionFunc("open", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return pageCompletions(co, toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}

func pageCompletions(co *options.CatalogOptions, toComplete string) []string {
	path, err := catalogPath(co)
	if err != nil {
		return nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil
	}
	var ids []string
	for _, id := range cat.PageIDs() {
		if strings.HasPrefix(id, toComplete) {
			ids = append(ids, id)
		}
	}
	return ids
}
