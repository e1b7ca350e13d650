package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/trainer/pkg/commands/options"
	runner "tableflip.dev/trainer/pkg/runner/catalog"
	"tableflip.dev/trainer/pkg/store"
)

func addCatalog(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "inspect the page catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCatalogList(cmd)
	addCatalogCheck(cmd)

	topLevel.AddCommand(cmd)
}

func catalogPath(co *options.CatalogOptions) (string, error) {
	if co.Path != "" {
		return co.Path, nil
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return "", err
	}
	return co.Resolve(cfg.CatalogPath()), nil
}

func addCatalogList(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "list tabs, sections and their pages",
		Example: `
trainer catalog list
trainer catalog list --show-id
trainer catalog list --json --catalog ./week.toml
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := catalogPath(co)
			if err != nil {
				return oo.HandleError(err)
			}
			l := runner.List{
				Path:   path,
				ShowID: co.ShowID,
				Output: oo.Format(),
				Out:    cmd.OutOrStdout(),
			}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddCatalogArgs(cmd, co)
	options.AddShowIDArgs(cmd, co)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addCatalogCheck(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "validate the catalog and report every problem",
		Example: `
trainer catalog check
trainer catalog check --catalog ./week.yaml
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := catalogPath(co)
			if err != nil {
				return oo.HandleError(err)
			}
			c := runner.Check{
				Path:   path,
				Output: oo.Format(),
				Out:    cmd.OutOrStdout(),
			}
			return oo.HandleError(c.Do(cmd.Context()))
		},
	}

	options.AddCatalogArgs(cmd, co)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
