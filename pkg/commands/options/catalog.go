package options

import (
	"github.com/spf13/cobra"
)

// CatalogOptions selects the page catalog a command reads.
type CatalogOptions struct {
	Path   string
	ShowID bool
}

func AddCatalogArgs(cmd *cobra.Command, o *CatalogOptions) {
	cmd.Flags().StringVar(&o.Path, "catalog", "",
		"Path to a catalog file (yaml, json or toml). Defaults to the configured catalog.")
}

func AddShowIDArgs(cmd *cobra.Command, o *CatalogOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the id of each page.")
}

// Resolve falls back to the configured catalog path when --catalog is unset.
func (o *CatalogOptions) Resolve(configured string) string {
	if o.Path != "" {
		return o.Path
	}
	return configured
}
