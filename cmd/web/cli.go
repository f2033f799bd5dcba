package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mpodlasin/mpodlasin-website/internal/catalog"
	"github.com/mpodlasin/mpodlasin-website/internal/observability"
)

// cliStore loads the article list the way the server would.
func cliStore(root *rootOptions) (*catalog.Store, error) {
	cfg, err := loadConfig(root)
	if err != nil {
		return nil, err
	}
	return loadStore(observability.NoopLogger(), cfg.Paths.Content)
}

func newTagsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "Print every tag with its article count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := cliStore(root)
			if err != nil {
				return err
			}
			for _, e := range store.Tags().Entries() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", e.Name, e.Count)
			}
			return nil
		},
	}
}

func newArticlesCmd(root *rootOptions) *cobra.Command {
	var tags []string
	cmd := &cobra.Command{
		Use:   "articles",
		Short: "Print the titles of articles carrying every given tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := cliStore(root)
			if err != nil {
				return err
			}
			index := store.Tags()
			for _, t := range tags {
				if !index.Has(strings.TrimSpace(t)) {
					fmt.Fprintf(cmd.ErrOrStderr(), "unknown tag %q (known: %s)\n", t, strings.Join(index.Names(), ", "))
				}
			}
			for _, a := range catalog.Filter(store, catalog.NewFilterState(tags...)) {
				fmt.Fprintln(cmd.OutOrStdout(), a.Title)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "enabled tag (repeatable)")
	return cmd
}
