package cli

import (
	"encoding/json"

	"xtal/internal/report"
	"xtal/pkg/timeutil"

	"github.com/spf13/cobra"
)

func newSitesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sites",
		Short: "Manage the site library",
	}

	cmd.AddCommand(newSitesListCmd(opts))
	cmd.AddCommand(newSitesShowCmd(opts))
	cmd.AddCommand(newSitesDeleteCmd(opts))
	return cmd
}

func newSitesListCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored sites",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			summaries, err := store.ListSites()
			if err != nil {
				return err
			}

			if format == "json" {
				b, err := json.MarshalIndent(summaries, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(b))
				return nil
			}

			if len(summaries) == 0 {
				cmd.Println("No sites stored.")
				return nil
			}
			for _, s := range summaries {
				cmd.Printf("%-24s %2d atoms  %s\n",
					s.Name, s.AtomCount, timeutil.RelativeTime(s.UpdatedAt))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json")
	return cmd
}

func newSitesShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a site summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			rec, err := store.GetSite(args[0])
			if err != nil {
				return err
			}
			cmd.Print(report.Site(rec))
			return nil
		},
	}
}

func newSitesDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a site from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteSite(args[0]); err != nil {
				return err
			}
			cmd.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}
