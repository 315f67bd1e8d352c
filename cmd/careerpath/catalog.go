package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/careerpath/internal/catalog"
	"github.com/aanand-mishra/careerpath/internal/config"
	"github.com/aanand-mishra/careerpath/internal/storage"
	"github.com/aanand-mishra/careerpath/internal/storage/sqlite"
	"github.com/aanand-mishra/careerpath/internal/types"
)

func catalogCmd(configPath *string) *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "catalog [kind]",
		Short: "Print catalog entries as JSON",
		Long: `Print every entry of one catalog kind as indented JSON.

Kinds: ` + strings.Join(types.Kinds, ", ") + `

Without a kind, the kind names are listed.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: types.Kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, k := range types.Kinds {
					fmt.Fprintln(cmd.OutOrStdout(), k)
				}
				return nil
			}

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			db, err := sqlite.New(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if seed {
				if err := db.Seed(catalog.Default()); err != nil {
					return err
				}
			}

			entries, err := storage.Kind(db, args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "seed the built-in catalog before reading")
	return cmd
}
