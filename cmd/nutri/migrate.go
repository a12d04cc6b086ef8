// ABOUTME: CLI command for migrating data between storage backends.
// ABOUTME: Copies every key from one backend to another.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateDryRun bool

var migrateCmd = &cobra.Command{
	Use:   "migrate <from> <to>",
	Short: "Migrate data between storage backends",
	Long: `Copy all data from one storage backend to another.

Every key in the source backend is written to the destination, overwriting
any existing value there. The source is left untouched.

BACKENDS:

  badger, sqlite, charm

USAGE:

  nutri migrate badger sqlite --dry-run   # Preview what would be copied
  nutri migrate badger charm              # Move local data to cloud sync

AFTER MIGRATION:

  Set the new backend as the default:
    NUTRI_BACKEND=sqlite nutri today
  or update backend in ~/.config/nutri/config.json.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to := args[0], args[1]
		if from == to {
			return fmt.Errorf("source and destination backends are the same: %s", from)
		}

		src, err := cfg.OpenBackend(from)
		if err != nil {
			return fmt.Errorf("open source backend: %w", err)
		}
		defer src.Close()

		keys, err := src.Keys()
		if err != nil {
			return fmt.Errorf("list source keys: %w", err)
		}
		if len(keys) == 0 {
			fmt.Println("Nothing to migrate.")
			return nil
		}

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			for _, k := range keys {
				fmt.Printf("  would copy %s\n", k)
			}
			return nil
		}

		dst, err := cfg.OpenBackend(to)
		if err != nil {
			return fmt.Errorf("open destination backend: %w", err)
		}
		defer dst.Close()

		for _, k := range keys {
			data, err := src.Get(k)
			if err != nil {
				return fmt.Errorf("read %s: %w", k, err)
			}
			if data == nil {
				continue
			}
			if err := dst.Set(k, data); err != nil {
				return fmt.Errorf("write %s: %w", k, err)
			}
			fmt.Printf("  copied %s\n", k)
		}

		color.Green("✓ Migrated %d keys from %s to %s", len(keys), from, to)
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
