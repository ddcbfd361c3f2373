/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/inkwell-books/apiserver/internal/store"
	"github.com/spf13/cobra"
)

// catalogCmd represents the catalog command.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect catalog seed data",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Parse a catalog seed file and report its contents",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			books []store.SeedBook
			err   error
		)
		if len(args) == 1 {
			books, err = store.LoadSeedFile(args[0])
		} else {
			books, err = store.DefaultSeed()
		}
		if err != nil {
			return fmt.Errorf("seed validation failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "seed OK: %d books\n", len(books))
		for _, b := range books {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s  %q by %s\n", b.ISBN, b.Title, b.Author)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}
