package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/semester/internal/persist"
)

var flagSchemaOut string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the save format",
	Long: `Print a JSON schema describing the game state stored in saves, as
printed by 'semester status --yaml'.

Examples:
  semester schema
  semester schema --out save.schema.json`,
	Args: cobra.NoArgs,
	Run:  runSchema,
}

func init() {
	schemaCmd.Flags().StringVarP(&flagSchemaOut, "out", "o", "", "Write the schema to a file")
}

func runSchema(_ *cobra.Command, _ []string) {
	data, err := persist.SchemaJSON()
	if err != nil {
		fail("%v", err)
	}

	if flagSchemaOut == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(flagSchemaOut, data, 0o644); err != nil {
		fail("cannot write schema: %v", err)
	}
	fmt.Printf("Wrote %s\n", flagSchemaOut)
}
