package main

import (
	"fmt"
	"io"
	"os"

	"github.com/julien-sobczak/the-slidewriter/internal/core"
	"github.com/julien-sobczak/the-slidewriter/pkg/oid"
	"github.com/spf13/cobra"
)

var outputFile string

func init() {
	exportCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the archive to a file instead of the standard output")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [<presentation>...]",
	Short: "Export presentations as YAML",
	Long:  `Export presentations with their slide decks as a YAML archive. Everything, settings included, is exported when no presentation is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		var oids []oid.OID
		for _, arg := range args {
			oids = append(oids, mustFindPresentation([]string{arg}).OID)
		}
		doc, err := core.CurrentRepository().ExportYAML(oids...)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if outputFile == "" {
			fmt.Print(doc)
			return
		}
		if err := os.WriteFile(outputFile, []byte(doc), 0644); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import presentations from YAML",
	Long:  `Import presentations and slide decks from a YAML archive ("-" reads the standard input). Existing presentations and decks are never overwritten.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var data []byte
		var err error
		if args[0] == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		result, err := core.CurrentRepository().ImportYAML(data)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("Imported %d presentations and %d slide decks\n", len(result.Presentations), len(result.Decks))
	},
}
