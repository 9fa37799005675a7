package main

import (
	"fmt"
	"os"

	"github.com/julien-sobczak/the-slidewriter/internal/core"
	"github.com/spf13/cobra"
)

var jqExpr string
var listFormat string

func init() {
	listCmd.Flags().StringVarP(&jqExpr, "jq", "", "", "Filter the JSON listing with a jq expression")
	listCmd.Flags().StringVarP(&listFormat, "format", "", "text", "Output format (text, json, yaml)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List presentations and slide decks",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listing, err := core.CurrentRepository().List()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if jqExpr != "" {
			results, err := listing.Query(jqExpr)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			for _, result := range results {
				output, err := formatQueryResult(result)
				if err != nil {
					fmt.Println(err)
					os.Exit(1)
				}
				fmt.Println(output)
			}
			return
		}

		output, err := formatListingAs(listing, listFormat)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Print(output)
	},
}

// formatQueryResult prints strings as is and other values as JSON like jq -r.
func formatQueryResult(result any) (string, error) {
	if s, ok := result.(string); ok {
		return s, nil
	}
	return core.ToBeautifulJSON(result)
}

func formatListingAs(listing *core.Listing, format string) (string, error) {
	switch format {
	case "text":
		return formatListing(listing), nil
	case "json":
		doc, err := core.ToBeautifulJSON(listing)
		if err != nil {
			return "", err
		}
		return doc + "\n", nil
	case "yaml":
		return core.ToBeautifulYAML(listing)
	}
	return "", fmt.Errorf("unsupported format %q (expected text, json or yaml)", format)
}
