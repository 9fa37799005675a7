package main

import (
	"fmt"
	"os"

	"github.com/julien-sobczak/the-slidewriter/internal/core"
	"github.com/spf13/cobra"
)

func init() {
	presentationDeleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")

	presentationCmd.AddCommand(presentationNewCmd)
	presentationCmd.AddCommand(presentationListCmd)
	presentationCmd.AddCommand(presentationRenameCmd)
	presentationCmd.AddCommand(presentationDeleteCmd)
	presentationCmd.AddCommand(presentationUseCmd)
	presentationCmd.AddCommand(presentationMoveCmd)
	presentationCmd.AddCommand(presentationAddCmd)
	presentationCmd.AddCommand(presentationRemoveCmd)
	presentationCmd.AddCommand(presentationReorderCmd)
	rootCmd.AddCommand(presentationCmd)
}

var presentationCmd = &cobra.Command{
	Use:     "presentation",
	Aliases: []string{"p"},
	Short:   "Manage presentations",
}

var presentationNewCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a presentation",
	Long:  `Create a presentation and select it.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		presentation, err := core.CurrentRepository().CreatePresentation(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("Created %s\n", presentation)
	},
}

var presentationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List presentations",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listing, err := core.CurrentRepository().List()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Print(formatListing(listing))
	},
}

var presentationRenameCmd = &cobra.Command{
	Use:   "rename <presentation> <title>",
	Short: "Rename a presentation",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		presentation := mustFindPresentation(args[:1])
		presentation, err := core.CurrentRepository().UpdatePresentation(presentation.OID, args[1])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("Renamed %s\n", presentation)
	},
}

var presentationDeleteCmd = &cobra.Command{
	Use:   "delete <presentation>",
	Short: "Delete a presentation",
	Long:  `Delete a presentation. Its slide decks are kept.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		presentation := mustFindPresentation(args)
		if !confirm(fmt.Sprintf("Delete %s?", presentation)) {
			return
		}
		if err := core.CurrentRepository().DeletePresentation(presentation.OID); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("Deleted %s\n", presentation)
	},
}

var presentationUseCmd = &cobra.Command{
	Use:   "use <presentation>",
	Short: "Select the current presentation",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		presentation := mustFindPresentation(args)
		if err := core.CurrentRepository().SetCurrentPresentation(presentation.OID); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("Using %s\n", presentation)
	},
}

var presentationMoveCmd = &cobra.Command{
	Use:   "move <presentation> <position>",
	Short: "Move a presentation in the list of presentations",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		presentation := mustFindPresentation(args[:1])
		to, err := parsePosition(args[1])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := core.CurrentRepository().ReorderPresentations(presentation.Position, to); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var presentationAddCmd = &cobra.Command{
	Use:   "add <deck> [<presentation>]",
	Short: "Append a slide deck to a presentation",
	Long:  `Append a slide deck to a presentation (default to the current presentation).`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		deck := mustFindSlideDeck(args[:1])
		presentation := mustFindPresentation(args[1:])
		if err := core.CurrentRepository().AddSlideDeckToPresentation(presentation.OID, deck.OID); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("Added %s to %s\n", deck, presentation)
	},
}

var presentationRemoveCmd = &cobra.Command{
	Use:   "remove <deck> [<presentation>]",
	Short: "Remove a slide deck from a presentation",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		deck := mustFindSlideDeck(args[:1])
		presentation := mustFindPresentation(args[1:])
		if err := core.CurrentRepository().RemoveSlideDeckFromPresentation(presentation.OID, deck.OID); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("Removed %s from %s\n", deck, presentation)
	},
}

var presentationReorderCmd = &cobra.Command{
	Use:   "reorder <from> <to> [<presentation>]",
	Short: "Move a slide deck inside a presentation",
	Args:  cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		from, err := parsePosition(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		to, err := parsePosition(args[1])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		presentation := mustFindPresentation(args[2:])
		if err := core.CurrentRepository().ReorderSlideDecksInPresentation(presentation.OID, from, to); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}
