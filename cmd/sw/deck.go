package main

import (
	"fmt"
	"os"

	"github.com/julien-sobczak/the-slidewriter/internal/core"
	"github.com/julien-sobczak/the-slidewriter/internal/tui"
	"github.com/spf13/cobra"
)

var sample bool
var rawMode bool
var visualMode bool
var mediaType string
var slideNumber int
var compareFile string
var dryRun bool
var deckFile string
var withFrontMatter bool

func init() {
	deckNewCmd.Flags().BoolVarP(&sample, "sample", "", false, "Fill the deck with sample slides")
	deckNewCmd.Flags().StringVarP(&deckFile, "file", "f", "", "Create the deck from a Markdown file")
	deckNewCmd.MarkFlagsMutuallyExclusive("sample", "file")
	deckDeleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
	deckBackgroundCmd.Flags().StringVarP(&mediaType, "type", "t", string(core.MediaTypeImage), "Media type of the background (image or video)")
	deckCatCmd.Flags().IntVarP(&slideNumber, "slide", "s", 0, "Print only the given slide (starting at 1)")
	deckCatCmd.Flags().BoolVarP(&withFrontMatter, "front-matter", "", false, "Include the title and background as front matter")
	deckCatCmd.MarkFlagsMutuallyExclusive("slide", "front-matter")
	deckDiffCmd.Flags().StringVarP(&compareFile, "file", "f", "", "Compare with the content of a file instead of the normalized content")
	deckFmtCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Only show the changes")
	deckEditCmd.Flags().BoolVarP(&rawMode, "raw", "", false, "Edit the raw Markdown in the external editor")
	deckEditCmd.Flags().BoolVarP(&visualMode, "visual", "", false, "Edit slides one by one in the terminal")
	deckEditCmd.MarkFlagsMutuallyExclusive("raw", "visual")

	deckCmd.AddCommand(deckNewCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckRenameCmd)
	deckCmd.AddCommand(deckDeleteCmd)
	deckCmd.AddCommand(deckUseCmd)
	deckCmd.AddCommand(deckBackgroundCmd)
	deckCmd.AddCommand(deckCatCmd)
	deckCmd.AddCommand(deckDiffCmd)
	deckCmd.AddCommand(deckFmtCmd)
	deckCmd.AddCommand(deckEditCmd)
	rootCmd.AddCommand(deckCmd)
}

var deckCmd = &cobra.Command{
	Use:     "deck",
	Aliases: []string{"d"},
	Short:   "Manage slide decks",
}

var deckNewCmd = &cobra.Command{
	Use:   "new [<title>]",
	Short: "Create a slide deck",
	Long: `Create a slide deck and select it.

With --file, the deck is created from a Markdown file. The title and background
can be declared in a YAML front matter. The title defaults to the first heading.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r := core.CurrentRepository()

		if deckFile != "" {
			deck, err := r.CreateSlideDeckFromFile(deckFile)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			if len(args) > 0 {
				deck.SetTitle(args[0])
				if err := r.UpdateSlideDeck(deck); err != nil {
					fmt.Println(err)
					os.Exit(1)
				}
			}
			fmt.Printf("Created %s from %s\n", deck, deckFile)
			return
		}

		if len(args) == 0 {
			fmt.Println("Missing title")
			os.Exit(1)
		}
		deck, err := r.CreateSlideDeck(args[0], core.CurrentConfig().ConfigFile.Editor.DefaultSlide)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if sample {
			if err := r.LoadSample(deck); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		}
		fmt.Printf("Created %s\n", deck)
	},
}

var deckListCmd = &cobra.Command{
	Use:   "list",
	Short: "List slide decks",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listing, err := core.CurrentRepository().List()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if len(listing.Decks) == 0 {
			fmt.Println("No slide decks")
			return
		}
		for _, deck := range listing.Decks {
			marker := " "
			if deck.OID == listing.CurrentDeck {
				marker = "*"
			}
			fmt.Printf("%s %-20s %-30s %d\n", marker, deck.Slug, deck.Title, deck.Slides)
		}
	},
}

var deckRenameCmd = &cobra.Command{
	Use:   "rename <deck> <title>",
	Short: "Rename a slide deck",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		deck := mustFindSlideDeck(args[:1])
		deck.SetTitle(args[1])
		if err := core.CurrentRepository().UpdateSlideDeck(deck); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("Renamed %s\n", deck)
	},
}

var deckDeleteCmd = &cobra.Command{
	Use:   "delete <deck>",
	Short: "Delete a slide deck",
	Long:  `Delete a slide deck and remove it from every presentation.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deck := mustFindSlideDeck(args)
		if !confirm(fmt.Sprintf("Delete %s?", deck)) {
			return
		}
		if err := core.CurrentRepository().DeleteSlideDeck(deck.OID); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("Deleted %s\n", deck)
	},
}

var deckUseCmd = &cobra.Command{
	Use:   "use <deck>",
	Short: "Select the current slide deck",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deck := mustFindSlideDeck(args)
		if err := core.CurrentRepository().SetCurrentSlideDeck(deck.OID); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("Using %s\n", deck)
	},
}

var deckBackgroundCmd = &cobra.Command{
	Use:   "background <url> [<deck>]",
	Short: "Set the background of a slide deck",
	Long: `Set the image or video displayed behind every slide of a deck. An empty URL removes the background.

The media type is guessed from the file extension unless --type is set.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		deck := mustFindSlideDeck(args[1:])
		parsedType := core.InferMediaType(args[0])
		if cmd.Flags().Changed("type") {
			var err error
			parsedType, err = core.ParseMediaType(mediaType)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		}
		deck.SetBackground(args[0], parsedType)
		if err := core.CurrentRepository().UpdateSlideDeck(deck); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var deckCatCmd = &cobra.Command{
	Use:   "cat [<deck>]",
	Short: "Print the content of a slide deck",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deck := mustFindSlideDeck(args)
		if withFrontMatter {
			file, err := core.FormatDeckFile(deck)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			fmt.Print(file)
			return
		}
		if slideNumber == 0 {
			fmt.Println(deck.Content)
			return
		}
		slides := deck.Slides()
		if slideNumber < 1 || slideNumber > len(slides) {
			fmt.Printf("Slide %d does not exist (%s has %d slides)\n", slideNumber, deck, len(slides))
			os.Exit(1)
		}
		fmt.Println(slides[slideNumber-1])
	},
}

var deckDiffCmd = &cobra.Command{
	Use:   "diff [<deck>]",
	Short: "Show changes",
	Long:  `Show changes between the stored content and its normalized form, or the content of a file.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deck := mustFindSlideDeck(args)
		newContent := core.NormalizeMarkdown(deck.Content)
		if compareFile != "" {
			data, err := os.ReadFile(compareFile)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			newContent = string(data)
		}
		printDiff(core.DiffSlideDeck(deck, newContent))
	},
}

var deckFmtCmd = &cobra.Command{
	Use:   "fmt [<deck>]",
	Short: "Normalize slide separators",
	Long:  `Rewrite a slide deck so that slides are separated by a single "---" surrounded by blank lines.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deck := mustFindSlideDeck(args)
		normalized := core.NormalizeMarkdown(deck.Content)
		diff := core.DiffSlideDeck(deck, normalized)
		if diff == "" {
			return
		}
		printDiff(diff)
		if dryRun {
			return
		}
		deck.SetContent(normalized)
		if err := core.CurrentRepository().UpdateSlideDeck(deck); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var deckEditCmd = &cobra.Command{
	Use:   "edit [<deck>]",
	Short: "Edit a slide deck",
	Long:  `Edit a slide deck in the terminal, one slide at a time, or in the external editor with --raw.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deck := mustFindSlideDeck(args)
		r := core.CurrentRepository()

		raw := core.CurrentConfig().ConfigFile.Editor.Mode == core.EditorModeRaw
		if rawMode {
			raw = true
		}
		if visualMode {
			raw = false
		}

		if raw {
			edited, err := core.EditInExternalEditor(deck.Slug+".md", deck.Content)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			printDiff(core.DiffSlideDeck(deck, edited))
			deck.SetContent(edited)
			if err := r.UpdateSlideDeck(deck); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			return
		}

		session, err := r.NewDeckSession(deck)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := tui.RunEditor(session, deck.Title); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		core.DumpSession(session)
	},
}
