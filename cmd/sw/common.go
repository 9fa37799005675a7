package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/julien-sobczak/the-slidewriter/internal/core"
	"github.com/julien-sobczak/the-slidewriter/pkg/oid"
	"github.com/julien-sobczak/the-slidewriter/pkg/text"
)

// Skip confirmation prompts
var assumeYes bool

func CheckConfig() {
	err := core.CurrentConfig().Check()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// confirm asks the user before a destructive action.
func confirm(message string) bool {
	if assumeYes {
		return true
	}
	answer := false
	prompt := &survey.Confirm{
		Message: message,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false
	}
	return answer
}

func printDiff(diff string) {
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---") {
			color.Red(line)
		} else if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			color.Green(line)
		} else {
			fmt.Println(line)
		}
	}
}

// parsePosition converts a position as displayed to users (starting at 1) to an index.
func parsePosition(value string) (int, error) {
	position, err := strconv.Atoi(value)
	if err != nil || position < 1 {
		return 0, fmt.Errorf("%w: %q (positions start at 1)", core.ErrInvalidPosition, value)
	}
	return position - 1, nil
}

// mustFindPresentation resolves a presentation from a reference, or the current presentation without one.
func mustFindPresentation(args []string) *core.Presentation {
	r := core.CurrentRepository()
	if len(args) == 0 {
		presentation, err := r.CurrentPresentation()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if presentation == nil {
			fmt.Println("No presentation selected. Use \"sw presentation use <presentation>\" first.")
			os.Exit(1)
		}
		return presentation
	}
	presentation, err := r.FindPresentation(args[0])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return presentation
}

// mustFindSlideDeck resolves a slide deck from a reference, or the current deck without one.
func mustFindSlideDeck(args []string) *core.SlideDeck {
	r := core.CurrentRepository()
	if len(args) == 0 {
		deck, err := r.CurrentSlideDeck()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if deck == nil {
			fmt.Println("No slide deck selected. Use \"sw deck use <deck>\" first.")
			os.Exit(1)
		}
		return deck
	}
	deck, err := r.FindSlideDeck(args[0])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return deck
}

// formatListing prints presentations and their decks like a table of contents.
func formatListing(listing *core.Listing) string {
	var sb strings.Builder

	titles := make(map[string]string)
	for _, deck := range listing.Decks {
		titles[deck.OID] = deck.Title
	}

	if len(listing.Presentations) == 0 {
		sb.WriteString("No presentations\n")
	}
	for _, presentation := range listing.Presentations {
		marker := " "
		if presentation.OID == listing.CurrentPresentation {
			marker = "*"
		}
		fmt.Fprintf(&sb, "%s %d. %s [%s] (%d %s)\n",
			marker,
			presentation.Position+1,
			presentation.Title,
			oid.OID(presentation.OID).Short(),
			presentation.Slides,
			text.Pluralize(presentation.Slides, "slide", "slides"))
		for _, deckOID := range presentation.Decks {
			fmt.Fprintf(&sb, "     - %s\n", titles[deckOID])
		}
	}

	sb.WriteString("\nSlide decks:\n")
	if len(listing.Decks) == 0 {
		sb.WriteString("  (none)\n")
	}
	for _, deck := range listing.Decks {
		marker := " "
		if deck.OID == listing.CurrentDeck {
			marker = "*"
		}
		fmt.Fprintf(&sb, "%s %s [%s] %s (%d %s)\n",
			marker,
			deck.Slug,
			oid.OID(deck.OID).Short(),
			deck.Title,
			deck.Slides,
			text.Pluralize(deck.Slides, "slide", "slides"))
	}
	return sb.String()
}
