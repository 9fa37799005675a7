package main

import (
	"fmt"
	"os"

	"github.com/julien-sobczak/the-slidewriter/internal/core"
	"github.com/julien-sobczak/the-slidewriter/internal/tui"
	"github.com/julien-sobczak/the-slidewriter/pkg/filesystem"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var htmlMode bool
var terminalMode bool
var noBrowser bool

func init() {
	presentCmd.Flags().BoolVarP(&htmlMode, "html", "", false, "Export the slideshow as HTML and open it in the browser")
	presentCmd.Flags().BoolVarP(&terminalMode, "terminal", "", false, "Present the slideshow in the terminal")
	presentCmd.Flags().BoolVarP(&noBrowser, "no-browser", "", false, "Only export the HTML page")
	presentCmd.MarkFlagsMutuallyExclusive("html", "terminal")
	rootCmd.AddCommand(presentCmd)
}

var presentCmd = &cobra.Command{
	Use:   "present [<presentation>]",
	Short: "Present a slideshow",
	Long:  `Present the slide decks of a presentation (default to the current presentation) one slide at a time.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r := core.CurrentRepository()

		html := core.CurrentConfig().ConfigFile.Present.Mode == core.PresentModeHTML
		if htmlMode {
			html = true
		}
		if terminalMode {
			html = false
		}

		settings, err := r.LoadSettings()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		var slideshow *core.Slideshow
		if len(args) == 0 {
			slideshow, err = r.CurrentSlideshow()
		} else {
			presentation := mustFindPresentation(args)
			slideshow, err = r.Slideshow(presentation.OID)
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if !html {
			if err := tui.RunPresenter(slideshow, settings); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			return
		}

		presentation := mustFindPresentation(args)
		export, err := r.ExportHTML(presentation.OID, os.Stdout)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("Exported %d slides to %s (%s)\n", export.Slides, export.Path, filesystem.HumanSize(export.Size))
		if noBrowser {
			return
		}
		if err := browser.OpenURL("file://" + export.Path); err != nil {
			fmt.Fprintf(os.Stderr, "Unable to browse to %s: %v\n", export.Path, err)
			os.Exit(1)
		}
	},
}
