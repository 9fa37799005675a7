package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/julien-sobczak/the-slidewriter/internal/core"
	"github.com/spf13/cobra"
)

var settingsYAML bool

func init() {
	settingsListCmd.Flags().BoolVarP(&settingsYAML, "yaml", "", false, "Print the effective settings as YAML")

	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage slideshow settings",
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List settings",
	Long:  `List settings by category. Values overriding the default are marked with *.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		r := core.CurrentRepository()
		settings, err := r.LoadSettings()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if settingsYAML {
			doc, err := core.ToBeautifulYAML(settings)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			fmt.Print(doc)
			return
		}

		stored, err := r.StoredSettings()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Print(formatSettings(settings, stored))
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the value of a setting",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		definition, err := core.LookupSetting(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		settings, err := core.CurrentRepository().LoadSettings()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(definition.Read(&settings))
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := core.CurrentRepository().SetSetting(args[0], args[1]); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset [<key>...]",
	Short: "Restore default settings",
	Long:  `Restore the default value of the given settings, or of all settings.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := core.CurrentRepository().ResetSettings(args...); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// formatSettings prints every setting grouped by category.
func formatSettings(settings core.Settings, stored map[string]string) string {
	var sb strings.Builder
	for i, category := range core.SettingCategories {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(core.CategoryTitle(category) + ":\n")
		for _, definition := range core.SettingsInCategory(category) {
			marker := " "
			if _, ok := stored[definition.Key]; ok {
				marker = "*"
			}
			value := definition.Read(&settings).String()
			if definition.Units != "" {
				value += " " + definition.Units
			}
			fmt.Fprintf(&sb, "%s %-32s %s\n", marker, definition.Key, value)
		}
	}
	return sb.String()
}
