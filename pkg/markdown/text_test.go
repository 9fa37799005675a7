package markdown_test

import (
	"testing"

	"github.com/julien-sobczak/the-slidewriter/pkg/markdown"
	"github.com/stretchr/testify/assert"
)

func TestToText(t *testing.T) {
	var tests = []struct {
		name     string
		input    string
		expected string
	}{
		{
			"raw text",
			"no special Markdown character",
			"no special Markdown character",
		},
		{
			"bold with asterisks",
			"I just love **bold text**.",
			"I just love bold text.",
		},
		{
			"bold with underscores",
			"I just love __bold text__.",
			"I just love bold text.",
		},
		{
			"italic with asterisks",
			"Italicized text is the *cat's meow*.",
			"Italicized text is the cat's meow.",
		},
		{
			"italic with underscores",
			"Italicized text is the _cat's meow_.",
			"Italicized text is the cat's meow.",
		},
		{
			"underscores inside words",
			"Call snake_case_name",
			"Call snake_case_name",
		},
		{
			"inline code",
			"Run `sw present`",
			"Run sw present",
		},
		{
			"top heading",
			"# Welcome",
			"Welcome\n=======",
		},
		{
			"second heading",
			"## Features",
			"Features\n--------",
		},
		{
			"deeper heading",
			"Intro\n#### Details",
			"Intro\n    Details",
		},
		{
			"bullets",
			"- **Simple**: Just write markdown\n  * nested",
			"• Simple: Just write markdown\n  • nested",
		},
		{
			"quote",
			"> Blockquotes look nice too!\n> Really",
			"\"Blockquotes look nice too!\nReally\"",
		},
		{
			"code",
			"```javascript\nhello('World');\n```",
			"hello('World');",
		},
		{
			"links",
			"See [the docs](https://example.com) or <https://example.org>",
			"See the docs or https://example.org",
		},
		{
			"image",
			"![A cat](cat.png)",
			"[image: A cat]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, markdown.ToText(tt.input))
		})
	}
}
