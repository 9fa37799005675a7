package core

import (
	"github.com/julien-sobczak/the-slidewriter/pkg/text"
)

// SampleTitle is the title of the deck created with the sample content.
const SampleTitle = "Welcome"

// SampleMarkdown demonstrates the supported syntax.
var SampleMarkdown = text.UnescapeBackticks(`# Welcome to Markdown Slideshow

This is your first slide. Write your content here using standard markdown.

---

## Features

- **Simple**: Just write markdown
- **Clean**: Minimal interface
- **Fast**: Keyboard navigation
- **Responsive**: Works on any screen

---

## Navigation

Use these keys to navigate:

- **→ / Space**: Next slide
- **← / ↑**: Previous slide
- **Home**: First slide
- **End**: Last slide

---

## Code Support

”””go
func hello(name string) {
	fmt.Printf("Hello, %s!\n", name)
}
”””

---

## Lists and More

1. Ordered lists work great
2. So do bullet points
3. And everything else you'd expect

> Blockquotes look nice too!

---

# Ready to Present?

Run ”sw present” or replace this content with your own markdown!

Separate slides with ”---”`)

// LoadSample replaces the content of a deck by the sample content.
func (r *Repository) LoadSample(deck *SlideDeck) error {
	deck.SetContent(SampleMarkdown)
	return r.UpdateSlideDeck(deck)
}
