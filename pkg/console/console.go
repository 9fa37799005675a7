package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ProgressLog rewrites a single terminal line to report the progress of a long operation.
type ProgressLog struct {
	output        io.Writer
	showBar       bool
	showPercent   bool
	maxSteps      int
	maxCharacters int
}

type ProgressLogOption func(*ProgressLog)

func NewProgressLog(maxSteps int, options ...ProgressLogOption) *ProgressLog {
	result := &ProgressLog{
		output:        os.Stdout,
		showPercent:   false,
		showBar:       true,
		maxSteps:      max(maxSteps, 1),
		maxCharacters: 80,
	}
	for _, option := range options {
		option(result)
	}
	return result
}

func ToWriter(w io.Writer) ProgressLogOption {
	return func(s *ProgressLog) {
		s.output = w
	}
}

func HideBar() ProgressLogOption {
	return func(s *ProgressLog) {
		s.showBar = false
	}
}

func ShowPercent() ProgressLogOption {
	return func(s *ProgressLog) {
		s.showPercent = true
	}
}

func LineLength(characters int) ProgressLogOption {
	return func(s *ProgressLog) {
		s.maxCharacters = characters
	}
}

// Log reports the current step.
func (l *ProgressLog) Log(currentStep int, message string) {
	currentStep = min(max(currentStep, 0), l.maxSteps)
	percent := currentStep * 100 / l.maxSteps

	var sb strings.Builder

	if l.showBar {
		// Between 0 and 10 '#' depending on the percent
		filled := percent / 10
		sb.WriteString(strings.Repeat("#", filled))
		sb.WriteString(strings.Repeat(" ", 10-filled))
		sb.WriteRune(' ')
	}

	if l.showPercent {
		sb.WriteString(fmt.Sprintf("(%3d%%) ", percent))
	} else {
		sb.WriteString(fmt.Sprintf("(%d/%d) ", currentStep, l.maxSteps))
	}

	sb.WriteString(message)

	fmt.Fprint(l.output, l.pad(sb.String()), "\r")
}

// Clear replaces the progress line by a final message. An empty message erases the line.
func (l *ProgressLog) Clear(newMessage string) {
	fmt.Fprint(l.output, l.pad(newMessage))

	if newMessage == "" {
		fmt.Fprint(l.output, "\r")
	} else {
		// Move to next line
		fmt.Fprint(l.output, "\n")
	}
}

// pad truncates or completes the line to fill exactly the line length.
func (l *ProgressLog) pad(line string) string {
	length := utf8.RuneCountInString(line)
	if length > l.maxCharacters {
		return string([]rune(line)[:l.maxCharacters])
	}
	return line + strings.Repeat(" ", l.maxCharacters-length)
}
