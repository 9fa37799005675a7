package slides

import (
	"fmt"
)

// sequenceIDs returns a generator of readable block IDs.
func sequenceIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("block-%d", n)
	}
}

// recordingLogger keeps the warnings to assert on them.
type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Warnf(format string, v ...any) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Debugf(format string, v ...any) {}

func contents(blocks []Block) []string {
	var result []string
	for _, block := range blocks {
		result = append(result, block.Content)
	}
	return result
}

func ids(blocks []Block) []string {
	var result []string
	for _, block := range blocks {
		result = append(result, block.ID)
	}
	return result
}
