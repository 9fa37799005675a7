package text

import "strings"

// UnescapeBackticks supports content using a special character instead of backticks.
//
// Multiline strings in Go cannot contain backticks but Markdown uses them for
// code. The ” and ‛ characters are replaced by backticks.
//
// Example: ”sw present” will become `sw present`
func UnescapeBackticks(content string) string {
	result := strings.ReplaceAll(content, "”", "`")
	return strings.ReplaceAll(result, "‛", "`")
}
