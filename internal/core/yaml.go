package core

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default indentation in exported documents
const Indent int = 2

var reSequenceItem = regexp.MustCompile(`^(\s*)  (- .*)$`)

// ToYAML marshals a value using the default indentation.
func ToYAML(v any) (string, error) {
	var buf bytes.Buffer
	bufEncoder := yaml.NewEncoder(&buf)
	bufEncoder.SetIndent(Indent)
	if err := bufEncoder.Encode(v); err != nil {
		return "", err
	}
	if err := bufEncoder.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToBeautifulYAML marshals a value using a compact indentation.
// Values containing multiline strings must use ToYAML instead.
func ToBeautifulYAML(v any) (string, error) {
	doc, err := ToYAML(v)
	if err != nil {
		return "", err
	}
	return CompactYAML(doc), nil
}

// ToBeautifulJSON marshals a value as indented JSON.
func ToBeautifulJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", strings.Repeat(" ", Indent))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// CompactYAML removes leading spaces in front of sequences.
//
// Ex:
//
//	doc:
//	  - title: Intro
//
// Becomes
//
//	doc:
//	- title: Intro
func CompactYAML(doc string) string {
	// Indenting sequences using zero-space (compact form) is not supported:
	// https://github.com/go-yaml/yaml/issues/661
	var buf bytes.Buffer
	insideSequence := false
	var leadingSpaces string // the spaces prefix for successive lines in the sequence
	for _, line := range strings.Split(strings.TrimSuffix(doc, "\n"), "\n") {
		if reSequenceItem.MatchString(line) {
			rs := reSequenceItem.FindStringSubmatch(line)
			buf.WriteString(rs[1] + rs[2])
			buf.WriteString("\n")
			insideSequence = true
			leadingSpaces = rs[1] + "    "
		} else if insideSequence && strings.HasPrefix(line, leadingSpaces) {
			buf.WriteString(line[Indent:])
			buf.WriteString("\n")
		} else {
			buf.WriteString(line)
			buf.WriteString("\n")
			insideSequence = false
			leadingSpaces = ""
		}
	}
	return buf.String()
}
