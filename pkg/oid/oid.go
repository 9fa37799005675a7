package oid

import (
	"regexp"
	"strings"
)

// OID identifies presentations, slide decks and slide blocks.
// It uses the same 40-character hexadecimal format as Git objects.
type OID string

const Nil = OID("")

// ShortLength is the number of characters displayed by the CLI.
const ShortLength = 7

var reOID = regexp.MustCompile(`^[0-9a-f]{40}$`)

func (o OID) IsNil() bool {
	return o == Nil
}

func (o OID) String() string {
	return string(o)
}

// Short returns the abbreviated form used in listings.
func (o OID) Short() string {
	if len(o) <= ShortLength {
		return string(o)
	}
	return string(o)[0:ShortLength]
}

// HasPrefix reports if the OID starts with the given abbreviation.
func (o OID) HasPrefix(prefix string) bool {
	return prefix != "" && strings.HasPrefix(string(o), strings.ToLower(prefix))
}

// New generates a new OID using the current generator.
func New() OID {
	return generator.New()
}

// NewString is a shortcut for New().String().
func NewString() string {
	return generator.New().String()
}

// IsValid checks the OID format.
func IsValid(s string) bool {
	return reOID.MatchString(s)
}

// ParseOrNil parses an OID or returns Nil when the format is invalid.
func ParseOrNil(s string) OID {
	if !IsValid(s) {
		return Nil
	}
	return OID(s)
}
