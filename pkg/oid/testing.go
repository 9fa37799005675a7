package oid

import "testing"

// UseNext configures a predefined list of OIDs for the duration of the test.
func UseNext(t *testing.T, oids ...string) {
	generator = NewSuiteGenerator(oids...)
	t.Cleanup(Reset)
}

// UseFixed configures a fixed OID value for the duration of the test.
func UseFixed(t *testing.T, value OID) {
	generator = NewFixedGenerator(value)
	t.Cleanup(Reset)
}

// UseSequence configures a predictable sequence for the duration of the test.
func UseSequence(t *testing.T) {
	generator = NewSequenceGenerator()
	t.Cleanup(Reset)
}
