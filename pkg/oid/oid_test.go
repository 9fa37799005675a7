package oid_test

import (
	"testing"

	"github.com/julien-sobczak/the-slidewriter/pkg/oid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueGenerator(t *testing.T) {
	gen := oid.NewUniqueGenerator()

	oid1 := gen.New()
	oid2 := gen.New()

	assert.NotEqual(t, oid1, oid2)
	assert.Len(t, oid1, 40)
	assert.True(t, oid.IsValid(oid1.String()))
}

func TestSuiteGenerator(t *testing.T) {
	gen := oid.NewSuiteGenerator(
		"1234567890abcdef1234567890abcdef12345678",
		"abcdef1234567890abcdef1234567890abcdef12",
	)

	assert.Equal(t, oid.OID("1234567890abcdef1234567890abcdef12345678"), gen.New())
	assert.Equal(t, oid.OID("abcdef1234567890abcdef1234567890abcdef12"), gen.New())
	assert.Panics(t, func() { gen.New() })
}

func TestSequenceGenerator(t *testing.T) {
	oid.UseSequence(t)

	assert.Equal(t, oid.OID("0000000000000000000000000000000000000001"), oid.New())
	assert.Equal(t, "0000000000000000000000000000000000000002", oid.NewString())
}

func TestFixedGenerator(t *testing.T) {
	oid.UseFixed(t, "42d74d967d9b4e989502647ac510777ca1e22f4a")

	assert.Equal(t, oid.New(), oid.New())
}

func TestOID(t *testing.T) {
	o := oid.OID("42d74d967d9b4e989502647ac510777ca1e22f4a")

	assert.Equal(t, "42d74d9", o.Short())
	assert.True(t, o.HasPrefix("42d7"))
	assert.True(t, o.HasPrefix("42D7"))
	assert.False(t, o.HasPrefix(""))
	assert.False(t, o.HasPrefix("ff"))
	assert.False(t, o.IsNil())
	assert.True(t, oid.Nil.IsNil())

	require.Equal(t, o, oid.ParseOrNil(o.String()))
	assert.Equal(t, oid.Nil, oid.ParseOrNil("not-an-oid"))
}
