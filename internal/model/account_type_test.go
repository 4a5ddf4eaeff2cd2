package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		input string
		want  AccountType
	}{
		{"personal", AccountTypePersonal},
		{"professional", AccountTypeProfessional},
		{"unknown", AccountTypeUnknown},
		{"", AccountTypeUnknown},
		{"Personal", AccountTypeUnknown},
		{" personal", AccountTypeUnknown},
		{"personal ", AccountTypeUnknown},
		{"anything-unrecognized", AccountTypeUnknown},
	}
	for _, tt := range tests {
		got := ParseAccountType(tt.input)
		assert.Equal(t, tt.want, got, "input: %q", tt.input)
	}
}

func TestParseAccountType_RoundTrip(t *testing.T) {
	for _, at := range AccountTypes() {
		assert.Equal(t, at, ParseAccountType(at.Code()))
		assert.Equal(t, at.Code(), ParseAccountType(at.Code()).Code())
	}
}

func TestParseAccountTypePtr(t *testing.T) {
	assert.Equal(t, AccountTypeUnknown, ParseAccountTypePtr(nil))

	code := "professional"
	assert.Equal(t, AccountTypeProfessional, ParseAccountTypePtr(&code))

	bogus := "corporate"
	assert.Equal(t, AccountTypeUnknown, ParseAccountTypePtr(&bogus))
}

func TestAccountTypes_DistinctCodes(t *testing.T) {
	types := AccountTypes()
	assert.Len(t, types, 3)

	seen := make(map[string]bool)
	for _, at := range types {
		assert.False(t, seen[at.Code()], "duplicate code %q", at.Code())
		seen[at.Code()] = true
	}
}

func TestAccountTypes_ReturnsCopy(t *testing.T) {
	types := AccountTypes()
	types[0] = "mutated"
	assert.Equal(t, AccountTypePersonal, AccountTypes()[0])
}

func TestIndexAccountTypes_PanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		indexAccountTypes([]AccountType{AccountTypePersonal, AccountTypePersonal})
	})
}
