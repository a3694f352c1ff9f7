package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteLine(t *testing.T) {
	got := NoteLine("2025-11-20T09:00:00Z", "field-team", "sub-1", "manager out")
	assert.Equal(t, "[2025-11-20T09:00:00Z | field-team | sub-1] manager out", got)
}

func TestAppendNote_Empty(t *testing.T) {
	assert.Equal(t, "entry", AppendNote("", "entry"))
	assert.Equal(t, "entry", AppendNote("   ", "entry"))
}

func TestAppendNote_SeparatesEntries(t *testing.T) {
	got := AppendNote("first\n", "second")
	assert.Equal(t, "first\n\nsecond", got)
}

func TestHasNote(t *testing.T) {
	notes := "[2025-11-20T09:00:00Z | ft | sub-1] manager out"
	assert.True(t, HasNote(notes, "sub-1"))
	assert.False(t, HasNote(notes, "sub-2"))
	assert.False(t, HasNote(notes, ""))
	assert.False(t, HasNote(notes, "sub"), "prefix of an id does not match")
}
