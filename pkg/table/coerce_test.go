// pkg/table/coerce_test.go
package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTruncatesTimeOfDay(t *testing.T) {
	parsed, ok := ParseDate("2024-01-15 08:30:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), parsed)
}

func TestParseDateFormats(t *testing.T) {
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{
		"2024-01-15",
		"2024-01-15T08:30:00",
		"01-15-24",
		"1/15/2024",
		"1/15/24",
		"15-Jan-24",
	} {
		parsed, ok := ParseDate(input)
		require.True(t, ok, "input %q should parse", input)
		assert.Equal(t, want, parsed, "input %q", input)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "not a date", "TOTAL", "42.5"} {
		_, ok := ParseDate(input)
		assert.False(t, ok, "input %q should not parse", input)
	}
}

func TestParseNumber(t *testing.T) {
	f, ok := ParseNumber("42.5")
	require.True(t, ok)
	assert.Equal(t, 42.5, f)

	_, ok = ParseNumber("1,234")
	assert.False(t, ok, "thousands separators are not numbers")

	_, ok = ParseNumber("")
	assert.False(t, ok)
}

func TestCoerceNumber(t *testing.T) {
	c := CoerceNumber(Text("42.5"))
	assert.Equal(t, KindNumber, c.Kind)
	assert.Equal(t, 42.5, c.Num)

	// Unparseable values become null, never an error.
	assert.True(t, CoerceNumber(Text("1,234")).IsNull())
	assert.True(t, CoerceNumber(Text("")).IsNull())
	assert.True(t, CoerceNumber(Null()).IsNull())
}

func TestCoerceDate(t *testing.T) {
	c := CoerceDate(Text("2024-01-15 08:30:00"))
	require.Equal(t, KindDate, c.Kind)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), c.Time)

	assert.True(t, CoerceDate(Text("bogus")).IsNull())
	assert.True(t, CoerceDate(Text("")).IsNull())

	// An existing date cell keeps its day but loses time-of-day.
	c = CoerceDate(Cell{Kind: KindDate, Time: time.Date(2024, 2, 1, 13, 45, 0, 0, time.UTC)})
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), c.Time)
}
