// In file: internal/tools/string_tools_test.go
package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, RegisterStringTools(r))
	return r
}

func TestCountVowels(t *testing.T) {
	r := stringRegistry(t)

	tests := []struct {
		text string
		want int64
	}{
		{"Multimodality", 6}, // y counts as a vowel
		{"reasoning", 4},
		{"AEIOU", 5},
		{"rhythm", 1},
		{"bcdfg", 0},
		{"", 0},
	}
	for _, tc := range tests {
		v, err := callTool(t, r, "count_vowels", StringValue(tc.text))
		require.NoError(t, err)
		assert.Equal(t, tc.want, v.Int64(), "count_vowels(%q)", tc.text)
	}
}

func TestCountConsonants(t *testing.T) {
	r := stringRegistry(t)

	tests := []struct {
		text string
		want int64
	}{
		{"machine", 4},
		{"intelligence", 7},
		{"aeiou", 0},
	}
	for _, tc := range tests {
		v, err := callTool(t, r, "count_consonants", StringValue(tc.text))
		require.NoError(t, err)
		assert.Equal(t, tc.want, v.Int64(), "count_consonants(%q)", tc.text)
	}
}

func TestCountLettersAndWords(t *testing.T) {
	r := stringRegistry(t)

	v, err := callTool(t, r, "count_letters", StringValue("a1b2 c3!"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Int64())

	v, err = callTool(t, r, "count_words", StringValue("  the quick  brown fox "))
	require.NoError(t, err)
	assert.Equal(t, int64(4), v.Int64())
}

func TestCharacterCounts(t *testing.T) {
	r := stringRegistry(t)

	v, err := callTool(t, r, "count_characters", StringValue("ab cd"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.Int64())

	v, err = callTool(t, r, "count_characters_no_spaces", StringValue("ab cd"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), v.Int64())

	v, err = callTool(t, r, "word_length", StringValue("machine"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.Int64())
}

func TestCaseDigitAndSpecialCounts(t *testing.T) {
	r := stringRegistry(t)

	text := StringValue("Go 1.24, release!")

	v, err := callTool(t, r, "count_digits", text)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Int64())

	v, err = callTool(t, r, "count_uppercase", text)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int64())

	v, err = callTool(t, r, "count_lowercase", text)
	require.NoError(t, err)
	assert.Equal(t, int64(8), v.Int64())

	// '.', ',' and '!' are special; spaces are not.
	v, err = callTool(t, r, "count_special_characters", text)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Int64())
}
