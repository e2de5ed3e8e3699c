// In file: internal/tools/string_tools.go
package tools

import (
	"strings"
	"unicode"
)

// RegisterStringTools adds the text analysis tool catalog to the registry.
func RegisterStringTools(r *Registry) error {
	specs := []Spec{
		{
			Name:        "count_vowels",
			Description: "Count the number of vowels in a word or phrase.",
			Args:        ArgsText,
			MinArgs:     1,
			MaxArgs:     1,
			Fn:          countWith(isVowel),
		},
		{
			Name:        "count_consonants",
			Description: "Count the number of consonants in a word or phrase.",
			Args:        ArgsText,
			MinArgs:     1,
			MaxArgs:     1,
			Fn:          countWith(isConsonant),
		},
		{
			Name:        "count_letters",
			Description: "Count the number of alphabetic characters in text.",
			Args:        ArgsText,
			MinArgs:     1,
			MaxArgs:     1,
			Fn:          countWith(unicode.IsLetter),
		},
		{
			Name:        "count_words",
			Description: "Count the number of words in text.",
			Args:        ArgsText,
			MinArgs:     1,
			MaxArgs:     1,
			Fn:          countWordsTool,
		},
		{
			Name:        "count_characters",
			Description: "Count the total number of characters in text.",
			Args:        ArgsText,
			MinArgs:     1,
			MaxArgs:     1,
			Fn: func(args []Value) (Value, error) {
				return IntValue(int64(len([]rune(args[0].Text())))), nil
			},
		},
		{
			Name:        "count_characters_no_spaces",
			Description: "Count the number of characters in text, excluding spaces.",
			Args:        ArgsText,
			MinArgs:     1,
			MaxArgs:     1,
			Fn: func(args []Value) (Value, error) {
				stripped := strings.ReplaceAll(args[0].Text(), " ", "")
				return IntValue(int64(len([]rune(stripped)))), nil
			},
		},
		{
			Name:        "count_digits",
			Description: "Count the number of digits in text.",
			Args:        ArgsText,
			MinArgs:     1,
			MaxArgs:     1,
			Fn:          countWith(unicode.IsDigit),
		},
		{
			Name:        "count_uppercase",
			Description: "Count the number of uppercase letters in text.",
			Args:        ArgsText,
			MinArgs:     1,
			MaxArgs:     1,
			Fn:          countWith(unicode.IsUpper),
		},
		{
			Name:        "count_lowercase",
			Description: "Count the number of lowercase letters in text.",
			Args:        ArgsText,
			MinArgs:     1,
			MaxArgs:     1,
			Fn:          countWith(unicode.IsLower),
		},
		{
			Name:        "count_special_characters",
			Description: "Count the number of special (non-alphanumeric, non-space) characters in text.",
			Args:        ArgsText,
			MinArgs:     1,
			MaxArgs:     1,
			Fn: countWith(func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
			}),
		},
		{
			Name:        "word_length",
			Description: "Get the length of a word, excluding spaces.",
			Args:        ArgsText,
			MinArgs:     1,
			MaxArgs:     1,
			Fn: func(args []Value) (Value, error) {
				stripped := strings.ReplaceAll(args[0].Text(), " ", "")
				return IntValue(int64(len([]rune(stripped)))), nil
			},
		},
	}
	for _, spec := range specs {
		if err := r.Register(spec); err != nil {
			return err
		}
	}
	return nil
}

// countWith builds a tool that counts the runes of its single text argument
// matching the predicate. All the counting tools share this shape.
func countWith(pred func(rune) bool) Func {
	return func(args []Value) (Value, error) {
		var n int64
		for _, r := range args[0].Text() {
			if pred(r) {
				n++
			}
		}
		return IntValue(n), nil
	}
}

// isVowel counts y as a vowel, so e.g. "Multimodality" has six vowels.
func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func isConsonant(r rune) bool {
	return r <= unicode.MaxASCII && unicode.IsLetter(r) && !isVowel(r)
}

func countWordsTool(args []Value) (Value, error) {
	return IntValue(int64(len(strings.Fields(args[0].Text())))), nil
}
