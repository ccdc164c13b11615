// Package shellparse splits and joins argument strings using POSIX shell
// word rules. The launcher uses it to turn link-time argument strings into
// argv entries and to print argument vectors so they can be pasted into a shell.
package shellparse

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrUnclosedQuote is returned when a quoted string is not closed.
	ErrUnclosedQuote = errors.New("unclosed quote in argument string")

	// ErrTrailingEscape is returned when the input ends with a backslash.
	ErrTrailingEscape = errors.New("trailing escape character in argument string")

	// ErrWordCount is returned by SplitExact when the word count differs.
	ErrWordCount = errors.New("unexpected number of words")
)

// splitter holds the state of one Split call.
type splitter struct {
	words  []string
	word   strings.Builder
	single bool
	double bool
	// quoted records that the current word contained quotes, so '' yields an
	// empty word instead of nothing.
	quoted bool
}

func (s *splitter) flush() {
	if s.word.Len() > 0 || s.quoted {
		s.words = append(s.words, s.word.String())
		s.word.Reset()
		s.quoted = false
	}
}

// Split parses input into words.
//
//   - whitespace separates words
//   - single quotes preserve everything literally
//   - double quotes preserve everything except \" \\ \$ and \`
//   - outside quotes a backslash escapes any character
//
// Split(`-m "my app.main"`) returns ["-m", "my app.main"].
func Split(input string) ([]string, error) {
	s := &splitter{words: []string{}}
	runes := []rune(input)

	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		switch {
		case ch == '\\' && !s.single:
			if i+1 >= len(runes) {
				return nil, ErrTrailingEscape
			}
			i++
			next := runes[i]
			if s.double && !strings.ContainsRune("\"\\$`", next) {
				s.word.WriteRune('\\')
			}
			s.word.WriteRune(next)

		case ch == '\'' && !s.double:
			s.single = !s.single
			s.quoted = true

		case ch == '"' && !s.single:
			s.double = !s.double
			s.quoted = true

		case unicode.IsSpace(ch) && !s.single && !s.double:
			s.flush()

		default:
			s.word.WriteRune(ch)
		}
	}

	if s.single {
		return nil, fmt.Errorf("%w: single", ErrUnclosedQuote)
	}
	if s.double {
		return nil, fmt.Errorf("%w: double", ErrUnclosedQuote)
	}

	s.flush()
	return s.words, nil
}

// SplitExact is Split that also requires exactly n words.
func SplitExact(input string, n int) ([]string, error) {
	words, err := Split(input)
	if err != nil {
		return nil, err
	}
	if len(words) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrWordCount, len(words), n)
	}
	return words, nil
}

// Join quotes each argument as needed and joins them with spaces.
func Join(args []string) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, Quote(arg))
	}
	return strings.Join(parts, " ")
}

// Quote returns arg in a form that Split reads back as a single word.
func Quote(arg string) string {
	if arg == "" {
		return "''"
	}

	if !strings.ContainsFunc(arg, needsQuote) {
		return arg
	}

	if !strings.Contains(arg, "'") {
		return "'" + arg + "'"
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, ch := range arg {
		if strings.ContainsRune("\"\\$`", ch) {
			b.WriteRune('\\')
		}
		b.WriteRune(ch)
	}
	b.WriteRune('"')
	return b.String()
}

func needsQuote(ch rune) bool {
	return unicode.IsSpace(ch) || strings.ContainsRune("'\"\\$`", ch)
}
