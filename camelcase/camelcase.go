package camelcase

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// separator splits the three fields of an instruction.
	separator = ";"

	// altSeparator is accepted in place of separator on lines without any ';'.
	altSeparator = ":"

	// methodSuffix marks the method form of an identifier.
	methodSuffix = "()"
)

// Parse reads one instruction line.
func Parse(line string) (Instruction, error) {
	sep := separator
	if !strings.Contains(line, separator) {
		sep = altSeparator
	}
	fields := strings.SplitN(line, sep, 3)
	if len(fields) != 3 {
		return Instruction{}, fmt.Errorf("%w: %q has %d fields, want 3", ErrMalformed, line, len(fields))
	}
	if len(fields[0]) != 1 || !Op(fields[0][0]).valid() {
		return Instruction{}, fmt.Errorf("%w: %q", ErrUnknownOp, fields[0])
	}
	if len(fields[1]) != 1 || !Kind(fields[1][0]).valid() {
		return Instruction{}, fmt.Errorf("%w: %q", ErrUnknownKind, fields[1])
	}

	return Instruction{
		Op:      Op(fields[0][0]),
		Kind:    Kind(fields[1][0]),
		Payload: fields[2],
	}, nil
}

// Process parses line and applies it.
func Process(line string) (string, error) {
	in, err := Parse(line)
	if err != nil {
		return "", err
	}
	return Apply(in), nil
}

// Apply runs the instruction's operation on its payload.
func Apply(in Instruction) string {
	if in.Op == OpSplit {
		return Split(in.Payload, in.Kind)
	}
	return Combine(in.Payload, in.Kind)
}

// Split breaks identifier into words at every position that precedes an
// upper-case letter, lower-cases each word and joins them with single
// spaces. For methods a trailing "()" is removed first. A leading upper-case
// letter does not produce an empty first word.
func Split(identifier string, kind Kind) string {
	if kind == Method {
		identifier = strings.TrimSuffix(identifier, methodSuffix)
	}
	lower := cases.Lower(language.Und)

	var words []string
	start := 0
	for i, r := range identifier {
		if unicode.IsUpper(r) && i > start {
			words = append(words, lower.String(identifier[start:i]))
			start = i
		}
	}
	words = append(words, lower.String(identifier[start:]))

	return strings.Join(words, " ")
}

// Combine joins space-separated words into an identifier of the given kind.
// Every word but the first is capitalised (first letter upper-case, rest
// lower-case). The first word is capitalised for classes and lower-cased
// otherwise. Methods get "()" appended. Empty words contribute nothing.
func Combine(words string, kind Kind) string {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	var b strings.Builder
	for i, w := range strings.Split(words, " ") {
		if i == 0 && kind != Class {
			b.WriteString(lower.String(w))
			continue
		}
		b.WriteString(capitalize(w, upper, lower))
	}
	if kind == Method {
		b.WriteString(methodSuffix)
	}

	return b.String()
}

// capitalize upper-cases the first rune of w and lower-cases the rest.
func capitalize(w string, upper, lower cases.Caser) string {
	if w == "" {
		return w
	}
	_, size := utf8.DecodeRuneInString(w)
	return upper.String(w[:size]) + lower.String(w[size:])
}
