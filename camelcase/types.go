package camelcase

import (
	"errors"
	"fmt"
)

// Sentinel errors for instruction parsing.
var (
	// ErrMalformed is returned when a line does not have three ';'- or ':'-separated fields.
	ErrMalformed = errors.New("camelcase: malformed instruction")

	// ErrUnknownOp is returned for an operation other than S or C.
	ErrUnknownOp = errors.New("camelcase: unknown operation")

	// ErrUnknownKind is returned for an identifier kind other than M, C or V.
	ErrUnknownKind = errors.New("camelcase: unknown identifier kind")
)

// Op is the requested transformation.
type Op byte

const (
	// OpSplit turns an identifier into lower-case words.
	OpSplit Op = 'S'

	// OpCombine turns words into an identifier.
	OpCombine Op = 'C'
)

// Kind is the identifier style.
type Kind byte

const (
	// Method identifiers start lower-case and end in "()".
	Method Kind = 'M'

	// Class identifiers start upper-case.
	Class Kind = 'C'

	// Variable identifiers start lower-case.
	Variable Kind = 'V'
)

// Instruction is one parsed input line.
type Instruction struct {
	Op      Op
	Kind    Kind
	Payload string
}

// String renders the instruction back in its line form.
func (in Instruction) String() string {
	return fmt.Sprintf("%c%s%c%s%s", in.Op, separator, in.Kind, separator, in.Payload)
}

func (o Op) valid() bool {
	return o == OpSplit || o == OpCombine
}

func (k Kind) valid() bool {
	return k == Method || k == Class || k == Variable
}
