// Package camelcase splits camelCase identifiers into words and combines
// words back into identifiers, driven by one-line instructions.
//
// What
//
//	{op};{kind};{payload}
//
//	op      S (split) or C (combine)
//	kind    M (method), C (class) or V (variable)
//	payload an identifier to split, or space-separated words to combine
//
// Examples:
//
//	S;M;plasticCup()          → plastic cup
//	C;V;mobile phone          → mobilePhone
//	C;C;coffee machine        → CoffeeMachine
//	S;C;LargeSoftwareBook     → large software book
//	C;M;white sheet of paper  → whiteSheetOfPaper()
//
// A line without any ';' may use ':' instead (S:M:plasticCup()); String
// always renders the ';' form. Only the first two separators are
// significant; the payload may itself contain the separator. A line with
// fewer than three fields fails with ErrMalformed, an unknown op or kind
// with ErrUnknownOp / ErrUnknownKind.
//
// Split and Combine are inverses on well-formed identifiers:
// Combine(Split(x, k), k) == x whenever x is letters only, has no two
// consecutive upper-case letters and starts lower-case for methods and
// variables or upper-case for classes.
//
// Complexity
//
//   - Time:   O(len(line)) per instruction
//   - Memory: O(len(line)) for the result
//
// Usage
//
//	out, err := camelcase.Process("C;M;white sheet of paper")
//	if err != nil {
//	    // ErrMalformed, ErrUnknownOp or ErrUnknownKind
//	}
//	fmt.Println(out) // whiteSheetOfPaper()
package camelcase
