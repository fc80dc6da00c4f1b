package command

import (
	"strings"

	"golang.org/x/text/cases"
)

// Token is one whitespace-separated word of input.
type Token struct {
	// Raw preserves the player's spelling, for names.
	Raw string
	// Folded is the case-folded form used for matching.
	Folded string
}

var folder = cases.Fold()

// Tokenize splits line on whitespace and case-folds each word.
//
// Postcondition: no token is empty; runs of whitespace produce no tokens.
func Tokenize(line string) []Token {
	fields := strings.Fields(line)
	out := make([]Token, len(fields))
	for i, f := range fields {
		out[i] = Token{Raw: f, Folded: folder.String(f)}
	}
	return out
}

// ParseResult holds the verb recognized at the start of a line and the
// tokens that follow it.
type ParseResult struct {
	// Command is nil when no verb was recognized.
	Command *Command
	// Args are the tokens after the verb phrase.
	Args []Token
	// Input is the whitespace-collapsed line.
	Input string
}

// Parse tokenizes line and resolves its verb phrase.
//
// Postcondition: Command is nil if line is empty or begins with no known verb.
func (r *Registry) Parse(line string) ParseResult {
	tokens := Tokenize(line)
	res := ParseResult{Input: strings.Join(strings.Fields(line), " ")}
	if len(tokens) == 0 {
		return res
	}
	cmd, rest, ok := r.Resolve(tokens)
	if !ok {
		return res
	}
	res.Command = cmd
	res.Args = rest
	return res
}

type quantityKind int

const (
	quantityAbsent quantityKind = iota
	quantityExplicit
	quantityArticle
)

// Quantity is how many of an item a command names: absent, an explicit
// numeral, or the implicit one of "a"/"an".
type Quantity struct {
	kind quantityKind
	n    int
}

// Absent is the quantity of a command that named no amount.
func Absent() Quantity { return Quantity{} }

// Explicit is a numeral quantity.
//
// Precondition: n >= 1.
func Explicit(n int) Quantity { return Quantity{kind: quantityExplicit, n: n} }

// Article is the implicit single quantity of "a" or "an".
func Article() Quantity { return Quantity{kind: quantityArticle, n: 1} }

// IsAbsent reports whether no amount was named.
func (q Quantity) IsAbsent() bool { return q.kind == quantityAbsent }

// IsArticle reports whether the amount came from "a" or "an".
func (q Quantity) IsArticle() bool { return q.kind == quantityArticle }

// Value returns the named amount; ok is false when absent.
func (q Quantity) Value() (n int, ok bool) {
	if q.kind == quantityAbsent {
		return 0, false
	}
	return q.n, true
}

// Or returns the named amount, or def when absent.
func (q Quantity) Or(def int) int {
	if n, ok := q.Value(); ok {
		return n
	}
	return def
}
