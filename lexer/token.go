package lexer

import (
	"fmt"
	"strings"
)

type TokenKind int

const (
	TokenKindProperty TokenKind = iota
	TokenKindComparison
	TokenKindIsNull
	TokenKindComma
	TokenKindLogical
	TokenKindValue
	TokenKindFilterFunction
	TokenKindBoolean
	TokenKindLParen
	TokenKindRParen
	TokenKindSpatial
	TokenKindUnits
	TokenKindNot
	TokenKindBetween
	TokenKindBefore
	TokenKindAfter
	TokenKindDuring
	TokenKindRelative
	TokenKindTime
	TokenKindTimePeriod
	TokenKindGeometry
	TokenKindEnd
)

var tokenKinds = []TokenKind{
	TokenKindProperty,
	TokenKindComparison,
	TokenKindIsNull,
	TokenKindComma,
	TokenKindLogical,
	TokenKindValue,
	TokenKindFilterFunction,
	TokenKindBoolean,
	TokenKindLParen,
	TokenKindRParen,
	TokenKindSpatial,
	TokenKindUnits,
	TokenKindNot,
	TokenKindBetween,
	TokenKindBefore,
	TokenKindAfter,
	TokenKindDuring,
	TokenKindRelative,
	TokenKindTime,
	TokenKindTimePeriod,
	TokenKindGeometry,
	TokenKindEnd,
}

// TokenKinds returns all token kinds in declaration order.
func TokenKinds() []TokenKind {
	kinds := make([]TokenKind, len(tokenKinds))
	copy(kinds, tokenKinds)
	return kinds
}

func (k TokenKind) String() string {
	switch k {
	case TokenKindProperty:
		return "PROPERTY"
	case TokenKindComparison:
		return "COMPARISON"
	case TokenKindIsNull:
		return "IS_NULL"
	case TokenKindComma:
		return "COMMA"
	case TokenKindLogical:
		return "LOGICAL"
	case TokenKindValue:
		return "VALUE"
	case TokenKindFilterFunction:
		return "FILTER_FUNCTION"
	case TokenKindBoolean:
		return "BOOLEAN"
	case TokenKindLParen:
		return "LPAREN"
	case TokenKindRParen:
		return "RPAREN"
	case TokenKindSpatial:
		return "SPATIAL"
	case TokenKindUnits:
		return "UNITS"
	case TokenKindNot:
		return "NOT"
	case TokenKindBetween:
		return "BETWEEN"
	case TokenKindBefore:
		return "BEFORE"
	case TokenKindAfter:
		return "AFTER"
	case TokenKindDuring:
		return "DURING"
	case TokenKindRelative:
		return "RELATIVE"
	case TokenKindTime:
		return "TIME"
	case TokenKindTimePeriod:
		return "TIME_PERIOD"
	case TokenKindGeometry:
		return "GEOMETRY"
	case TokenKindEnd:
		return "END"
	}
	return fmt.Sprintf("!! INVALID TOKEN KIND %d !!", k)
}

// MarshalText writes the kind by its name, so JSON output reads "PROPERTY" instead of 0.
func (k TokenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseTokenKind is the inverse of TokenKind.String.
func ParseTokenKind(name string) (TokenKind, bool) {
	for _, kind := range tokenKinds {
		if kind.String() == name {
			return kind, true
		}
	}
	return -1, false
}

// ParserState is the kind of the last emitted token or StateRootNode when nothing has been emitted yet.
type ParserState int

const StateRootNode ParserState = -1

func StateAfter(kind TokenKind) ParserState {
	return ParserState(kind)
}

func (s ParserState) String() string {
	if s == StateRootNode {
		return "ROOT_NODE"
	}
	return TokenKind(s).String()
}

// Token is one lexeme of a filter expression. The text is the verbatim match, quotes included. The remainder is the
// input behind the text with leading whitespace removed.
type Token struct {
	kind      TokenKind
	text      string
	remainder string
}

func NewToken(kind TokenKind, text string, remainder string) *Token {
	return &Token{
		kind:      kind,
		text:      text,
		remainder: remainder,
	}
}

func (t *Token) Kind() TokenKind {
	return t.kind
}

func (t *Token) Text() string {
	return t.text
}

func (t *Token) Remainder() string {
	return t.remainder
}

// FunctionName returns the name of a filter function call, e.g. "proximity" for the token "proximity(". For other
// token kinds the empty string is returned.
func (t *Token) FunctionName() string {
	if t.kind != TokenKindFilterFunction {
		return ""
	}
	return strings.TrimSuffix(t.text, "(")
}

func (t *Token) String() string {
	return fmt.Sprintf("%s(%q)", t.kind.String(), t.text)
}
