package lexer

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/hauke96/sigolo/v2"
)

// NextToken returns the first token of the given text whose kind is in the follow set. The patterns are tried in
// the order of the follow set and the first match wins, even if a later pattern would match a longer prefix. The
// text must not start with whitespace.
func NextToken(text string, followSet FollowSet) (*Token, error) {
	for _, kind := range followSet {
		match, ok := patterns[kind].Match(text)
		if !ok {
			continue
		}

		remainder := strings.TrimLeftFunc(text[len(match):], unicode.IsSpace)
		return &Token{
			kind:      kind,
			text:      match,
			remainder: remainder,
		}, nil
	}

	return nil, ErrorUnexpectedInput(text, followSet)
}

// Lexer hands out the tokens of one filter expression one after another. The follow set for each token is
// determined by the kind of the previous token.
type Lexer struct {
	remainder string
	state     ParserState
	done      bool
}

func NewLexer(input string) *Lexer {
	return &Lexer{
		remainder: strings.TrimSpace(input),
		state:     StateRootNode,
	}
}

// Next returns the next token. After the END token was returned, io.EOF is returned.
func (l *Lexer) Next() (*Token, error) {
	if l.done {
		return nil, io.EOF
	}

	followSet := follows[l.state]
	if sigolo.ShouldLogTrace() {
		l.tracef("Try %s", followSetString(followSet))
	}

	token, err := NextToken(l.remainder, followSet)
	if err != nil {
		return nil, err
	}
	l.tracef("Found token %s", token.String())

	l.remainder = token.remainder
	l.state = StateAfter(token.kind)
	l.done = token.kind == TokenKindEnd
	return token, nil
}

// State returns the parser state, which is the kind of the last emitted token or StateRootNode.
func (l *Lexer) State() ParserState {
	return l.state
}

// Remainder returns the not yet consumed input.
func (l *Lexer) Remainder() string {
	return l.remainder
}

// Tokenize reads all tokens of the input including the final END token.
func Tokenize(input string) ([]*Token, error) {
	lexer := NewLexer(input)

	var tokens []*Token
	for {
		token, err := lexer.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}

	sigolo.Debugf("Found %d token", len(tokens))
	return tokens, nil
}

func followSetString(followSet FollowSet) string {
	names := make([]string, len(followSet))
	for i, kind := range followSet {
		names[i] = kind.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func (l *Lexer) tracef(format string, args ...any) {
	formattedMessage := format
	if len(args) > 0 {
		formattedMessage = fmt.Sprintf(format, args...)
	}
	sigolo.Traceb(1, "[%s, %q] %s", l.state.String(), l.remainder, formattedMessage)
}
