package lexer

import (
	"fmt"
	"runtime"
	"strings"
)

type stack *[]uintptr

// getCurrentStack creates a new stack without the last three frames, because they are from the internal calls (e.g. to
// this function) and therefore irrelevant to the function creating the error.
func getCurrentStack() stack {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	var st = pcs[0:n]
	return &st
}

func getPrintableStackTrace(stack stack) string {
	var sb strings.Builder

	for _, pc := range *stack {
		f := runtime.FuncForPC(pc)
		file, line := f.FileLine(pc)
		sb.WriteString(fmt.Sprintf("%s\n\t%s:%d\n", f.Name(), file, line))
	}

	return sb.String()
}

type Candidate struct {
	Kind    TokenKind `json:"kind"`
	Pattern string    `json:"pattern"`
}

// UnexpectedInputError is returned when no pattern of the follow set matches the input.
type UnexpectedInputError struct {
	Message    string      `json:"message"`
	Tail       string      `json:"tail"`
	Candidates []Candidate `json:"candidates"`
	stack      stack
}

func ErrorUnexpectedInput(tail string, followSet FollowSet) *UnexpectedInputError {
	var candidates []Candidate
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("In parsing: [%s], expected one of: ", tail))

	for _, kind := range followSet {
		candidate := Candidate{
			Kind:    kind,
			Pattern: patterns[kind].String(),
		}
		candidates = append(candidates, candidate)
		sb.WriteString(fmt.Sprintf("\n    %s: %s", kind.String(), candidate.Pattern))
	}

	return &UnexpectedInputError{
		Message:    sb.String(),
		Tail:       tail,
		Candidates: candidates,
		stack:      getCurrentStack(),
	}
}

// ExpectedKinds returns the kinds of all candidates in follow-set order.
func (e *UnexpectedInputError) ExpectedKinds() []TokenKind {
	kinds := make([]TokenKind, len(e.Candidates))
	for i, candidate := range e.Candidates {
		kinds[i] = candidate.Kind
	}
	return kinds
}

func (e *UnexpectedInputError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		fmt.Fprintf(s, "%s\n%s", e.Error(), getPrintableStackTrace(e.stack))
	case 's':
		fmt.Fprintf(s, "%s", e.Error())
	}
}

func (e *UnexpectedInputError) Error() string {
	return e.Message
}
