package lexer

import (
	"regexp"
	"sort"

	"cqlfilter/util"
)

// Procedure recognizes a prefix of the given text. It returns the matched prefix as first element or nil when the
// text doesn't start with something the procedure recognizes.
type Procedure func(text string) []string

// Pattern is the recognizer of one token kind. It's either an anchored regular expression or a procedure for the
// things a regular expression can't express (e.g. balanced parentheses).
type Pattern struct {
	regex       *regexp.Regexp
	procedure   Procedure
	description string
}

func RegexPattern(expression string) Pattern {
	regex := regexp.MustCompile(expression)
	return Pattern{
		regex:       regex,
		description: regex.String(),
	}
}

func ProcedurePattern(procedure Procedure, description string) Pattern {
	return Pattern{
		procedure:   procedure,
		description: description,
	}
}

// Match returns the matched prefix of text and whether the pattern matched at all. An empty match (as for END) is a
// match.
func (p Pattern) Match(text string) (string, bool) {
	if p.regex != nil {
		location := p.regex.FindStringIndex(text)
		if location == nil || location[0] != 0 {
			return "", false
		}
		return text[:location[1]], true
	}

	matches := p.procedure(text)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

func (p Pattern) String() string {
	return p.description
}

// timeSource is one ISO-8601-ish timestamp or the empty quoted string ''. The inner "^" only anchors the '' form when
// it's the start of the input, so a TIME_PERIOD can start with '' but not end with it.
const timeSource = `((([0-9]{4})(-([0-9]{2})(-([0-9]{2})(T([0-9]{2}):([0-9]{2})(:([0-9]{2})(\.([0-9]+))?)?(Z|(([-+])([0-9]{2}):([0-9]{2})))?)?)?)?)|^'')`

var patterns = map[TokenKind]Pattern{
	// Single-quoted property names are non-standard but accepted.
	TokenKindProperty:       RegexPattern(`^([_a-zA-Z]\w*|"[^"]+"|'[^']+')`),
	TokenKindComparison:     RegexPattern(`(?i)^(=|<>|<=|<|>=|>|LIKE|ILIKE)`),
	TokenKindIsNull:         RegexPattern(`(?i)^IS NULL`),
	TokenKindComma:          RegexPattern(`^,`),
	TokenKindLogical:        RegexPattern(`(?i)^(AND|OR)`),
	TokenKindValue:          RegexPattern(`^('([^']|'')*'|-?\d+(\.\d*)?|\.\d+)`),
	TokenKindFilterFunction: RegexPattern(`^[a-z]\w+\(`),
	TokenKindBoolean:        RegexPattern(`(?i)^(false|true)`),
	TokenKindLParen:         RegexPattern(`^\(`),
	TokenKindRParen:         RegexPattern(`^\)`),
	TokenKindSpatial:        RegexPattern(`(?i)^(BBOX|INTERSECTS|DWITHIN|WITHIN|CONTAINS)`),
	TokenKindUnits:          RegexPattern(`(?i)^(meters)`),
	TokenKindNot:            RegexPattern(`(?i)^NOT`),
	TokenKindBetween:        RegexPattern(`(?i)^BETWEEN`),
	TokenKindBefore:         RegexPattern(`(?i)^BEFORE`),
	TokenKindAfter:          RegexPattern(`(?i)^AFTER`),
	TokenKindDuring:         RegexPattern(`(?i)^DURING`),
	TokenKindRelative:       RegexPattern(`(?i)^'RELATIVE\([A-Za-z0-9.]*\)'`),
	TokenKindTime:           RegexPattern(`(?i)^` + timeSource),
	TokenKindTimePeriod:     RegexPattern(`(?i)^` + timeSource + `/` + timeSource),
	TokenKindGeometry:       ProcedurePattern(scanGeometry, "GEOMETRY(<WKT type keyword>(<balanced parentheses>))"),
	TokenKindEnd:            RegexPattern(`^$`),
}

func init() {
	var states []int
	for state := range follows {
		states = append(states, int(state))
	}
	sort.Ints(states)

	for _, state := range states {
		for _, kind := range follows[ParserState(state)] {
			if _, ok := patterns[kind]; !ok {
				util.LogFatalBug("Follow set of state %s contains token kind %s without pattern", ParserState(state).String(), kind.String())
			}
		}
	}
}

// PatternOf returns the recognizer of the given kind.
func PatternOf(kind TokenKind) (Pattern, bool) {
	pattern, ok := patterns[kind]
	return pattern, ok
}
