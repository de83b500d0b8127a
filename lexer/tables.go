package lexer

const (
	// DateTimeFormat is the canonical timestamp format of serialized filters. The lexer doesn't normalize timestamps.
	DateTimeFormat = "yyyy-MM-dd'T'HH:mm:ss.SSS'Z'"
	// DateTimeLayout is DateTimeFormat as layout for the time package.
	DateTimeLayout = "2006-01-02T15:04:05.000Z"
)

var precedence = map[TokenKind]int{
	TokenKindRParen:     3,
	TokenKindLogical:    2,
	TokenKindComparison: 1,
}

// TODO Derive the parameter counts while building the syntax tree instead of maintaining this table by hand.
var filterFunctionParamCount = map[string]int{
	"proximity": 3,
	"pi":        0,
}

// Precedence returns the operator precedence for the parsers shunting logic. Higher binds stronger.
func Precedence(kind TokenKind) (int, bool) {
	rank, ok := precedence[kind]
	return rank, ok
}

// FilterFunctionParamCount returns the number of parameters of the filter function with the given name (without
// the trailing "(").
func FilterFunctionParamCount(name string) (int, bool) {
	count, ok := filterFunctionParamCount[name]
	return count, ok
}
