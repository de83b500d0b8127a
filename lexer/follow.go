package lexer

// FollowSet lists the token kinds allowed next. The order is the priority in which the patterns are tried, so
// keywords come before the identifier patterns they overlap with.
type FollowSet []TokenKind

var follows = map[ParserState]FollowSet{
	StateRootNode: {
		TokenKindNot,
		TokenKindGeometry,
		TokenKindSpatial,
		TokenKindFilterFunction,
		TokenKindProperty,
		TokenKindLParen,
	},
	StateAfter(TokenKindLParen): {
		TokenKindNot,
		TokenKindGeometry,
		TokenKindSpatial,
		TokenKindFilterFunction,
		TokenKindProperty,
		TokenKindValue,
		TokenKindLParen,
	},
	StateAfter(TokenKindRParen): {
		TokenKindNot,
		TokenKindLogical,
		TokenKindEnd,
		TokenKindRParen,
		TokenKindComparison,
		TokenKindComma,
	},
	StateAfter(TokenKindProperty): {
		TokenKindComparison,
		TokenKindBetween,
		TokenKindComma,
		TokenKindIsNull,
		TokenKindBefore,
		TokenKindAfter,
		TokenKindDuring,
		TokenKindRParen,
	},
	StateAfter(TokenKindBetween):    {TokenKindValue},
	StateAfter(TokenKindIsNull):     {TokenKindRParen, TokenKindLogical, TokenKindEnd},
	StateAfter(TokenKindComparison): {TokenKindRelative, TokenKindValue, TokenKindBoolean},
	StateAfter(TokenKindComma): {
		TokenKindFilterFunction,
		TokenKindGeometry,
		TokenKindValue,
		TokenKindUnits,
		TokenKindProperty,
	},
	StateAfter(TokenKindValue):   {TokenKindLogical, TokenKindComma, TokenKindRParen, TokenKindEnd},
	StateAfter(TokenKindBoolean): {TokenKindRParen},
	StateAfter(TokenKindSpatial): {TokenKindLParen},
	StateAfter(TokenKindUnits):   {TokenKindRParen},
	StateAfter(TokenKindLogical): {
		TokenKindFilterFunction,
		TokenKindNot,
		TokenKindValue,
		TokenKindSpatial,
		TokenKindProperty,
		TokenKindLParen,
	},
	StateAfter(TokenKindNot):        {TokenKindProperty, TokenKindLParen},
	StateAfter(TokenKindGeometry):   {TokenKindComma, TokenKindRParen},
	StateAfter(TokenKindBefore):     {TokenKindTime},
	StateAfter(TokenKindAfter):      {TokenKindTime},
	StateAfter(TokenKindDuring):     {TokenKindTimePeriod},
	StateAfter(TokenKindTime):       {TokenKindLogical, TokenKindRParen, TokenKindEnd},
	StateAfter(TokenKindTimePeriod): {TokenKindLogical, TokenKindRParen, TokenKindEnd},
	StateAfter(TokenKindRelative):   {TokenKindRParen, TokenKindEnd},
	StateAfter(TokenKindFilterFunction): {
		TokenKindLParen,
		TokenKindProperty,
		TokenKindValue,
		TokenKindRParen,
	},
	StateAfter(TokenKindEnd): {},
}

// Follows returns a copy of the follow set of the given state. Unknown states have an empty follow set.
func Follows(state ParserState) FollowSet {
	followSet := follows[state]
	result := make(FollowSet, len(followSet))
	copy(result, followSet)
	return result
}

func (f FollowSet) Contains(kind TokenKind) bool {
	for _, k := range f {
		if k == kind {
			return true
		}
	}
	return false
}
