package lexer

import (
	"cqlfilter/util"
	"testing"
	"time"
)

func allStates() []ParserState {
	states := []ParserState{StateRootNode}
	for _, kind := range TokenKinds() {
		states = append(states, StateAfter(kind))
	}
	return states
}

func TestFollow_everyStateHasEntry(t *testing.T) {
	for _, state := range allStates() {
		_, ok := follows[state]
		if !ok {
			t.Errorf("No follow set for state %s", state.String())
		}
	}
}

func TestFollow_onlyKindsWithPattern(t *testing.T) {
	for _, state := range allStates() {
		for _, kind := range Follows(state) {
			_, ok := PatternOf(kind)
			if !ok {
				t.Errorf("Follow set of %s contains %s without pattern", state.String(), kind.String())
			}
		}
	}
}

func TestFollow_endIsFinal(t *testing.T) {
	util.AssertEqual(t, 0, len(Follows(StateAfter(TokenKindEnd))))
}

func TestFollow_order(t *testing.T) {
	util.AssertEqual(t, FollowSet{TokenKindNot, TokenKindGeometry, TokenKindSpatial, TokenKindFilterFunction, TokenKindProperty, TokenKindLParen}, Follows(StateRootNode))
	util.AssertEqual(t, FollowSet{TokenKindRParen, TokenKindLogical, TokenKindEnd}, Follows(StateAfter(TokenKindIsNull)))
	util.AssertEqual(t, FollowSet{TokenKindFilterFunction, TokenKindGeometry, TokenKindValue, TokenKindUnits, TokenKindProperty}, Follows(StateAfter(TokenKindComma)))
	util.AssertEqual(t, FollowSet{TokenKindLParen, TokenKindProperty, TokenKindValue, TokenKindRParen}, Follows(StateAfter(TokenKindFilterFunction)))
}

func TestFollow_returnsCopy(t *testing.T) {
	// Arrange
	followSet := Follows(StateRootNode)

	// Act
	followSet[0] = TokenKindEnd

	// Assert
	util.AssertEqual(t, TokenKindNot, Follows(StateRootNode)[0])
}

func TestFollow_Contains(t *testing.T) {
	util.AssertTrue(t, Follows(StateAfter(TokenKindValue)).Contains(TokenKindEnd))
	util.AssertFalse(t, Follows(StateAfter(TokenKindComparison)).Contains(TokenKindEnd))
	util.AssertFalse(t, Follows(StateRootNode).Contains(TokenKindLogical))
}

func TestTokenKind_StringAndParse(t *testing.T) {
	for _, kind := range TokenKinds() {
		parsedKind, ok := ParseTokenKind(kind.String())
		util.AssertTrue(t, ok)
		util.AssertEqual(t, kind, parsedKind)
	}

	_, ok := ParseTokenKind("ROOT_NODE")
	util.AssertFalse(t, ok)

	util.AssertEqual(t, "TIME_PERIOD", TokenKindTimePeriod.String())
	util.AssertEqual(t, "!! INVALID TOKEN KIND 99 !!", TokenKind(99).String())
	util.AssertEqual(t, "ROOT_NODE", StateRootNode.String())
	util.AssertEqual(t, "IS_NULL", StateAfter(TokenKindIsNull).String())
}

func TestTables_Precedence(t *testing.T) {
	rank, ok := Precedence(TokenKindRParen)
	util.AssertTrue(t, ok)
	util.AssertEqual(t, 3, rank)

	rank, ok = Precedence(TokenKindLogical)
	util.AssertTrue(t, ok)
	util.AssertEqual(t, 2, rank)

	rank, ok = Precedence(TokenKindComparison)
	util.AssertTrue(t, ok)
	util.AssertEqual(t, 1, rank)

	_, ok = Precedence(TokenKindValue)
	util.AssertFalse(t, ok)
}

func TestTables_FilterFunctionParamCount(t *testing.T) {
	count, ok := FilterFunctionParamCount("proximity")
	util.AssertTrue(t, ok)
	util.AssertEqual(t, 3, count)

	count, ok = FilterFunctionParamCount("pi")
	util.AssertTrue(t, ok)
	util.AssertEqual(t, 0, count)

	_, ok = FilterFunctionParamCount("proximity(")
	util.AssertFalse(t, ok)
}

func TestTables_DateTimeLayout(t *testing.T) {
	// Arrange
	timestamp := time.Date(2020, 1, 2, 3, 4, 5, 678000000, time.UTC)

	// Act
	formatted := timestamp.Format(DateTimeLayout)

	// Assert
	util.AssertEqual(t, "2020-01-02T03:04:05.678Z", formatted)
	assertMatch(t, TokenKindTime, formatted, formatted)
}
