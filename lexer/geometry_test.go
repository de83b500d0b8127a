package lexer

import (
	"cqlfilter/util"
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb"
	"testing"
)

func TestGeometry_scanGeometry(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act & Assert
	util.AssertEqual(t, []string{"POINT(1 2)"}, scanGeometry("POINT(1 2), X"))
	util.AssertEqual(t, []string{"POINT (1 2)"}, scanGeometry("POINT (1 2))"))
	util.AssertEqual(t, []string{"POINT()"}, scanGeometry("POINT())"))
	util.AssertEqual(t, []string{"LINESTRING(0 0,1 1)"}, scanGeometry("LINESTRING(0 0,1 1)"))
	util.AssertEqual(t, []string{"MULTIPOLYGON(((0 0,1 0,1 1,0 0)),((2 2,3 2,3 3,2 2)))"}, scanGeometry("MULTIPOLYGON(((0 0,1 0,1 1,0 0)),((2 2,3 2,3 3,2 2))))"))
	util.AssertEqual(t, []string{"GEOMETRYCOLLECTION(POINT(1 2),LINESTRING(0 0,1 1))"}, scanGeometry("GEOMETRYCOLLECTION(POINT(1 2),LINESTRING(0 0,1 1)) AND"))
}

func TestGeometry_scanGeometry_noGeometry(t *testing.T) {
	util.AssertNil(t, scanGeometry("point(1 2)"))
	util.AssertNil(t, scanGeometry("FOO(1 2)"))
	util.AssertNil(t, scanGeometry(""))
	util.AssertNil(t, scanGeometry(" POINT(1 2)"))
}

func TestGeometry_scanGeometry_malformed(t *testing.T) {
	// No parenthesis at all: only the keyword.
	util.AssertEqual(t, []string{"POINT"}, scanGeometry("POINT"))
	util.AssertEqual(t, []string{"POLYGON"}, scanGeometry("POLYGON 1 2"))

	// Unbalanced: the whole input.
	util.AssertEqual(t, []string{"POINT(1 2"}, scanGeometry("POINT(1 2"))
	util.AssertEqual(t, []string{"POLYGON((0 0,1 1), X"}, scanGeometry("POLYGON((0 0,1 1), X"))
}

func TestGeometry_asToken(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	token, err := NextToken("MULTIPOLYGON(((0 0,1 0,1 1,0 0)))", Follows(StateAfter(TokenKindComma)))

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, &Token{kind: TokenKindGeometry, text: "MULTIPOLYGON(((0 0,1 0,1 1,0 0)))", remainder: ""}, token)
}

func TestGeometry_ParseGeometry(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act & Assert
	geometry, err := ParseGeometry("POINT(1 2)")
	util.AssertNil(t, err)
	util.AssertEqual(t, orb.Point{1, 2}, geometry)

	geometry, err = ParseGeometry("LINESTRING(0 0,1 1)")
	util.AssertNil(t, err)
	util.AssertEqual(t, orb.LineString{{0, 0}, {1, 1}}, geometry)
}

func TestGeometry_ParseGeometry_invalid(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	geometry, err := ParseGeometry("POINT(a b)")

	// Assert
	util.AssertNil(t, geometry)
	util.AssertNotNil(t, err)
	util.AssertMatch(t, `^Unable to parse geometry literal 'POINT\(a b\)'`, err.Error())
}

func TestGeometry_ParseBbox(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	tokens, err := Tokenize("BBOX(GEOM, 1, 2.5, 3, .5)")
	util.AssertNil(t, err)

	var values []*Token
	for _, token := range tokens {
		if token.Kind() == TokenKindValue {
			values = append(values, token)
		}
	}

	// Act
	bbox, err := ParseBbox(values)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, &orb.Bound{
		Min: orb.Point{1, 2.5},
		Max: orb.Point{3, 0.5},
	}, bbox)
}

func TestGeometry_ParseBbox_invalid(t *testing.T) {
	// Act & Assert
	bbox, err := ParseBbox([]*Token{NewToken(TokenKindValue, "1", "")})
	util.AssertNil(t, bbox)
	util.AssertError(t, "Expected 4 coordinates for BBOX but found 1", err)

	bbox, err = ParseBbox([]*Token{
		NewToken(TokenKindValue, "1", ""),
		NewToken(TokenKindValue, "2", ""),
		NewToken(TokenKindValue, "'three'", ""),
		NewToken(TokenKindValue, "4", ""),
	})
	util.AssertNil(t, bbox)
	util.AssertNotNil(t, err)

	bbox, err = ParseBbox([]*Token{
		NewToken(TokenKindValue, "1", ""),
		NewToken(TokenKindProperty, "Y", ""),
		NewToken(TokenKindValue, "3", ""),
		NewToken(TokenKindValue, "4", ""),
	})
	util.AssertNil(t, bbox)
	util.AssertError(t, "Expected VALUE as BBOX coordinate but found 'Y' of kind PROPERTY", err)
}
