package lexer

import (
	"strconv"
	"strings"

	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/pkg/errors"
)

var geometryTypeKeywords = []string{
	"POINT",
	"LINESTRING",
	"POLYGON",
	"MULTIPOINT",
	"MULTILINESTRING",
	"MULTIPOLYGON",
	"GEOMETRYCOLLECTION",
}

// scanGeometry recognizes a WKT geometry literal. Since WKT nests parentheses arbitrarily, a regular expression can't
// do this. Coordinates are not validated, this is the job of the parser (or ParseGeometry).
func scanGeometry(text string) []string {
	keywordLength := geometryKeywordLength(text)
	if keywordLength == 0 {
		return nil
	}

	index := strings.IndexByte(text[keywordLength:], '(')
	if index == -1 {
		// Malformed, but the parser has to reject it, not the lexer.
		return []string{text[:keywordLength]}
	}
	index += keywordLength

	depth := 1
	for index < len(text) && depth > 0 {
		index++
		if index >= len(text) {
			break
		}
		switch text[index] {
		case '(':
			depth++
		case ')':
			depth--
		}
	}

	if index >= len(text) {
		// Unbalanced to the right: everything belongs to the geometry.
		return []string{text}
	}
	return []string{text[:index+1]}
}

// geometryKeywordLength returns the length of the type keyword the text starts with or 0 if there's none. No keyword
// is a prefix of another one, so the first hit is the only one. Keywords are case-sensitive.
func geometryKeywordLength(text string) int {
	for _, keyword := range geometryTypeKeywords {
		if strings.HasPrefix(text, keyword) {
			return len(keyword)
		}
	}
	return 0
}

// ParseGeometry decodes the text of a GEOMETRY token.
func ParseGeometry(text string) (orb.Geometry, error) {
	geometry, err := wkt.Unmarshal(text)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to parse geometry literal '%s'", text)
	}

	if sigolo.ShouldLogTrace() {
		sigolo.Tracef("Parsed geometry literal '%s' as %s", text, geometry.GeoJSONType())
	}
	return geometry, nil
}

// ParseBbox creates the bounding box of a BBOX predicate from its four coordinate VALUE tokens in the order
// min-x, min-y, max-x, max-y.
func ParseBbox(values []*Token) (*orb.Bound, error) {
	if len(values) != 4 {
		return nil, errors.Errorf("Expected 4 coordinates for BBOX but found %d", len(values))
	}

	var coordinates = [4]float64{}
	for i, token := range values {
		if token.kind != TokenKindValue {
			return nil, errors.Errorf("Expected %s as BBOX coordinate but found '%s' of kind %s", TokenKindValue.String(), token.text, token.kind.String())
		}

		value, err := strconv.ParseFloat(token.text, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Unable to parse BBOX coordinate '%s'", token.text)
		}
		coordinates[i] = value
	}

	return &orb.Bound{
		Min: orb.Point{coordinates[0], coordinates[1]},
		Max: orb.Point{coordinates[2], coordinates[3]},
	}, nil
}
