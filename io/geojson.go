package io

import (
	"cqlfilter/lexer"
	"encoding/json"
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"io"
	"time"
)

type TokenResponse struct {
	Kind      lexer.TokenKind   `json:"kind"`
	Text      string            `json:"text"`
	Remainder string            `json:"remainder"`
	Geometry  *geojson.Geometry `json:"geometry,omitempty"`
}

type TokensResponse struct {
	Tokens []TokenResponse `json:"tokens"`
}

// NewTokensResponse converts the tokens into their JSON representation. GEOMETRY tokens get their geometry attached
// as GeoJSON when the WKT literal is valid. Invalid literals are no error here since the lexer doesn't validate them
// either.
func NewTokensResponse(tokens []*lexer.Token) TokensResponse {
	response := TokensResponse{
		Tokens: []TokenResponse{},
	}

	for _, token := range tokens {
		tokenResponse := TokenResponse{
			Kind:      token.Kind(),
			Text:      token.Text(),
			Remainder: token.Remainder(),
		}

		if token.Kind() == lexer.TokenKindGeometry {
			geometry, err := lexer.ParseGeometry(token.Text())
			if err != nil {
				sigolo.Debugf("Geometry of token %s not added to response: %s", token.String(), err.Error())
			} else {
				tokenResponse.Geometry = geojson.NewGeometry(geometry)
			}
		}

		response.Tokens = append(response.Tokens, tokenResponse)
	}

	return response
}

func WriteTokensAsJson(tokens []*lexer.Token, writer io.Writer) error {
	sigolo.Debugf("Write %d token as JSON", len(tokens))
	writeStartTime := time.Now()

	responseBytes, err := json.Marshal(NewTokensResponse(tokens))
	if err != nil {
		return errors.Wrap(err, "Unable to marshal token response")
	}

	_, err = writer.Write(responseBytes)
	if err != nil {
		return errors.Wrap(err, "Unable to write token response")
	}

	sigolo.Debugf("Finished writing in %s", time.Since(writeStartTime))
	return nil
}
