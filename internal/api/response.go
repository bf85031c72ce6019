package api

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ParseCIDList splits a TXT endpoint body into identifier tokens.
// PubChem returns one CID (or SID) per line; splitting on any whitespace
// also tolerates trailing newlines and padding. An empty-after-trim body
// yields an empty slice and no error: "no results" is a valid outcome, not
// a failure.
func ParseCIDList(body []byte) []string {
	return strings.Fields(string(body))
}

// ParseJSONDocument validates and decodes a JSON endpoint body.
// Returns a ParseError when the body is not well-formed JSON.
func ParseJSONDocument(body []byte) (json.RawMessage, error) {
	var doc json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	return doc, nil
}

// PrettyJSON re-indents a JSON document for display.
func PrettyJSON(doc json.RawMessage) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, doc, "", "  "); err != nil {
		return "", &ParseError{Err: err}
	}
	return buf.String(), nil
}
