package api

import (
	"errors"
	"reflect"
	"testing"
)

// TestParseCIDList verifies whitespace splitting including padding, blank
// lines, and the empty-body case.
func TestParseCIDList(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "one per line",
			body: "2244\n962\n5793\n",
			want: []string{"2244", "962", "5793"},
		},
		{
			name: "padded and space separated",
			body: "  123 456 789  \n",
			want: []string{"123", "456", "789"},
		},
		{
			name: "blank lines between entries",
			body: "11\n\n\n22\n",
			want: []string{"11", "22"},
		},
		{
			name: "empty body",
			body: "",
			want: []string{},
		},
		{
			name: "whitespace only body",
			body: "  \n\t\n",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCIDList([]byte(tt.body))
			if len(got) == 0 && len(tt.want) == 0 {
				return // both empty, representation does not matter
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseCIDList(%q) = %v, want %v", tt.body, got, tt.want)
			}
		})
	}
}

func TestParseJSONDocument(t *testing.T) {
	doc, err := ParseJSONDocument([]byte(`{"IdentifierList":{"CID":[2244]}}`))
	if err != nil {
		t.Fatalf("ParseJSONDocument() error = %v", err)
	}
	if len(doc) == 0 {
		t.Fatal("ParseJSONDocument() returned an empty document")
	}
}

func TestParseJSONDocumentMalformed(t *testing.T) {
	_, err := ParseJSONDocument([]byte(`{"broken":`))
	if err == nil {
		t.Fatal("ParseJSONDocument() accepted malformed JSON")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("error type = %T, want *ParseError", err)
	}
}

func TestPrettyJSON(t *testing.T) {
	got, err := PrettyJSON([]byte(`{"a":1,"b":[2,3]}`))
	if err != nil {
		t.Fatalf("PrettyJSON() error = %v", err)
	}
	want := "{\n  \"a\": 1,\n  \"b\": [\n    2,\n    3\n  ]\n}"
	if got != want {
		t.Errorf("PrettyJSON() = %q, want %q", got, want)
	}
}
