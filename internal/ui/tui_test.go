package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/ParthebhanMedi/search-pubchem/internal/api"
)

// TestErrorMessage verifies each failure class maps to its user-facing
// message.
func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "http error carries status and reason",
			err:  &api.HTTPError{Status: 404, Reason: "PUGREST.NotFound"},
			want: "Error 404: PUGREST.NotFound",
		},
		{
			name: "transport error",
			err:  &api.TransportError{Err: errors.New("connection refused")},
			want: "Failed to fetch data: connection refused",
		},
		{
			name: "other errors pass through",
			err:  errors.New("something else"),
			want: "something else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorMessage(tt.err); got != tt.want {
				t.Errorf("errorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateNumber(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"400.0", false},
		{" 400.05 ", false},
		{"180", false},
		{"", true},
		{"abc", true},
		{"400,0", true},
	}
	for _, tt := range tests {
		err := validateNumber(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateNumber(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	got := sanitizeInput("glu\x00cose\x07")
	if got != "glucose" {
		t.Errorf("sanitizeInput() = %q, want glucose", got)
	}
}

// TestMenuCoversSearchModes verifies every search mode label appears in the
// main menu.
func TestMenuCoversSearchModes(t *testing.T) {
	joined := strings.Join(menuItems, "\n")
	modes := []api.SearchMode{
		api.ByCID, api.ByName, api.BySMILES, api.ByFormula, api.ByMass,
		api.ByStructure, api.ByCrossReference, api.BySimilarity, api.ViewFullRecord,
	}
	for _, m := range modes {
		if !strings.Contains(joined, m.String()) {
			t.Errorf("menu is missing %q", m.String())
		}
	}
	if menuItems[len(menuItems)-1] != "Quit" {
		t.Errorf("last menu item = %q, want Quit", menuItems[len(menuItems)-1])
	}
}
