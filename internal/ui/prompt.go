package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ParthebhanMedi/search-pubchem/internal/api"
)

// sanitizeInput removes null bytes and other invisible control characters from input
func sanitizeInput(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 0 || (r < 32 && r != '\t' && r != '\n' && r != '\r') {
			return -1
		}
		return r
	}, s)
}

// validateNumber accepts any parseable floating point value. The literal
// text is what goes into the URL, so no reformatting happens here.
func validateNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("value cannot be empty")
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	return nil
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// MassSearchInput holds the mass search form results.
type MassSearchInput struct {
	MassType string
	Range    bool   // false = equals a value
	Value    string // equals value (literal text)
	Min, Max string // range bounds (literal text)
}

// PromptForMassSearch collects mass type, equals/range choice, and values.
func PromptForMassSearch() (*MassSearchInput, error) {
	in := &MassSearchInput{
		MassType: api.MassMolecularWeight,
		Value:    "400.0",
		Min:      "400.0",
		Max:      "400.05",
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Mass Type").
				Options(
					huh.NewOption("Molecular Weight", api.MassMolecularWeight),
					huh.NewOption("Exact Mass", api.MassExact),
					huh.NewOption("Monoisotopic Mass", api.MassMonoisotopic),
				).
				Value(&in.MassType),
			huh.NewSelect[bool]().
				Title("Search Method").
				Options(
					huh.NewOption("Equals a Value", false),
					huh.NewOption("Within Range", true),
				).
				Value(&in.Range),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("prompt cancelled: %w", err)
	}

	if in.Range {
		rangeForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title(fmt.Sprintf("Minimum %s", in.MassType)).
					Value(&in.Min).
					Validate(validateNumber),
				huh.NewInput().
					Title(fmt.Sprintf("Maximum %s", in.MassType)).
					Value(&in.Max).
					Validate(validateNumber),
			),
		).WithTheme(NewAppTheme())
		if err := rangeForm.Run(); err != nil {
			return nil, fmt.Errorf("prompt cancelled: %w", err)
		}
		in.Min = strings.TrimSpace(sanitizeInput(in.Min))
		in.Max = strings.TrimSpace(sanitizeInput(in.Max))
		return in, nil
	}

	valueForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Enter %s", in.MassType)).
				Value(&in.Value).
				Validate(validateNumber),
		),
	).WithTheme(NewAppTheme())
	if err := valueForm.Run(); err != nil {
		return nil, fmt.Errorf("prompt cancelled: %w", err)
	}
	in.Value = strings.TrimSpace(sanitizeInput(in.Value))
	return in, nil
}

// StructureSearchInput holds the structure search form results.
type StructureSearchInput struct {
	SearchType string
	SMILES     string
}

// PromptForStructureSearch collects substructure/superstructure choice and a
// SMILES string.
func PromptForStructureSearch() (*StructureSearchInput, error) {
	in := &StructureSearchInput{
		SearchType: api.StructureSub,
		SMILES:     "C1CCCCC1",
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Search Type").
				Options(
					huh.NewOption("Substructure", api.StructureSub),
					huh.NewOption("Superstructure", api.StructureSuper),
				).
				Value(&in.SearchType),
			huh.NewInput().
				Title("SMILES").
				Description("Substructure or superstructure SMILES string").
				Value(&in.SMILES).
				Validate(validateNonEmpty),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("prompt cancelled: %w", err)
	}

	in.SMILES = strings.TrimSpace(sanitizeInput(in.SMILES))
	return in, nil
}

// SimilaritySearchInput holds the similarity search form results.
type SimilaritySearchInput struct {
	SMILES    string
	Threshold int
}

// PromptForSimilaritySearch collects a SMILES string and a similarity
// threshold in [1, 100].
func PromptForSimilaritySearch() (*SimilaritySearchInput, error) {
	in := &SimilaritySearchInput{SMILES: "CC(=O)OC1=CC=CC=C1C(=O)O"}
	threshold := "90"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("SMILES").
				Description("SMILES string for similarity search").
				Value(&in.SMILES).
				Validate(validateNonEmpty),
			huh.NewInput().
				Title("Similarity Threshold (1-100)").
				Value(&threshold).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("not an integer: %q", s)
					}
					if n < 1 || n > 100 {
						return fmt.Errorf("threshold must be between 1 and 100")
					}
					return nil
				}),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("prompt cancelled: %w", err)
	}

	in.SMILES = strings.TrimSpace(sanitizeInput(in.SMILES))
	in.Threshold, _ = strconv.Atoi(strings.TrimSpace(threshold))
	return in, nil
}

// XrefSearchInput holds the cross-reference search form results.
type XrefSearchInput struct {
	XrefType  string
	XrefValue string
}

// PromptForXrefSearch collects a cross-reference type and value.
func PromptForXrefSearch() (*XrefSearchInput, error) {
	in := &XrefSearchInput{
		XrefType:  "PatentID",
		XrefValue: "US20050159403A1",
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Cross-Reference Type").
				Description("e.g., PatentID, RegistryID, RN").
				Value(&in.XrefType).
				Validate(validateNonEmpty),
			huh.NewInput().
				Title("Cross-Reference Value").
				Value(&in.XrefValue).
				Validate(validateNonEmpty),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("prompt cancelled: %w", err)
	}

	in.XrefType = strings.TrimSpace(sanitizeInput(in.XrefType))
	in.XrefValue = strings.TrimSpace(sanitizeInput(in.XrefValue))
	return in, nil
}

// RecordAction is what the user wants to do with a full compound record.
type RecordAction int

const (
	RecordActionCancel RecordAction = iota
	RecordActionViewJSON
	RecordActionDownloadSDF
)

// PromptForRecordAction asks whether to view the record as JSON or download
// the SDF file.
func PromptForRecordAction(cid string) (RecordAction, error) {
	action := RecordActionViewJSON

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[RecordAction]().
				Title(fmt.Sprintf("Full record for CID %s", cid)).
				Options(
					huh.NewOption("View as JSON", RecordActionViewJSON),
					huh.NewOption("Download SDF", RecordActionDownloadSDF),
					huh.NewOption("Cancel", RecordActionCancel),
				).
				Value(&action),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return RecordActionCancel, nil
	}
	return action, nil
}

// ConfirmViewAll asks whether to fetch structure images for every stored
// similarity result.
func ConfirmViewAll(count int) (bool, error) {
	var confirm bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Fetch structures for all %d compounds?", count)).
				Description("One request per CID, no concurrency").
				Affirmative("Yes, view all").
				Negative("Cancel").
				Value(&confirm),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return false, nil
	}
	return confirm, nil
}
