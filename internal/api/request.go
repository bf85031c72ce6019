package api

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultBaseURL is the PubChem PUG REST API root.
const DefaultBaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"

// SearchMode identifies which PubChem search endpoint a request targets.
type SearchMode int

const (
	ByCID SearchMode = iota
	ByName
	BySMILES
	ByFormula
	ByMass
	ByStructure
	ByCrossReference
	BySimilarity
	ViewFullRecord
)

// String returns the menu label for the mode.
func (m SearchMode) String() string {
	switch m {
	case ByCID:
		return "By CID"
	case ByName:
		return "By Name"
	case BySMILES:
		return "By SMILES"
	case ByFormula:
		return "By Molecular Formula"
	case ByMass:
		return "By Mass"
	case ByStructure:
		return "By Structure Search"
	case ByCrossReference:
		return "By Cross Reference"
	case BySimilarity:
		return "By Similarity Search"
	case ViewFullRecord:
		return "View Full Records"
	}
	return "Unknown"
}

// Mass search types accepted by the /compound/{massType}/ endpoints.
const (
	MassMolecularWeight = "molecular_weight"
	MassExact           = "exact_mass"
	MassMonoisotopic    = "monoisotopic_mass"
)

// MassTypes lists the valid mass search types in menu order.
var MassTypes = []string{MassMolecularWeight, MassExact, MassMonoisotopic}

// Structure search types for the fast{type} endpoints.
const (
	StructureSub   = "substructure"
	StructureSuper = "superstructure"
)

// RequestDescriptor is a fully-formed PubChem request: method, URL, and POST
// body parameters (nil for GET). Built fresh per user action and fully
// determined by the search mode and its inputs.
type RequestDescriptor struct {
	Method string
	URL    string
	Body   url.Values
}

// BuildCIDPropertiesRequest fetches MolecularFormula, MolecularWeight and
// SMILES for a single CID as JSON.
// The CID is deliberately not validated beyond what the caller provides;
// PubChem rejects malformed identifiers itself.
func BuildCIDPropertiesRequest(baseURL, cid string) RequestDescriptor {
	return RequestDescriptor{
		Method: "GET",
		URL: fmt.Sprintf("%s/compound/cid/%s/property/MolecularFormula,MolecularWeight,SMILES/JSON",
			baseURL, url.PathEscape(cid)),
	}
}

// BuildNameSearchRequest resolves a chemical name to a CID list (TXT).
func BuildNameSearchRequest(baseURL, name string) RequestDescriptor {
	return RequestDescriptor{
		Method: "GET",
		URL:    fmt.Sprintf("%s/compound/name/%s/cids/TXT", baseURL, url.PathEscape(name)),
	}
}

// BuildSMILESSearchRequest resolves a SMILES string to a CID list (TXT).
func BuildSMILESSearchRequest(baseURL, smiles string) RequestDescriptor {
	return RequestDescriptor{
		Method: "GET",
		URL:    fmt.Sprintf("%s/compound/smiles/%s/cids/TXT", baseURL, url.PathEscape(smiles)),
	}
}

// BuildFormulaSearchRequest searches by molecular formula (TXT CID list).
func BuildFormulaSearchRequest(baseURL, formula string) RequestDescriptor {
	return RequestDescriptor{
		Method: "GET",
		URL:    fmt.Sprintf("%s/compound/fastformula/%s/cids/TXT", baseURL, url.PathEscape(formula)),
	}
}

// BuildMassEqualsRequest searches for compounds whose mass equals a value.
// The value is the user's literal numeric text so that "400.0" stays "400.0"
// on the wire instead of being reformatted through a float round-trip.
func BuildMassEqualsRequest(baseURL, massType, value string) RequestDescriptor {
	return RequestDescriptor{
		Method: "GET",
		URL: fmt.Sprintf("%s/compound/%s/equals/%s/cids/TXT",
			baseURL, url.PathEscape(massType), url.PathEscape(value)),
	}
}

// BuildMassRangeRequest searches for compounds whose mass lies in [min, max].
// Like BuildMassEqualsRequest, min and max are literal numeric text.
func BuildMassRangeRequest(baseURL, massType, min, max string) RequestDescriptor {
	return RequestDescriptor{
		Method: "GET",
		URL: fmt.Sprintf("%s/compound/%s/range/%s/%s/cids/TXT",
			baseURL, url.PathEscape(massType), url.PathEscape(min), url.PathEscape(max)),
	}
}

// BuildStructureSearchRequest runs a substructure or superstructure search.
// The SMILES goes in the POST body, not the URL.
func BuildStructureSearchRequest(baseURL, searchType, smiles string) RequestDescriptor {
	return RequestDescriptor{
		Method: "POST",
		URL:    fmt.Sprintf("%s/compound/fast%s/smiles/cids/TXT", baseURL, url.PathEscape(searchType)),
		Body:   url.Values{"smiles": {smiles}},
	}
}

// BuildSimilarityRequest runs a 2D similarity search at the given threshold.
// Threshold is clamped to [1, 100], matching the range the original slider
// allowed.
func BuildSimilarityRequest(baseURL, smiles string, threshold int) RequestDescriptor {
	if threshold < 1 {
		threshold = 1
	}
	if threshold > 100 {
		threshold = 100
	}
	return RequestDescriptor{
		Method: "POST",
		URL:    fmt.Sprintf("%s/compound/fastsimilarity_2d/smiles/cids/TXT?Threshold=%d", baseURL, threshold),
		Body:   url.Values{"smiles": {smiles}},
	}
}

// BuildXrefSearchRequest searches substances by cross-reference, returning a
// SID list as JSON.
func BuildXrefSearchRequest(baseURL, xrefType, xrefValue string) RequestDescriptor {
	return RequestDescriptor{
		Method: "GET",
		URL: fmt.Sprintf("%s/substance/xref/%s/%s/sids/JSON",
			baseURL, url.PathEscape(xrefType), url.PathEscape(xrefValue)),
	}
}

// Full record formats.
const (
	RecordJSON = "JSON"
	RecordSDF  = "SDF"
)

// BuildFullRecordRequest fetches the complete compound record as JSON or SDF.
func BuildFullRecordRequest(baseURL, cid, format string) RequestDescriptor {
	return RequestDescriptor{
		Method: "GET",
		URL:    fmt.Sprintf("%s/compound/cid/%s/%s", baseURL, url.PathEscape(cid), format),
	}
}

// StructureImageSize is the fixed canvas requested from PubChem and the
// target the decoded image is resized to before display.
const StructureImageSize = 600

// BuildStructureImageRequest fetches the 2D structure rendering for a CID.
func BuildStructureImageRequest(baseURL, cid string) RequestDescriptor {
	return RequestDescriptor{
		Method: "GET",
		URL: fmt.Sprintf("%s/compound/cid/%s/record/PNG?image_size=%dx%d",
			baseURL, url.PathEscape(cid), StructureImageSize, StructureImageSize),
	}
}

// ValidMassType reports whether massType is one of the accepted values.
func ValidMassType(massType string) bool {
	for _, t := range MassTypes {
		if t == massType {
			return true
		}
	}
	return false
}

// NormalizeCID trims whitespace from a CID token. No further validation on
// purpose: the remote service is the authority on what a CID is.
func NormalizeCID(cid string) string {
	return strings.TrimSpace(cid)
}
