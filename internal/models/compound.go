package models

import "time"

// PropertyTable mirrors the JSON shape of the PubChem property endpoint:
// {"PropertyTable": {"Properties": [{...}]}}
type PropertyTable struct {
	PropertyTable struct {
		Properties []CompoundProperties `json:"Properties"`
	} `json:"PropertyTable"`
}

// CompoundProperties is one property record for a compound.
// MolecularWeight arrives as a string in PUG REST responses.
type CompoundProperties struct {
	CID              int64  `json:"CID"`
	MolecularFormula string `json:"MolecularFormula"`
	MolecularWeight  string `json:"MolecularWeight"`
	SMILES           string `json:"SMILES"`
}

// SubstanceList mirrors the SID list JSON returned by the substance
// cross-reference endpoint: {"IdentifierList": {"SID": [...]}}
type SubstanceList struct {
	IdentifierList struct {
		SID []int64 `json:"SID"`
	} `json:"IdentifierList"`
}

// SearchRecord is one row of the session search history log.
type SearchRecord struct {
	ID          int64
	Mode        string
	Query       string
	ResultCount int
	ExecutedAt  time.Time
}

// DownloadRecord is one row of the download log: a file saved from a
// compound record or structure image fetch.
type DownloadRecord struct {
	ID       int64
	CID      string
	Format   string
	Filename string
	Bytes    int
	SavedAt  time.Time
}
