package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

// TestSearchByNameOK verifies a TXT list response turns into the CID slice.
func TestSearchByNameOK(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("2244\n962\n"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	cids, err := client.SearchByName("glucose")
	if err != nil {
		t.Fatalf("SearchByName() error = %v", err)
	}
	if want := []string{"2244", "962"}; !reflect.DeepEqual(cids, want) {
		t.Errorf("SearchByName() = %v, want %v", cids, want)
	}
	if gotPath != "/compound/name/glucose/cids/TXT" {
		t.Errorf("request path = %q", gotPath)
	}
}

// TestSearchEmptyResult verifies an empty TXT body is a valid zero-hit
// outcome, not an error.
func TestSearchEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("\n"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	cids, err := client.SearchByFormula("C99H99")
	if err != nil {
		t.Fatalf("SearchByFormula() error = %v, want nil for empty result", err)
	}
	if len(cids) != 0 {
		t.Errorf("SearchByFormula() = %v, want empty", cids)
	}
}

// TestSearchHTTPError verifies a non-200 status becomes an HTTPError that
// carries both the code and the reason text.
func TestSearchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "PUGREST.NotFound", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.SearchByName("nosuchcompound")
	if err == nil {
		t.Fatal("SearchByName() error = nil, want HTTPError")
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error type = %T, want *HTTPError", err)
	}
	if httpErr.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", httpErr.Status, http.StatusNotFound)
	}
	if httpErr.Reason == "" {
		t.Error("Reason is empty, want the status reason text")
	}
}

// TestTransportError verifies a connection failure yields a TransportError,
// distinct from an HTTP status failure.
func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL)
	_, err := client.SearchByName("glucose")
	if err == nil {
		t.Fatal("SearchByName() error = nil, want TransportError")
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error type = %T, want *TransportError", err)
	}
	if transportErr.Unwrap() == nil {
		t.Error("TransportError carries no cause")
	}
}

// TestStructureSearchPost verifies the SMILES goes in the form body.
func TestStructureSearchPost(t *testing.T) {
	var gotMethod, gotSMILES string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		r.ParseForm()
		gotSMILES = r.PostFormValue("smiles")
		w.Write([]byte("8078\n"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	cids, err := client.SearchByStructure(StructureSub, "C1CCCCC1")
	if err != nil {
		t.Fatalf("SearchByStructure() error = %v", err)
	}
	if gotMethod != "POST" {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	if gotSMILES != "C1CCCCC1" {
		t.Errorf("posted smiles = %q", gotSMILES)
	}
	if len(cids) != 1 || cids[0] != "8078" {
		t.Errorf("cids = %v, want [8078]", cids)
	}
}

// TestSimilaritySearchThresholdParam verifies the threshold reaches the
// server as a query parameter.
func TestSimilaritySearchThresholdParam(t *testing.T) {
	var gotThreshold string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotThreshold = r.URL.Query().Get("Threshold")
		w.Write([]byte("2244\n"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.SearchBySimilarity("CCO", 85); err != nil {
		t.Fatalf("SearchBySimilarity() error = %v", err)
	}
	if gotThreshold != "85" {
		t.Errorf("Threshold param = %q, want 85", gotThreshold)
	}
}

// TestFetchProperties verifies the JSON property record is decoded and the
// raw document preserved.
func TestFetchProperties(t *testing.T) {
	const body = `{"PropertyTable":{"Properties":[{"CID":2244,"MolecularFormula":"C9H8O4","MolecularWeight":"180.16","SMILES":"CC(=O)OC1=CC=CC=C1C(=O)O"}]}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	table, raw, err := client.FetchProperties("2244")
	if err != nil {
		t.Fatalf("FetchProperties() error = %v", err)
	}
	props := table.PropertyTable.Properties
	if len(props) != 1 {
		t.Fatalf("got %d property records, want 1", len(props))
	}
	if props[0].CID != 2244 || props[0].MolecularFormula != "C9H8O4" {
		t.Errorf("decoded record = %+v", props[0])
	}
	if props[0].MolecularWeight != "180.16" {
		t.Errorf("MolecularWeight = %q, want the string form", props[0].MolecularWeight)
	}
	if string(raw) != body {
		t.Errorf("raw document was altered: %s", raw)
	}
}

// TestFetchPropertiesMalformed verifies a JSON endpoint that returns garbage
// yields a ParseError.
func TestFetchPropertiesMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, _, err := client.FetchProperties("2244")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v (%T), want *ParseError", err, err)
	}
}

// TestSearchByXref verifies SID list decoding.
func TestSearchByXref(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/substance/xref/PatentID/US20050159403A1/sids/JSON" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"IdentifierList":{"SID":[103233860,103233861]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	list, _, err := client.SearchByXref("PatentID", "US20050159403A1")
	if err != nil {
		t.Fatalf("SearchByXref() error = %v", err)
	}
	if got := len(list.IdentifierList.SID); got != 2 {
		t.Errorf("got %d SIDs, want 2", got)
	}
}

// TestFetchFullRecordSDF verifies the SDF body passes through untouched.
func TestFetchFullRecordSDF(t *testing.T) {
	const sdf = "2244\n  -OEChem\n\nM  END\n$$$$\n"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/compound/cid/2244/SDF" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(sdf))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	data, err := client.FetchFullRecordSDF("2244")
	if err != nil {
		t.Fatalf("FetchFullRecordSDF() error = %v", err)
	}
	if string(data) != sdf {
		t.Errorf("SDF body was altered:\n%s", data)
	}
}

func TestNewClientDefaultBase(t *testing.T) {
	client := NewClient("")
	if client.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL() = %q, want %q", client.BaseURL(), DefaultBaseURL)
	}
}

// TestLiveSearchIntegration hits the real PubChem API.
// Run with: go test -v -run TestLiveSearchIntegration ./internal/api/
func TestLiveSearchIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	client := NewClient("")
	cids, err := client.SearchByName("aspirin")
	if err != nil {
		t.Fatalf("SearchByName(aspirin) error = %v", err)
	}
	if len(cids) == 0 {
		t.Fatal("SearchByName(aspirin) returned no CIDs")
	}
	t.Logf("aspirin resolved to %d CIDs, first: %s", len(cids), cids[0])
}
