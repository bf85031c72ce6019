package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ParthebhanMedi/search-pubchem/internal/models"
	"github.com/charmbracelet/log"
)

const userAgent = "search-pubchem/1.0"

// Client is a PubChem PUG REST API client.
// Every search performs exactly one request attempt: no retries, no backoff.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *log.Logger
}

// NewClient creates a PubChem client with a 30 second timeout.
// An empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// NewClientWithLogging creates a client that logs requests to an api.log
// file in the same directory as the session database.
func NewClientWithLogging(baseURL, dbPath string) *Client {
	client := NewClient(baseURL)

	logFile := filepath.Join(filepath.Dir(dbPath), "api.log")
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// Fall back to a client without file logging
		return client
	}

	client.logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "API",
	})
	return client
}

// BaseURL returns the API root this client targets.
func (c *Client) BaseURL() string { return c.baseURL }

// Response is the raw outcome of one executed RequestDescriptor.
type Response struct {
	StatusCode int
	Reason     string
	Body       []byte
}

// Do executes a RequestDescriptor and returns the raw response.
// A network failure yields a TransportError; non-200 statuses are returned
// as-is for the caller to classify.
func (c *Client) Do(desc RequestDescriptor) (*Response, error) {
	var (
		resp *http.Response
		err  error
	)

	if c.logger != nil {
		c.logger.Info(desc.Method, "endpoint", desc.URL)
	}

	switch desc.Method {
	case "POST":
		req, reqErr := http.NewRequest("POST", desc.URL, strings.NewReader(desc.Body.Encode()))
		if reqErr != nil {
			return nil, fmt.Errorf("failed to create request: %w", reqErr)
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, err = c.httpClient.Do(req)
	default:
		req, reqErr := http.NewRequest("GET", desc.URL, nil)
		if reqErr != nil {
			return nil, fmt.Errorf("failed to create request: %w", reqErr)
		}
		req.Header.Set("User-Agent", userAgent)
		resp, err = c.httpClient.Do(req)
	}

	if err != nil {
		if c.logger != nil {
			c.logger.Error("Request failed", "url", desc.URL, "error", err)
		}
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if c.logger != nil && resp.StatusCode != http.StatusOK {
		c.logger.Error("API error", "status", resp.StatusCode, "url", desc.URL)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
		Body:       body,
	}, nil
}

// fetch executes a descriptor and enforces the 200-only contract, turning
// any other status into an HTTPError that carries status and reason.
func (c *Client) fetch(desc RequestDescriptor) ([]byte, error) {
	resp, err := c.Do(desc)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{Status: resp.StatusCode, Reason: resp.Reason}
	}
	return resp.Body, nil
}

// fetchCIDs executes a descriptor expecting a TXT identifier list.
func (c *Client) fetchCIDs(desc RequestDescriptor) ([]string, error) {
	body, err := c.fetch(desc)
	if err != nil {
		return nil, err
	}
	return ParseCIDList(body), nil
}

// SearchByName resolves a chemical name to CIDs.
func (c *Client) SearchByName(name string) ([]string, error) {
	return c.fetchCIDs(BuildNameSearchRequest(c.baseURL, name))
}

// SearchBySMILES resolves a SMILES string to CIDs.
func (c *Client) SearchBySMILES(smiles string) ([]string, error) {
	return c.fetchCIDs(BuildSMILESSearchRequest(c.baseURL, smiles))
}

// SearchByFormula searches compounds by molecular formula.
func (c *Client) SearchByFormula(formula string) ([]string, error) {
	return c.fetchCIDs(BuildFormulaSearchRequest(c.baseURL, formula))
}

// SearchByMassEquals searches compounds whose mass equals the given value.
func (c *Client) SearchByMassEquals(massType, value string) ([]string, error) {
	return c.fetchCIDs(BuildMassEqualsRequest(c.baseURL, massType, value))
}

// SearchByMassRange searches compounds with mass in [min, max].
func (c *Client) SearchByMassRange(massType, min, max string) ([]string, error) {
	return c.fetchCIDs(BuildMassRangeRequest(c.baseURL, massType, min, max))
}

// SearchByStructure runs a substructure or superstructure search.
func (c *Client) SearchByStructure(searchType, smiles string) ([]string, error) {
	return c.fetchCIDs(BuildStructureSearchRequest(c.baseURL, searchType, smiles))
}

// SearchBySimilarity runs a 2D similarity search at the given threshold.
func (c *Client) SearchBySimilarity(smiles string, threshold int) ([]string, error) {
	return c.fetchCIDs(BuildSimilarityRequest(c.baseURL, smiles, threshold))
}

// FetchProperties fetches the property record (formula, weight, SMILES) for
// a CID and returns both the decoded record and the raw JSON document.
func (c *Client) FetchProperties(cid string) (*models.PropertyTable, json.RawMessage, error) {
	body, err := c.fetch(BuildCIDPropertiesRequest(c.baseURL, cid))
	if err != nil {
		return nil, nil, err
	}

	doc, err := ParseJSONDocument(body)
	if err != nil {
		return nil, nil, err
	}

	var table models.PropertyTable
	if err := json.Unmarshal(doc, &table); err != nil {
		return nil, nil, &ParseError{Err: err}
	}
	return &table, doc, nil
}

// SearchByXref searches substances by cross-reference. Returns the decoded
// SID list and the raw JSON document for display.
func (c *Client) SearchByXref(xrefType, xrefValue string) (*models.SubstanceList, json.RawMessage, error) {
	body, err := c.fetch(BuildXrefSearchRequest(c.baseURL, xrefType, xrefValue))
	if err != nil {
		return nil, nil, err
	}

	doc, err := ParseJSONDocument(body)
	if err != nil {
		return nil, nil, err
	}

	var list models.SubstanceList
	if err := json.Unmarshal(doc, &list); err != nil {
		return nil, nil, &ParseError{Err: err}
	}
	return &list, doc, nil
}

// FetchFullRecordJSON fetches the complete compound record as JSON.
func (c *Client) FetchFullRecordJSON(cid string) (json.RawMessage, error) {
	body, err := c.fetch(BuildFullRecordRequest(c.baseURL, cid, RecordJSON))
	if err != nil {
		return nil, err
	}
	return ParseJSONDocument(body)
}

// FetchFullRecordSDF fetches the complete compound record as SDF.
// The body is returned untouched for the user to save.
func (c *Client) FetchFullRecordSDF(cid string) ([]byte, error) {
	return c.fetch(BuildFullRecordRequest(c.baseURL, cid, RecordSDF))
}

// reasonPhrase extracts the reason text from a status line like
// "404 Not Found" (PUG REST also sends a PUGREST error name there).
func reasonPhrase(resp *http.Response) string {
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}
