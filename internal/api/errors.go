package api

import "fmt"

// Error types for PubChem requests. Each failure class gets its own type so
// callers can branch with errors.As instead of matching message strings.
// An empty TXT result list is NOT an error; it is a valid outcome and is
// returned as an empty slice.

// HTTPError is a non-200 response from the PubChem API.
type HTTPError struct {
	Status int
	Reason string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("PubChem API error %d: %s", e.Status, e.Reason)
}

// TransportError is a network or connection failure before any response
// arrived. The wrapped cause comes from the HTTP client.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError is a malformed JSON body from an endpoint that promised JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse JSON response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ImageDecodeError is a structure PNG body that could not be decoded.
type ImageDecodeError struct {
	CID string
	Err error
}

func (e *ImageDecodeError) Error() string {
	return fmt.Sprintf("failed to decode structure image for CID %s: %v", e.CID, e.Err)
}

func (e *ImageDecodeError) Unwrap() error { return e.Err }
