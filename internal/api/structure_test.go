package api

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// TestDecodeStructureImage verifies decoding plus the resize to the fixed
// presentation canvas.
func TestDecodeStructureImage(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"already canvas sized", StructureImageSize, StructureImageSize},
		{"smaller", 300, 300},
		{"non-square", 120, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := DecodeStructureImage("2244", encodePNG(t, tt.w, tt.h))
			if err != nil {
				t.Fatalf("DecodeStructureImage() error = %v", err)
			}
			bounds := img.Bounds()
			if bounds.Dx() != StructureImageSize || bounds.Dy() != StructureImageSize {
				t.Errorf("bounds = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), StructureImageSize, StructureImageSize)
			}
		})
	}
}

// TestDecodeStructureImageMalformed verifies garbage bytes yield an
// ImageDecodeError that names the CID.
func TestDecodeStructureImageMalformed(t *testing.T) {
	_, err := DecodeStructureImage("962", []byte("this is not a png"))
	if err == nil {
		t.Fatal("DecodeStructureImage() accepted garbage")
	}
	var decodeErr *ImageDecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("error type = %T, want *ImageDecodeError", err)
	}
	if decodeErr.CID != "962" {
		t.Errorf("CID = %q, want 962", decodeErr.CID)
	}
}

// TestFetchStructureImage verifies the request shape and the decode path
// against a stub server.
func TestFetchStructureImage(t *testing.T) {
	body := encodePNG(t, 300, 300)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/compound/cid/2244/record/PNG" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("image_size"); got != "600x600" {
			t.Errorf("image_size = %q, want 600x600", got)
		}
		w.Write(body)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	img, err := client.FetchStructureImage("2244")
	if err != nil {
		t.Fatalf("FetchStructureImage() error = %v", err)
	}
	if img.Bounds().Dx() != StructureImageSize {
		t.Errorf("width = %d, want %d", img.Bounds().Dx(), StructureImageSize)
	}
}

// TestFetchStructuresFaultIsolation verifies a failing CID in the middle of
// a batch does not stop or hide the others.
func TestFetchStructuresFaultIsolation(t *testing.T) {
	body := encodePNG(t, 100, 100)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/cid/2/") {
			http.Error(w, "PUGREST.NotFound", http.StatusNotFound)
			return
		}
		w.Write(body)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var progressCalls int
	results := client.FetchStructures([]string{"1", "2", "3"}, func(done, total int) {
		progressCalls++
		if total != 3 {
			t.Errorf("progress total = %d, want 3", total)
		}
	})

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if progressCalls != 3 {
		t.Errorf("progress called %d times, want 3", progressCalls)
	}

	for i, wantCID := range []string{"1", "2", "3"} {
		if results[i].CID != wantCID {
			t.Errorf("results[%d].CID = %q, want %q (input order preserved)", i, results[i].CID, wantCID)
		}
	}

	if results[0].Err != nil || results[0].Image == nil {
		t.Errorf("CID 1 should have succeeded: err=%v", results[0].Err)
	}
	if results[2].Err != nil || results[2].Image == nil {
		t.Errorf("CID 3 should have succeeded: err=%v", results[2].Err)
	}

	if results[1].Err == nil {
		t.Fatal("CID 2 should have failed")
	}
	var httpErr *HTTPError
	if !errors.As(results[1].Err, &httpErr) || httpErr.Status != http.StatusNotFound {
		t.Errorf("CID 2 error = %v, want 404 HTTPError", results[1].Err)
	}
}

// TestResizeToCanvasIdentity verifies an already-600x600 image is returned
// without a redundant copy.
func TestResizeToCanvasIdentity(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, StructureImageSize, StructureImageSize))
	if got := ResizeToCanvas(src); got != image.Image(src) {
		t.Error("ResizeToCanvas copied an image that was already canvas sized")
	}
}
