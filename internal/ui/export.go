package ui

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/ParthebhanMedi/search-pubchem/internal/api"
)

// SDFMimeType is recorded alongside SDF downloads.
const SDFMimeType = "chemical/x-mdl-sdfile"

func ensureOutDir(outDir string) error {
	if outDir == "" {
		return nil
	}
	return os.MkdirAll(outDir, 0755)
}

// SaveSDF writes a fetched SDF record to CID_{cid}.sdf, untouched.
func SaveSDF(outDir, cid string, data []byte) (string, error) {
	if err := ensureOutDir(outDir); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(outDir, fmt.Sprintf("CID_%s.sdf", cid))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write SDF file: %w", err)
	}
	return filename, nil
}

// SaveJSON pretty-prints a JSON document to CID_{cid}.json.
func SaveJSON(outDir, cid string, doc json.RawMessage) (string, error) {
	if err := ensureOutDir(outDir); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	pretty, err := api.PrettyJSON(doc)
	if err != nil {
		return "", err
	}

	filename := filepath.Join(outDir, fmt.Sprintf("CID_%s.json", cid))
	if err := os.WriteFile(filename, []byte(pretty+"\n"), 0644); err != nil {
		return "", fmt.Errorf("failed to write JSON file: %w", err)
	}
	return filename, nil
}

// SavePNG writes a decoded structure image to CID_{cid}.png.
func SavePNG(outDir, cid string, img image.Image) (string, error) {
	if err := ensureOutDir(outDir); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(outDir, fmt.Sprintf("CID_%s.png", cid))
	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create PNG file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}
	return filename, nil
}
