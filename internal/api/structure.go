package api

import (
	"bytes"
	"image"
	"net/http"

	// Register the PNG decoder for image.Decode
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// StructureResult pairs a CID with its fetched structure image or the error
// that kept it from rendering. Batch fetches return one per input CID so a
// single failure never hides the rest.
type StructureResult struct {
	CID   string
	Image image.Image
	Err   error
}

// FetchStructureImage fetches and decodes the 2D structure rendering for a
// CID. The decoded image is resized onto the fixed 600x600 presentation
// canvas regardless of what PubChem actually returned.
func (c *Client) FetchStructureImage(cid string) (image.Image, error) {
	resp, err := c.Do(BuildStructureImageRequest(c.baseURL, cid))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{Status: resp.StatusCode, Reason: resp.Reason}
	}
	return DecodeStructureImage(cid, resp.Body)
}

// DecodeStructureImage decodes PNG bytes and resizes to the presentation
// canvas. Malformed bytes yield an ImageDecodeError.
func DecodeStructureImage(cid string, body []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, &ImageDecodeError{CID: cid, Err: err}
	}
	return ResizeToCanvas(img), nil
}

// ResizeToCanvas scales an image to the fixed StructureImageSize square.
// This is a presentation contract: the UI always receives 600x600.
func ResizeToCanvas(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == StructureImageSize && bounds.Dy() == StructureImageSize {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, StructureImageSize, StructureImageSize))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}

// FetchStructures fetches structure images for a list of CIDs, one blocking
// request at a time in input order. Each element is fault-isolated: a
// failed fetch or decode records its error and the loop moves on.
// The optional progress callback receives (done, total) after each CID.
func (c *Client) FetchStructures(cids []string, progress func(done, total int)) []StructureResult {
	results := make([]StructureResult, 0, len(cids))
	for i, cid := range cids {
		img, err := c.FetchStructureImage(cid)
		results = append(results, StructureResult{CID: cid, Image: img, Err: err})
		if progress != nil {
			progress(i+1, len(cids))
		}
	}
	return results
}
