// Package ocr defines the text-recognition collaborator the verification
// service reads certificate images through, and its Tesseract-backed
// implementation.
package ocr

import "context"

// Result is one recognized image. TokenConfidence maps normalized tokens of
// the recognized text to their recognition confidence in [0,1]; the field
// extractor blends it into per-field confidences.
type Result struct {
	Text            string
	TokenConfidence map[string]float64
	MeanConfidence  float64
}

// Extractor recognizes text in a certificate image. An unreadable or corrupt
// image fails with common.ErrExtractionFailed; the request is then rejected,
// never retried here.
type Extractor interface {
	ExtractRawText(ctx context.Context, imageBytes []byte) (Result, error)
}
