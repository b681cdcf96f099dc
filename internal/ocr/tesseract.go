package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/dmitrijs2005/certverify/internal/common"
	"github.com/dmitrijs2005/certverify/internal/normalize"
)

// Tesseract recognizes certificate scans through the gosseract client. A
// fresh client is created per call; the client is not safe for concurrent
// use and setup cost is negligible next to recognition itself.
type Tesseract struct {
	languages     []string
	dpi           int
	clientFactory func() *gosseract.Client
}

func NewTesseract(languages []string, dpi int) *Tesseract {
	return &Tesseract{
		languages:     languages,
		dpi:           dpi,
		clientFactory: gosseract.NewClient,
	}
}

func (t *Tesseract) ExtractRawText(ctx context.Context, imageBytes []byte) (Result, error) {
	if len(imageBytes) == 0 {
		return Result{}, fmt.Errorf("%w: empty image", common.ErrExtractionFailed)
	}
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	default:
	}

	c := t.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(imageBytes); err != nil {
		return Result{}, fmt.Errorf("%w: set image: %v", common.ErrExtractionFailed, err)
	}
	if len(t.languages) > 0 {
		if err := c.SetLanguage(t.languages...); err != nil {
			return Result{}, fmt.Errorf("set languages: %w", err)
		}
	}
	if t.dpi > 0 {
		if err := c.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(t.dpi)); err != nil {
			return Result{}, fmt.Errorf("set dpi: %w", err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return Result{}, fmt.Errorf("%w: recognize: %v", common.ErrExtractionFailed, err)
	}
	if strings.TrimSpace(text) == "" {
		return Result{}, fmt.Errorf("%w: no text recognized", common.ErrExtractionFailed)
	}

	tokenConf, mean := wordConfidences(c)
	return Result{Text: text, TokenConfidence: tokenConf, MeanConfidence: mean}, nil
}

// wordConfidences maps each recognized word, in its repaired token form, to
// its recognition confidence. The key must match the token the extractor
// sees in Normalize output or the confidence blend never finds it. A word
// seen more than once keeps its lowest confidence so a single shaky
// occurrence is not masked.
func wordConfidences(c *gosseract.Client) (map[string]float64, float64) {
	boxes, err := c.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return nil, 0
	}
	conf := make(map[string]float64, len(boxes))
	var sum float64
	n := 0
	for _, b := range boxes {
		word := normalize.Token(b.Word)
		if word == "" {
			continue
		}
		v := b.Confidence / 100.0
		if prev, ok := conf[word]; !ok || v < prev {
			conf[word] = v
		}
		sum += v
		n++
	}
	if n == 0 {
		return nil, 0
	}
	return conf, sum / float64(n)
}
