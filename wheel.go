package camgesture

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Fallbacks used when no font metrics or page size are available.
const (
	DefaultLineHeight = 16.0
	DefaultPageHeight = 800.0
)

// LineMetrics supplies the current line height for line-mode wheel deltas.
// ok is false when no metrics are available.
type LineMetrics interface {
	LineHeight() (h float64, ok bool)
}

// FaceMetrics reads the line height from an ebiten text face.
type FaceMetrics struct {
	Face text.Face
}

// LoadLineMetrics parses TrueType or OpenType data and returns metrics for
// a face of the given size, as hosts render their text with it.
func LoadLineMetrics(ttfData []byte, size float64) (FaceMetrics, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return FaceMetrics{}, fmt.Errorf("parse font: %w", err)
	}
	return FaceMetrics{Face: &text.GoTextFace{Source: source, Size: size}}, nil
}

// LineHeight returns ascent + descent + line gap of the face.
func (f FaceMetrics) LineHeight() (float64, bool) {
	if f.Face == nil {
		return 0, false
	}
	m := f.Face.Metrics()
	h := m.HAscent + m.HDescent + m.HLineGap
	return h, h > 0
}

// WheelNormalizer converts raw wheel deltas to pixel-equivalent magnitudes.
type WheelNormalizer struct {
	// Metrics, when set, provides the line height for DeltaLine.
	Metrics LineMetrics
	// LineHeight is used for DeltaLine when Metrics is nil or has no answer.
	LineHeight float64
	// PageHeight is used for DeltaPage.
	PageHeight float64
}

func (n WheelNormalizer) lineHeight() float64 {
	if n.Metrics != nil {
		if h, ok := n.Metrics.LineHeight(); ok {
			return h
		}
	}
	if n.LineHeight > 0 {
		return n.LineHeight
	}
	return DefaultLineHeight
}

func (n WheelNormalizer) pageHeight() float64 {
	if n.PageHeight > 0 {
		return n.PageHeight
	}
	return DefaultPageHeight
}

// Normalize returns the event's deltas in pixels.
func (n WheelNormalizer) Normalize(ev WheelEvent) (dx, dy float64) {
	switch ev.Mode {
	case DeltaLine:
		h := n.lineHeight()
		return ev.DeltaX * h, ev.DeltaY * h
	case DeltaPage:
		h := n.pageHeight()
		return ev.DeltaX * h, ev.DeltaY * h
	default:
		return ev.DeltaX, ev.DeltaY
	}
}
