// Package text bridges text content into the layout engine's
// measurement interface. The engine itself never inspects content; a
// host registers a MeasureFunc built here on its text leaves and the
// flex algorithm calls it whenever a leaf's size is not fully
// determined by styles.
package text

import (
	"strings"

	"github.com/fogleman/gg"

	"github.com/ickshonpe/taffy/pkg/geometry"
	"github.com/ickshonpe/taffy/pkg/layout"
)

// Measurer measures text with a given font face. The zero Measurer is
// not useful; construct one with NewMeasurer.
type Measurer struct {
	fontPath string
	fontSize float64
}

// NewMeasurer returns a Measurer for the font at fontPath rendered at
// fontSize points. When the font cannot be loaded, measurement falls
// back to a rough per-character estimate instead of failing.
func NewMeasurer(fontPath string, fontSize float64) *Measurer {
	return &Measurer{fontPath: fontPath, fontSize: fontSize}
}

// measureString returns the rendered width and line height of s.
func (m *Measurer) measureString(s string) (width, height float64) {
	dc := gg.NewContext(1, 1)
	if err := dc.LoadFontFace(m.fontPath, m.fontSize); err != nil {
		// Rough estimate when no font is available.
		return float64(len(s)) * m.fontSize * 0.6, m.fontSize * 1.2
	}
	w, h := dc.MeasureString(s)
	return w, h
}

// MeasureFunc returns a layout.MeasureFunc for the given content.
//
// Under max-content constraints the text occupies a single line; under
// min-content it wraps at every word boundary; under a definite width
// it wraps greedily to fit. Dimensions already fixed by the caller are
// honored as-is.
func (m *Measurer) MeasureFunc(content string) layout.MeasureFunc {
	return func(known geometry.OptionSize, available layout.AvailableSize) geometry.Size {
		words := strings.Fields(content)
		if len(words) == 0 {
			return geometry.Size{
				Width:  known.Width.Or(0),
				Height: known.Height.Or(0),
			}
		}

		spaceWidth, lineHeight := m.measureString(" ")
		widths := make([]float64, len(words))
		longest := 0.0
		full := 0.0
		for i, word := range words {
			w, _ := m.measureString(word)
			widths[i] = w
			if w > longest {
				longest = w
			}
			if i > 0 {
				full += spaceWidth
			}
			full += w
		}

		width, ok := known.Width.Get()
		if !ok {
			if v, definite := available.Width.Get(); definite {
				width = minFloat(full, maxFloat(v, longest))
			} else if available.Width == layout.MinContent() {
				width = longest
			} else {
				width = full
			}
		}

		height, ok := known.Height.Get()
		if !ok {
			height = float64(countLines(widths, spaceWidth, width)) * lineHeight
		}
		return geometry.Size{Width: width, Height: height}
	}
}

// countLines wraps words greedily into lines of at most width.
func countLines(widths []float64, spaceWidth, width float64) int {
	lines := 1
	used := 0.0
	for i, w := range widths {
		extra := w
		if i > 0 && used > 0 {
			extra += spaceWidth
		}
		if used > 0 && used+extra > width {
			lines++
			used = w
			continue
		}
		used += extra
	}
	return lines
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
