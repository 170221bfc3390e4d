package text

import (
	"testing"

	"github.com/ickshonpe/taffy/pkg/geometry"
	"github.com/ickshonpe/taffy/pkg/layout"
)

// The tests run without a font file on disk, so every measurement goes
// through the estimate fallback: 0.6em per character, 1.2em lines.
func estimator(t *testing.T) *Measurer {
	t.Helper()
	return NewMeasurer("testdata/no-such-font.ttf", 10)
}

func TestMeasure_KnownSizeWinsOutright(t *testing.T) {
	measure := estimator(t).MeasureFunc("hello world")
	got := measure(
		geometry.OptionSize{Width: geometry.Some(75), Height: geometry.Some(40)},
		layout.MaxContentSize(),
	)
	if got != (geometry.Size{Width: 75, Height: 40}) {
		t.Errorf("got %v, want 75x40", got)
	}
}

func TestMeasure_MaxContentUsesFullLine(t *testing.T) {
	measure := estimator(t).MeasureFunc("hello world")
	got := measure(geometry.OptionSize{}, layout.MaxContentSize())
	// 11 characters at 6pt each, one 12pt line.
	if got.Width != 66 {
		t.Errorf("width = %v, want 66", got.Width)
	}
	if got.Height != 12 {
		t.Errorf("height = %v, want 12", got.Height)
	}
}

func TestMeasure_MinContentUsesLongestWord(t *testing.T) {
	measure := estimator(t).MeasureFunc("a remarkable thing")
	got := measure(geometry.OptionSize{}, layout.MinContentSize())
	// "remarkable" is 10 characters.
	if got.Width != 60 {
		t.Errorf("width = %v, want 60", got.Width)
	}
}

func TestMeasure_DefiniteWidthWraps(t *testing.T) {
	measure := estimator(t).MeasureFunc("one two three")
	got := measure(geometry.OptionSize{}, layout.DefiniteSize(40, 1000))
	// 40pt fits "one" plus the following space but not "two", so the
	// text breaks onto three lines.
	if got.Width != 40 {
		t.Errorf("width = %v, want the definite 40", got.Width)
	}
	if got.Height != 36 {
		t.Errorf("height = %v, want 3 lines of 12", got.Height)
	}
}

func TestMeasure_KnownWidthDrivesLineCount(t *testing.T) {
	measure := estimator(t).MeasureFunc("alpha beta")
	got := measure(geometry.OptionSize{Width: geometry.Some(36)}, layout.MaxContentSize())
	if got.Width != 36 {
		t.Errorf("width = %v, want the known 36", got.Width)
	}
	if got.Height != 24 {
		t.Errorf("height = %v, want 2 lines of 12", got.Height)
	}
}

func TestMeasure_EmptyString(t *testing.T) {
	measure := estimator(t).MeasureFunc("")
	got := measure(geometry.OptionSize{}, layout.MaxContentSize())
	if got.Width != 0 {
		t.Errorf("width = %v, want 0", got.Width)
	}
}
