package layout

import "github.com/ickshonpe/taffy/pkg/geometry"

// computeLeaf sizes a node with no children. Style-determined
// dimensions win; any dimension left open is asked of the node's
// measure capability, and without one it falls back to the resolved
// padding plus border (zero content).
func (a *Arena) computeLeaf(s *nodeSlot, known geometry.OptionSize, available AvailableSize) geometry.Size {
	references := available.IntoOptions()
	styleSize := s.style.Size.Resolve(references)
	minSize := s.style.MinSize.Resolve(references)
	maxSize := s.style.MaxSize.Resolve(references)

	size := known.OrElse(styleSize).Clamp(minSize, maxSize)
	if w, wok := size.Width.Get(); wok {
		if h, hok := size.Height.Get(); hok {
			return geometry.Size{Width: w, Height: h}
		}
	}

	padding := s.style.Padding.ResolveOrZero(references.Width, references.Height)
	border := s.style.Border.ResolveOrZero(references.Width, references.Height)
	edges := geometry.Size{
		Width:  padding.Horizontal() + border.Horizontal(),
		Height: padding.Vertical() + border.Vertical(),
	}

	if s.measure != nil {
		measured := s.measure(size, available)
		return geometry.Size{
			Width:  geometry.Clamp(size.Width.Or(measured.Width), minSize.Width, maxSize.Width),
			Height: geometry.Clamp(size.Height.Or(measured.Height), minSize.Height, maxSize.Height),
		}
	}

	// No measure capability: undefined dimensions collapse to the
	// node's own edges. This is the defined fallback, not an error.
	return geometry.Size{
		Width:  geometry.Clamp(size.Width.Or(edges.Width), minSize.Width, maxSize.Width),
		Height: geometry.Clamp(size.Height.Or(edges.Height), minSize.Height, maxSize.Height),
	}
}
