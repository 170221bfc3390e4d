package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ickshonpe/taffy/pkg/layout"
	"github.com/ickshonpe/taffy/pkg/style"
	"github.com/ickshonpe/taffy/pkg/text"
)

// nodeSpec is one node of a YAML tree file.
type nodeSpec struct {
	Name     string     `yaml:"name"`
	Style    styleSpec  `yaml:"style"`
	Text     string     `yaml:"text"`
	Children []nodeSpec `yaml:"children"`
}

// styleSpec mirrors style.Style with CSS-flavored field names. Absent
// fields keep their initial values.
type styleSpec struct {
	Display      string   `yaml:"display"`
	Position     string   `yaml:"position"`
	Direction    string   `yaml:"direction"`
	Wrap         string   `yaml:"wrap"`
	Justify      string   `yaml:"justify"`
	AlignItems   string   `yaml:"align-items"`
	AlignSelf    string   `yaml:"align-self"`
	AlignContent string   `yaml:"align-content"`
	Grow         float64  `yaml:"grow"`
	Shrink       *float64 `yaml:"shrink"`
	Basis        dim      `yaml:"basis"`
	Width        dim      `yaml:"width"`
	Height       dim      `yaml:"height"`
	MinWidth     dim      `yaml:"min-width"`
	MinHeight    dim      `yaml:"min-height"`
	MaxWidth     dim      `yaml:"max-width"`
	MaxHeight    dim      `yaml:"max-height"`
	Margin       dim      `yaml:"margin"`
	Padding      dim      `yaml:"padding"`
	Border       dim      `yaml:"border"`
	ColumnGap    dim      `yaml:"column-gap"`
	RowGap       dim      `yaml:"row-gap"`
	Left         dim      `yaml:"left"`
	Right        dim      `yaml:"right"`
	Top          dim      `yaml:"top"`
	Bottom       dim      `yaml:"bottom"`
}

// dim is a YAML length: a bare number of points, a percentage like
// "50%", or "auto". The zero dim means the field was absent.
type dim struct {
	set bool
	val style.Dimension
}

func (d *dim) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := parseDimension(node.Value)
	if err != nil {
		return err
	}
	d.set = true
	d.val = parsed
	return nil
}

func (d dim) or(def style.Dimension) style.Dimension {
	if d.set {
		return d.val
	}
	return def
}

func parseDimension(s string) (style.Dimension, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || s == "auto":
		return style.Auto(), nil
	case strings.HasSuffix(s, "%"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return style.Dimension{}, fmt.Errorf("invalid percentage %q", s)
		}
		return style.Percent(v / 100), nil
	default:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return style.Dimension{}, fmt.Errorf("invalid length %q", s)
		}
		return style.Points(v), nil
	}
}

// toStyle converts the YAML fields into a full style, reporting the
// first unknown keyword encountered.
func (s styleSpec) toStyle() (style.Style, error) {
	st := style.Default()

	var err error
	if st.Display, err = parseDisplay(s.Display); err != nil {
		return st, err
	}
	if st.Position, err = parsePosition(s.Position); err != nil {
		return st, err
	}
	if st.FlexDirection, err = parseDirection(s.Direction); err != nil {
		return st, err
	}
	if st.FlexWrap, err = parseWrap(s.Wrap); err != nil {
		return st, err
	}
	if st.JustifyContent, err = parseJustify(s.Justify); err != nil {
		return st, err
	}
	if st.AlignItems, err = parseAlignItems(s.AlignItems); err != nil {
		return st, err
	}
	if st.AlignSelf, err = parseAlignSelf(s.AlignSelf); err != nil {
		return st, err
	}
	if st.AlignContent, err = parseAlignContent(s.AlignContent); err != nil {
		return st, err
	}

	st.FlexGrow = s.Grow
	if s.Shrink != nil {
		st.FlexShrink = *s.Shrink
	}
	st.FlexBasis = s.Basis.or(style.Auto())

	st.Size = style.Size{Width: s.Width.or(style.Auto()), Height: s.Height.or(style.Auto())}
	st.MinSize = style.Size{Width: s.MinWidth.or(style.Auto()), Height: s.MinHeight.or(style.Auto())}
	st.MaxSize = style.Size{Width: s.MaxWidth.or(style.Auto()), Height: s.MaxHeight.or(style.Auto())}

	st.Margin = style.Uniform(s.Margin.or(style.Points(0)))
	st.Padding = style.Uniform(s.Padding.or(style.Points(0)))
	st.Border = style.Uniform(s.Border.or(style.Points(0)))
	st.Gap = style.Size{Width: s.ColumnGap.or(style.Points(0)), Height: s.RowGap.or(style.Points(0))}

	st.Inset = style.Rect{
		Left:   s.Left.or(style.Auto()),
		Right:  s.Right.or(style.Auto()),
		Top:    s.Top.or(style.Auto()),
		Bottom: s.Bottom.or(style.Auto()),
	}
	return st, nil
}

func parseDisplay(s string) (style.Display, error) {
	switch s {
	case "", "flex":
		return style.DisplayFlex, nil
	case "none":
		return style.DisplayNone, nil
	}
	return 0, fmt.Errorf("unknown display %q", s)
}

func parsePosition(s string) (style.Position, error) {
	switch s {
	case "", "relative":
		return style.PositionRelative, nil
	case "absolute":
		return style.PositionAbsolute, nil
	}
	return 0, fmt.Errorf("unknown position %q", s)
}

func parseDirection(s string) (style.FlexDirection, error) {
	switch s {
	case "", "row":
		return style.Row, nil
	case "row-reverse":
		return style.RowReverse, nil
	case "column":
		return style.Column, nil
	case "column-reverse":
		return style.ColumnReverse, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func parseWrap(s string) (style.FlexWrap, error) {
	switch s {
	case "", "nowrap":
		return style.NoWrap, nil
	case "wrap":
		return style.Wrap, nil
	case "wrap-reverse":
		return style.WrapReverse, nil
	}
	return 0, fmt.Errorf("unknown wrap %q", s)
}

func parseJustify(s string) (style.JustifyContent, error) {
	switch s {
	case "", "start", "flex-start":
		return style.JustifyStart, nil
	case "end", "flex-end":
		return style.JustifyEnd, nil
	case "center":
		return style.JustifyCenter, nil
	case "space-between":
		return style.JustifySpaceBetween, nil
	case "space-around":
		return style.JustifySpaceAround, nil
	case "space-evenly":
		return style.JustifySpaceEvenly, nil
	}
	return 0, fmt.Errorf("unknown justify %q", s)
}

func parseAlignItems(s string) (style.AlignItems, error) {
	switch s {
	case "", "stretch":
		return style.AlignItemsStretch, nil
	case "start", "flex-start":
		return style.AlignItemsStart, nil
	case "end", "flex-end":
		return style.AlignItemsEnd, nil
	case "center":
		return style.AlignItemsCenter, nil
	}
	return 0, fmt.Errorf("unknown align-items %q", s)
}

func parseAlignSelf(s string) (style.AlignSelf, error) {
	switch s {
	case "", "auto":
		return style.AlignSelfAuto, nil
	case "start", "flex-start":
		return style.AlignSelfStart, nil
	case "end", "flex-end":
		return style.AlignSelfEnd, nil
	case "center":
		return style.AlignSelfCenter, nil
	case "stretch":
		return style.AlignSelfStretch, nil
	}
	return 0, fmt.Errorf("unknown align-self %q", s)
}

func parseAlignContent(s string) (style.AlignContent, error) {
	switch s {
	case "", "stretch":
		return style.AlignContentStretch, nil
	case "start", "flex-start":
		return style.AlignContentStart, nil
	case "end", "flex-end":
		return style.AlignContentEnd, nil
	case "center":
		return style.AlignContentCenter, nil
	case "space-between":
		return style.AlignContentSpaceBetween, nil
	case "space-around":
		return style.AlignContentSpaceAround, nil
	case "space-evenly":
		return style.AlignContentSpaceEvenly, nil
	}
	return 0, fmt.Errorf("unknown align-content %q", s)
}

// tree is a parsed tree file instantiated into an arena.
type tree struct {
	arena *layout.Arena
	root  layout.NodeID
	names map[layout.NodeID]string
}

// loadTree reads a YAML tree file and builds its node hierarchy.
func loadTree(path string, measurer *text.Measurer) (*tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree file: %w", err)
	}
	var spec nodeSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse tree file: %w", err)
	}
	return buildTree(&spec, measurer)
}

func buildTree(spec *nodeSpec, measurer *text.Measurer) (*tree, error) {
	t := &tree{
		arena: layout.NewArena(),
		names: make(map[layout.NodeID]string),
	}
	root, err := t.addNode(spec, "root", measurer)
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

func (t *tree) addNode(spec *nodeSpec, fallbackName string, measurer *text.Measurer) (layout.NodeID, error) {
	st, err := spec.Style.toStyle()
	if err != nil {
		return layout.NodeID{}, err
	}

	var node layout.NodeID
	switch {
	case len(spec.Children) > 0:
		if spec.Text != "" {
			return layout.NodeID{}, fmt.Errorf("node %q has both text and children", spec.Name)
		}
		children := make([]layout.NodeID, len(spec.Children))
		for i := range spec.Children {
			child, err := t.addNode(&spec.Children[i], fmt.Sprintf("%s.%d", fallbackName, i), measurer)
			if err != nil {
				return layout.NodeID{}, err
			}
			children[i] = child
		}
		node, err = t.arena.NewWithChildren(st, children...)
	case spec.Text != "":
		node, err = t.arena.NewLeafWithMeasure(st, measurer.MeasureFunc(spec.Text))
	default:
		node, err = t.arena.NewLeaf(st)
	}
	if err != nil {
		return layout.NodeID{}, err
	}

	name := spec.Name
	if name == "" {
		name = fallbackName
	}
	t.names[node] = name
	return node, nil
}
