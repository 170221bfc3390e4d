package layout

import "github.com/ickshonpe/taffy/pkg/style"

// nodeSlot is the storage for one node. Slots are reused after Remove;
// the generation counter distinguishes a reused slot from the node
// that previously occupied it.
type nodeSlot struct {
	generation uint32
	live       bool

	style     style.Style
	measure   MeasureFunc
	children  []NodeID
	parent    NodeID
	hasParent bool

	layout    Layout
	hasLayout bool
	cache     cacheSet
}

// Arena owns every node of a layout tree. Nodes are addressed by
// NodeID; children and parent links are identifier relations, never
// owning references, so the structure cannot form ownership cycles and
// stale identifiers fail instead of dereferencing freed storage.
//
// An Arena is not safe for concurrent use. Callers that share one
// across goroutines must serialize access externally; computing layout
// for disjoint arenas in parallel is safe.
type Arena struct {
	slots    []nodeSlot
	free     []uint32
	rounding bool
}

// defaultCapacity is the node capacity a fresh arena allocates for.
const defaultCapacity = 16

// NewArena returns an empty arena with layout rounding enabled.
func NewArena() *Arena {
	return NewArenaWithCapacity(defaultCapacity)
}

// NewArenaWithCapacity returns an empty arena pre-sized for n nodes.
func NewArenaWithCapacity(n int) *Arena {
	return &Arena{
		slots:    make([]nodeSlot, 0, n),
		rounding: true,
	}
}

// EnableRounding makes ComputeLayout round stored geometry to whole
// pixels. This is the default.
func (a *Arena) EnableRounding() {
	a.rounding = true
}

// DisableRounding makes ComputeLayout store unrounded geometry.
func (a *Arena) DisableRounding() {
	a.rounding = false
}

// slot returns the storage for a live node, or ErrNotFound when the
// identifier is absent or stale.
func (a *Arena) slot(node NodeID) (*nodeSlot, error) {
	if int(node.index) >= len(a.slots) {
		return nil, notFound(node)
	}
	s := &a.slots[node.index]
	if !s.live || s.generation != node.generation {
		return nil, notFound(node)
	}
	return s, nil
}

// allocate claims a free slot (or grows storage) and returns its id.
func (a *Arena) allocate(st style.Style, measure MeasureFunc) NodeID {
	var index uint32
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, nodeSlot{})
		index = uint32(len(a.slots) - 1)
	}
	s := &a.slots[index]
	gen := s.generation
	*s = nodeSlot{generation: gen, live: true, style: st, measure: measure}
	return NodeID{index: index, generation: gen}
}

// validateStyle rejects style values no layout can satisfy.
func validateStyle(st *style.Style) error {
	if st.FlexGrow < 0 {
		return invalidConfig("flex-grow", st.FlexGrow)
	}
	if st.FlexShrink < 0 {
		return invalidConfig("flex-shrink", st.FlexShrink)
	}
	return nil
}

// NewLeaf creates an unattached leaf node.
func (a *Arena) NewLeaf(st style.Style) (NodeID, error) {
	if err := validateStyle(&st); err != nil {
		return NodeID{}, err
	}
	return a.allocate(st, nil), nil
}

// NewLeafWithMeasure creates an unattached leaf whose content size is
// reported by measure whenever styles leave a dimension undetermined.
func (a *Arena) NewLeafWithMeasure(st style.Style, measure MeasureFunc) (NodeID, error) {
	if err := validateStyle(&st); err != nil {
		return NodeID{}, err
	}
	return a.allocate(st, measure), nil
}

// NewWithChildren creates a container holding the given children in
// order. Children must be live and unattached or attached elsewhere;
// they are re-parented to the new node.
func (a *Arena) NewWithChildren(st style.Style, children ...NodeID) (NodeID, error) {
	if err := validateStyle(&st); err != nil {
		return NodeID{}, err
	}
	for _, child := range children {
		if _, err := a.slot(child); err != nil {
			return NodeID{}, err
		}
	}
	node := a.allocate(st, nil)
	if err := a.SetChildren(node, children); err != nil {
		a.Remove(node)
		return NodeID{}, err
	}
	return node, nil
}

// SetStyle replaces a node's style and invalidates cached layout for
// the node and its ancestors.
func (a *Arena) SetStyle(node NodeID, st style.Style) error {
	s, err := a.slot(node)
	if err != nil {
		return err
	}
	if err := validateStyle(&st); err != nil {
		return err
	}
	s.style = st
	a.MarkDirty(node)
	return nil
}

// Style returns a node's current style.
func (a *Arena) Style(node NodeID) (style.Style, error) {
	s, err := a.slot(node)
	if err != nil {
		return style.Style{}, err
	}
	return s.style, nil
}

// SetMeasure replaces a node's measure capability (nil removes it) and
// invalidates cached layout.
func (a *Arena) SetMeasure(node NodeID, measure MeasureFunc) error {
	s, err := a.slot(node)
	if err != nil {
		return err
	}
	s.measure = measure
	a.MarkDirty(node)
	return nil
}

// isAncestor reports whether candidate is node or an ancestor of node.
func (a *Arena) isAncestor(candidate, node NodeID) bool {
	for {
		if candidate == node {
			return true
		}
		s, err := a.slot(node)
		if err != nil || !s.hasParent {
			return false
		}
		node = s.parent
	}
}

// detachFromParent removes node from its current parent's child list.
func (a *Arena) detachFromParent(node NodeID) {
	s, err := a.slot(node)
	if err != nil || !s.hasParent {
		return
	}
	parent, err := a.slot(s.parent)
	if err == nil {
		for i, child := range parent.children {
			if child == node {
				parent.children = append(parent.children[:i], parent.children[i+1:]...)
				break
			}
		}
	}
	s.parent = NodeID{}
	s.hasParent = false
}

// SetChildren replaces a node's ordered child list. Every proposed
// child must be live, appear at most once, and must not be the node
// itself or one of its ancestors. Displaced children are detached;
// newly adopted children are detached from their previous parents.
func (a *Arena) SetChildren(node NodeID, children []NodeID) error {
	s, err := a.slot(node)
	if err != nil {
		return err
	}
	seen := make(map[NodeID]struct{}, len(children))
	for _, child := range children {
		if _, err := a.slot(child); err != nil {
			return err
		}
		if _, dup := seen[child]; dup {
			return invalidConfigf("duplicate child %v", child)
		}
		seen[child] = struct{}{}
		if a.isAncestor(child, node) {
			return cycleError(node, child)
		}
	}

	// Detach the children being displaced.
	old := s.children
	s.children = nil
	for _, child := range old {
		if _, keep := seen[child]; keep {
			continue
		}
		if cs, err := a.slot(child); err == nil {
			cs.parent = NodeID{}
			cs.hasParent = false
		}
	}

	for _, child := range children {
		a.detachFromParent(child)
	}
	s.children = append([]NodeID(nil), children...)
	for _, child := range children {
		cs, _ := a.slot(child)
		cs.parent = node
		cs.hasParent = true
	}
	a.MarkDirty(node)
	return nil
}

// AddChild appends a child to a node's child list.
func (a *Arena) AddChild(node, child NodeID) error {
	s, err := a.slot(node)
	if err != nil {
		return err
	}
	if _, err := a.slot(child); err != nil {
		return err
	}
	if a.isAncestor(child, node) {
		return cycleError(node, child)
	}
	for _, existing := range s.children {
		if existing == child {
			return invalidConfigf("duplicate child %v", child)
		}
	}
	a.detachFromParent(child)
	s.children = append(s.children, child)
	cs, _ := a.slot(child)
	cs.parent = node
	cs.hasParent = true
	a.MarkDirty(node)
	return nil
}

// RemoveChild detaches child from node without destroying it.
func (a *Arena) RemoveChild(node, child NodeID) error {
	s, err := a.slot(node)
	if err != nil {
		return err
	}
	cs, err := a.slot(child)
	if err != nil {
		return err
	}
	if !cs.hasParent || cs.parent != node {
		return invalidConfigf("%v is not a child of %v", child, node)
	}
	for i, existing := range s.children {
		if existing == child {
			s.children = append(s.children[:i], s.children[i+1:]...)
			break
		}
	}
	cs.parent = NodeID{}
	cs.hasParent = false
	a.MarkDirty(node)
	return nil
}

// Children returns a copy of a node's ordered child list.
func (a *Arena) Children(node NodeID) ([]NodeID, error) {
	s, err := a.slot(node)
	if err != nil {
		return nil, err
	}
	return append([]NodeID(nil), s.children...), nil
}

// ChildCount returns the number of children of a node.
func (a *Arena) ChildCount(node NodeID) (int, error) {
	s, err := a.slot(node)
	if err != nil {
		return 0, err
	}
	return len(s.children), nil
}

// ChildAt returns the child at the given position.
func (a *Arena) ChildAt(node NodeID, index int) (NodeID, error) {
	s, err := a.slot(node)
	if err != nil {
		return NodeID{}, err
	}
	if index < 0 || index >= len(s.children) {
		return NodeID{}, invalidConfigf("child index %d out of range (%d children)", index, len(s.children))
	}
	return s.children[index], nil
}

// Parent returns a node's parent, if it has one.
func (a *Arena) Parent(node NodeID) (NodeID, bool, error) {
	s, err := a.slot(node)
	if err != nil {
		return NodeID{}, false, err
	}
	return s.parent, s.hasParent, nil
}

// Remove destroys a node: it is detached from its parent, its children
// become unattached, its storage is freed and its identifier becomes
// stale. The former parent's cached layout is invalidated.
func (a *Arena) Remove(node NodeID) error {
	s, err := a.slot(node)
	if err != nil {
		return err
	}
	parent, hasParent := s.parent, s.hasParent
	a.detachFromParent(node)
	for _, child := range s.children {
		if cs, err := a.slot(child); err == nil {
			cs.parent = NodeID{}
			cs.hasParent = false
		}
	}
	s.live = false
	s.generation++
	s.children = nil
	s.measure = nil
	s.cache.clear()
	a.free = append(a.free, node.index)
	if hasParent {
		a.MarkDirty(parent)
	}
	return nil
}

// Layout returns the stored geometry of a node. It returns
// ErrNotComputed until a ComputeLayout call has visited the node.
func (a *Arena) Layout(node NodeID) (Layout, error) {
	s, err := a.slot(node)
	if err != nil {
		return Layout{}, err
	}
	if !s.hasLayout {
		return Layout{}, ErrNotComputed
	}
	return s.layout, nil
}

// Dirty reports whether a node holds no valid cached sizing results.
func (a *Arena) Dirty(node NodeID) (bool, error) {
	s, err := a.slot(node)
	if err != nil {
		return false, err
	}
	return s.cache.empty(), nil
}

// MarkDirty invalidates cached sizing for a node and propagates the
// invalidation through parent links toward the root. An ancestor whose
// cache is already empty implies all of its ancestors are too, so the
// walk stops there.
func (a *Arena) MarkDirty(node NodeID) {
	s, err := a.slot(node)
	if err != nil {
		return
	}
	s.cache.clear()
	for s.hasParent {
		s, err = a.slot(s.parent)
		if err != nil || s.cache.empty() {
			return
		}
		s.cache.clear()
	}
}
