package layout

import (
	"testing"

	"github.com/ickshonpe/taffy/pkg/geometry"
)

func TestCache_StoreAndFind(t *testing.T) {
	var c cacheSet
	known := geometry.OptionSize{Width: geometry.Some(100)}
	avail := DefiniteSize(100, 200)

	c.store(known, avail, performLayout, geometry.Size{Width: 100, Height: 50})

	size, ok := c.find(known, avail, performLayout)
	if !ok {
		t.Fatal("stored entry not found")
	}
	if size != (geometry.Size{Width: 100, Height: 50}) {
		t.Errorf("size = %v, want 100x50", size)
	}
}

func TestCache_MissOnDifferentConstraints(t *testing.T) {
	var c cacheSet
	known := geometry.OptionSize{Width: geometry.Some(100)}
	c.store(known, DefiniteSize(100, 200), performLayout, geometry.Size{Width: 100, Height: 50})

	if _, ok := c.find(geometry.OptionSize{}, DefiniteSize(100, 200), performLayout); ok {
		t.Error("hit despite different known size")
	}
	if _, ok := c.find(known, DefiniteSize(100, 300), performLayout); ok {
		t.Error("hit despite different available space")
	}
	if _, ok := c.find(known, MaxContentSize(), performLayout); ok {
		t.Error("hit despite different sizing mode")
	}
}

func TestCache_LayoutEntryServesSizeQuery(t *testing.T) {
	var c cacheSet
	known := geometry.OptionSize{}
	avail := MaxContentSize()
	c.store(known, avail, performLayout, geometry.Size{Width: 40, Height: 10})

	if _, ok := c.find(known, avail, computeSize); !ok {
		t.Error("computeSize query should reuse a full layout entry")
	}
}

func TestCache_SizeEntryDoesNotServeLayoutQuery(t *testing.T) {
	var c cacheSet
	known := geometry.OptionSize{}
	avail := MaxContentSize()
	c.store(known, avail, computeSize, geometry.Size{Width: 40, Height: 10})

	if _, ok := c.find(known, avail, performLayout); ok {
		t.Error("performLayout must not be satisfied by a size-only entry")
	}
}

func TestCache_EvictsOldestWhenFull(t *testing.T) {
	var c cacheSet
	for i := 0; i <= cacheSize; i++ {
		known := geometry.OptionSize{Width: geometry.Some(float64(i))}
		c.store(known, MaxContentSize(), computeSize, geometry.Size{Width: float64(i)})
	}

	if _, ok := c.find(geometry.OptionSize{Width: geometry.Some(0)}, MaxContentSize(), computeSize); ok {
		t.Error("oldest entry should have been evicted")
	}
	if _, ok := c.find(geometry.OptionSize{Width: geometry.Some(float64(cacheSize))}, MaxContentSize(), computeSize); !ok {
		t.Error("newest entry missing")
	}
}

func TestCache_ClearEmpties(t *testing.T) {
	var c cacheSet
	c.store(geometry.OptionSize{}, MaxContentSize(), computeSize, geometry.Size{Width: 1})
	if c.empty() {
		t.Fatal("cache should not be empty after store")
	}
	c.clear()
	if !c.empty() {
		t.Error("cache should be empty after clear")
	}
	if _, ok := c.find(geometry.OptionSize{}, MaxContentSize(), computeSize); ok {
		t.Error("cleared entry still found")
	}
}
