package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptglue/scriptglue-sdk/domain/ports"
)

func TestAddNamespaceObjectLastWriteWins(t *testing.T) {
	parent := NewNamespaceObject()
	first := NewNamespaceObject()
	second := NewNamespaceObject()

	parent.AddNamespaceObject("x", first)
	parent.AddNamespaceObject("x", second)

	got, ok := parent.GetNamespaceObject("x")
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestGetNamespaceObjectNoBaseFallback(t *testing.T) {
	base := NewNamespaceObject()
	base.AddNamespaceObject("inherited", NewNamespaceObject())
	node := NewNamespaceObject()
	node.SetBaseClass(base)

	// Direct lookup is construction-time wiring; it never consults the
	// base chain even though resolution traffic would.
	_, ok := node.GetNamespaceObject("inherited")
	assert.False(t, ok)
	assert.True(t, node.HasProperty("inherited"))
}

func TestGetNamespaceObjectMissing(t *testing.T) {
	node := NewNamespaceObject()
	got, ok := node.GetNamespaceObject("absent")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestSetBaseClassReplaceAndClear(t *testing.T) {
	node := NewNamespaceObject()
	first := NewNamespaceObject()
	second := NewNamespaceObject()

	node.SetBaseClass(first)
	assert.Same(t, first, node.BaseClass())

	node.SetBaseClass(second)
	assert.Same(t, second, node.BaseClass())

	node.SetBaseClass(nil)
	assert.Nil(t, node.BaseClass())
}

func TestCreateWrapperDefault(t *testing.T) {
	ictx := &testInstance{}
	node := NewNamespaceObject()

	w := node.CreateWrapper(ictx)
	require.NotNil(t, w)
	assert.Same(t, node, w.Target())
	assert.EqualValues(t, 1, w.RefCount())
	require.Len(t, ictx.tracked, 1)
	assert.Same(t, w, ictx.tracked[0].(*Wrapper))
}

func TestCreateWrapperCustomFactory(t *testing.T) {
	ictx := &testInstance{}
	var factoryCalls int
	node := NewNamespaceObject(WithWrapperFactory(func(ictx ports.InstanceContext, target *NamespaceObject) *Wrapper {
		factoryCalls++
		return NewWrapper(ictx, target)
	}))

	w := node.CreateWrapper(ictx)
	require.NotNil(t, w)
	assert.Equal(t, 1, factoryCalls)
}

func TestCreateWrapperNoDeduplication(t *testing.T) {
	ictx := &testInstance{}
	node := NewNamespaceObject()

	a := node.CreateWrapper(ictx)
	b := node.CreateWrapper(ictx)
	assert.NotSame(t, a, b)
	assert.Len(t, ictx.tracked, 2)
}
