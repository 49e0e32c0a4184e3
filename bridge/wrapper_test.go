package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptglue/scriptglue-sdk/domain/entities"
)

func TestWrapperHasMethodRejectsNonStringName(t *testing.T) {
	w := NewWrapper(&testInstance{}, NewNamespaceObject())

	var exc entities.Exception
	ok := w.HasMethod(entities.NumberValue(3), &exc)
	assert.False(t, ok)
	assert.Equal(t, "method name is not a string", exc.Message())
}

func TestWrapperHasPropertyRejectsNonStringName(t *testing.T) {
	w := NewWrapper(&testInstance{}, NewNamespaceObject())

	var exc entities.Exception
	ok := w.HasProperty(entities.Null(), &exc)
	assert.False(t, ok)
	assert.Equal(t, "property name is not a string", exc.Message())
}

func TestWrapperGetPropertyRejectsNonStringName(t *testing.T) {
	w := NewWrapper(&testInstance{}, NewNamespaceObject())

	var exc entities.Exception
	result := w.GetProperty(entities.BoolValue(true), &exc)
	assert.True(t, result.IsUndefined())
	assert.Equal(t, "property name is not a string", exc.Message())
}

func TestWrapperSetPropertyRejectsNonStringName(t *testing.T) {
	w := NewWrapper(&testInstance{}, NewNamespaceObject())

	var exc entities.Exception
	w.SetProperty(entities.NumberValue(1), entities.NumberValue(2), &exc)
	assert.Equal(t, "property name is not a string", exc.Message())
}

func TestWrapperGetPropertyReturnsChildWrapper(t *testing.T) {
	ictx := &testInstance{}
	node := NewNamespaceObject()
	child := NewNamespaceObject()
	node.AddNamespaceObject("sub", child)
	w := NewWrapper(ictx, node)

	var exc entities.Exception
	result := w.GetProperty(entities.StringValue("sub"), &exc)
	require.True(t, result.IsObject())
	assert.Same(t, child, result.Object().(*Wrapper).Target())
	assert.False(t, exc.IsSet())
}

func TestWrapperCallUndefinedNameRoutesToConstruct(t *testing.T) {
	// A node with no constructor override proves routing: a construct
	// request fails with "missing constructor", while a method call
	// would have failed with "method does not exist".
	w := NewWrapper(&testInstance{}, NewNamespaceObject())

	var exc entities.Exception
	result := w.Call(entities.Undefined(), nil, &exc)
	assert.True(t, result.IsUndefined())
	assert.Equal(t, "missing constructor", exc.Message())
}

func TestWrapperCallUndefinedNameConstructsViaLeaf(t *testing.T) {
	leaf := newTestLeaf()
	leaf.construct = func(args []entities.Value) entities.Value {
		return entities.StringValue("instance")
	}
	w := NewWrapper(&testInstance{}, NewNamespaceObject(WithLeaf(leaf)))

	var exc entities.Exception
	result := w.Call(entities.Undefined(), nil, &exc)
	assert.False(t, exc.IsSet())
	assert.Equal(t, "instance", result.Str())
}

func TestWrapperCallStringName(t *testing.T) {
	leaf := newTestLeaf()
	leaf.methods["add"] = func(args []entities.Value) entities.Value {
		return entities.NumberValue(args[0].Number() + args[1].Number())
	}
	w := NewWrapper(&testInstance{}, NewNamespaceObject(WithLeaf(leaf)))

	var exc entities.Exception
	result := w.Call(entities.StringValue("add"),
		[]entities.Value{entities.NumberValue(2), entities.NumberValue(3)}, &exc)
	require.False(t, exc.IsSet())
	assert.Equal(t, 5.0, result.Number())
}

func TestWrapperCallRejectsNonStringNonUndefinedName(t *testing.T) {
	w := NewWrapper(&testInstance{}, NewNamespaceObject())

	var exc entities.Exception
	result := w.Call(entities.NumberValue(9), nil, &exc)
	assert.True(t, result.IsUndefined())
	assert.Equal(t, "method name is not a string", exc.Message())
}

func TestWrapperEnumerateProperties(t *testing.T) {
	node := NewNamespaceObject()
	node.AddNamespaceObject("a", NewNamespaceObject())
	w := NewWrapper(&testInstance{}, node)

	var names []entities.Value
	var exc entities.Exception
	w.EnumerateProperties(&names, &exc)
	require.Len(t, names, 1)
	assert.Equal(t, "a", names[0].Str())
}

func TestWrapperRefCounting(t *testing.T) {
	ictx := &testInstance{}
	w := NewWrapper(ictx, NewNamespaceObject())
	require.EqualValues(t, 1, w.RefCount())

	w.Retain()
	assert.EqualValues(t, 2, w.RefCount())

	w.Release()
	assert.EqualValues(t, 1, w.RefCount())
	assert.Empty(t, ictx.released)

	w.Release()
	assert.EqualValues(t, 0, w.RefCount())
	require.Len(t, ictx.released, 1)
	assert.Same(t, w, ictx.released[0].(*Wrapper))

	// Over-release is a host defect; it must not underflow or re-report.
	w.Release()
	assert.EqualValues(t, 0, w.RefCount())
	assert.Len(t, ictx.released, 1)
}

func TestWrapperValueReleaseDropsReference(t *testing.T) {
	ictx := &testInstance{}
	w := NewWrapper(ictx, NewNamespaceObject())
	v := entities.ObjectValue(w)

	v.Release()
	assert.Len(t, ictx.released, 1)
	assert.True(t, v.IsUndefined())
}
