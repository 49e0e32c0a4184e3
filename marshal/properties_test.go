package marshal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptglue/scriptglue-sdk/domain/entities"
)

// fakeHost is a scripted ScriptingHost for probe/fetch tests.
type fakeHost struct {
	props      map[string]entities.Value
	elems      map[int]entities.Value
	fetchFails bool
	probeLies  bool // HasElement answers false even for present elements
	evalResult entities.Value
	evalOK     bool
	probeCalls int
	fetchCalls int
}

func (h *fakeHost) HasProperty(_ entities.Value, name string) bool {
	h.probeCalls++
	_, ok := h.props[name]
	return ok
}

func (h *fakeHost) GetProperty(_ entities.Value, name string) (entities.Value, bool) {
	h.fetchCalls++
	if h.fetchFails {
		return entities.Undefined(), false
	}
	v, ok := h.props[name]
	return v, ok
}

func (h *fakeHost) HasElement(_ entities.Value, index int) bool {
	h.probeCalls++
	if h.probeLies {
		return false
	}
	_, ok := h.elems[index]
	return ok
}

func (h *fakeHost) GetElement(_ entities.Value, index int) (entities.Value, bool) {
	h.fetchCalls++
	if h.fetchFails {
		return entities.Undefined(), false
	}
	v, ok := h.elems[index]
	return v, ok
}

func (h *fakeHost) Evaluate(string) (entities.Value, bool) {
	return h.evalResult, h.evalOK
}

type countingRef struct {
	retains  int
	releases int
}

func (r *countingRef) Retain()  { r.retains++ }
func (r *countingRef) Release() { r.releases++ }

func TestObjectPropertyProbeThenFetch(t *testing.T) {
	host := &fakeHost{props: map[string]entities.Value{"name": entities.StringValue("root")}}

	v, ok := ObjectProperty(host, entities.Null(), "name")
	require.True(t, ok)
	assert.Equal(t, "root", v.Str())
	assert.Equal(t, 1, host.probeCalls)
	assert.Equal(t, 1, host.fetchCalls)
}

func TestObjectPropertyAbsent(t *testing.T) {
	host := &fakeHost{props: map[string]entities.Value{}}

	v, ok := ObjectProperty(host, entities.Null(), "missing")
	assert.False(t, ok)
	assert.True(t, v.IsUndefined())
	assert.Equal(t, 0, host.fetchCalls, "absent property must not be fetched")
}

func TestObjectPropertyFetchFailure(t *testing.T) {
	host := &fakeHost{
		props:      map[string]entities.Value{"name": entities.StringValue("root")},
		fetchFails: true,
	}

	v, ok := ObjectProperty(host, entities.Null(), "name")
	assert.False(t, ok)
	assert.True(t, v.IsUndefined())
}

func TestArrayElementProbeThenFetch(t *testing.T) {
	host := &fakeHost{elems: map[int]entities.Value{3: entities.NumberValue(7)}}

	v, ok := ArrayElement(host, entities.Null(), 3, false)
	require.True(t, ok)
	assert.Equal(t, float64(7), v.Number())

	_, ok = ArrayElement(host, entities.Null(), 9, false)
	assert.False(t, ok)
}

func TestArrayElementSkipProbe(t *testing.T) {
	host := &fakeHost{
		elems:     map[int]entities.Value{0: entities.BoolValue(true)},
		probeLies: true,
	}

	// With the probe consulted, the lying host hides the element.
	_, ok := ArrayElement(host, entities.Null(), 0, false)
	require.False(t, ok)

	// Skipping the probe relies on the fetch alone.
	v, ok := ArrayElement(host, entities.Null(), 0, true)
	require.True(t, ok)
	assert.True(t, v.Bool())
	assert.Equal(t, 1, host.probeCalls)
}

func TestArrayElementSkipProbeFetchFailure(t *testing.T) {
	host := &fakeHost{fetchFails: true}

	v, ok := ArrayElement(host, entities.Null(), 5, true)
	assert.False(t, ok)
	assert.True(t, v.IsUndefined())
}

func TestNewArray(t *testing.T) {
	ref := &countingRef{}
	host := &fakeHost{evalResult: entities.ObjectValue(ref), evalOK: true}

	v, ok := NewArray(host)
	require.True(t, ok)
	assert.True(t, v.IsObject())
	assert.Zero(t, ref.releases)
}

func TestNewArrayEvaluationFailure(t *testing.T) {
	host := &fakeHost{evalOK: false}

	v, ok := NewArray(host)
	assert.False(t, ok)
	assert.True(t, v.IsUndefined())
}

func TestNewArrayNonObjectResultReleased(t *testing.T) {
	host := &fakeHost{evalResult: entities.StringValue("[]"), evalOK: true}

	v, ok := NewArray(host)
	assert.False(t, ok)
	assert.True(t, v.IsUndefined())
}
