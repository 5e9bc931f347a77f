package cshim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vilunov/goposit/posit"
)

func TestRegistryPutGetFree(t *testing.T) {
	r := &registry{values: make(map[uintptr]posit.Posit)}

	h := r.put(posit.One())
	got, err := r.get(h)
	assert.NoError(t, err)
	assert.Equal(t, posit.One().String(), got.String())

	r.free(h)
	_, err = r.get(h)
	assert.ErrorIs(t, err, ErrHandleNotFound)
}

func TestRegistryUnknownHandle(t *testing.T) {
	r := &registry{values: make(map[uintptr]posit.Posit)}
	_, err := r.get(12345)
	assert.ErrorIs(t, err, ErrHandleNotFound)
}

func TestRegistryFreeIsIdempotent(t *testing.T) {
	r := &registry{values: make(map[uintptr]posit.Posit)}
	h := r.put(posit.Zero())
	r.free(h)
	assert.NotPanics(t, func() { r.free(h) })
}

func TestRegistryHandlesAreDistinct(t *testing.T) {
	r := &registry{values: make(map[uintptr]posit.Posit)}
	h1 := r.put(posit.One())
	h2 := r.put(posit.Zero())
	assert.NotEqual(t, h1, h2)
}
