package glbackend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectsDeferDeletion(t *testing.T) {
	var deleted []uint32
	o := newObjects(func(_ ObjectKind, id uint32) { deleted = append(deleted, id) })

	o.Retain(ObjectTexture, 1)
	o.Retain(ObjectTexture, 2)
	o.Retain(ObjectTexture, 2)
	o.Retain(ObjectTexture, 0) // never tracked
	assert.Equal(t, 2, o.Live())

	o.Release(ObjectTexture, 1)
	o.Release(ObjectTexture, 2)
	assert.Empty(t, deleted, "release alone deletes nothing")

	assert.Equal(t, 1, o.DeleteUnused())
	assert.Equal(t, []uint32{1}, deleted)
	assert.Equal(t, 1, o.Live())

	o.Release(ObjectTexture, 2)
	o.Release(ObjectTexture, 2) // extra release is harmless
	assert.Equal(t, 1, o.DeleteUnused())
	assert.Equal(t, []uint32{1, 2}, deleted)
	assert.Zero(t, o.DeleteUnused())
}

func TestObjectsKindsAreDistinct(t *testing.T) {
	var kinds []ObjectKind
	o := newObjects(func(k ObjectKind, _ uint32) { kinds = append(kinds, k) })
	o.Retain(ObjectTexture, 7)
	o.Retain(ObjectBuffer, 7)
	o.Release(ObjectBuffer, 7)

	o.DeleteUnused()
	assert.Equal(t, []ObjectKind{ObjectBuffer}, kinds)
}
