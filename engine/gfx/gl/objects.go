package glbackend

// ObjectKind selects the glDelete* call for a tracked object.
type ObjectKind int

const (
	ObjectTexture ObjectKind = iota
	ObjectBuffer
	ObjectProgram
)

// Objects reference-counts GL objects and deletes the unreferenced ones in
// one pass per frame rather than at each release.
type Objects struct {
	refs   map[objectKey]int
	delete func(ObjectKind, uint32)
}

type objectKey struct {
	kind ObjectKind
	id   uint32
}

func newObjects(del func(ObjectKind, uint32)) *Objects {
	return &Objects{refs: map[objectKey]int{}, delete: del}
}

// Retain adds a reference to id, tracking it if it is new.
func (o *Objects) Retain(kind ObjectKind, id uint32) {
	if id == 0 {
		return
	}
	o.refs[objectKey{kind, id}]++
}

// Release drops a reference; the object stays alive until the next DeleteUnused.
func (o *Objects) Release(kind ObjectKind, id uint32) {
	k := objectKey{kind, id}
	if n, ok := o.refs[k]; ok && n > 0 {
		o.refs[k] = n - 1
	}
}

// DeleteUnused deletes every tracked object with no references and returns how many were deleted.
func (o *Objects) DeleteUnused() int {
	n := 0
	for k, refs := range o.refs {
		if refs > 0 {
			continue
		}
		o.delete(k.kind, k.id)
		delete(o.refs, k)
		n++
	}
	return n
}

// Live reports the number of tracked objects.
func (o *Objects) Live() int { return len(o.refs) }
