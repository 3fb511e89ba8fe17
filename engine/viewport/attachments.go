package viewport

// Attachment is an overlay behavior composed onto the scene every frame.
type Attachment interface {
	// Step runs once per tick before the frame is rendered.
	Step(vp *Viewport)
	// Render runs once per frame pass, after the scene.
	Render(vp *Viewport, frame float32)
}

// Attachments is an ordered list; insertion order is render order.
type Attachments struct{ list []Attachment }

func (as *Attachments) Push(a Attachment) { as.list = append(as.list, a) }

func (as *Attachments) Pop() (Attachment, bool) {
	if len(as.list) == 0 {
		return nil, false
	}
	i := len(as.list) - 1
	a := as.list[i]
	as.list[i] = nil
	as.list = as.list[:i]
	return a, true
}

// Remove drops the first occurrence of a and reports whether it was present.
func (as *Attachments) Remove(a Attachment) bool {
	for i, x := range as.list {
		if x == a {
			as.list = append(as.list[:i], as.list[i+1:]...)
			return true
		}
	}
	return false
}

func (as *Attachments) Clear()   { as.list = nil }
func (as *Attachments) Len() int { return len(as.list) }

func (as *Attachments) ForEach(f func(Attachment)) {
	for _, a := range as.list {
		f(a)
	}
}
