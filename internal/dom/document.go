package dom

import "sync"

// Document owns a root element and an id index for global lookups.
type Document struct {
	mu   sync.RWMutex
	root *Element
	ids  map[string]*Element
}

// NewDocument creates an empty document with a "body" root.
func NewDocument() *Document {
	d := &Document{ids: make(map[string]*Element)}
	d.root = NewElement("body")
	d.root.doc = d
	return d
}

// Body returns the document root.
func (d *Document) Body() *Element { return d.root }

// GetElementByID returns the first attached element with the given id.
func (d *Document) GetElementByID(id string) *Element {
	if d == nil || id == "" {
		return nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.ids[id]
}

func (d *Document) adopt(e *Element) {
	e.walk(func(n *Element) {
		n.doc = d
		d.index(n)
	})
}

func (d *Document) release(e *Element) {
	e.walk(func(n *Element) {
		d.unindex(n)
		n.doc = nil
	})
}

func (d *Document) index(e *Element) {
	if e.id == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, taken := d.ids[e.id]; !taken {
		d.ids[e.id] = e
	}
}

func (d *Document) unindex(e *Element) {
	if e.id == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ids[e.id] == e {
		delete(d.ids, e.id)
	}
}
