package dom

// Slot projects a host element's children by slot name. The default slot
// (empty name) receives children that carry no slot assignment.
type Slot struct {
	Name string
	host *Element
}

// NewSlot returns the slot called name on host.
func NewSlot(host *Element, name string) *Slot {
	return &Slot{Name: name, host: host}
}

// AssignedElements returns the host children currently projected into
// the slot, in document order.
func (s *Slot) AssignedElements() []*Element {
	if s == nil || s.host == nil {
		return nil
	}
	var out []*Element
	for _, c := range s.host.children {
		if c.slot == s.Name {
			out = append(out, c)
		}
	}
	return out
}

// TextContent flattens the text of all assigned elements.
func (s *Slot) TextContent() string {
	var text string
	for _, e := range s.AssignedElements() {
		if t := e.TextContent(); t != "" {
			if text != "" {
				text += " "
			}
			text += t
		}
	}
	return text
}
