// Package statusbar models the display slots of the status bar and the
// contract the hosting UI shell must provide. The monitor writes slot text;
// a renderer reads point-in-time snapshots. Slots carry no rendering logic
// of their own.
package statusbar

import "sync"

// Slot is one independently addressable display slot with mutable visible
// text, tooltip text, and an attached click command. All methods are safe
// for concurrent use; writers follow last-writer-wins semantics.
type Slot struct {
	mu       sync.Mutex
	id       string
	command  string
	text     string
	tooltip  string
	visible  bool
	disposed bool
}

// SlotView is an immutable snapshot of a slot for rendering.
type SlotView struct {
	ID      string
	Command string
	Text    string
	Tooltip string
	Visible bool
}

// newSlot creates a visible, empty slot. Slots are created through Bar.Add.
func newSlot(id, command string) *Slot {
	return &Slot{
		id:      id,
		command: command,
		visible: true,
	}
}

// ID returns the slot's stable identifier.
func (s *Slot) ID() string { return s.id }

// Command returns the command identifier invoked when the slot is clicked.
func (s *Slot) Command() string { return s.command }

// Set updates the visible text and tooltip together.
func (s *Slot) Set(text, tooltip string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return
	}
	s.text = text
	s.tooltip = tooltip
}

// SetText updates the visible text only.
func (s *Slot) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return
	}
	s.text = text
}

// Show makes the slot visible.
func (s *Slot) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return
	}
	s.visible = true
}

// Hide makes the slot invisible. Its text keeps being updated.
func (s *Slot) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return
	}
	s.visible = false
}

// Dispose hides the slot and rejects all further writes. Called once during
// process teardown.
func (s *Slot) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disposed = true
	s.visible = false
	s.text = ""
	s.tooltip = ""
}

// Snapshot returns a point-in-time view of the slot.
func (s *Slot) Snapshot() SlotView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SlotView{
		ID:      s.id,
		Command: s.command,
		Text:    s.text,
		Tooltip: s.tooltip,
		Visible: s.visible,
	}
}

// Bar is an ordered collection of slots with a shared lifecycle.
type Bar struct {
	mu    sync.Mutex
	slots []*Slot
}

// NewBar creates an empty bar.
func NewBar() *Bar {
	return &Bar{}
}

// Add creates a new slot at the end of the bar. If a slot with the same id
// already exists, it is returned unchanged.
func (b *Bar) Add(id, command string) *Slot {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.slots {
		if s.id == id {
			return s
		}
	}
	s := newSlot(id, command)
	b.slots = append(b.slots, s)
	return s
}

// Views returns snapshots of all slots in display order.
func (b *Bar) Views() []SlotView {
	b.mu.Lock()
	defer b.mu.Unlock()
	views := make([]SlotView, len(b.slots))
	for i, s := range b.slots {
		views[i] = s.Snapshot()
	}
	return views
}

// Dispose disposes every slot. The bar itself stays usable for reads so a
// renderer tearing down concurrently sees empty hidden slots rather than a
// nil dereference.
func (b *Bar) Dispose() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.slots {
		s.Dispose()
	}
}
