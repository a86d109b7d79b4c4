package strip

import (
	"fmt"

	"github.com/google/uuid"
)

// Tab is one entry in a strip. A tab is rendered either from its label or,
// when the label is empty, from its custom content.
type Tab struct {
	// Index is the tab's position in its strip. It is -1 until the tab is
	// inserted.
	Index int

	Label  string
	Icon   string
	Custom string

	// Box and ContentWidth are refreshed by every layout pass.
	Box          Box
	ContentWidth int
	// ContentLeft is the column at which the content starts.
	ContentLeft int

	owner    uuid.UUID
	attached bool
}

// IsCustom is true if the tab is rendered from custom content rather than a
// label.
func (t Tab) IsCustom() bool {
	return t.Label == "" && t.Custom != ""
}

func (t Tab) String() string {
	if t.IsCustom() {
		return fmt.Sprintf("custom#%d", t.Index)
	}
	return t.Label
}

// Strip is an ordered set of tabs. The position of each tab is kept
// contiguous from zero regardless of where tabs are inserted or removed.
type Strip struct {
	ID uuid.UUID

	tabs []*Tab
}

func New() *Strip {
	return &Strip{ID: uuid.New()}
}

// NewTab constructs a tab belonging to the strip. It has yet to be inserted.
func (s *Strip) NewTab() *Tab {
	return &Tab{Index: -1, owner: s.ID}
}

// Add appends the tab to the end of the strip.
func (s *Strip) Add(tab *Tab) error {
	return s.Insert(tab, len(s.tabs))
}

// Insert inserts the tab at position at. A position beyond the end of the
// strip is treated as the end.
func (s *Strip) Insert(tab *Tab, at int) error {
	if at < 0 {
		return fmt.Errorf("inserting tab at %d: %w", at, ErrInvalidArgument)
	}
	if tab == nil {
		return fmt.Errorf("inserting nil tab: %w", ErrInvalidArgument)
	}
	if tab.owner != s.ID {
		return fmt.Errorf("tab belongs to a different strip: %w", ErrInvalidArgument)
	}
	if tab.attached {
		return fmt.Errorf("tab already inserted at %d: %w", tab.Index, ErrInvalidArgument)
	}
	at = min(at, len(s.tabs))

	s.tabs = append(s.tabs, nil)
	copy(s.tabs[at+1:], s.tabs[at:])
	s.tabs[at] = tab
	tab.attached = true
	s.reindex(at)
	return nil
}

// Remove removes the tab at the given index and returns it. The removed tab
// may be inserted again.
func (s *Strip) Remove(index int) (*Tab, error) {
	tab, err := s.Get(index)
	if err != nil {
		return nil, err
	}
	s.tabs = append(s.tabs[:index], s.tabs[index+1:]...)
	tab.Index = -1
	tab.attached = false
	s.reindex(index)
	return tab, nil
}

// Get retrieves the tab at the given index.
func (s *Strip) Get(index int) (*Tab, error) {
	if index < 0 || index >= len(s.tabs) {
		return nil, fmt.Errorf("getting tab %d of %d: %w", index, len(s.tabs), ErrIndexOutOfRange)
	}
	return s.tabs[index], nil
}

func (s *Strip) Count() int {
	return len(s.tabs)
}

// Tabs returns a snapshot of the tabs in order.
func (s *Strip) Tabs() []Tab {
	snapshot := make([]Tab, len(s.tabs))
	for i, t := range s.tabs {
		snapshot[i] = *t
	}
	return snapshot
}

func (s *Strip) reindex(from int) {
	for i := from; i < len(s.tabs); i++ {
		s.tabs[i].Index = i
	}
}
