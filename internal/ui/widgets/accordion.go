package widgets

// AccordionClosed marks an accordion with no open section.
const AccordionClosed = -1

// Accordion is a single-open expand/collapse list: FAQ entries, booking
// steps. At most one index is open at a time; re-selecting the open index
// collapses it.
type Accordion struct {
	open int

	// OnToggle, when set, is invoked after every state change with the
	// now-open index (AccordionClosed when everything collapsed).
	OnToggle func(open int)
}

// NewAccordion returns an accordion with all sections collapsed.
func NewAccordion() *Accordion {
	return &Accordion{open: AccordionClosed}
}

// SetOpen opens index i, implicitly closing whatever was open. Calling it
// with the currently open index collapses the accordion.
func (a *Accordion) SetOpen(i int) {
	if a.open == i {
		a.open = AccordionClosed
	} else {
		a.open = i
	}
	if a.OnToggle != nil {
		a.OnToggle(a.open)
	}
}

// Open returns the open index, or AccordionClosed.
func (a *Accordion) Open() int { return a.open }

// IsOpen reports whether index i is the open section.
func (a *Accordion) IsOpen(i int) bool { return a.open == i }
