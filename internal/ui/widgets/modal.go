package widgets

// Modal is a show/hide overlay holding an opaque payload: an embed's markup
// or a long-form document. Closing unmounts the payload; reopening mounts
// whatever is passed fresh, so no stale content survives a close.
type Modal struct {
	open    bool
	payload string
}

// Open transitions closed -> open and mounts payload.
func (m *Modal) Open(payload string) {
	m.open = true
	m.payload = payload
}

// Close transitions open -> closed and unmounts the payload.
func (m *Modal) Close() {
	m.open = false
	m.payload = ""
}

// IsOpen reports modal visibility.
func (m *Modal) IsOpen() bool { return m.open }

// Payload returns the mounted content, empty when closed.
func (m *Modal) Payload() string { return m.payload }
