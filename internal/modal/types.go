package modal

// Well-known modal identifiers used by the dashboard UI. The registry
// itself treats ids as opaque strings; these exist so callers and tests
// agree on names.
const (
	ModalNotes    = "notes"
	ModalAlerts   = "alerts"
	ModalSettings = "settings"
	ModalExport   = "export"
	ModalMeeting  = "meeting"
)

// Config configures a modal registry instance.
type Config struct {
	// Exclusive makes opening a modal close every other one first, so at
	// most one modal is ever open. Enabled by default.
	Exclusive bool
	// ScrollLock engages the scroll guard while any modal is open.
	ScrollLock bool
}

// DefaultConfig returns the registry configuration the dashboard ships with.
func DefaultConfig() Config {
	return Config{
		Exclusive:  true,
		ScrollLock: true,
	}
}

// OpenInput carries an open/toggle request.
type OpenInput struct {
	ID string
	// ScrollOffset is the client's current scroll position, preserved by
	// the scroll guard and restored when the last modal closes.
	ScrollOffset int
}

// State is a snapshot of the registry for clients and tests.
type State struct {
	OpenModals   []string `json:"open_modals"`
	OpenCount    int      `json:"open_count"`
	AnyOpen      bool     `json:"any_open"`
	ScrollLocked bool     `json:"scroll_locked"`
	ScrollOffset int      `json:"scroll_offset"`
}
