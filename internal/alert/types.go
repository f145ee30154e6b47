package alert

// Type classifies an alert for display and filtering.
type Type string

const (
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
	TypeSuccess Type = "success"
)

// Valid reports whether t is a known alert type.
func (t Type) Valid() bool {
	switch t {
	case TypeInfo, TypeWarning, TypeError, TypeSuccess:
		return true
	}
	return false
}

// Alert is one entry of the session's alert feed.
type Alert struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	Type      Type   `json:"type"`
	Time      string `json:"time"`
	Dismissed bool   `json:"dismissed,omitempty"`
}

// Config bounds the alert collection.
type Config struct {
	// MaxAlerts caps the collection; on overflow the oldest entries are
	// evicted from the tail.
	MaxAlerts int
}

// CreateInput carries a new alert. ID and Time are assigned by the store
// when absent.
type CreateInput struct {
	Message string
	Type    Type
	Time    string
}
