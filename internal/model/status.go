package model

// RegretStatus marks how far a regret has been worked through.
type RegretStatus string

const (
	StatusActive   RegretStatus = "Active"
	StatusHealing  RegretStatus = "Healing"
	StatusHealed   RegretStatus = "Healed"
	StatusAccepted RegretStatus = "Accepted"
)

// Statuses lists every status in display order.
var Statuses = []RegretStatus{StatusActive, StatusHealing, StatusHealed, StatusAccepted}

// ParseStatus reads a stored status. Empty or unknown values become StatusActive.
func ParseStatus(raw string) RegretStatus {
	switch s := RegretStatus(raw); s {
	case StatusActive, StatusHealing, StatusHealed, StatusAccepted:
		return s
	default:
		return StatusActive
	}
}

// Valid reports whether s is one of the known statuses.
func (s RegretStatus) Valid() bool {
	return ParseStatus(string(s)) == s
}

// IsTransformed is true for Healed and Accepted. It drives every progress statistic.
func (s RegretStatus) IsTransformed() bool {
	return s == StatusHealed || s == StatusAccepted
}

// Color returns the hex display color.
func (s RegretStatus) Color() string {
	switch s {
	case StatusHealing:
		return "#E8A87C"
	case StatusHealed:
		return "#A8CABA"
	case StatusAccepted:
		return "#6B8E7F"
	default:
		return "#C94B6C"
	}
}

// Icon returns the symbolic icon name.
func (s RegretStatus) Icon() string {
	switch s {
	case StatusHealing:
		return "leaf.fill"
	case StatusHealed:
		return "checkmark.circle.fill"
	case StatusAccepted:
		return "heart.fill"
	default:
		return "exclamationmark.circle.fill"
	}
}

func (s RegretStatus) String() string {
	return string(s)
}
