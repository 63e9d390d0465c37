package domain

// PendingAction is the single-field-input state armed between an admin's
// button press and their next text message. At most one is armed at a time;
// the last button press is authoritative.
type PendingAction int

const (
	PendingNone PendingAction = iota
	PendingAge
	PendingGender
	PendingSuffix
)

func (p PendingAction) String() string {
	switch p {
	case PendingAge:
		return "awaiting_age"
	case PendingGender:
		return "awaiting_gender"
	case PendingSuffix:
		return "awaiting_suffix"
	default:
		return "none"
	}
}
