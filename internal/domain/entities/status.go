package entities

// TaskStatus represents the tracking status of a MOM point or action item
type TaskStatus string

const (
	StatusAssigned   TaskStatus = "Assigned"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
	StatusRevoked    TaskStatus = "Revoked"
)

// IsValid checks if the status is one of the known values
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusAssigned, StatusInProgress, StatusCompleted, StatusRevoked:
		return true
	}
	return false
}

// IsTerminal reports whether the status ends tracking under the strict policy
func (s TaskStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRevoked
}

// CanTransition reports whether the strict policy ladder allows moving
// from one status to another. Repeating the current status is always
// allowed; terminal statuses allow nothing else.
func (s TaskStatus) CanTransition(to TaskStatus) bool {
	if s == to {
		return true
	}
	switch s {
	case StatusAssigned:
		return to == StatusInProgress || to == StatusRevoked
	case StatusInProgress:
		return to == StatusCompleted || to == StatusRevoked
	}
	return false
}
