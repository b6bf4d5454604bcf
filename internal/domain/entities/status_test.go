package entities

import "testing"

func TestTaskStatusIsValid(t *testing.T) {
	valid := []TaskStatus{StatusAssigned, StatusInProgress, StatusCompleted, StatusRevoked}
	for _, s := range valid {
		if !s.IsValid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if TaskStatus("Done").IsValid() {
		t.Fatalf("expected unknown status to be invalid")
	}
	if TaskStatus("").IsValid() {
		t.Fatalf("expected empty status to be invalid")
	}
}

func TestTaskStatusCanTransition(t *testing.T) {
	cases := []struct {
		from, to TaskStatus
		want     bool
	}{
		{StatusAssigned, StatusInProgress, true},
		{StatusAssigned, StatusRevoked, true},
		{StatusAssigned, StatusCompleted, false},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusRevoked, true},
		{StatusInProgress, StatusAssigned, false},
		{StatusCompleted, StatusAssigned, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusRevoked, StatusInProgress, false},
		// repeating the current status is always allowed
		{StatusCompleted, StatusCompleted, true},
		{StatusAssigned, StatusAssigned, true},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.want {
			t.Fatalf("CanTransition(%q -> %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestTaskStatusIsTerminal(t *testing.T) {
	if !StatusCompleted.IsTerminal() || !StatusRevoked.IsTerminal() {
		t.Fatalf("expected Completed and Revoked to be terminal")
	}
	if StatusAssigned.IsTerminal() || StatusInProgress.IsTerminal() {
		t.Fatalf("expected Assigned and In Progress to be non-terminal")
	}
}
