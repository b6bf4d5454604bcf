package common

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDListUnmarshalArray(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	payload := `["` + a.String() + `","` + b.String() + `"]`

	var l UUIDList
	if err := json.Unmarshal([]byte(payload), &l); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(l) != 2 || l[0] != a || l[1] != b {
		t.Fatalf("unexpected result: %v", l)
	}
}

func TestUUIDListUnmarshalStringWrappedArray(t *testing.T) {
	a := uuid.New()
	payload := `"[\"` + a.String() + `\"]"`

	var l UUIDList
	if err := json.Unmarshal([]byte(payload), &l); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(l) != 1 || l[0] != a {
		t.Fatalf("unexpected result: %v", l)
	}
}

func TestUUIDListUnmarshalScalar(t *testing.T) {
	a := uuid.New()
	payload := `"` + a.String() + `"`

	var l UUIDList
	if err := json.Unmarshal([]byte(payload), &l); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(l) != 1 || l[0] != a {
		t.Fatalf("unexpected result: %v", l)
	}
}

func TestUUIDListUnmarshalEmptyString(t *testing.T) {
	var l UUIDList
	if err := json.Unmarshal([]byte(`""`), &l); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(l) != 0 {
		t.Fatalf("expected empty list, got %v", l)
	}
}

func TestUUIDListUnmarshalGarbage(t *testing.T) {
	var l UUIDList
	if err := json.Unmarshal([]byte(`"not-a-uuid"`), &l); err == nil {
		t.Fatalf("expected error for invalid id")
	}
}
