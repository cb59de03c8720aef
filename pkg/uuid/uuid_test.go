package uuid

import (
	"encoding/json"
	"testing"
)

func TestNew(t *testing.T) {
	u, err := New()
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	if u.IsZero() {
		t.Fatal("New() returned the zero UUID")
	}
	if version := u[6] >> 4; version != 4 {
		t.Errorf("version = %d, want 4", version)
	}
	if variant := u[8] >> 6; variant != 0b10 {
		t.Errorf("variant bits = %02b, want 10", variant)
	}
}

func TestNew_Distinct(t *testing.T) {
	seen := make(map[UUID]struct{})
	for i := 0; i < 100; i++ {
		u, err := New()
		if err != nil {
			t.Fatalf("New() unexpected error: %v", err)
		}
		if _, dup := seen[u]; dup {
			t.Fatalf("duplicate UUID %s", u)
		}
		seen[u] = struct{}{}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	u, err := New()
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	parsed, err := Parse(u.String())
	if err != nil {
		t.Fatalf("Parse(%q) unexpected error: %v", u.String(), err)
	}
	if parsed != u {
		t.Fatalf("round trip mismatch: %s != %s", parsed, u)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "missing groups", in: "123e4567-e89b-12d3"},
		{name: "wrong length", in: "123e4567-e89b-12d3-a456-42661417400"},
		{name: "non-hex", in: "123e4567-e89b-12d3-a456-42661417400g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.in); err == nil {
				t.Fatalf("Parse(%q) must fail", tt.in)
			}
		})
	}
}

func TestJSON(t *testing.T) {
	u, err := New()
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if want := `"` + u.String() + `"`; string(data) != want {
		t.Fatalf("Marshal() = %s, want %s", data, want)
	}

	var decoded UUID
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if decoded != u {
		t.Fatalf("JSON round trip mismatch: %s != %s", decoded, u)
	}
}
