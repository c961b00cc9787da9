package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestIDGenerator_Generate(t *testing.T) {
	gen := NewIDGenerator("")

	id := gen.Generate()
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected a UUID, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestIDGenerator_Prefix(t *testing.T) {
	gen := NewIDGenerator("ORD-")

	id := gen.Generate()
	if !strings.HasPrefix(id, "ORD-") {
		t.Fatalf("expected ORD- prefix, got %q", id)
	}
	if _, err := uuid.Parse(strings.TrimPrefix(id, "ORD-")); err != nil {
		t.Errorf("expected UUID after prefix: %v", err)
	}
}

func TestIDGenerator_Unique(t *testing.T) {
	gen := NewIDGenerator("")
	seen := make(map[string]struct{})

	for range 100 {
		id := gen.Generate()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}
