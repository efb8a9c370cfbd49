package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/toolres/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("dotnet-portable")
	is2 := domain.NewInternedString("dotnet-portable")

	if is1 != is2 {
		t.Errorf("Expected identical strings to intern to equal values")
	}

	if is1.String() != "dotnet-portable" {
		t.Errorf("Expected String() to return %q, got %q", "dotnet-portable", is1.String())
	}
}

func TestInternedStringZero(t *testing.T) {
	var zero domain.InternedString

	if !zero.IsZero() {
		t.Errorf("Expected zero value to report IsZero")
	}
	if zero.String() != "" {
		t.Errorf("Expected zero value to render as empty string, got %q", zero.String())
	}
	if domain.NewInternedString("x").IsZero() {
		t.Errorf("Expected non-empty value not to report IsZero")
	}
}

func TestInternedStringJSON(t *testing.T) {
	type entry struct {
		Name domain.InternedString `json:"name"`
	}

	data, err := json.Marshal(entry{Name: domain.NewInternedString("Microsoft.NETCore.App")})
	if err != nil {
		t.Fatalf("Failed to marshal struct: %v", err)
	}
	if string(data) != `{"name":"Microsoft.NETCore.App"}` {
		t.Errorf("Unexpected JSON %s", data)
	}

	var got entry
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Failed to unmarshal struct: %v", err)
	}
	if got.Name.String() != "Microsoft.NETCore.App" {
		t.Errorf("Expected unmarshaled name %q, got %q", "Microsoft.NETCore.App", got.Name.String())
	}
}
