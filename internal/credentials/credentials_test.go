package credentials

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseValid(t *testing.T) {
	creds, err := Parse("ID:station1,KEY:secretpw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.ID != "station1" {
		t.Fatalf("expected ID %q, got %q", "station1", creds.ID)
	}
	if creds.Key != "secretpw" {
		t.Fatalf("expected Key %q, got %q", "secretpw", creds.Key)
	}
}

// The secret may contain any characters, commas and equals signs included.
func TestParseSecretWithSpecialCharacters(t *testing.T) {
	creds, err := Parse("ID:st,KEY:a,b=c&d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.Key != "a,b=c&d" {
		t.Fatalf("expected Key %q, got %q", "a,b=c&d", creds.Key)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, line := range []string{
		"",
		"station1:secretpw",
		"ID:station1",
		"KEY:secretpw,ID:station1",
		"id:station1,key:secretpw",
	} {
		if _, err := Parse(line); err == nil {
			t.Fatalf("expected error for line %q", line)
		}
	}
}

func TestLoadReadsFirstLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds")
	content := "ID:station1,KEY:secretpw\nID:other,KEY:ignored\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write creds file: %v", err)
	}

	creds, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.ID != "station1" || creds.Key != "secretpw" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
