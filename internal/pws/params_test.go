package pws

import "testing"

func TestParamsInsertionOrder(t *testing.T) {
	p := NewParams()
	p.Set("b", "2")
	p.Set("a", "1")
	p.Set("c", "3")

	if got := p.Encode(); got != "b=2&a=1&c=3" {
		t.Fatalf("expected insertion order, got %q", got)
	}
}

func TestParamsSetKeepsPositionOnOverwrite(t *testing.T) {
	p := NewParams()
	p.Set("a", "1")
	p.Set("b", "2")
	p.Set("a", "9")

	if got := p.Encode(); got != "a=9&b=2" {
		t.Fatalf("expected overwritten key to keep position, got %q", got)
	}
	if p.Len() != 2 {
		t.Fatalf("expected 2 params, got %d", p.Len())
	}
}

func TestSeedParams(t *testing.T) {
	p := SeedParams()
	if got := p.Encode(); got != "action=updateraw&dateutc=now" {
		t.Fatalf("unexpected seed params: %q", got)
	}
}

// Encode must leave values raw; the upload endpoint does not expect
// percent-encoding.
func TestEncodeDoesNotEscape(t *testing.T) {
	p := NewParams()
	p.Set("KEY", "a b&c=d")

	if got := p.Encode(); got != "KEY=a b&c=d" {
		t.Fatalf("expected raw value, got %q", got)
	}
}
