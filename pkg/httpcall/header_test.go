package httpcall

import (
	"errors"
	"strings"
	"testing"
)

func TestParseHeaderStringSplitsAndTrims(t *testing.T) {
	entry, err := ParseHeaderString("  X-Test :  1 ")
	if err != nil {
		t.Fatalf("ParseHeaderString: %v", err)
	}
	if entry.Name != "X-Test" || entry.Value != "1" {
		t.Fatalf("unexpected entry %+v", entry)
	}
}

func TestParseHeaderStringKeepsColonsInValue(t *testing.T) {
	entry, err := ParseHeaderString("Referer: http://example.com/a")
	if err != nil {
		t.Fatalf("ParseHeaderString: %v", err)
	}
	if entry.Value != "http://example.com/a" {
		t.Fatalf("value split on wrong colon: %q", entry.Value)
	}
}

func TestParseHeaderStringWithoutColonFails(t *testing.T) {
	_, err := ParseHeaderString("not-a-header")
	if err == nil {
		t.Fatalf("expected error for header without colon")
	}
	if !errors.Is(err, ErrInvalidHeader) {
		t.Fatalf("expected invalid header error, got %v", err)
	}
	if !strings.Contains(err.Error(), "not-a-header is not a valid header") {
		t.Fatalf("error should name the offending string: %v", err)
	}
}

func TestNewHeaderEntryRejectsBadNames(t *testing.T) {
	bad := []string{"", "X Test", "X:Test", "X-Test\n", "조회", "X-\x00"}
	for _, name := range bad {
		if _, err := NewHeaderEntry(name, "1"); !errors.Is(err, ErrInvalidHeader) {
			t.Fatalf("name %q: expected invalid header error, got %v", name, err)
		}
	}
}

func TestNewHeaderEntryRejectsControlValues(t *testing.T) {
	bad := []string{"a\x00b", "a\rb", "a\nb", "v\x7f"}
	for _, value := range bad {
		_, err := NewHeaderEntry("X-Test", value)
		if !errors.Is(err, ErrInvalidHeader) {
			t.Fatalf("value %q: expected invalid header error, got %v", value, err)
		}
		if !strings.Contains(err.Error(), "X-Test") {
			t.Fatalf("error should name the failing header: %v", err)
		}
	}
}

func TestNewHeaderEntryAllowsSpaceAndTabInValues(t *testing.T) {
	entry, err := NewHeaderEntry("User-Agent", "a b\tc")
	if err != nil {
		t.Fatalf("NewHeaderEntry: %v", err)
	}
	if entry.Value != "a b\tc" {
		t.Fatalf("unexpected value %q", entry.Value)
	}
}
