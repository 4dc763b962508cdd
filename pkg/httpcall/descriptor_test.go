package httpcall

import (
	"errors"
	"testing"
)

func TestParseDescriptorDefaults(t *testing.T) {
	d, err := ParseDescriptor(map[string]any{"url": "http://example.com"})
	if err != nil {
		t.Fatalf("ParseDescriptor: %v", err)
	}
	if d.Method != "GET" {
		t.Fatalf("expected GET default, got %q", d.Method)
	}
	if d.Output != OutputText {
		t.Fatalf("expected text default, got %v", d.Output)
	}
	if len(d.Headers) != 0 {
		t.Fatalf("expected no headers, got %v", d.Headers)
	}
	if d.Body.kind != bodyNone {
		t.Fatalf("expected absent body, got %v", d.Body.kind)
	}
}

func TestParseDescriptorRequiresURL(t *testing.T) {
	cases := []map[string]any{
		{},
		{"method": "GET"},
		{"url": 42},
		{"url": nil},
	}
	for _, input := range cases {
		if _, err := ParseDescriptor(input); !errors.Is(err, ErrInvalidDescriptor) {
			t.Fatalf("input %v: expected invalid descriptor error, got %v", input, err)
		}
	}
}

func TestParseDescriptorMethodMustBeString(t *testing.T) {
	_, err := ParseDescriptor(map[string]any{"url": "http://example.com", "method": 7})
	if !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("expected invalid descriptor error, got %v", err)
	}
}

func TestParseDescriptorAcceptsUnknownMethodToken(t *testing.T) {
	// Method tokens are resolved at execute time, not here.
	d, err := ParseDescriptor(map[string]any{"url": "http://example.com", "method": "BREW"})
	if err != nil {
		t.Fatalf("ParseDescriptor: %v", err)
	}
	if d.Method != "BREW" {
		t.Fatalf("unexpected method %q", d.Method)
	}
}

func TestParseDescriptorHeaderMapping(t *testing.T) {
	d, err := ParseDescriptor(map[string]any{
		"url":     "http://example.com",
		"headers": map[string]any{"X-B": "2", "X-A": "1"},
	})
	if err != nil {
		t.Fatalf("ParseDescriptor: %v", err)
	}
	if len(d.Headers) != 2 {
		t.Fatalf("expected 2 headers, got %v", d.Headers)
	}
	// Mapping input iterates in sorted key order.
	if d.Headers[0].Name != "X-A" || d.Headers[1].Name != "X-B" {
		t.Fatalf("unexpected header order: %v", d.Headers)
	}
}

func TestParseDescriptorHeaderSequencePreservesOrderAndDuplicates(t *testing.T) {
	d, err := ParseDescriptor(map[string]any{
		"url":     "http://example.com",
		"headers": []any{"X-Multi: b", "X-Multi: a", "Accept: text/plain"},
	})
	if err != nil {
		t.Fatalf("ParseDescriptor: %v", err)
	}
	want := []HeaderEntry{
		{Name: "X-Multi", Value: "b"},
		{Name: "X-Multi", Value: "a"},
		{Name: "Accept", Value: "text/plain"},
	}
	if len(d.Headers) != len(want) {
		t.Fatalf("expected %d headers, got %v", len(want), d.Headers)
	}
	for i, entry := range want {
		if d.Headers[i] != entry {
			t.Fatalf("header %d: got %+v want %+v", i, d.Headers[i], entry)
		}
	}
}

func TestParseDescriptorHeaderFailureShortCircuits(t *testing.T) {
	_, err := ParseDescriptor(map[string]any{
		"url":     "http://example.com",
		"headers": []any{"Accept: text/plain", "broken", "X-Never: checked\x00"},
	})
	if !errors.Is(err, ErrInvalidHeader) {
		t.Fatalf("expected invalid header error, got %v", err)
	}
}

func TestParseDescriptorBodyVariants(t *testing.T) {
	d, err := ParseDescriptor(map[string]any{"url": "http://example.com", "body": "plain"})
	if err != nil {
		t.Fatalf("ParseDescriptor: %v", err)
	}
	if d.Body.kind != bodyText || d.Body.text != "plain" {
		t.Fatalf("expected text body, got %+v", d.Body)
	}

	d, err = ParseDescriptor(map[string]any{"url": "http://example.com", "body": map[string]any{"a": 1}})
	if err != nil {
		t.Fatalf("ParseDescriptor: %v", err)
	}
	if d.Body.kind != bodyJSON {
		t.Fatalf("expected json body, got %+v", d.Body)
	}
}

func TestParseDescriptorOutputTokens(t *testing.T) {
	d, err := ParseDescriptor(map[string]any{"url": "http://example.com", "output": "json"})
	if err != nil {
		t.Fatalf("ParseDescriptor: %v", err)
	}
	if d.Output != OutputJSON {
		t.Fatalf("expected json output, got %v", d.Output)
	}

	for _, bad := range []any{"xml", "JSON", "", 3} {
		_, err := ParseDescriptor(map[string]any{"url": "http://example.com", "output": bad})
		if !errors.Is(err, ErrInvalidDescriptor) {
			t.Fatalf("output %v: expected invalid descriptor error, got %v", bad, err)
		}
	}
}
