package httpcall

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecodeText(t *testing.T) {
	raw := &RawResponse{StatusCode: 200, Body: []byte("hello, 월드")}
	value, err := Decode(raw, OutputText)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if value != "hello, 월드" {
		t.Fatalf("unexpected value %q", value)
	}
}

func TestDecodeTextRejectsInvalidUTF8(t *testing.T) {
	raw := &RawResponse{StatusCode: 200, Body: []byte{0xff, 0xfe, 0xfd}}
	if _, err := Decode(raw, OutputText); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestDecodeJSONObject(t *testing.T) {
	raw := &RawResponse{StatusCode: 200, Body: []byte(`{"a":1}`)}
	value, err := Decode(raw, OutputJSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := map[string]any{"a": float64(1)}
	if !reflect.DeepEqual(value, want) {
		t.Fatalf("got %#v want %#v", value, want)
	}
}

func TestDecodeJSONScalarAndArray(t *testing.T) {
	value, err := Decode(&RawResponse{Body: []byte(`[1,"two",null]`)}, OutputJSON)
	if err != nil {
		t.Fatalf("Decode array: %v", err)
	}
	want := []any{float64(1), "two", nil}
	if !reflect.DeepEqual(value, want) {
		t.Fatalf("got %#v want %#v", value, want)
	}

	value, err = Decode(&RawResponse{Body: []byte(`true`)}, OutputJSON)
	if err != nil {
		t.Fatalf("Decode scalar: %v", err)
	}
	if value != true {
		t.Fatalf("got %#v want true", value)
	}
}

func TestDecodeMalformedJSONFails(t *testing.T) {
	raw := &RawResponse{StatusCode: 200, Body: []byte(`{a:}`)}
	value, err := Decode(raw, OutputJSON)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
	if value != nil {
		t.Fatalf("expected no partial result, got %#v", value)
	}
}
