package content

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDecodeListDropsBlankLines(t *testing.T) {
	v := DecodeFromEdit(KindList, "Good at maths\n\nLoves drawing\n  \n")

	want := []string{"Good at maths", "Loves drawing"}
	if !reflect.DeepEqual(v.List, want) {
		t.Errorf("Expected %v, got %v", want, v.List)
	}
}

func TestDecodeListKeepsLinesUntrimmed(t *testing.T) {
	v := DecodeFromEdit(KindList, "  padded item  \nplain")

	if v.List[0] != "  padded item  " {
		t.Errorf("Expected untrimmed line, got %q", v.List[0])
	}
}

func TestDecodeMapSplitsOnFirstColon(t *testing.T) {
	v := DecodeFromEdit(KindMap, "Review meeting: Tuesday 10:30\nLead Professional: Ms Patel")

	want := []MapEntry{
		{Key: "Review meeting", Value: "Tuesday 10:30"},
		{Key: "Lead Professional", Value: "Ms Patel"},
	}
	if !reflect.DeepEqual(v.Entries, want) {
		t.Errorf("Expected %v, got %v", want, v.Entries)
	}
}

func TestDecodeMapDropsColonlessLines(t *testing.T) {
	v := DecodeFromEdit(KindMap, "just a note\nSpeech therapy: weekly")

	if len(v.Entries) != 1 || v.Entries[0].Key != "Speech therapy" {
		t.Errorf("Expected only the colon line to survive, got %v", v.Entries)
	}
}

func TestDecodeMapDuplicateKeysOverwriteInPlace(t *testing.T) {
	v := DecodeFromEdit(KindMap, "Teacher: Ms A\nSENCO: Mr B\nTeacher: Ms C")

	want := []MapEntry{
		{Key: "Teacher", Value: "Ms C"},
		{Key: "SENCO", Value: "Mr B"},
	}
	if !reflect.DeepEqual(v.Entries, want) {
		t.Errorf("Expected %v, got %v", want, v.Entries)
	}
}

func TestDecodeTextIsVerbatim(t *testing.T) {
	raw := "Line one\n\nLine three with: colons"
	v := DecodeFromEdit(KindText, raw)

	if v.Text != raw {
		t.Errorf("Expected verbatim text, got %q", v.Text)
	}
}

func TestEditRoundTrips(t *testing.T) {
	cases := []struct {
		name string
		v    Value
	}{
		{"text", NewText("A paragraph.\nAnother line.")},
		{"list", NewList([]string{"one", "two", "three"})},
		{"map", NewMap([]MapEntry{{Key: "a", Value: "1"}, {Key: "b", Value: "2:30"}})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeFromEdit(tc.v.Kind, EncodeForEdit(tc.v))
			if !reflect.DeepEqual(got, tc.v) {
				t.Errorf("Round trip changed value: %v -> %v", tc.v, got)
			}
		})
	}
}

func TestParseListFlattensNonStrings(t *testing.T) {
	v := Parse(KindList, []byte(`["plain", 42, {"nested": true}]`))

	want := []string{"plain", "42", `{"nested":true}`}
	if !reflect.DeepEqual(v.List, want) {
		t.Errorf("Expected %v, got %v", want, v.List)
	}
}

func TestParseMapPreservesKeyOrder(t *testing.T) {
	v := Parse(KindMap, []byte(`{"zebra":"1","apple":"2","mango":"3"}`))

	keys := make([]string, len(v.Entries))
	for i, e := range v.Entries {
		keys[i] = e.Key
	}
	want := []string{"zebra", "apple", "mango"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Expected key order %v, got %v", want, keys)
	}
}

func TestParseDegradesMismatchedContent(t *testing.T) {
	if v := Parse(KindText, []byte(`{"not":"a string"}`)); v.Text != "" {
		t.Errorf("Expected empty text, got %q", v.Text)
	}
	if v := Parse(KindList, []byte(`"not a list"`)); len(v.List) != 0 {
		t.Errorf("Expected empty list, got %v", v.List)
	}
	if v := Parse(KindMap, []byte(`[1,2]`)); len(v.Entries) != 0 {
		t.Errorf("Expected empty map, got %v", v.Entries)
	}
}

func TestValueJSONStorageShapes(t *testing.T) {
	listJSON, err := NewList(nil).JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if string(listJSON) != "[]" {
		t.Errorf("Expected [] for nil list, got %s", listJSON)
	}

	mapJSON, err := NewMap([]MapEntry{{Key: "b", Value: "2"}, {Key: "a", Value: "1"}}).JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if string(mapJSON) != `{"b":"2","a":"1"}` {
		t.Errorf("Expected insertion order preserved, got %s", mapJSON)
	}

	textJSON, err := NewText(`quote " and \ slash`).JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	var back string
	if err := json.Unmarshal(textJSON, &back); err != nil || back != `quote " and \ slash` {
		t.Errorf("Text did not survive storage encoding: %s", textJSON)
	}
}

func TestDecodeInputRouting(t *testing.T) {
	// A JSON string routes through the edit decoder
	v := DecodeInput(KindList, json.RawMessage(`"one\ntwo"`))
	if !reflect.DeepEqual(v.List, []string{"one", "two"}) {
		t.Errorf("Expected edit-string decode, got %v", v.List)
	}

	// Structured content routes through Parse
	v = DecodeInput(KindList, json.RawMessage(`["one","two"]`))
	if !reflect.DeepEqual(v.List, []string{"one", "two"}) {
		t.Errorf("Expected structured decode, got %v", v.List)
	}

	// Absent input is an empty edit
	v = DecodeInput(KindMap, nil)
	if v.Kind != KindMap || len(v.Entries) != 0 {
		t.Errorf("Expected empty map, got %v", v)
	}
}
