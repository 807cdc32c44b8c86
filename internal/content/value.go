// value.go
//
// Collaborative DDP profile service for schools and support teams
// Copyright (c) 2026 DDP Hub <info@ddphub.org>
//
// This file is part of ddphub-api.
// ddphub-api is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// ddphub-api is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.

package content

import (
	"bytes"
	"encoding/json"

	"gorm.io/datatypes"
)

// Kind identifies the structural shape a section's content must take.
type Kind string

const (
	KindText Kind = "text"
	KindList Kind = "list"
	KindMap  Kind = "map"
)

// MapEntry is one key/value pair of a map-kind section. Entries keep
// insertion order so the edit surface and the rendered view stay stable.
type MapEntry struct {
	Key   string
	Value string
}

// Value is the tagged union over the three content kinds. Exactly one of
// Text, List, or Entries is meaningful, selected by Kind.
type Value struct {
	Kind    Kind
	Text    string
	List    []string
	Entries []MapEntry
}

// NewText, NewList, and NewMap build values of each kind.
func NewText(s string) Value          { return Value{Kind: KindText, Text: s} }
func NewList(items []string) Value    { return Value{Kind: KindList, List: items} }
func NewMap(entries []MapEntry) Value { return Value{Kind: KindMap, Entries: entries} }

// Parse interprets stored JSON content as a value of the given kind.
// It is total: content that does not match the kind degrades to the kind's
// zero value, and list items that are not JSON strings are flattened to
// their compact JSON text (a documented lossy case).
func Parse(kind Kind, raw []byte) Value {
	switch kind {
	case KindList:
		return parseList(raw)
	case KindMap:
		return parseMap(raw)
	default:
		return parseText(raw)
	}
}

func parseText(raw []byte) Value {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return Value{Kind: KindText}
	}
	return Value{Kind: KindText, Text: s}
}

func parseList(raw []byte) Value {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return Value{Kind: KindList, List: []string{}}
	}

	list := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			list = append(list, s)
			continue
		}
		list = append(list, compact(item))
	}
	return Value{Kind: KindList, List: list}
}

// parseMap walks the JSON object token by token so that key order is
// preserved; encoding/json's map type would lose it.
func parseMap(raw []byte) Value {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return Value{Kind: KindMap, Entries: []MapEntry{}}
	}

	entries := []MapEntry{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			break
		}
		key, ok := keyTok.(string)
		if !ok {
			break
		}

		var rawValue json.RawMessage
		if err := dec.Decode(&rawValue); err != nil {
			break
		}

		var s string
		if err := json.Unmarshal(rawValue, &s); err != nil {
			s = compact(rawValue)
		}
		entries = setEntry(entries, key, s)
	}
	return Value{Kind: KindMap, Entries: entries}
}

// setEntry upserts a key while keeping the position of its first insertion,
// matching how a JS object would absorb duplicate keys.
func setEntry(entries []MapEntry, key, value string) []MapEntry {
	for i := range entries {
		if entries[i].Key == key {
			entries[i].Value = value
			return entries
		}
	}
	return append(entries, MapEntry{Key: key, Value: value})
}

// JSON renders the value in its canonical storage form: a JSON string,
// array of strings, or object. Map objects are written entry by entry to
// keep insertion order on the wire.
func (v Value) JSON() (datatypes.JSON, error) {
	switch v.Kind {
	case KindList:
		list := v.List
		if list == nil {
			list = []string{}
		}
		return json.Marshal(list)
	case KindMap:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, e := range v.Entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(e.Key)
			if err != nil {
				return nil, err
			}
			val, err := json.Marshal(e.Value)
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			buf.Write(val)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		return json.Marshal(v.Text)
	}
}

func compact(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
