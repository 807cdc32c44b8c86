// codec.go
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
	"encoding/json"
	"strings"
)

// EncodeForEdit flattens a value into the single plain-text blob the edit
// surface presents regardless of kind.
//   - text: the string itself, unchanged
//   - list: items joined by newline, in order
//   - map: one "key: value" line per entry, in entry order
func EncodeForEdit(v Value) string {
	switch v.Kind {
	case KindList:
		return strings.Join(v.List, "\n")
	case KindMap:
		lines := make([]string, 0, len(v.Entries))
		for _, e := range v.Entries {
			lines = append(lines, e.Key+": "+e.Value)
		}
		return strings.Join(lines, "\n")
	default:
		return v.Text
	}
}

// DecodeFromEdit converts a free-form edit string back into structured
// content for the given kind. It never fails: lines that cannot be parsed
// are silently discarded rather than rejecting the whole save. This
// permissiveness is user-visible save behavior and must not be tightened.
func DecodeFromEdit(kind Kind, raw string) Value {
	switch kind {
	case KindList:
		return decodeList(raw)
	case KindMap:
		return decodeMap(raw)
	default:
		return Value{Kind: KindText, Text: raw}
	}
}

// decodeList splits on newlines and drops lines that are empty after
// trimming. Kept lines are stored as typed, untrimmed; only the emptiness
// test trims.
func decodeList(raw string) Value {
	items := []string{}
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}
	return Value{Kind: KindList, List: items}
}

// decodeMap splits each line on the first colon only; remaining colons
// belong to the value. Key and value are trimmed. Lines without a colon are
// discarded. Duplicate keys overwrite in place.
func decodeMap(raw string) Value {
	entries := []MapEntry{}
	for _, line := range strings.Split(raw, "\n") {
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		entries = setEntry(entries, key, value)
	}
	return Value{Kind: KindMap, Entries: entries}
}

// DecodeInput interprets an inbound section payload. Clients send either
// the raw edit-surface string or content already coerced to its structured
// shape; a JSON string routes through DecodeFromEdit, anything else through
// Parse. Absent input decodes as an empty edit.
func DecodeInput(kind Kind, raw json.RawMessage) Value {
	if len(raw) == 0 {
		return DecodeFromEdit(kind, "")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return DecodeFromEdit(kind, s)
	}
	return Parse(kind, raw)
}
