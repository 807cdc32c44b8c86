// registry.go
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

// Package schema declares the fixed twelve-section layout of a DDP profile:
// each section number's title, content kind, and canonical blank content.
// The registry is consulted at profile creation; after that the section's
// stored kind and title are the source of truth.
package schema

import (
	"fmt"

	"github.com/ddphub/ddphub-api/internal/content"
)

// SectionCount is the fixed number of sections in every profile.
const SectionCount = 12

type sectionDef struct {
	title string
	kind  content.Kind
	blank content.Value
}

var sections = [SectionCount + 1]sectionDef{
	1: {
		title: "Basic Information",
		kind:  content.KindMap,
		blank: content.NewMap([]content.MapEntry{{Key: "Lead Professional", Value: "Not Set"}}),
	},
	2: {
		title: "Learner's Voice: My Hopes and Dreams",
		kind:  content.KindText,
		blank: content.NewText(""),
	},
	3: {
		title: "My Strengths & Talents",
		kind:  content.KindList,
		blank: content.NewList([]string{}),
	},
	4: {
		title: "My Differences & How I Learn Best",
		kind:  content.KindText,
		blank: content.NewText(""),
	},
	5: {
		title: "My Curiosities & Interests",
		kind:  content.KindList,
		blank: content.NewList([]string{}),
	},
	6: {
		title: "Parent/Carer Perspectives & Aspirations",
		kind:  content.KindText,
		blank: content.NewText(""),
	},
	7: {
		title: "Educator Observations & Key Information",
		kind:  content.KindText,
		blank: content.NewText(""),
	},
	8: {
		title: "Summary of Assessed Needs/Key Areas for Development",
		kind:  content.KindText,
		blank: content.NewText(""),
	},
	9: {
		title: "Agreed Outcomes/Goals (for this cycle)",
		kind:  content.KindList,
		blank: content.NewList([]string{}),
	},
	10: {
		title: "Planned Provision, Strategies & Adjustments",
		kind:  content.KindList,
		blank: content.NewList([]string{}),
	},
	11: {
		title: "Who is Responsible & When?",
		kind:  content.KindMap,
		blank: content.NewMap([]content.MapEntry{}),
	},
	12: {
		title: "How We Will Know It's Working (Success Criteria/Monitoring)",
		kind:  content.KindText,
		blank: content.NewText(""),
	},
}

// KindOf returns the declared content kind for a section number.
func KindOf(number int) (content.Kind, error) {
	if number < 1 || number > SectionCount {
		return "", fmt.Errorf("section number %d out of range 1..%d", number, SectionCount)
	}
	return sections[number].kind, nil
}

// Title returns the canonical title for a section number.
func Title(number int) (string, error) {
	if number < 1 || number > SectionCount {
		return "", fmt.Errorf("section number %d out of range 1..%d", number, SectionCount)
	}
	return sections[number].title, nil
}

// Blank returns the canonical blank content for a section number.
func Blank(number int) (content.Value, error) {
	if number < 1 || number > SectionCount {
		return content.Value{}, fmt.Errorf("section number %d out of range 1..%d", number, SectionCount)
	}
	return sections[number].blank, nil
}
