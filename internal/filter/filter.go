// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package filter derives presentation lists from the in-memory achievement
// cache. All functions are pure: they never mutate the source slice and are
// cheap enough to recompute synchronously on every keystroke.
package filter

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/MKhiriev/go-achieve-portal/models"
)

// All is the wildcard value for the status and department dimensions.
const All = "all"

// Criteria holds the three filter inputs of the achievements list view.
// The zero value matches everything.
type Criteria struct {
	// Term is matched case-insensitively as a substring of the title, the
	// tag-stripped description and the submitter's display name.
	Term string

	// Status is compared exactly against the canonical status label,
	// unless set to All.
	Status string

	// Department is compared exactly against the resolved department
	// label, unless set to All.
	Department string
}

// IsEmpty reports whether the criteria impose no predicate at all.
func (c Criteria) IsEmpty() bool {
	return c.Term == "" &&
		(c.Status == "" || c.Status == All) &&
		(c.Department == "" || c.Department == All)
}

// Reset clears all three dimensions back to the match-everything state.
func (c *Criteria) Reset() {
	c.Term = ""
	c.Status = All
	c.Department = All
}

// Apply returns a new slice containing the activities matching c, in the
// order they appear in list. Empty criteria return a copy of the input.
//
// A status-scoped view must never show drafts: whenever Status names a
// concrete label, draft records are excluded even if their nominal status
// matches.
func Apply(list []models.Activity, c Criteria) []models.Activity {
	out := make([]models.Activity, 0, len(list))
	for _, activity := range list {
		if Matches(activity, c) {
			out = append(out, activity)
		}
	}
	return out
}

// Matches reports whether a single activity passes all three dimensions of c.
func Matches(a models.Activity, c Criteria) bool {
	if statusScoped(c.Status) {
		if a.IsDraft() {
			return false
		}
		if string(a.Status) != c.Status {
			return false
		}
	}

	if deptScoped(c.Department) && departmentLabel(a) != c.Department {
		return false
	}

	if c.Term == "" {
		return true
	}
	term := strings.ToLower(c.Term)
	return containsFold(a.ActivityTitle, term) ||
		containsFold(StripTags(a.ActivityDescription), term) ||
		containsFold(a.OwnerName(), term)
}

func statusScoped(status string) bool {
	return status != "" && status != All
}

func deptScoped(department string) bool {
	return department != "" && department != All
}

func departmentLabel(a models.Activity) string {
	return models.ResolveLabel(a.Department, models.DepartmentInfo.Label, nil, "")
}

// containsFold expects term to be lower-cased already.
func containsFold(haystack, term string) bool {
	return strings.Contains(strings.ToLower(haystack), term)
}

// StripTags reduces rich-text editor output to plain text: markup is
// dropped, entities are decoded and text fragments are joined with single
// spaces. Plain input passes through unchanged.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}

	var parts []string
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.Join(parts, " ")
		case html.TextToken:
			if text := strings.TrimSpace(tokenizer.Token().Data); text != "" {
				parts = append(parts, text)
			}
		}
	}
}
