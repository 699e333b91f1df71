// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// Identified is the constraint for entities that can stand behind a [Ref]:
// anything carrying the backend's opaque "_id" value.
type Identified interface {
	RefID() string
}

// Ref is a backend reference field that arrives on the wire either as a bare
// id string or as an expanded object. The portal backend populates such
// fields inconsistently depending on the endpoint, so every consumer goes
// through this single type instead of sniffing shapes at the call site.
//
// The zero Ref is an empty reference: ID() returns "" and Get() reports
// no expanded value.
type Ref[T Identified] struct {
	id  string
	obj *T
}

// NewRef returns a reference holding only an id.
func NewRef[T Identified](id string) Ref[T] {
	return Ref[T]{id: id}
}

// NewExpandedRef returns a reference holding a full expanded object.
func NewExpandedRef[T Identified](obj T) Ref[T] {
	return Ref[T]{id: obj.RefID(), obj: &obj}
}

// ID returns the referenced entity's id, regardless of which wire form the
// reference arrived in.
func (r Ref[T]) ID() string {
	if r.obj != nil {
		if id := (*r.obj).RefID(); id != "" {
			return id
		}
	}
	return r.id
}

// Get returns the expanded object when the backend sent one.
func (r Ref[T]) Get() (T, bool) {
	if r.obj == nil {
		var zero T
		return zero, false
	}
	return *r.obj, true
}

// IsZero reports whether the reference points at nothing.
func (r Ref[T]) IsZero() bool {
	return r.id == "" && r.obj == nil
}

func (r *Ref[T]) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*r = Ref[T]{}
		return nil
	}

	if b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return fmt.Errorf("decode reference id: %w", err)
		}
		*r = Ref[T]{id: id}
		return nil
	}

	var obj T
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("decode expanded reference: %w", err)
	}
	*r = Ref[T]{id: obj.RefID(), obj: &obj}
	return nil
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.obj != nil {
		return json.Marshal(*r.obj)
	}
	return json.Marshal(r.id)
}

// ResolveLabel returns a display label for the reference: the expanded
// object's own label when present, otherwise the result of looking the id up
// in the caller's cached collection, otherwise fallback.
func ResolveLabel[T Identified](r Ref[T], label func(T) string, lookup func(id string) (T, bool), fallback string) string {
	if obj, ok := r.Get(); ok {
		if l := label(obj); l != "" {
			return l
		}
	}
	if lookup != nil && r.ID() != "" {
		if obj, ok := lookup(r.ID()); ok {
			if l := label(obj); l != "" {
				return l
			}
		}
	}
	return fallback
}
