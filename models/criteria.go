// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CriterionLevel is the visibility scope of a main criterion.
type CriterionLevel string

const (
	// LevelAll makes a criterion available to every sector.
	LevelAll CriterionLevel = "ALL"

	// LevelSector restricts a criterion to one sector.
	LevelSector CriterionLevel = "SECTOR"

	// LevelDepartment restricts a criterion to one department account.
	LevelDepartment CriterionLevel = "DEPARTMENT"
)

// MainCriterion is a top-level classification entry. A main criterion cannot
// be deleted while any [SubCriterion] references it.
type MainCriterion struct {
	ID    string         `json:"_id,omitempty"`
	Name  string         `json:"name"`
	Level CriterionLevel `json:"level"`

	// Sector is set when Level is LevelSector.
	Sector Ref[SectorInfo] `json:"sector,omitempty"`

	// DepartmentUser is set when Level is LevelDepartment.
	DepartmentUser Ref[DepartmentInfo] `json:"departmentUser,omitempty"`
}

func (m MainCriterion) RefID() string { return m.ID }

// SubCriterion is a second-level classification entry under one
// main criterion.
type SubCriterion struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`

	// MainCriteria references the parent, as id or expanded {_id, name}.
	MainCriteria Ref[CriterionInfo] `json:"mainCriteria"`
}

// BelongsTo reports whether the sub criterion hangs under the given main
// criterion id.
func (s SubCriterion) BelongsTo(mainID string) bool {
	return s.MainCriteria.ID() == mainID
}

// AddMainCriterionRequest is the creation body for a main criterion. Scope
// references are plain ids on the way up.
type AddMainCriterionRequest struct {
	Name           string         `json:"name"`
	Level          CriterionLevel `json:"level"`
	Sector         string         `json:"sector,omitempty"`
	DepartmentUser string         `json:"departmentUser,omitempty"`
}

// UpdateMainCriterionRequest carries a partial main-criterion update. Nil
// scope fields are serialized as explicit nulls so the backend clears the
// fields that no longer apply to the chosen level.
type UpdateMainCriterionRequest struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Level          CriterionLevel `json:"level"`
	Sector         *string        `json:"sector"`
	DepartmentUser *string        `json:"departmentUser"`
}

// AddSubCriterionRequest is the creation body for a sub criterion.
type AddSubCriterionRequest struct {
	Name         string `json:"name"`
	MainCriteria string `json:"mainCriteria"`
}
