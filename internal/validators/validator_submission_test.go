// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-achieve-portal/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validSubmission() models.Submission {
	return models.Submission{
		Title:           "Best Teacher Award",
		DescriptionHTML: "<p>Granted for outstanding classroom results.</p>",
		MainCriteriaID:  "mc-1",
		SubCriteriaID:   "sc-1",
		SaveStatus:      models.SaveStatusComplete,
		Staged: []models.StagedFile{
			{Name: "certificate.pdf", Path: "/tmp/certificate.pdf", Size: 1024},
		},
	}
}

// ---------------------------------------------------------------------------
// TestNewSubmissionValidator
// ---------------------------------------------------------------------------

func TestNewSubmissionValidator(t *testing.T) {
	v := NewSubmissionValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewSubmissionValidator()
	ctx := context.Background()

	t.Run("value and pointer are both accepted", func(t *testing.T) {
		sub := validSubmission()
		assert.NoError(t, v.Validate(ctx, sub))
		assert.NoError(t, v.Validate(ctx, &sub))
	})

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, 42)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, validSubmission(), "no_such_field")
		assert.ErrorIs(t, err, ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidate_Submission
// ---------------------------------------------------------------------------

func TestValidate_Submission(t *testing.T) {
	v := NewSubmissionValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.Submission)
		fields  []string
		wantErr error
	}{
		{
			name:   "valid submission passes all fields",
			mutate: func(*models.Submission) {},
		},
		{
			name:    "empty title",
			mutate:  func(s *models.Submission) { s.Title = "   " },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "title over the cap",
			mutate:  func(s *models.Submission) { s.Title = strings.Repeat("ع", MaxTitleLen+1) },
			wantErr: ErrTitleTooLong,
		},
		{
			name:   "title exactly at the cap",
			mutate: func(s *models.Submission) { s.Title = strings.Repeat("a", MaxTitleLen) },
		},
		{
			name:    "description too short after tag stripping",
			mutate:  func(s *models.Submission) { s.DescriptionHTML = "<p><b>short</b></p>" },
			wantErr: ErrDescriptionTooShort,
		},
		{
			name:    "missing main criterion",
			mutate:  func(s *models.Submission) { s.MainCriteriaID = "" },
			wantErr: ErrMissingMainCriterion,
		},
		{
			name:    "missing sub criterion",
			mutate:  func(s *models.Submission) { s.SubCriteriaID = "" },
			wantErr: ErrMissingSubCriterion,
		},
		{
			name:    "unknown save status",
			mutate:  func(s *models.Submission) { s.SaveStatus = "bogus" },
			wantErr: ErrInvalidSaveStatus,
		},
		{
			name: "field scoping skips unrelated violations",
			mutate: func(s *models.Submission) {
				s.DescriptionHTML = ""
				s.MainCriteriaID = ""
			},
			fields: []string{FieldTitle, FieldSaveStatus},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			sub := validSubmission()
			test.mutate(&sub)

			// Act
			err := v.Validate(ctx, sub, test.fields...)

			// Assert
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Attachments
// ---------------------------------------------------------------------------

func TestValidate_Attachments(t *testing.T) {
	v := NewSubmissionValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.Submission)
		wantErr error
	}{
		{
			name: "staged plus kept over the cap",
			mutate: func(s *models.Submission) {
				s.Staged = []models.StagedFile{
					{Name: "a.png", Size: 1},
					{Name: "b.png", Size: 1},
				}
				s.KeptAttachments = []string{"uploads/old.pdf"}
			},
			wantErr: ErrTooManyAttachments,
		},
		{
			name: "removing an existing attachment frees a slot",
			mutate: func(s *models.Submission) {
				s.Staged = []models.StagedFile{
					{Name: "a.png", Size: 1},
					{Name: "b.png", Size: 1},
				}
				s.KeptAttachments = nil
				s.RemovedAttachments = []string{"uploads/old.pdf"}
			},
		},
		{
			name: "oversized staged file",
			mutate: func(s *models.Submission) {
				s.Staged = []models.StagedFile{{Name: "huge.pdf", Size: models.MaxAttachmentSize + 1}}
			},
			wantErr: ErrAttachmentTooLarge,
		},
		{
			name: "disallowed extension",
			mutate: func(s *models.Submission) {
				s.Staged = []models.StagedFile{{Name: "script.exe", Size: 1}}
			},
			wantErr: ErrUnsupportedAttachment,
		},
		{
			name: "extension matching is case-insensitive",
			mutate: func(s *models.Submission) {
				s.Staged = []models.StagedFile{{Name: "PHOTO.JPG", Size: 1}}
			},
		},
		{
			name: "kept and removed lists overlap",
			mutate: func(s *models.Submission) {
				s.Staged = nil
				s.KeptAttachments = []string{"uploads/a.pdf"}
				s.RemovedAttachments = []string{"uploads/a.pdf"}
			},
			wantErr: ErrAttachmentListOverlap,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			sub := validSubmission()
			test.mutate(&sub)

			// Act
			err := v.Validate(ctx, sub, FieldAttachments)

			// Assert
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Credentials
// ---------------------------------------------------------------------------

func TestValidate_Credentials(t *testing.T) {
	v := NewSubmissionValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Credentials{Username: "admin", Password: "secret"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Username: "", Password: "secret"}), ErrEmptyCredentials)
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Username: "admin", Password: ""}), ErrEmptyCredentials)
}

// ---------------------------------------------------------------------------
// TestNormalizeRejectionReason
// ---------------------------------------------------------------------------

func TestNormalizeRejectionReason(t *testing.T) {
	tests := []struct {
		name    string
		reason  string
		want    string
		wantErr error
	}{
		{name: "empty falls back to placeholder", reason: "", want: DefaultRejectionReason},
		{name: "whitespace only falls back to placeholder", reason: "   ", want: DefaultRejectionReason},
		{name: "one character is refused", reason: "x", wantErr: ErrShortRejectionReason},
		{name: "four characters are refused", reason: "abcd", wantErr: ErrShortRejectionReason},
		{name: "five characters pass", reason: "abcde", want: "abcde"},
		{name: "longer reason passes trimmed", reason: "  missing evidence  ", want: "missing evidence"},
		{name: "length is counted in runes", reason: "سبب كاف", want: "سبب كاف"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := NormalizeRejectionReason(test.reason)
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}
