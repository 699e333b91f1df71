package validators

import (
	"context"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-achieve-portal/internal/filter"
	"github.com/MKhiriev/go-achieve-portal/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldTitle targets the achievement headline.
	FieldTitle = "title"

	// FieldDescription targets the rich-text body; length is measured on
	// the tag-stripped plain text.
	FieldDescription = "description"

	// FieldMainCriterion and FieldSubCriterion target the taxonomy binding.
	FieldMainCriterion = "main_criterion"
	FieldSubCriterion  = "sub_criterion"

	// FieldSaveStatus targets the draft/complete tag.
	FieldSaveStatus = "save_status"

	// FieldAttachments targets the staged files and the kept/removed
	// reconciliation lists together.
	FieldAttachments = "attachments"
)

// Form field limits enforced before any network call.
const (
	MaxTitleLen       = 150
	MinDescriptionLen = 10

	// MinRejectionReasonLen applies only when a reason was entered at all;
	// an empty reason falls back to DefaultRejectionReason instead.
	MinRejectionReasonLen = 5
)

// DefaultRejectionReason is recorded when an administrator rejects a record
// without entering a reason.
const DefaultRejectionReason = "لم يتم ذكر سبب للرفض"

// allowedAttachmentExts is the exhaustive set of file extensions accepted
// for upload. Anything else is refused client-side.
var allowedAttachmentExts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".pdf"}

type SubmissionValidator struct {
}

func NewSubmissionValidator() Validator {
	return &SubmissionValidator{}
}

func (v *SubmissionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Submission:
		return v.validateSubmission(ctx, value, fields...)
	case *models.Submission:
		return v.validateSubmission(ctx, *value, fields...)

	case models.StagedFile:
		return v.validateStagedFile(value)
	case *models.StagedFile:
		return v.validateStagedFile(*value)

	case models.Credentials:
		return v.validateCredentials(value)
	case *models.Credentials:
		return v.validateCredentials(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *SubmissionValidator) validateSubmission(ctx context.Context, sub models.Submission, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldMainCriterion, FieldSubCriterion, FieldSaveStatus, FieldAttachments}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			title := strings.TrimSpace(sub.Title)
			if title == "" {
				return ErrEmptyTitle
			}
			if utf8.RuneCountInString(title) > MaxTitleLen {
				return ErrTitleTooLong
			}
		case FieldDescription:
			if utf8.RuneCountInString(filter.StripTags(sub.DescriptionHTML)) < MinDescriptionLen {
				return ErrDescriptionTooShort
			}
		case FieldMainCriterion:
			if sub.MainCriteriaID == "" {
				return ErrMissingMainCriterion
			}
		case FieldSubCriterion:
			if sub.SubCriteriaID == "" {
				return ErrMissingSubCriterion
			}
		case FieldSaveStatus:
			if sub.SaveStatus != models.SaveStatusDraft && sub.SaveStatus != models.SaveStatusComplete {
				return ErrInvalidSaveStatus
			}
		case FieldAttachments:
			if err := v.validateAttachments(sub); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SubmissionValidator) validateAttachments(sub models.Submission) error {
	if sub.AttachmentCount() > models.MaxAttachments {
		return ErrTooManyAttachments
	}

	for _, staged := range sub.Staged {
		if err := v.validateStagedFile(staged); err != nil {
			return err
		}
	}

	for _, removed := range sub.RemovedAttachments {
		for _, kept := range sub.KeptAttachments {
			if removed == kept {
				return ErrAttachmentListOverlap
			}
		}
	}

	return nil
}

func (v *SubmissionValidator) validateStagedFile(staged models.StagedFile) error {
	if staged.Size > models.MaxAttachmentSize {
		return ErrAttachmentTooLarge
	}
	if !isAllowedAttachment(staged.Name) {
		return ErrUnsupportedAttachment
	}
	return nil
}

func (v *SubmissionValidator) validateCredentials(credentials models.Credentials) error {
	if strings.TrimSpace(credentials.Username) == "" || credentials.Password == "" {
		return ErrEmptyCredentials
	}
	return nil
}

func isAllowedAttachment(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range allowedAttachmentExts {
		if ext == allowed {
			return true
		}
	}
	return false
}

// NormalizeRejectionReason applies the rejection-reason rule: an empty input
// falls back to the placeholder, a non-empty input shorter than
// MinRejectionReasonLen is refused, anything else passes through trimmed.
func NormalizeRejectionReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return DefaultRejectionReason, nil
	}
	if utf8.RuneCountInString(reason) < MinRejectionReasonLen {
		return "", ErrShortRejectionReason
	}
	return reason, nil
}
