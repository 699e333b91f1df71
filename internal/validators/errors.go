package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle            = errors.New("title is required")
	ErrTitleTooLong          = errors.New("title cannot exceed 150 characters")
	ErrDescriptionTooShort   = errors.New("description must be at least 10 characters")
	ErrMissingMainCriterion  = errors.New("main criterion is required")
	ErrMissingSubCriterion   = errors.New("sub criterion is required")
	ErrInvalidSaveStatus     = errors.New("invalid save status")
	ErrTooManyAttachments    = errors.New("attachment count exceeds the limit")
	ErrAttachmentTooLarge    = errors.New("attachment exceeds the size limit")
	ErrUnsupportedAttachment = errors.New("attachment must be an image or a PDF")
	ErrAttachmentListOverlap = errors.New("kept and removed attachment lists overlap")
	ErrShortRejectionReason  = errors.New("rejection reason must be at least 5 characters")
	ErrEmptyCredentials      = errors.New("username and password are required")
)
