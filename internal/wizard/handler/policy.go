package handler

import (
	dErrors "nocflow/pkg/domain-errors"
)

// AttachmentPolicy gates uploaded files before they enter wizard state.
type AttachmentPolicy interface {
	Check(name, mimeType string, sizeBytes int64) error
}

// maxAttachmentBytes is the default upload ceiling.
const maxAttachmentBytes = 5 << 20

var defaultAllowedMIME = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
}

type defaultPolicy struct{}

// DefaultPolicy accepts PDF, JPEG and PNG files up to 5 MiB.
func DefaultPolicy() AttachmentPolicy { return defaultPolicy{} }

func (defaultPolicy) Check(name, mimeType string, sizeBytes int64) error {
	if name == "" {
		return dErrors.New(dErrors.CodeValidation, "attachment must have a file name")
	}
	if sizeBytes <= 0 {
		return dErrors.New(dErrors.CodeValidation, "attachment is empty")
	}
	if sizeBytes > maxAttachmentBytes {
		return dErrors.Newf(dErrors.CodeValidation, "attachment exceeds the %d MiB limit", maxAttachmentBytes>>20)
	}
	if _, ok := defaultAllowedMIME[mimeType]; !ok {
		return dErrors.Newf(dErrors.CodeValidation, "unsupported attachment type %q, use PDF, JPEG or PNG", mimeType)
	}
	return nil
}
