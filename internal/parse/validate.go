package parse

import (
	"errors"
	"strings"
)

// MaxUploadBytes is the upload size cap enforced locally before the
// parser is ever invoked.
const MaxUploadBytes = 10 << 20 // 10 MiB

const (
	MimePDF  = "application/pdf"
	MimeDOC  = "application/msword"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var allowedContentTypes = map[string]struct{}{
	MimePDF:  {},
	MimeDOC:  {},
	MimeDOCX: {},
}

var (
	// ErrUnsupportedType rejects media types outside PDF/DOC/DOCX.
	ErrUnsupportedType = errors.New("file must be a PDF or Word document")
	// ErrTooLarge rejects files over MaxUploadBytes.
	ErrTooLarge = errors.New("file size must be less than 10MB")
	// ErrEmptyFile rejects empty uploads.
	ErrEmptyFile = errors.New("file is empty")
)

// ValidateUpload performs the local pre-validation for an upload. Both
// rejections are synchronous and never reach the parser.
func ValidateUpload(contentType string, sizeBytes int64) error {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	if _, ok := allowedContentTypes[clean]; !ok {
		return ErrUnsupportedType
	}
	if sizeBytes <= 0 {
		return ErrEmptyFile
	}
	if sizeBytes > MaxUploadBytes {
		return ErrTooLarge
	}
	return nil
}
