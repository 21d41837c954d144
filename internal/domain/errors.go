package domain

import "errors"

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrMissingFile         = errors.New("no file provided")
	ErrInvalidCUIT         = errors.New("identifier is not a valid 11-digit CUIT")
	ErrVisionUnavailable   = errors.New("vision service unavailable")
)
