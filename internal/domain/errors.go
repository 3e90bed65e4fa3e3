package domain

import "errors"

var (
	ErrEmptyBatch          = errors.New("no files uploaded")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrArchiveFailed       = errors.New("claim archive to storage failed")
)
