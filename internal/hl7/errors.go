package hl7

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the path is missing or is not a regular file.
	ErrNotFound = errors.New("hl7 file not found")
	// ErrDecode means the file bytes are not UTF-8; see DecodeError.
	ErrDecode = errors.New("hl7 file is not valid UTF-8")
	// ErrEmptySearchTerm is returned by Find for a blank term.
	ErrEmptySearchTerm = errors.New("enter search term")
	// ErrNoMessage is returned by Find when there are no segments to scan.
	ErrNoMessage = errors.New("no HL7 data loaded")
)

// DecodeError reports the first invalid UTF-8 sequence in a file.
type DecodeError struct {
	Path   string
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: invalid UTF-8 at byte %d", e.Path, e.Offset)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
