package game

import "errors"

var (
	// ErrFileNotFound is returned when the chart file is missing or unreadable.
	ErrFileNotFound = errors.New("chart file not found")

	// ErrMalformedNumeric is returned when a directive or cell value does not
	// parse as the number it is expected to be.
	ErrMalformedNumeric = errors.New("malformed numeric literal")

	// ErrUnmatchedConditional is returned for an #ELSE or #ENDIF without an #IF.
	ErrUnmatchedConditional = errors.New("unmatched conditional")

	// ErrIndexOutOfRange is returned when a measure or key falls outside its table.
	ErrIndexOutOfRange = errors.New("index out of range")
)
