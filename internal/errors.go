package internal

import "errors"

var (
	// ErrNoWords is returned when no usable word is left after filtering.
	ErrNoWords = errors.New("no words to generate crosswords from")
	// ErrInvalidWord is returned for words containing anything but letters.
	ErrInvalidWord = errors.New("invalid word")
	// ErrUnsupportedFormat is returned for request files or outputs in an
	// unknown format.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrInvalidSettings is returned for settings the generator cannot honor.
	ErrInvalidSettings = errors.New("invalid settings")
)
