package sheet2i18n

import "errors"

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is not a usable translation sheet.
var ErrInvalidFormat = errors.New("invalid format")

// ErrWrite indicates the output could not be created or written.
var ErrWrite = errors.New("write failed")
