package moment

import "errors"

// ErrInvalidInput marks a moment built from input that could not be interpreted.
var ErrInvalidInput = errors.New("moment: invalid input")

// ErrUnknownLocale indicates that no locale table is registered for an identifier.
var ErrUnknownLocale = errors.New("moment: unknown locale")

// ErrInvalidLocale reports a locale table that fails validation.
var ErrInvalidLocale = errors.New("moment: invalid locale")

// ErrUnsupportedLocaleFile is returned for locale files with an unknown extension.
var ErrUnsupportedLocaleFile = errors.New("moment: unsupported locale file")

// ErrInvalidOption is returned by options that receive unusable values.
var ErrInvalidOption = errors.New("moment: invalid option")
