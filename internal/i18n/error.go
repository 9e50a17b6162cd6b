package i18n

import "errors"

var ErrUnsupportedLanguage = errors.New("unsupported language")
