package lingua

import "errors"

var (
	ErrNoSource             = errors.New("lingua: no source configured")
	ErrNoLanguages          = errors.New("lingua: no languages found")
	ErrSourceAccess         = errors.New("lingua: source access failed")
	ErrParse                = errors.New("lingua: invalid language file")
	ErrLanguageNotAvailable = errors.New("lingua: language not available")
	ErrKeyNotFound          = errors.New("lingua: translation key not found")
	ErrLanguageFileNotFound = errors.New("lingua: language file not found")
	ErrNotInitialized       = errors.New("lingua: registry not initialized")
	ErrEmptyLanguage        = errors.New("lingua: language code cannot be empty")
	ErrConfigNotFound       = errors.New("lingua: config file not found")
	ErrConfigRead           = errors.New("lingua: config file unreadable")
	ErrConfigValueNotFound  = errors.New("lingua: value not found in config")
)
