package checkout

import "errors"

var (
	ErrExperienceNotFound = errors.New("experience not found")
	ErrDateUnavailable    = errors.New("selected date not available")
	ErrTimeUnavailable    = errors.New("selected time not available")
)
