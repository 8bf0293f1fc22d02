package services

import "errors"

// ErrToolNotFound is returned when an assessment tool lookup matches no row
var ErrToolNotFound = errors.New("assessment tool not found")

// IsNotFound reports whether err means the requested tool does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrToolNotFound)
}
