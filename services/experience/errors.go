package experience

import "fmt"

// NotFoundError marks a lookup for an experience id the catalog does not
// carry.
type NotFoundError struct {
	ExperienceID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("experience not found: %s", e.ExperienceID)
}
