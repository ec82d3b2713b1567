package repository

import "errors"

// ErrEventNotFound reports that the backend no longer has the event.
// Implementations map their transport-level not-found onto this sentinel.
var ErrEventNotFound = errors.New("calendar event not found")
