package gemini

import "time"

const (
	// DefaultModel is used when the caller does not pick one.
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL points at the public Generative Language endpoint.
	// Tests override it with SetAPIURL.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout bounds a single generateContent call.
	DefaultTimeout = 30 * time.Second
)

// generatePath builds the generateContent URL from apiURL, model and key.
const generatePath = "%s/models/%s:generateContent?key=%s"
