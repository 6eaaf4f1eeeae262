package browser

import (
	"context"
	"errors"

	"github.com/mmcdole/moviehouse/internal/domain"
)

// describeError turns a fetch error into a short inline notice
func describeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrNotConfigured):
		return "No API key configured. Run `moviehouse setup`."
	case errors.Is(err, domain.ErrAuthFailed):
		return "The catalog rejected the API key. Run `moviehouse setup`."
	case errors.Is(err, domain.ErrMalformedResponse):
		return "The catalog sent a response that could not be read."
	case errors.Is(err, context.DeadlineExceeded):
		return "The catalog took too long to respond."
	case errors.Is(err, domain.ErrNetwork):
		return "Could not reach the catalog. Showing previous results."
	default:
		return err.Error()
	}
}
