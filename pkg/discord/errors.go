package discord

import (
	"errors"

	"sitedesk/internal/domain"
)

// ErrorKey maps a domain error to the translation key of its user-facing
// message. Unknown errors map to "errors.generic".
func ErrorKey(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrForbidden):
		return "errors.forbidden"
	case errors.Is(err, domain.ErrUnknownEntity):
		return "errors.unknown_entity"
	case errors.Is(err, domain.ErrInvalidFields):
		return "errors.invalid_fields"
	case errors.Is(err, domain.ErrNotFound):
		return "errors.not_found"
	default:
		return "errors.generic"
	}
}
