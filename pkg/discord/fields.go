package discord

import (
	"errors"
	"strings"

	"sitedesk/internal/domain"
)

var errPair = errors.New("attendu clé=valeur")

// ParseFields reads "key=value; key=value" as typed by a user in a command
// option. Values stay text, with one pair of surrounding double quotes
// removed; the application converts them to each field's type.
func ParseFields(input string) (map[string]any, error) {
	out := map[string]any{}
	for _, part := range strings.Split(input, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, &domain.FieldError{Field: part, Err: errPair}
		}
		out[key] = unquote(strings.TrimSpace(value))
	}
	return out, nil
}

func unquote(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}
