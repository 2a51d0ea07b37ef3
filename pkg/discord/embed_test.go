package discord

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sitedesk/internal/domain"
)

func TestBuildNotificationEmbed(t *testing.T) {
	e := BuildNotificationEmbed("Created", "The material was added.", "success", false)
	assert.Equal(t, "Created", e.Title)
	assert.Equal(t, colorSuccess, e.Color)

	e = BuildNotificationEmbed("تمت الإضافة", "نص", "warning", true)
	assert.True(t, strings.HasPrefix(e.Title, rlm))
	assert.True(t, strings.HasPrefix(e.Description, rlm))
	assert.Equal(t, colorWarning, e.Color)
}

func TestBuildListEmbed(t *testing.T) {
	e := BuildListEmbed("Materials", []string{"a", "b"}, "empty", "footer", false)
	assert.Equal(t, "a\nb", e.Description)
	assert.Equal(t, "footer", e.Footer.Text)

	e = BuildListEmbed("Materials", nil, "Nothing here yet.", "footer", false)
	assert.Equal(t, "Nothing here yet.", e.Description)
}

func TestBuildListEmbedTruncates(t *testing.T) {
	lines := make([]string, 500)
	for i := range lines {
		lines[i] = strings.Repeat("x", 20)
	}
	e := BuildListEmbed("t", lines, "", "", false)
	assert.LessOrEqual(t, len(e.Description), maxDescription)
}

func TestErrorKey(t *testing.T) {
	assert.Equal(t, "", ErrorKey(nil))
	assert.Equal(t, "errors.forbidden", ErrorKey(fmt.Errorf("worker: %w", domain.ErrForbidden)))
	assert.Equal(t, "errors.invalid_fields", ErrorKey(domain.ErrInvalidFields))
	assert.Equal(t, "errors.not_found", ErrorKey(domain.ErrNotFound))
	assert.Equal(t, "errors.unknown_entity", ErrorKey(domain.ErrUnknownEntity))
	assert.Equal(t, "errors.generic", ErrorKey(errors.New("boom")))
}
