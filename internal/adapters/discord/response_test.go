package discord

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"os"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitedesk/internal/domain"
)

type offlineTransport struct{}

func (offlineTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("offline")
}

func TestRespondEphemeralLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	s, err := discordgo.New("Bot test")
	require.NoError(t, err)
	s.Client = &http.Client{Transport: offlineTransport{}}

	respondEphemeral(s, &discordgo.Interaction{ID: "1", Token: "t"}, &discordgo.MessageEmbed{Title: "Created"})
	assert.Contains(t, buf.String(), "réponse à l'interaction")
	assert.Contains(t, buf.String(), "offline")
}

func TestRoleFromNames(t *testing.T) {
	assert.Equal(t, domain.RoleAdmin, roleFromNames(discordgo.PermissionAdministrator, nil))
	assert.Equal(t, domain.RoleSiteManager, roleFromNames(0, []string{"Worker", "Site Manager", "Gamers"}))
	assert.Equal(t, domain.RoleOwner, roleFromNames(0, []string{"lab", "owner"}))
	assert.Equal(t, domain.RoleWorker, roleFromNames(0, []string{"everyone"}))
}
