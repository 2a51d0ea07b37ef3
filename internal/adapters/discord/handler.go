package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"sitedesk/internal/domain"
	"sitedesk/internal/ports/input"
	"sitedesk/internal/ports/output"
	pkgdiscord "sitedesk/pkg/discord"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	entityUseCase input.EntityUseCase
	tr            output.T
	locales       output.Locales
	audit         output.Notifier
	loc           *time.Location
}

// NewHandler creates a Handler. audit may be nil.
func NewHandler(
	entityUseCase input.EntityUseCase,
	tr output.T,
	locales output.Locales,
	audit output.Notifier,
	loc *time.Location,
) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		entityUseCase: entityUseCase,
		tr:            tr,
		locales:       locales,
		audit:         audit,
		loc:           loc,
	}
}

// HandleCommand serves /sitedesk.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := h.locales.Match(string(i.Locale))
	rtl := h.locales.Direction(locale) == "rtl"
	role := resolveRole(s, i)

	cmd, err := parseCommand(i.ApplicationCommandData())
	if err != nil {
		respondEphemeral(s, i.Interaction, h.errorEmbed(locale, role, cmd, err, rtl))
		return
	}

	reply := newInteractionNotifier(s, i.Interaction, rtl)
	sink := notifiers{reply}
	if h.audit != nil {
		sink = append(sink, h.audit)
	}
	req := input.Request{Actor: role, Locale: locale, Kind: cmd.Kind, Notifier: sink}

	list, err := h.execute(context.Background(), req, cmd, rtl)
	switch {
	case err != nil && !reply.responded():
		respondEphemeral(s, i.Interaction, h.errorEmbed(locale, role, cmd, err, rtl))
	case list != nil:
		respondEphemeral(s, i.Interaction, list)
	}
}

// execute runs cmd. It returns an embed only for list; every other action
// reports through req.Notifier.
func (h *Handler) execute(ctx context.Context, req input.Request, cmd commandInput, rtl bool) (*discordgo.MessageEmbed, error) {
	switch cmd.Action {
	case actionAdd, actionUpdate:
		fields, err := pkgdiscord.ParseFields(cmd.Fields)
		if err != nil {
			return nil, err
		}
		if cmd.Action == actionAdd {
			_, err = h.entityUseCase.Add(ctx, req, fields)
			return nil, err
		}
		return nil, h.entityUseCase.Update(ctx, req, cmd.ID, fields)
	case actionDelete:
		return nil, h.entityUseCase.Delete(ctx, req, cmd.ID)
	case actionArchive:
		return nil, h.entityUseCase.Archive(ctx, req, cmd.ID)
	case actionRestore:
		return nil, h.entityUseCase.Restore(ctx, req, cmd.ID)
	case actionList:
		items, err := h.entityUseCase.List(ctx, req, cmd.Archived)
		if err != nil {
			return nil, err
		}
		return h.listEmbed(req, items, rtl), nil
	default:
		return nil, fmt.Errorf("unknown action %q", cmd.Action)
	}
}

func (h *Handler) listEmbed(req input.Request, items []input.Summary, rtl bool) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		line := fmt.Sprintf("`%s` · %s", it.ID, it.Name)
		if it.ArchivedAt != nil {
			date := it.ArchivedAt.In(h.loc).Format("02/01/2006 15:04")
			line += " (" + h.tr.T(req.Locale, "list.archived", map[string]any{"date": date}) + ")"
		}
		lines = append(lines, line)
	}
	title := h.tr.T(req.Locale, "list.title", map[string]any{
		"entity": h.tr.T(req.Locale, "entity."+string(req.Kind), nil),
		"count":  len(items),
	})
	return pkgdiscord.BuildListEmbed(
		title,
		lines,
		h.tr.T(req.Locale, "list.empty", nil),
		h.tr.T(req.Locale, "dashboard."+string(req.Actor)+".title", nil),
		rtl,
	)
}

func (h *Handler) errorEmbed(locale string, role domain.Role, cmd commandInput, err error, rtl bool) *discordgo.MessageEmbed {
	log.Printf("⚠️ /%s %s refusé: %v", commandName, cmd.Action, err)
	data := map[string]any{
		"role":   h.tr.T(locale, "roles."+string(role), nil),
		"entity": h.tr.T(locale, "entity."+string(cmd.Kind), nil),
	}
	var fe *domain.FieldError
	if errors.As(err, &fe) {
		data["field"] = fe.Field
	}
	return pkgdiscord.BuildNotificationEmbed(
		h.tr.T(locale, "errors.title", nil),
		h.tr.T(locale, pkgdiscord.ErrorKey(err), data),
		string(output.LevelError),
		rtl,
	)
}
