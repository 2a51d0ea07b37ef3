package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"sitedesk/internal/domain/entities"
	"sitedesk/internal/ports/output"
)

const commandName = "sitedesk"

// Sub-commands of /sitedesk.
const (
	actionAdd     = "add"
	actionUpdate  = "update"
	actionDelete  = "delete"
	actionList    = "list"
	actionArchive = "archive"
	actionRestore = "restore"
)

// commandInput is a parsed /sitedesk invocation.
type commandInput struct {
	Action   string
	Kind     entities.Kind
	ID       string
	Fields   string
	Archived bool
}

// applicationCommand declares /sitedesk. Entity choices are labelled in the
// default locale.
func applicationCommand(tr output.T, locale string) *discordgo.ApplicationCommand {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(entities.Kinds()))
	for _, k := range entities.Kinds() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  tr.T(locale, "entity."+string(k), nil),
			Value: string(k),
		})
	}
	entity := &discordgo.ApplicationCommandOption{
		Type: discordgo.ApplicationCommandOptionString, Name: "entity", Description: "Record type",
		Required: true, Choices: choices,
	}
	id := &discordgo.ApplicationCommandOption{
		Type: discordgo.ApplicationCommandOptionString, Name: "id", Description: "Record id", Required: true,
	}
	fields := func(required bool) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type: discordgo.ApplicationCommandOptionString, Name: "fields",
			Description: "key=value; key=value", Required: required,
		}
	}
	archived := &discordgo.ApplicationCommandOption{
		Type: discordgo.ApplicationCommandOptionBoolean, Name: "archived", Description: "Show archived projects",
	}
	sub := func(name, desc string, opts ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type: discordgo.ApplicationCommandOptionSubCommand, Name: name, Description: desc, Options: opts,
		}
	}

	return &discordgo.ApplicationCommand{
		Name:        commandName,
		Description: "Manage construction site records",
		Options: []*discordgo.ApplicationCommandOption{
			sub(actionAdd, "Add a record", entity, fields(true)),
			sub(actionUpdate, "Update fields of a record", entity, id, fields(true)),
			sub(actionDelete, "Delete a record", entity, id),
			sub(actionList, "List records", entity, archived),
			sub(actionArchive, "Archive a project", id),
			sub(actionRestore, "Restore an archived project", id),
		},
	}
}

func parseCommand(data discordgo.ApplicationCommandInteractionData) (commandInput, error) {
	var in commandInput
	if data.Name != commandName || len(data.Options) == 0 {
		return in, fmt.Errorf("unexpected command %q", data.Name)
	}
	sub := data.Options[0]
	in.Action = sub.Name
	for _, o := range sub.Options {
		switch o.Name {
		case "entity":
			in.Kind = entities.Kind(o.StringValue())
		case "id":
			in.ID = o.StringValue()
		case "fields":
			in.Fields = o.StringValue()
		case "archived":
			in.Archived = o.BoolValue()
		}
	}
	if in.Action == actionArchive || in.Action == actionRestore {
		in.Kind = entities.KindProject
	}
	return in, nil
}
