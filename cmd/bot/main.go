package main

import (
	"context"
	"log"
	"os"

	"sitedesk/internal/adapters/discord"
	"sitedesk/internal/application"
	"sitedesk/internal/config"
	"sitedesk/internal/infrastructure/database"
	"sitedesk/internal/infrastructure/i18n"
	"sitedesk/pkg/tz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erreur de configuration: %v", err)
	}

	ctx := context.Background()
	store, err := database.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'initialisation du stockage: %v", err)
	}
	defer store.Close()

	tr := i18n.NewTranslator(cfg.DefaultLocale)

	state := application.NewState(store, cfg.StoragePrefix)
	if err := state.Load(ctx); err != nil {
		log.Fatalf("❌ Erreur lors du chargement des données: %v", err)
	}
	entityService := application.NewEntityService(state, tr)

	bot, err := discord.NewBot(cfg, entityService, tr, tr, tz.Load(cfg.Timezone))
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := bot.Start(); err != nil {
		log.Printf("❌ Erreur lors du démarrage du bot: %v", err)
		os.Exit(1)
	}
}
