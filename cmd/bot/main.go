package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/ekinoks/slack-assistant-bot/internal/clock"
	"github.com/ekinoks/slack-assistant-bot/internal/config"
	"github.com/ekinoks/slack-assistant-bot/internal/database"
	"github.com/ekinoks/slack-assistant-bot/internal/domain/service"
	"github.com/ekinoks/slack-assistant-bot/internal/handlers"
	"github.com/ekinoks/slack-assistant-bot/internal/lessons"
	"github.com/ekinoks/slack-assistant-bot/internal/notes"
	"github.com/ekinoks/slack-assistant-bot/internal/vocabulary"
	"github.com/ekinoks/slack-assistant-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	db, err := database.New(cfg.AssistantDBPath)
	if err != nil {
		log.Fatalf("Failed to initialize assistant database: %v", err)
	}
	defer db.Close()

	lessonStore, err := lessons.New(cfg.LessonsDBPath)
	if err != nil {
		log.Fatalf("Failed to initialize lessons database: %v", err)
	}
	defer lessonStore.Close()

	vocabularyStore, err := vocabulary.New(cfg.VocabularyDBPath)
	if err != nil {
		log.Fatalf("Failed to initialize vocabulary database: %v", err)
	}
	defer vocabularyStore.Close()

	notesStore, err := notes.New(cfg.NotesDBPath)
	if err != nil {
		log.Fatalf("Failed to initialize notes database: %v", err)
	}
	defer notesStore.Close()

	log.Println("Running migrations...")
	if err := sqlite.MigrateAssistant(db.DB()); err != nil {
		log.Fatalf("Failed to migrate assistant database: %v", err)
	}
	if err := sqlite.MigrateLessons(lessonStore.DB()); err != nil {
		log.Fatalf("Failed to migrate lessons database: %v", err)
	}
	if err := sqlite.MigrateVocabulary(vocabularyStore.DB()); err != nil {
		log.Fatalf("Failed to migrate vocabulary database: %v", err)
	}
	if err := sqlite.MigrateNotes(notesStore.DB()); err != nil {
		log.Fatalf("Failed to migrate notes database: %v", err)
	}
	log.Println("Migrations completed successfully")

	slackClient := slack.New(cfg.SlackBotToken)

	dm := database.NewInstance(db)
	clk := clock.New(cfg.DefaultTimezone)

	services := service.NewInstance(dm, lessonStore, vocabularyStore, notesStore, slackClient, clk, cfg)

	if err := services.Scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer services.Scheduler.Stop()

	handler := handlers.New(services.Assistant, cfg.SlackSigningSecret)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
