package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/askren/flowform/internal/config"
	"github.com/askren/flowform/internal/database"
	"github.com/askren/flowform/internal/database/repository"
	"github.com/askren/flowform/internal/lang"
)

func main() {
	validateOnly := flag.Bool("validate", false, "check the form definition and storage, then exit")
	formPath := flag.String("form", "", "path to a form definition TOML (overrides config)")
	flag.Parse()

	if os.Getenv("FLOWFORM_DEBUG") != "" {
		f, err := tea.LogToFile("flowform-debug.log", "flowform")
		if err != nil {
			log.Fatalf("debug log: %v", err)
		}
		defer f.Close()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *formPath != "" {
		cfg.Form.Path = *formPath
	}

	if *validateOnly {
		if err := runValidation(cfg.Form.Path); err != nil {
			log.Fatalf("validate: %v", err)
		}
		return
	}

	def, err := loadDefinition(cfg.Form.Path)
	if err != nil {
		log.Fatalf("form: %v", err)
	}

	questions, err := def.buildQuestions()
	if err != nil {
		log.Fatalf("form: %v", err)
	}

	tab, err := lang.Load(cfg.Form.Language)
	if err != nil {
		log.Fatalf("language: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	repo := repository.NewSubmissionRepo(db)

	m := newModel(cfg, def, tab, questions, repo)
	var opts []tea.ProgramOption
	if cfg.Engine.Standalone {
		// Standalone forms take over the terminal; embedded ones render inline.
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
