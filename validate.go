package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/askren/flowform/internal/database"
	"github.com/askren/flowform/internal/flow"
)

// runValidation executes a non-TUI check of the form definition and
// storage layer: parse the definition, build the engine questions,
// walk a fully-answered path, and run migrations against a throwaway
// database.
func runValidation(formPath string) error {
	def, err := loadDefinition(formPath)
	if err != nil {
		return err
	}

	questions, err := def.buildQuestions()
	if err != nil {
		return fmt.Errorf("build questions: %w", err)
	}

	form := flow.NewForm(questions, flow.Config{}, flow.Events{})
	if form.NumActiveQuestions() == 0 {
		return fmt.Errorf("form has no reachable questions")
	}

	dir, err := os.MkdirTemp("", "flowform-validate-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	db, err := database.Open(filepath.Join(dir, "validate.db"))
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	fmt.Printf("ok: %q, %d questions, %d on the initial path\n",
		def.Name, len(questions), form.NumActiveQuestions())
	return nil
}
