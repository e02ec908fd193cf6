package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"arcanum/core"
	"arcanum/internal/config"
	"arcanum/internal/database"
	"arcanum/internal/database/repository"
	"arcanum/internal/logging"
	"arcanum/internal/state"
	"arcanum/pillars/astrology"
	"arcanum/pillars/documents"
	"arcanum/pillars/geometry"
	"arcanum/pillars/numerology"
	"arcanum/screens"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "arcanum",
		Short: "A terminal workbench for the esoteric arts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
		SilenceUsage: true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("arcanum", version)
		},
	})

	stateCmd := &cobra.Command{
		Use:   "state",
		Short: "Manage persisted window state",
	}
	var resetAll bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget all saved window placements",
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetState(resetAll)
		},
	}
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "also wipe notes and annotations")
	stateCmd.AddCommand(resetCmd)
	root.AddCommand(stateCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logging.New(cfg.Log.Path, cfg.Log.Debug)
	if err != nil {
		return err
	}
	defer log.Sync()

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	// repositories
	windowRepo := repository.NewWindowStateRepo(db)
	noteRepo := repository.NewNoteRepo(db)
	annRepo := repository.NewAnnotationRepo(db)

	store := state.NewSQLiteStore(windowRepo)
	wm := core.NewWindowManager(store, log)
	dispatch := core.NewDispatch()
	strip := core.NewTabStrip(dispatch, core.DefaultAccents())

	if err := numerology.New(noteRepo).Attach(strip); err != nil {
		return err
	}
	if err := astrology.New().Attach(strip); err != nil {
		return err
	}
	if err := geometry.New().Attach(strip); err != nil {
		return err
	}
	if err := documents.New(cfg.Docs.Dir, annRepo, log).Attach(strip, wm); err != nil {
		return err
	}

	keys := core.NewKeyRegistry(core.DefaultBindings())
	model := core.NewModel(core.Options{
		AppName:    "arcanum",
		InitialTab: cfg.UI.InitialTab,
	}, strip, wm, keys, store, log)
	model.OpenJumpPicker = func(m *core.Model) core.Screen {
		return screens.NewJumpPicker(m.Windows().Surfaces())
	}
	model.RestoreShell()

	log.Info("starting", zap.String("version", version), zap.String("db", cfg.Database.Path))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("program exited with error", zap.Error(err))
		return err
	}
	return nil
}

func resetState(all bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if all {
		if err := database.Purge(db); err != nil {
			return fmt.Errorf("purge: %w", err)
		}
		fmt.Println("window state, notes and annotations cleared")
		return nil
	}
	if err := repository.NewWindowStateRepo(db).Reset(context.Background()); err != nil {
		return fmt.Errorf("reset state: %w", err)
	}
	fmt.Println("window state cleared")
	return nil
}

func openDatabase(cfg config.Config) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
