package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ParthebhanMedi/search-pubchem/internal/api"
	"github.com/ParthebhanMedi/search-pubchem/internal/db"
	"github.com/ParthebhanMedi/search-pubchem/internal/session"
	"github.com/ParthebhanMedi/search-pubchem/internal/ui"
)

const (
	defaultDBPath = "pubchem-session.db"
	defaultOutDir = "downloads"
)

func main() {
	// Show splash screen on startup
	ui.ShowSplash()

	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	// Parse command line flags
	dbPath := flag.String("db", defaultDBPath, "Path to SQLite history database")
	baseURL := flag.String("base-url", "", "PubChem PUG REST base URL (overrides PUBCHEM_BASE_URL)")
	outDir := flag.String("out", defaultOutDir, "Directory for downloaded SDF/JSON/PNG files")
	noHistory := flag.Bool("no-history", false, "Disable the search history database")
	flag.Parse()

	apiBase := *baseURL
	if apiBase == "" {
		apiBase = os.Getenv("PUBCHEM_BASE_URL")
	}

	var database *db.DB
	if !*noHistory {
		var err error
		database, err = db.New(*dbPath)
		if err != nil {
			ui.PrintError(fmt.Sprintf("Failed to initialize database: %v", err))
			os.Exit(1)
		}
		defer database.Close()
	}

	client := api.NewClientWithLogging(apiBase, *dbPath)

	app := &ui.App{
		Client:   client,
		Store:    session.NewStore(),
		Database: database,
		OutDir:   *outDir,
	}

	if err := app.Run(); err != nil {
		ui.PrintError(fmt.Sprintf("Interactive mode failed: %v", err))
		os.Exit(1)
	}
}
