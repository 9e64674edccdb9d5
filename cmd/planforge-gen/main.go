package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/claude/planforge/internal/catalog"
	"github.com/claude/planforge/internal/engine"
	"github.com/claude/planforge/internal/models"
)

func main() {
	profilePath := flag.String("profile", "", "path to user profile JSON (required)")
	week := flag.Int("week", 1, "mesocycle week number")
	catalogPath := flag.String("catalog", "", "path to exercise catalog JSON (default: built-in)")
	pretty := flag.Bool("pretty", false, "indent output JSON")
	flag.Parse()

	if *profilePath == "" {
		fmt.Fprintf(os.Stderr, "Usage: planforge-gen -profile profile.json [-week N] [-catalog catalog.json] [-pretty]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	raw, err := os.ReadFile(*profilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading profile: %v\n", err)
		os.Exit(1)
	}
	var profile models.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		fmt.Fprintf(os.Stderr, "parsing profile: %v\n", err)
		os.Exit(1)
	}

	cat := catalog.Default()
	if *catalogPath != "" {
		cat, err = catalog.Load(*catalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading catalog: %v\n", err)
			os.Exit(1)
		}
	}

	plan := engine.New().Generate(profile, cat, *week)

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(plan); err != nil {
		fmt.Fprintf(os.Stderr, "encoding plan: %v\n", err)
		os.Exit(1)
	}
}
