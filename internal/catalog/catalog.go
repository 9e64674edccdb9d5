// Package catalog loads the immutable exercise catalog. A default catalog
// ships embedded in the binary; deployments can point at their own JSON
// file instead.
package catalog

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/claude/planforge/internal/models"
)

//go:embed catalog.json
var embeddedCatalog []byte

type catalogFile struct {
	Exercises []models.Exercise `json:"exercises"`
}

// Default returns the embedded catalog.
func Default() []models.Exercise {
	exercises, err := parse(embeddedCatalog)
	if err != nil {
		// The embedded file is validated by tests; a parse failure here is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded catalog invalid: %v", err))
	}
	return exercises
}

// Load reads a catalog from an external JSON file.
func Load(path string) ([]models.Exercise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	exercises, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	return exercises, nil
}

func parse(data []byte) ([]models.Exercise, error) {
	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.Exercises) == 0 {
		return nil, fmt.Errorf("catalog holds no exercises")
	}
	seen := make(map[string]bool, len(f.Exercises))
	for i, ex := range f.Exercises {
		if ex.ID == "" || ex.Name == "" {
			return nil, fmt.Errorf("exercise %d: id and name are required", i)
		}
		if seen[ex.ID] {
			return nil, fmt.Errorf("duplicate exercise id %q", ex.ID)
		}
		seen[ex.ID] = true
		if len(ex.TargetMuscles) == 0 {
			return nil, fmt.Errorf("exercise %q: at least one target muscle is required", ex.ID)
		}
	}
	return f.Exercises, nil
}

// Version is a stable fingerprint of the catalog contents, used as a cache
// key component so a catalog swap invalidates cached plans.
func Version(exercises []models.Exercise) string {
	data, err := json.Marshal(exercises)
	if err != nil {
		return fmt.Sprintf("len-%d", len(exercises))
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8])
}
