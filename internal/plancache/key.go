package plancache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/claude/planforge/internal/models"
)

// keyInput is the canonical form hashed into a cache key. Slices are
// lowercased and sorted first so two profiles that differ only in list
// order or casing share a key.
type keyInput struct {
	Profile        models.UserProfile `json:"profile"`
	WeekNumber     int                `json:"week_number"`
	CatalogVersion string             `json:"catalog_version"`
}

// Hash derives the cache key for one (profile, week, catalog) triple.
func Hash(profile models.UserProfile, weekNumber int, catalogVersion string) (string, error) {
	in := keyInput{
		Profile:        normalizeProfile(profile),
		WeekNumber:     weekNumber,
		CatalogVersion: catalogVersion,
	}
	data, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("marshaling cache key input: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func normalizeProfile(p models.UserProfile) models.UserProfile {
	p.AvailableEquipment = normalizeList(p.AvailableEquipment)
	p.TargetBodyParts = normalizeList(p.TargetBodyParts)
	p.Injuries = normalizeList(p.Injuries)
	p.MedicalConditions = normalizeList(p.MedicalConditions)
	p.Medications = normalizeList(p.Medications)
	p.ExcludedExerciseIDs = normalizeList(p.ExcludedExerciseIDs)
	return p
}

func normalizeList(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	sort.Strings(out)
	return out
}
