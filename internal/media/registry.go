// Package media resolves demonstration media for catalog exercises through
// a priority-ordered provider registry. Providers are static lookups today;
// the interface leaves room for licensed libraries that need richer checks.
package media

import (
	"fmt"
	"strings"
	"sync"

	"github.com/claude/planforge/internal/models"
)

// Reference is one resolved demonstration asset.
type Reference struct {
	URL      string `json:"url"`
	Kind     string `json:"kind"` // "video" or "image"
	Provider string `json:"provider"`
}

// Source is one playable variant of an exercise's media. Providers that
// transcode (or film multiple angles) return several; a plain link is a
// single-element list.
type Source struct {
	URL     string `json:"url"`
	Kind    string `json:"kind"`
	Quality string `json:"quality,omitempty"`
}

// Provider serves media for some subset of the catalog. Providers are
// consulted in registration order; the first that has media wins.
type Provider interface {
	// Name identifies the provider in resolved references and logs.
	Name() string
	// Premium reports whether this provider's assets require a premium
	// entitlement to serve.
	Premium() bool
	// HasMedia reports whether the provider can serve this exercise.
	HasMedia(ex models.Exercise) bool
	// MediaURL returns the primary asset location for an exercise HasMedia
	// accepted.
	MediaURL(ex models.Exercise) string
	// MediaSources returns every playable variant for an exercise HasMedia
	// accepted. The first entry matches MediaURL.
	MediaSources(ex models.Exercise) []Source
}

// Registry resolves exercises against its providers in priority order.
// Safe for concurrent use; registration normally happens once at startup.
type Registry struct {
	mu        sync.RWMutex
	providers []Provider
}

// NewRegistry builds a registry with the given providers, highest priority
// first.
func NewRegistry(providers ...Provider) *Registry {
	return &Registry{providers: providers}
}

// DefaultRegistry returns the built-in provider chain: curated video
// library, then premium coaching clips, then the catalog's own media_ref.
func DefaultRegistry() *Registry {
	return NewRegistry(
		curatedLibrary{},
		premiumClips{},
		catalogPassthrough{},
	)
}

// Register appends a provider at the lowest priority.
func (r *Registry) Register(p Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.providers {
		if existing.Name() == p.Name() {
			return fmt.Errorf("media provider %q already registered", p.Name())
		}
	}
	r.providers = append(r.providers, p)
	return nil
}

// Resolve returns the best available reference for an exercise. Premium
// providers are skipped unless the caller holds a premium entitlement. A
// false return means no provider could serve the exercise.
func (r *Registry) Resolve(ex models.Exercise, premium bool) (Reference, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.providers {
		if p.Premium() && !premium {
			continue
		}
		if !p.HasMedia(ex) {
			continue
		}
		return Reference{
			URL:      p.MediaURL(ex),
			Kind:     kindFromURL(p.MediaURL(ex)),
			Provider: p.Name(),
		}, true
	}
	return Reference{}, false
}

// Sources returns every playable variant from the provider Resolve would
// pick, or nil when no provider can serve the exercise.
func (r *Registry) Sources(ex models.Exercise, premium bool) []Source {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.providers {
		if p.Premium() && !premium {
			continue
		}
		if !p.HasMedia(ex) {
			continue
		}
		return p.MediaSources(ex)
	}
	return nil
}

// Providers returns the provider names in priority order.
func (r *Registry) Providers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.providers))
	for _, p := range r.providers {
		names = append(names, p.Name())
	}
	return names
}

func kindFromURL(url string) string {
	switch {
	case strings.HasSuffix(url, ".mp4"), strings.HasSuffix(url, ".webm"):
		return "video"
	default:
		return "image"
	}
}
