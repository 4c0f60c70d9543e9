package scene

import (
	"fmt"
	"strings"
)

// SceneInfo describes a built-in scene for UIs and the web API
type SceneInfo struct {
	ID          string `json:"id"`          // Identifier passed to ByName
	Name        string `json:"name"`        // UI display name
	Description string `json:"description"` // One-line summary
	Width       int    `json:"width"`       // Default viewport size
	Height      int    `json:"height"`
}

type registryEntry struct {
	id          string
	description string
	build       func() *Scene
}

// registry holds the built-in scenes in display order
var registry = []registryEntry{
	{"demo", "Translucent sphere and box over a checkered backdrop", NewDemoScene},
	{"nested", "Concentric translucent spheres that exhaust the bounce budget", NewNestedScene},
	{"noise", "Demo geometry over a Perlin marble backdrop", NewNoiseScene},
	{"lit", "Demo geometry shaded by a Phong point light", NewLitScene},
}

// ByName builds the scene with the given ID
func ByName(name string) (*Scene, error) {
	for _, entry := range registry {
		if entry.id == name {
			return entry.build(), nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Names returns the built-in scene IDs in display order
func Names() []string {
	names := make([]string, len(registry))
	for i, entry := range registry {
		names[i] = entry.id
	}
	return names
}

// List returns metadata for every built-in scene
func List() []SceneInfo {
	infos := make([]SceneInfo, len(registry))
	for i, entry := range registry {
		sc := entry.build()
		infos[i] = SceneInfo{
			ID:          entry.id,
			Name:        titleCase(entry.id),
			Description: entry.description,
			Width:       sc.Width,
			Height:      sc.Height,
		}
	}
	return infos
}

// titleCase converts an ID-style string to title case,
// e.g. "nested-spheres" -> "Nested Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
