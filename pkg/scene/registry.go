package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned by Create for names not in the registry
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string `json:"name"`        // Registry key
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

type entry struct {
	info   SceneInfo
	create func() (*Scene, error)
}

var registry = map[string]entry{
	"default": {
		SceneInfo{"default", "Default", "Glass, mirror and cylinder on a reflective floor"},
		NewDefaultScene,
	},
	"mirrors": {
		SceneInfo{"mirrors", "Facing Mirrors", "Two perfect mirrors reflecting each other"},
		NewMirrorsScene,
	},
	"meshes": {
		SceneInfo{"meshes", "Triangle Meshes", "Box, pyramid and icosahedron built from shared-edge triangles"},
		NewMeshesScene,
	},
	"glossy": {
		SceneInfo{"glossy", "Glossy", "Blurred reflection and refraction"},
		NewGlossyScene,
	},
	"shadows": {
		SceneInfo{"shadows", "Shadows", "Stacked translucent panes casting layered shadows"},
		NewShadowsScene,
	},
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the descriptions of the built-in scenes, sorted by name
func List() []SceneInfo {
	var infos []SceneInfo
	for _, name := range Names() {
		infos = append(infos, registry[name].info)
	}
	return infos
}

// Create builds a fresh copy of the named scene
func Create(name string) (*Scene, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}
	return e.create()
}
