package scene

import (
	"fmt"
	"sort"
)

type builtinScene struct {
	description string
	build       func() *Scene
}

// builtinScenes maps scene names to their constructors
var builtinScenes = map[string]builtinScene{
	"default": {"Ground, diffuse, hollow glass and gold metal spheres", NewDefaultScene},
	"sphere":  {"A single diffuse sphere in front of the camera", NewSingleSphereScene},
	"empty":   {"Sky gradient only", NewEmptyScene},
	"spheres": {"Random field of small spheres around three large ones", func() *Scene { return NewRandomSpheresScene(42) }},
}

// Create builds the named built-in scene
func Create(name string) (*Scene, error) {
	entry, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return entry.build(), nil
}

// Names lists the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
