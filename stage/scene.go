package stage

import (
	"fmt"
	"sort"
)

// Scene is a named, ordered sequence of object handles processed together
// each tick. It does not own the objects; the World does.
type Scene struct {
	name    string
	handles []Handle
}

// NewScene creates an empty scene.
func NewScene(name string) *Scene {
	return &Scene{name: name}
}

// Name returns the scene name.
func (s *Scene) Name() string {
	return s.name
}

// Add appends a handle and returns its assigned index. Indices shift when an
// earlier entry is removed.
func (s *Scene) Add(h Handle) int {
	s.handles = append(s.handles, h)
	return len(s.handles) - 1
}

// RemoveAt drops the handle at index, shifting subsequent indices down.
func (s *Scene) RemoveAt(index int) error {
	if index < 0 || index >= len(s.handles) {
		return fmt.Errorf("scene %q index %d: %w", s.name, index, ErrIndexOutOfRange)
	}
	s.handles = append(s.handles[:index], s.handles[index+1:]...)
	return nil
}

// At returns the handle at index.
func (s *Scene) At(index int) (Handle, error) {
	if index < 0 || index >= len(s.handles) {
		return 0, fmt.Errorf("scene %q index %d: %w", s.name, index, ErrIndexOutOfRange)
	}
	return s.handles[index], nil
}

// Handles returns a copy of the scene's handles in order.
func (s *Scene) Handles() []Handle {
	out := make([]Handle, len(s.handles))
	copy(out, s.handles)
	return out
}

// Len returns the number of handles in the scene.
func (s *Scene) Len() int {
	return len(s.handles)
}

// SceneRegistry is a named collection of scenes with unique keys.
type SceneRegistry struct {
	scenes map[string]*Scene
}

// NewSceneRegistry creates an empty registry.
func NewSceneRegistry() *SceneRegistry {
	return &SceneRegistry{scenes: make(map[string]*Scene)}
}

// Add registers the scene under its name. Adding a second scene with an
// already-registered name is a silent no-op that keeps the original, the same
// duplicate policy GameObject.AddComponent follows.
func (r *SceneRegistry) Add(s *Scene) {
	if _, exists := r.scenes[s.Name()]; exists {
		return
	}
	r.scenes[s.Name()] = s
}

// Remove drops the named scene. Removing an absent name is a no-op.
func (r *SceneRegistry) Remove(name string) {
	delete(r.scenes, name)
}

// Get returns the named scene.
func (r *SceneRegistry) Get(name string) (*Scene, error) {
	s, exists := r.scenes[name]
	if !exists {
		return nil, fmt.Errorf("scene %q: %w", name, ErrUnknownScene)
	}
	return s, nil
}

// Names returns the registered scene names in sorted order.
func (r *SceneRegistry) Names() []string {
	names := make([]string, 0, len(r.scenes))
	for name := range r.scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
