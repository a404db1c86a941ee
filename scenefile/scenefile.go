// Package scenefile loads worlds and scenes from YAML definitions. The file
// describes scenes, their objects and component setups; textures and images
// stay host-supplied, resolved through factory callbacks.
package scenefile

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/plus3/stage2d/geom"
	"github.com/plus3/stage2d/stage"
)

// Component kinds understood by the loader.
const (
	KindBoxCollider = "box_collider"
	KindSprite      = "sprite"
)

var (
	// ErrUnknownKind is returned for a component kind the loader does not
	// understand.
	ErrUnknownKind = errors.New("unknown component kind")

	// ErrMissingField is returned when a definition lacks a required field.
	ErrMissingField = errors.New("missing field")

	// ErrNoFactory is returned when a definition needs a texture or image
	// but the loader has no callback to resolve it.
	ErrNoFactory = errors.New("no factory configured")
)

// TextureFunc resolves the rendering surface for a sprite component.
type TextureFunc func(object, component string) (stage.Texture, error)

// ImageFunc resolves a frame reference to an image.
type ImageFunc func(name string) (stage.Image, error)

// File is the top-level YAML document.
type File struct {
	Scenes []SceneDef `yaml:"scenes"`
}

// SceneDef declares one scene and its objects, in order.
type SceneDef struct {
	Name    string      `yaml:"name"`
	Objects []ObjectDef `yaml:"objects"`
}

// ObjectDef declares one game object.
type ObjectDef struct {
	Name       string         `yaml:"name"`
	Tag        string         `yaml:"tag"`
	Components []ComponentDef `yaml:"components"`
}

// ComponentDef declares one component. Rect applies to box colliders,
// Animation to sprites.
type ComponentDef struct {
	Name      string        `yaml:"name"`
	Kind      string        `yaml:"kind"`
	Tag       string        `yaml:"tag"`
	Rect      *RectDef      `yaml:"rect"`
	Animation *AnimationDef `yaml:"animation"`
}

// RectDef is a collider rectangle as upper-left corner plus size.
type RectDef struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AnimationDef is a sprite's frame table keyed by status label.
type AnimationDef struct {
	Status string              `yaml:"status"`
	Frames map[string][]string `yaml:"frames"`
}

// Loader builds stage worlds from scene files.
type Loader struct {
	// Texture resolves sprite surfaces. Required when the file declares
	// sprites.
	Texture TextureFunc
	// Image resolves animation frame references. Required when the file
	// declares frames.
	Image ImageFunc
	// Log defaults to a no-op logger.
	Log *zap.Logger
}

// Load reads a YAML scene file and builds a world plus a registry of its
// scenes.
func (l *Loader) Load(r io.Reader) (*stage.World, *stage.SceneRegistry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read scene file: %w", err)
	}
	return l.LoadBytes(data)
}

// LoadBytes is Load over an in-memory document.
func (l *Loader) LoadBytes(data []byte) (*stage.World, *stage.SceneRegistry, error) {
	log := l.Log
	if log == nil {
		log = zap.NewNop()
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parse scene file: %w", err)
	}

	world := stage.NewWorld()
	registry := stage.NewSceneRegistry()

	for _, sceneDef := range file.Scenes {
		if sceneDef.Name == "" {
			return nil, nil, fmt.Errorf("scene name: %w", ErrMissingField)
		}
		scene := stage.NewScene(sceneDef.Name)

		for _, objDef := range sceneDef.Objects {
			obj, err := l.buildObject(objDef)
			if err != nil {
				return nil, nil, fmt.Errorf("scene %q: %w", sceneDef.Name, err)
			}
			scene.Add(world.Insert(obj))
		}

		registry.Add(scene)
		log.Debug("scene loaded",
			zap.String("scene", sceneDef.Name),
			zap.Int("objects", scene.Len()),
		)
	}

	return world, registry, nil
}

func (l *Loader) buildObject(def ObjectDef) (*stage.GameObject, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("object name: %w", ErrMissingField)
	}

	var obj *stage.GameObject
	if def.Tag != "" {
		obj = stage.NewGameObject(def.Name, def.Tag)
	} else {
		obj = stage.NewGameObject(def.Name)
	}

	for _, compDef := range def.Components {
		comp, err := l.buildComponent(def.Name, compDef)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", def.Name, err)
		}
		obj.AddComponent(comp)
	}
	return obj, nil
}

func (l *Loader) buildComponent(object string, def ComponentDef) (stage.Component, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("component name: %w", ErrMissingField)
	}

	switch def.Kind {
	case KindBoxCollider:
		if def.Rect == nil {
			return nil, fmt.Errorf("component %q rect: %w", def.Name, ErrMissingField)
		}
		rect := geom.NewRect(geom.Point{X: def.Rect.X, Y: def.Rect.Y}, def.Rect.Width, def.Rect.Height)
		if def.Tag != "" {
			return stage.NewBoxCollider(def.Name, rect, def.Tag), nil
		}
		return stage.NewBoxCollider(def.Name, rect), nil

	case KindSprite:
		if l.Texture == nil {
			return nil, fmt.Errorf("component %q texture: %w", def.Name, ErrNoFactory)
		}
		texture, err := l.Texture(object, def.Name)
		if err != nil {
			return nil, fmt.Errorf("component %q texture: %w", def.Name, err)
		}

		var sprite *stage.Sprite
		if def.Tag != "" {
			sprite = stage.NewSprite(def.Name, texture, def.Tag)
		} else {
			sprite = stage.NewSprite(def.Name, texture)
		}

		if def.Animation != nil {
			if err := l.buildAnimation(sprite, def.Animation); err != nil {
				return nil, fmt.Errorf("component %q: %w", def.Name, err)
			}
		}
		return sprite, nil

	default:
		return nil, fmt.Errorf("component %q kind %q: %w", def.Name, def.Kind, ErrUnknownKind)
	}
}

func (l *Loader) buildAnimation(sprite *stage.Sprite, def *AnimationDef) error {
	anim := sprite.Animation()

	for status, refs := range def.Frames {
		if l.Image == nil {
			return fmt.Errorf("animation frames: %w", ErrNoFactory)
		}
		frames := make([]stage.Image, 0, len(refs))
		for _, ref := range refs {
			img, err := l.Image(ref)
			if err != nil {
				return fmt.Errorf("frame %q: %w", ref, err)
			}
			frames = append(frames, img)
		}
		anim.SetFrames(status, frames)
	}

	anim.SetStatus(def.Status)
	return nil
}
