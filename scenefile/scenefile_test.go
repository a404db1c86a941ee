package scenefile_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/plus3/stage2d/geom"
	"github.com/plus3/stage2d/scenefile"
	"github.com/plus3/stage2d/stage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoFile = `
scenes:
  - name: level-1
    objects:
      - name: player
        components:
          - name: body
            kind: box_collider
            rect: {x: 10, y: 20, width: 16, height: 24}
          - name: skin
            kind: sprite
            animation:
              status: idle
              frames:
                idle: [idle-0, idle-1]
                walk: [walk-0, walk-1, walk-2]
      - name: spikes
        tag: hazard
        components:
          - name: body
            kind: box_collider
            rect: {x: 100, y: 0, width: 32, height: 8}
  - name: level-2
    objects: []
`

// nullTexture is a texture that accepts everything and draws nothing.
type nullTexture struct {
	mu     sync.Mutex
	images []stage.Image
}

func (t *nullTexture) MoveBy(geom.Vector) {}
func (t *nullTexture) MoveTo(geom.Point)  {}
func (t *nullTexture) Render()            {}
func (t *nullTexture) SetImage(img stage.Image) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.images = append(t.images, img)
}

func testLoader() *scenefile.Loader {
	return &scenefile.Loader{
		Texture: func(object, component string) (stage.Texture, error) {
			return &nullTexture{}, nil
		},
		Image: func(name string) (stage.Image, error) {
			return name, nil
		},
	}
}

func TestLoadBuildsWorldAndScenes(t *testing.T) {
	world, registry, err := testLoader().Load(strings.NewReader(demoFile))
	require.NoError(t, err)

	assert.Equal(t, 2, world.Len())
	assert.Equal(t, []string{"level-1", "level-2"}, registry.Names())

	scene, err := registry.Get("level-1")
	require.NoError(t, err)
	require.Equal(t, 2, scene.Len())

	h, err := scene.At(0)
	require.NoError(t, err)
	player, err := world.Get(h)
	require.NoError(t, err)
	assert.Equal(t, "player", player.Name())
	assert.Equal(t, stage.TagGameObject, player.Tag())

	body, err := player.GetComponent("body")
	require.NoError(t, err)
	collider, ok := body.(stage.Collider)
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 10, Y: 20}, collider.Bounds().UL)
	assert.Equal(t, 16, collider.Bounds().Width())
	assert.Equal(t, 24, collider.Bounds().Height())

	skin, err := player.GetComponent("skin")
	require.NoError(t, err)
	sprite, ok := skin.(*stage.Sprite)
	require.True(t, ok)
	assert.Equal(t, "idle", sprite.Animation().Status())
	assert.Equal(t, []stage.Image{"idle-0", "idle-1"}, sprite.Animation().Frames("idle"))
	assert.Len(t, sprite.Animation().Frames("walk"), 3)
}

func TestLoadCustomTag(t *testing.T) {
	world, registry, err := testLoader().Load(strings.NewReader(demoFile))
	require.NoError(t, err)

	scene, err := registry.Get("level-1")
	require.NoError(t, err)
	h, err := scene.At(1)
	require.NoError(t, err)
	spikes, err := world.Get(h)
	require.NoError(t, err)
	assert.Equal(t, "hazard", spikes.Tag())
}

func TestLoadedSceneProcesses(t *testing.T) {
	world, registry, err := testLoader().Load(strings.NewReader(demoFile))
	require.NoError(t, err)

	scene, err := registry.Get("level-1")
	require.NoError(t, err)

	fired := 0
	h, err := scene.At(0)
	require.NoError(t, err)
	player, err := world.Get(h)
	require.NoError(t, err)
	ev, err := player.Bus().GetEvent(stage.EventCollision)
	require.NoError(t, err)
	ev.AddListener(func(self, sender *stage.GameObject) error {
		fired++
		return nil
	})

	require.NoError(t, stage.NewSweepProcessor(world, nil).Process(scene))
	assert.Equal(t, 1, fired)
}

func TestLoadUnknownKind(t *testing.T) {
	doc := `
scenes:
  - name: s
    objects:
      - name: o
        components:
          - name: c
            kind: rigidbody
`
	_, _, err := testLoader().LoadBytes([]byte(doc))
	assert.ErrorIs(t, err, scenefile.ErrUnknownKind)
}

func TestLoadMissingFields(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"scene name", "scenes:\n  - objects: []\n"},
		{"object name", "scenes:\n  - name: s\n    objects:\n      - components: []\n"},
		{"collider rect", `
scenes:
  - name: s
    objects:
      - name: o
        components:
          - name: c
            kind: box_collider
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := testLoader().LoadBytes([]byte(tt.doc))
			assert.ErrorIs(t, err, scenefile.ErrMissingField)
		})
	}
}

func TestLoadSpriteWithoutTextureFactory(t *testing.T) {
	doc := `
scenes:
  - name: s
    objects:
      - name: o
        components:
          - name: c
            kind: sprite
`
	loader := &scenefile.Loader{}
	_, _, err := loader.LoadBytes([]byte(doc))
	assert.ErrorIs(t, err, scenefile.ErrNoFactory)
}

func TestLoadFactoryErrorPropagates(t *testing.T) {
	loader := testLoader()
	loader.Image = func(name string) (stage.Image, error) {
		return nil, fmt.Errorf("asset %q not found", name)
	}
	_, _, err := loader.LoadBytes([]byte(demoFile))
	assert.ErrorContains(t, err, "not found")
}

func TestLoadInvalidYAML(t *testing.T) {
	_, _, err := testLoader().LoadBytes([]byte("scenes: ["))
	assert.Error(t, err)
}
