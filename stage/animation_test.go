package stage_test

import (
	"testing"
	"time"

	"github.com/plus3/stage2d/stage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSprite() (*stage.Sprite, *fakeTexture) {
	tex := &fakeTexture{}
	return stage.NewSprite("skin", tex), tex
}

func TestAnimationInitialState(t *testing.T) {
	sprite, _ := newTestSprite()
	assert.Equal(t, stage.AnimationDisabled, sprite.Animation().State())
}

func TestAnimationStartTwice(t *testing.T) {
	sprite, _ := newTestSprite()
	anim := sprite.Animation()
	anim.SetFrames("idle", []stage.Image{"f1"})
	anim.SetStatus("idle")

	require.NoError(t, anim.Start(100*time.Millisecond))
	defer anim.Stop()

	assert.Equal(t, stage.AnimationEnabled, anim.State())
	assert.ErrorIs(t, anim.Start(100*time.Millisecond), stage.ErrAnimationRunning)
}

func TestAnimationStopBeforeStart(t *testing.T) {
	sprite, _ := newTestSprite()
	assert.ErrorIs(t, sprite.Animation().Stop(), stage.ErrAnimationStopped)
}

func TestAnimationStopResetsState(t *testing.T) {
	sprite, _ := newTestSprite()
	anim := sprite.Animation()
	anim.SetFrames("idle", []stage.Image{"f1"})
	anim.SetStatus("idle")

	// A stopped animation must be startable again, indefinitely.
	for range 3 {
		require.NoError(t, anim.Start(100*time.Millisecond))
		require.NoError(t, anim.Stop())
		assert.Equal(t, stage.AnimationDisabled, anim.State())
	}
}

func TestAdvanceRotatesFrames(t *testing.T) {
	sprite, tex := newTestSprite()
	anim := sprite.Animation()
	anim.SetFrames("walk", []stage.Image{"f1", "f2", "f3"})
	anim.SetStatus("walk")

	require.NoError(t, anim.Advance())
	assert.Equal(t, stage.Image("f1"), tex.lastImage())
	assert.Equal(t, []stage.Image{"f2", "f3", "f1"}, anim.Frames("walk"))

	require.NoError(t, anim.Advance())
	assert.Equal(t, stage.Image("f2"), tex.lastImage())
	assert.Equal(t, []stage.Image{"f3", "f1", "f2"}, anim.Frames("walk"))

	require.NoError(t, anim.Advance())
	assert.Equal(t, stage.Image("f3"), tex.lastImage())
	assert.Equal(t, []stage.Image{"f1", "f2", "f3"}, anim.Frames("walk"))
}

func TestAdvanceSingleFrame(t *testing.T) {
	sprite, tex := newTestSprite()
	anim := sprite.Animation()
	anim.SetFrames("idle", []stage.Image{"f1"})
	anim.SetStatus("idle")

	require.NoError(t, anim.Advance())
	require.NoError(t, anim.Advance())
	assert.Equal(t, stage.Image("f1"), tex.lastImage())
	assert.Equal(t, 2, tex.imageCount())
}

func TestAdvanceWithoutFrames(t *testing.T) {
	sprite, tex := newTestSprite()
	anim := sprite.Animation()
	anim.SetStatus("missing")

	assert.ErrorIs(t, anim.Advance(), stage.ErrNoFrames)
	assert.Equal(t, 0, tex.imageCount())

	// An installed but empty sequence is the same condition.
	anim.SetFrames("missing", nil)
	assert.ErrorIs(t, anim.Advance(), stage.ErrNoFrames)
}

func TestAnimationStatusSwitch(t *testing.T) {
	sprite, tex := newTestSprite()
	anim := sprite.Animation()
	anim.SetFrames("walk", []stage.Image{"w1", "w2"})
	anim.SetFrames("run", []stage.Image{"r1", "r2"})

	anim.SetStatus("walk")
	require.NoError(t, anim.Advance())
	assert.Equal(t, stage.Image("w1"), tex.lastImage())

	anim.SetStatus("run")
	assert.Equal(t, "run", anim.Status())
	require.NoError(t, anim.Advance())
	assert.Equal(t, stage.Image("r1"), tex.lastImage())

	// The walk sequence kept its rotated order.
	assert.Equal(t, []stage.Image{"w2", "w1"}, anim.Frames("walk"))
}

func TestAnimationTimerDriven(t *testing.T) {
	sprite, tex := newTestSprite()
	anim := sprite.Animation()
	anim.SetFrames("walk", []stage.Image{"f1", "f2", "f3"})
	anim.SetStatus("walk")

	require.NoError(t, anim.Start(5*time.Millisecond))

	require.Eventually(t, func() bool { return tex.imageCount() >= 4 },
		time.Second, 5*time.Millisecond)

	require.NoError(t, anim.Stop())
	assert.Equal(t, stage.AnimationDisabled, anim.State())
}
