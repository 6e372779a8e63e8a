package controls

import (
	"testing"
	"time"

	"seasonfx/internal/prefs"
	"seasonfx/internal/season"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRebuilder struct {
	modes []season.Mode
}

func (r *recordingRebuilder) Rebuild(mode season.Mode) {
	r.modes = append(r.modes, mode)
}

type failingStore struct{}

func (failingStore) Read(string) (string, bool)  { return "", false }
func (failingStore) Write(string, string) error { return errors.New("read-only") }

func activeCount(b *Binding) int {
	n := 0
	for _, c := range b.Controls() {
		if c.Active {
			n++
		}
	}
	return n
}

func july() *season.FixedClock {
	return season.NewFixedClock(time.Date(2026, time.July, 4, 12, 0, 0, 0, time.UTC))
}

func TestBindingInit(t *testing.T) {
	t.Run("no stored preference marks auto", func(t *testing.T) {
		store := prefs.NewMemoryStore()
		rb := &recordingRebuilder{}
		b := NewBinding(DefaultTokens(), store, july(), rb)

		mode := b.Init()

		assert.Equal(t, season.Summer, mode)
		tok, ok := b.ActiveToken()
		require.True(t, ok)
		assert.Equal(t, "auto", tok)
		assert.Equal(t, 1, activeCount(b))
		assert.Equal(t, []season.Mode{season.Summer}, rb.modes)
		assert.Zero(t, store.Writes)
	})

	t.Run("stored preference is marked", func(t *testing.T) {
		store := prefs.NewMemoryStore()
		require.NoError(t, store.Write(season.PreferenceKey, "winter"))
		rb := &recordingRebuilder{}
		b := NewBinding(DefaultTokens(), store, july(), rb)

		assert.Equal(t, season.Winter, b.Init())
		tok, _ := b.ActiveToken()
		assert.Equal(t, "winter", tok)
		assert.Equal(t, 1, store.Writes)
	})

	t.Run("invalid stored value falls back to auto", func(t *testing.T) {
		store := prefs.NewMemoryStore()
		require.NoError(t, store.Write(season.PreferenceKey, "monsoon"))
		b := NewBinding(DefaultTokens(), store, july(), &recordingRebuilder{})

		assert.Equal(t, season.Summer, b.Init())
		tok, _ := b.ActiveToken()
		assert.Equal(t, "auto", tok)
		v, _ := store.Read(season.PreferenceKey)
		assert.Equal(t, "monsoon", v)
	})
}

func TestBindingActivate(t *testing.T) {
	store := prefs.NewMemoryStore()
	rb := &recordingRebuilder{}
	b := NewBinding(DefaultTokens(), store, july(), rb)
	b.Init()

	for _, tok := range []string{"autumn", "none", "auto", "spring"} {
		b.Activate(tok)

		v, ok := store.Read(season.PreferenceKey)
		require.True(t, ok)
		assert.Equal(t, tok, v)
		active, _ := b.ActiveToken()
		assert.Equal(t, tok, active)
		assert.Equal(t, 1, activeCount(b))
	}
	assert.Equal(t, []season.Mode{season.Summer, season.Autumn, season.None, season.Summer, season.Spring}, rb.modes)
}

func TestBindingActivateUnknownToken(t *testing.T) {
	rb := &recordingRebuilder{}
	b := NewBinding(DefaultTokens(), prefs.NewMemoryStore(), july(), rb)

	mode := b.Activate("monsoon")

	assert.Equal(t, season.Mode("monsoon"), mode)
	assert.Zero(t, activeCount(b))
	assert.Equal(t, []season.Mode{"monsoon"}, rb.modes)
}

func TestBindingWriteFailureStillSwitches(t *testing.T) {
	rb := &recordingRebuilder{}
	b := NewBinding(DefaultTokens(), failingStore{}, july(), rb)

	assert.Equal(t, season.Winter, b.Activate("winter"))
	tok, _ := b.ActiveToken()
	assert.Equal(t, "winter", tok)
	assert.Equal(t, []season.Mode{season.Winter}, rb.modes)
}

func TestBindingPreviewDoesNotWrite(t *testing.T) {
	store := prefs.NewMemoryStore()
	b := NewBinding(DefaultTokens(), store, july(), &recordingRebuilder{})

	assert.Equal(t, season.Autumn, b.Preview("autumn"))
	assert.Zero(t, store.Writes)
	tok, _ := b.ActiveToken()
	assert.Equal(t, "autumn", tok)
}

func TestBindingToken(t *testing.T) {
	b := NewBinding(DefaultTokens(), nil, july(), &recordingRebuilder{})
	assert.Equal(t, 6, b.Len())

	tok, ok := b.Token(0)
	assert.True(t, ok)
	assert.Equal(t, "auto", tok)
	tok, ok = b.Token(5)
	assert.True(t, ok)
	assert.Equal(t, "none", tok)
	_, ok = b.Token(6)
	assert.False(t, ok)
	assert.Equal(t, "Off", b.Controls()[5].Label)
}

func TestStripLayout(t *testing.T) {
	s := DefaultStrip()
	rects := s.Layout(6, 1280, 720)
	require.Len(t, rects, 6)

	last := rects[5]
	assert.Equal(t, 1280-s.Margin, last.X+last.W)
	assert.Equal(t, 720-s.Margin, last.Y+last.H)
	for i := 1; i < len(rects); i++ {
		assert.Equal(t, s.Gap, rects[i].X-(rects[i-1].X+rects[i-1].W))
	}

	assert.Equal(t, 2, HitTest(rects, rects[2].X+1, rects[2].Y+1))
	assert.Equal(t, -1, HitTest(rects, 0, 0))

	assert.Nil(t, s.Layout(0, 100, 100))
}

func TestClickDetector(t *testing.T) {
	c := NewClickDetector()

	// press and release on the same button
	assert.Equal(t, -1, c.Update(1, true))
	assert.Equal(t, 1, c.Pressed())
	assert.Equal(t, -1, c.Update(1, true))
	assert.Equal(t, 1, c.Update(1, false))
	assert.Equal(t, -1, c.Pressed())

	// dragged off before release
	c.Update(2, true)
	assert.Equal(t, -1, c.Update(3, false))

	// pressed outside, released over a button
	c.Update(-1, true)
	assert.Equal(t, -1, c.Update(0, false))

	// idle hovering
	assert.Equal(t, -1, c.Update(4, false))
}
