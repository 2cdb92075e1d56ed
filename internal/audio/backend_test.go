package audio

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend records Play calls for registry tests.
type fakeBackend struct {
	name      string
	available bool
	succeed   bool
	plays     int
}

func (f *fakeBackend) Name() string    { return f.name }
func (f *fakeBackend) Available() bool { return f.available }
func (f *fakeBackend) Play(string, PlayOptions) bool {
	f.plays++
	return f.succeed
}

func TestNewRegistry_KeepsAvailableInOrder(t *testing.T) {
	a := &fakeBackend{name: "a", available: true}
	b := &fakeBackend{name: "b", available: false}
	c := &fakeBackend{name: "c", available: true}

	r := NewRegistry(slog.Default(), a, b, c)

	backends := r.Backends()
	require.Len(t, backends, 2)
	assert.Equal(t, "a", backends[0].Name())
	assert.Equal(t, "c", backends[1].Name())
}

func TestNewRegistry_NeverEmpty(t *testing.T) {
	r := NewRegistry(slog.Default(),
		&fakeBackend{name: "a", available: false},
		&fakeBackend{name: "b", available: false},
	)

	backends := r.Backends()
	require.Len(t, backends, 1)
	assert.Equal(t, "bell", backends[0].Name())
}

func TestNewRegistry_NoCandidates(t *testing.T) {
	r := NewRegistry(slog.Default())
	require.Len(t, r.Backends(), 1)
	assert.Equal(t, "bell", r.Backends()[0].Name())
}

func TestRegistry_PlayStopsAtFirstSuccess(t *testing.T) {
	a := &fakeBackend{name: "a", available: true, succeed: false}
	b := &fakeBackend{name: "b", available: true, succeed: true}
	c := &fakeBackend{name: "c", available: true, succeed: true}

	r := NewRegistry(slog.Default(), a, b, c)
	ok := r.Play("/tmp/x.wav", PlayOptions{Volume: 1})

	assert.True(t, ok)
	assert.Equal(t, 1, a.plays)
	assert.Equal(t, 1, b.plays)
	assert.Equal(t, 0, c.plays, "later backends must not run after a success")
}

func TestRegistry_PlayAllFail(t *testing.T) {
	a := &fakeBackend{name: "a", available: true}
	b := &fakeBackend{name: "b", available: true}

	r := NewRegistry(slog.Default(), a, b)
	ok := r.Play("/tmp/x.wav", PlayOptions{Volume: 1})

	assert.False(t, ok)
	assert.Equal(t, 1, a.plays)
	assert.Equal(t, 1, b.plays)
}

func TestExecBackend_UnavailableWhenBinaryMissing(t *testing.T) {
	b := &execBackend{
		name: "missing",
		bin:  "definitely-not-a-real-player-binary",
		args: func(path string, _ float64) []string { return []string{path} },
	}
	assert.False(t, b.Available())
}

func TestExecBackend_GOOSRestriction(t *testing.T) {
	b := &execBackend{
		name: "elsewhere",
		bin:  "sh", // present everywhere, but the GOOS gate must win
		goos: "plan9",
		args: func(path string, _ float64) []string { return []string{path} },
	}
	assert.False(t, b.Available())
}

func TestVolumeToDecibels(t *testing.T) {
	assert.InDelta(t, 0, volumeToDecibels(1.0), 0.001)
	assert.InDelta(t, -6.02, volumeToDecibels(0.5), 0.01)
	assert.InDelta(t, -12.04, volumeToDecibels(0.25), 0.01)
	assert.Equal(t, float64(-100), volumeToDecibels(0))
}
