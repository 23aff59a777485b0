package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_Open(t *testing.T) {
	var got []string
	s := &System{open: func(u string) { got = append(got, u) }}

	require.NoError(t, s.Open("https://sixworlds.github.io/assets/Mars/skymap_n.png"))
	assert.Equal(t, []string{"https://sixworlds.github.io/assets/Mars/skymap_n.png"}, got)
}

func TestSystem_RejectsUnsupportedScheme(t *testing.T) {
	called := false
	s := &System{open: func(string) { called = true }}

	assert.Error(t, s.Open("javascript:alert(1)"))
	assert.Error(t, s.Open("/assets//skymap_n.png"))
	assert.False(t, called)
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	require.NoError(t, r.Open("a"))
	require.NoError(t, r.Open("b"))
	assert.Equal(t, []string{"a", "b"}, r.URLs())
}
