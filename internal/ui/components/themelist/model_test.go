package themelist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PreselectsCursor(t *testing.T) {
	m := New("nord")
	hl, ok := m.Highlighted()
	require.True(t, ok)
	assert.Equal(t, "nord", hl.ID)
	assert.Equal(t, "nord", m.Selected())
}

func TestHandleKey_MovesCursorWithinBounds(t *testing.T) {
	m := New("default")
	m.SetSize(30, 10)

	assert.True(t, m.HandleKey("up"))
	hl, _ := m.Highlighted()
	assert.Equal(t, "default", hl.ID)

	m.HandleKey("down")
	hl, _ = m.Highlighted()
	assert.Equal(t, "light", hl.ID)
	assert.Equal(t, "default", m.Selected(), "moving the cursor does not select")

	m.HandleKey("end")
	hl, _ = m.Highlighted()
	assert.Equal(t, "tokyonight", hl.ID)

	assert.False(t, m.HandleKey("x"))
}

func TestSelect_UnknownKeepsCursor(t *testing.T) {
	m := New("dracula")
	m.Select("my-custom")
	assert.Equal(t, "my-custom", m.Selected())
	hl, _ := m.Highlighted()
	assert.Equal(t, "dracula", hl.ID)
}

func TestView_MarksSelectedTheme(t *testing.T) {
	m := New("nord")
	m.SetSize(40, 30)
	assert.Contains(t, m.View(), "★ Nord")
}
