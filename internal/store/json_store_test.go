package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazyvibe/readmestats/internal/model"
)

func TestJSONStore_CreateListReload(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewJSONStore(dir)
	require.NoError(t, err)

	older := model.NewPreset("work", model.Configuration{Subject: "octocat", Theme: "nord"})
	older.LastUsed = 100
	newer := model.NewPreset("", model.Configuration{Subject: "torvalds", Theme: "dracula", IncludeOptional: true})
	newer.LastUsed = 200
	require.NoError(t, s.Create(ctx, older))
	require.NoError(t, s.Create(ctx, newer))
	assert.ErrorIs(t, s.Create(ctx, older), ErrAlreadyExists)
	require.NoError(t, s.Close())

	reopened, err := NewJSONStore(dir)
	require.NoError(t, err)
	list, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, "torvalds · dracula", list[0].DisplayName())
	assert.True(t, list[0].Config.IncludeOptional)
}

func TestJSONStore_SaveReplacesEqualConfig(t *testing.T) {
	ctx := context.Background()
	s, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)

	cfg := model.Configuration{Subject: "octocat", Theme: "nord"}
	first, err := s.Save(ctx, model.NewPreset("a", cfg))
	require.NoError(t, err)
	second, err := s.Save(ctx, model.NewPreset("b", cfg))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "b", second.Name)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestJSONStore_TouchDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	s, err := NewJSONStore(t.TempDir())
	require.NoError(t, err)

	p := model.NewPreset("x", model.Configuration{Subject: "x"})
	require.NoError(t, s.Create(ctx, p))
	require.NoError(t, s.Touch(ctx, p.ID))

	got, err := s.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "x", got.Name)

	require.NoError(t, s.Delete(ctx, p.ID))
	_, err = s.Get(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, p.ID), ErrNotFound)
	assert.ErrorIs(t, s.Touch(ctx, p.ID), ErrNotFound)
}
