package memory

import (
	"context"
	"testing"
	"time"

	"socialfeed/internal/core/post"
	"socialfeed/internal/ports"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_IsolatesStoredDocuments(t *testing.T) {
	repo := NewPostRepository()
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())
	p := post.New(owner, "hello", time.Now())
	_, err := repo.Create(ctx, p)
	require.NoError(t, err)

	loaded, err := repo.FindByID(ctx, p.ID.String())
	require.NoError(t, err)
	ci := loaded.AddComment(owner, "unsaved", time.Now())
	loaded.AddReply(ci, owner, "unsaved", time.Now())
	loaded.ToggleLike(owner)

	again, err := repo.FindByID(ctx, p.ID.String())
	require.NoError(t, err)
	assert.Empty(t, again.Comments)
	assert.Empty(t, again.Likes)

	require.NoError(t, repo.Save(ctx, loaded))
	again, err = repo.FindByID(ctx, p.ID.String())
	require.NoError(t, err)
	require.Len(t, again.Comments, 1)
	assert.Len(t, again.Comments[0].Replies, 1)
	assert.Len(t, again.Likes, 1)
}

func TestPostRepository_ListAndDelete(t *testing.T) {
	repo := NewPostRepository()
	ctx := context.Background()
	owner := uuid.Must(uuid.NewV4())
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	older := post.New(owner, "older", base)
	newer := post.New(owner, "newer", base.Add(time.Hour))
	_, err := repo.Create(ctx, older)
	require.NoError(t, err)
	_, err = repo.Create(ctx, newer)
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "newer", all[0].Content)

	require.NoError(t, repo.Delete(ctx, older.ID.String()))
	assert.ErrorIs(t, repo.Delete(ctx, older.ID.String()), ports.ErrNotFound)
	assert.ErrorIs(t, repo.Save(ctx, older), ports.ErrNotFound)
	_, err = repo.FindByID(ctx, older.ID.String())
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
