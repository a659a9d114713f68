package services

import (
	"context"
	"io"
	"testing"

	"github.com/cyberdetect/cdetect/internal/client/api"
	"github.com/cyberdetect/cdetect/internal/client/models"
	"github.com/cyberdetect/cdetect/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestSearch_UnauthenticatedNeverCallsNetwork(t *testing.T) {
	f := &fakeAPI{}
	sess := newSession(t)
	svc := NewSearchService(f, sess, logging.New(io.Discard, "error"))

	_, err := svc.Search(context.Background(), "Priya", models.CategoryAll)
	require.ErrorIs(t, err, ErrNotAuthenticated)
	require.Zero(t, f.SearchCalls)
}

func TestSearch_EmptyQueryNeverCallsNetwork(t *testing.T) {
	ctx := context.Background()

	t.Run("signed out", func(t *testing.T) {
		f := &fakeAPI{}
		svc := NewSearchService(f, newSession(t), logging.New(io.Discard, "error"))

		_, err := svc.Search(ctx, "", models.CategoryAll)
		require.Error(t, err)
		require.Zero(t, f.SearchCalls)
	})

	t.Run("signed in", func(t *testing.T) {
		f := &fakeAPI{}
		sess := newSession(t)
		require.NoError(t, sess.SignIn(ctx, "t1", "u1", nil))
		svc := NewSearchService(f, sess, logging.New(io.Discard, "error"))

		for _, q := range []string{"", "   ", "\t"} {
			_, err := svc.Search(ctx, q, models.CategoryAll)
			require.ErrorIs(t, err, ErrEmptyQuery)
		}
		require.Zero(t, f.SearchCalls)
	})
}

func TestSearch_UnknownCategoryRejected(t *testing.T) {
	ctx := context.Background()
	f := &fakeAPI{}
	sess := newSession(t)
	require.NoError(t, sess.SignIn(ctx, "t1", "u1", nil))
	svc := NewSearchService(f, sess, logging.New(io.Discard, "error"))

	_, err := svc.Search(ctx, "Priya", models.SearchCategory("vehicle"))
	require.ErrorIs(t, err, ErrUnknownCategory)
	require.Zero(t, f.SearchCalls)
}

func TestSearch_ForwardsTokenQueryAndCategory(t *testing.T) {
	ctx := context.Background()
	f := &fakeAPI{SearchRet: []models.Person{{Name: "Priya Sharma", Phone: "9876543210"}}}
	sess := newSession(t)
	require.NoError(t, sess.SignIn(ctx, "t1", "u1", nil))
	svc := NewSearchService(f, sess, logging.New(io.Discard, "error"))

	rows, err := svc.Search(ctx, "  9876543210 ", models.CategoryPhone)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	require.Equal(t, "t1", f.LastSearchToken)
	require.Equal(t, "9876543210", f.LastSearchQuery)
	require.Equal(t, models.CategoryPhone, f.LastSearchCategory)
}

func TestSearch_EmptyResultIsNotAnError(t *testing.T) {
	ctx := context.Background()
	f := &fakeAPI{SearchRet: []models.Person{}}
	sess := newSession(t)
	require.NoError(t, sess.SignIn(ctx, "t1", "u1", nil))
	svc := NewSearchService(f, sess, logging.New(io.Discard, "error"))

	rows, err := svc.Search(ctx, "9876543210", models.CategoryAll)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestSearch_TransportFailurePropagates(t *testing.T) {
	ctx := context.Background()
	f := &fakeAPI{SearchErr: api.ErrUnavailable}
	sess := newSession(t)
	require.NoError(t, sess.SignIn(ctx, "t1", "u1", nil))
	svc := NewSearchService(f, sess, logging.New(io.Discard, "error"))

	_, err := svc.Search(ctx, "Priya", models.CategoryAll)
	require.ErrorIs(t, err, api.ErrUnavailable)
}

func TestSearch_DefaultsEmptyCategoryToAll(t *testing.T) {
	ctx := context.Background()
	f := &fakeAPI{}
	sess := newSession(t)
	require.NoError(t, sess.SignIn(ctx, "t1", "u1", nil))
	svc := NewSearchService(f, sess, logging.New(io.Discard, "error"))

	_, err := svc.Search(ctx, "Priya", "")
	require.NoError(t, err)
	require.Equal(t, models.CategoryAll, f.LastSearchCategory)
}
