package services

import (
	"context"
	"errors"
	"strings"

	"github.com/cyberdetect/cdetect/internal/client/api"
	"github.com/cyberdetect/cdetect/internal/client/models"
	"github.com/cyberdetect/cdetect/internal/client/session"
	"github.com/cyberdetect/cdetect/internal/logging"
)

var (
	// ErrNotAuthenticated gates the search feature: no request is ever
	// issued without a signed-in session. The shell reacts by warning and
	// navigating to the login page.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrEmptyQuery rejects blank query text before any network call.
	ErrEmptyQuery = errors.New("empty query")

	// ErrUnknownCategory rejects a category filter outside the known set.
	ErrUnknownCategory = errors.New("unknown search category")
)

// SearchService submits gated people-lookup queries.
type SearchService interface {
	// Search returns the matching rows. An empty slice is the explicit
	// "no results" state, not an error.
	Search(ctx context.Context, query string, category models.SearchCategory) ([]models.Person, error)
}

type searchService struct {
	api     api.Client
	session *session.Manager
	log     logging.Logger
}

func NewSearchService(apiClient api.Client, sess *session.Manager, log logging.Logger) SearchService {
	return &searchService{api: apiClient, session: sess, log: log.With("component", "search")}
}

func (s *searchService) Search(ctx context.Context, query string, category models.SearchCategory) ([]models.Person, error) {
	cur := s.session.Current()
	if !cur.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	if category == "" {
		category = models.CategoryAll
	}
	if !models.ValidCategory(category) {
		return nil, ErrUnknownCategory
	}

	rows, err := s.api.Search(ctx, cur.Token, query, category)
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "search completed", "query", query, "category", string(category), "results", len(rows))
	return rows, nil
}
