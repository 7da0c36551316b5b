// Package search translates caller intent into upstream queries and upstream
// documents into the small, stable result contract handed back over the tool
// boundary. Every outcome is a document: primary data, a diagnostic with a
// message, or an error — shaping never returns a Go error to its caller.
package search

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/dharmasatrya/travelsearch/internal/models"
	"github.com/dharmasatrya/travelsearch/internal/serpapi"
)

// Executor performs one upstream search call. Satisfied by *serpapi.Client;
// tests substitute a fake capturing the query.
type Executor interface {
	Search(ctx context.Context, params serpapi.Query) (models.Document, error)
}

// Service holds the shapers' shared dependencies. Stateless across calls.
type Service struct {
	executor Executor
	logger   *zap.Logger
}

func NewService(executor Executor, logger *zap.Logger) *Service {
	return &Service{
		executor: executor,
		logger:   logger,
	}
}

// availableKeys lists a document's top-level keys, sorted for determinism.
func availableKeys(doc models.Document) []string {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// passthroughError reports whether the upstream document itself carries an
// error field (SerpAPI can answer 200 with an embedded error); such
// documents are returned to the caller unchanged.
func passthroughError(doc models.Document) bool {
	_, ok := doc["error"]
	return ok
}

// toAnySlice coerces a decoded JSON value into a slice of items. A missing
// key or a non-array value both come back empty: absence of expected keys
// is a normal, handled case, not an error.
func toAnySlice(v any) []any {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	return items
}
