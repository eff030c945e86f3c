package resolve

import (
	"context"
	"errors"
	"strings"

	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/models"
)

// ErrMissingCredential is returned by a Lookup when the request was rejected
// for lack of a valid credential.
var ErrMissingCredential = errors.New("missing or rejected credential")

// Query is a single search request.
type Query struct {
	Q        string
	Domain   string
	Language string
	Country  string
	APIKey   string
}

// Result is the part of a search response the batch cares about.
// TotalResults is nil when the response did not carry the field.
type Result struct {
	TotalResults *int64
}

// Lookup performs a search. Transport, auth and rate limiting live behind it.
type Lookup interface {
	Lookup(ctx context.Context, q Query) (Result, error)
}

// LiveSettings parameterises live lookups.
type LiveSettings struct {
	APIKey   string
	Domain   string
	Language string
	Country  string
}

// Live resolves keywords through a Lookup.
type Live struct {
	lookup   Lookup
	settings LiveSettings
}

// NewLive returns a Live source backed by lookup.
func NewLive(lookup Lookup, settings LiveSettings) *Live {
	return &Live{lookup: lookup, settings: settings}
}

// ResolveNext looks up query and maps the response to an outcome.
func (l *Live) ResolveNext(ctx context.Context, query string) models.Outcome {
	key := strings.TrimSpace(l.settings.APIKey)
	if key == "" {
		return models.Failure(ReasonMissingCredential)
	}

	res, err := l.lookup.Lookup(ctx, Query{
		Q:        query,
		Domain:   l.settings.Domain,
		Language: l.settings.Language,
		Country:  l.settings.Country,
		APIKey:   key,
	})
	switch {
	case errors.Is(err, ErrMissingCredential):
		return models.Failure(ReasonMissingCredential)
	case err != nil:
		return models.Failure(lookupErrorPrefix + err.Error())
	case res.TotalResults == nil:
		return models.Failure(ReasonNoResultField)
	}
	return models.Count(*res.TotalResults)
}
