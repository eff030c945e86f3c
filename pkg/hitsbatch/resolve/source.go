// Package resolve provides the sources a batch draws hit counts from: a
// live search lookup or a pre-recorded substitute sequence.
package resolve

import (
	"context"

	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/models"
)

// Failure reasons reported by the sources in this package.
const (
	ReasonMissingCredential = "missing credential"
	ReasonNoResultField     = "no result field"
	ReasonInvalidValue      = "invalid value"
	ReasonNotEnoughData     = "not enough substitute data"
	lookupErrorPrefix       = "lookup error: "
)

// Source produces one outcome per keyword. Calls are made sequentially, in
// keyword order, and a source may keep state between them.
type Source interface {
	ResolveNext(ctx context.Context, query string) models.Outcome
}
