package resolve

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/models"
)

// Substitute replays a fixed sequence of hit counts, one per call,
// ignoring the query. Blank entries are skipped.
type Substitute struct {
	values []any
	cursor int
}

// NewSubstitute returns a source that consumes values in order.
func NewSubstitute(values []any) *Substitute {
	return &Substitute{values: values}
}

// ResolveNext returns the next non-blank fixture value as a count.
func (s *Substitute) ResolveNext(_ context.Context, _ string) models.Outcome {
	for s.cursor < len(s.values) && isBlank(s.values[s.cursor]) {
		s.cursor++
	}
	if s.cursor >= len(s.values) {
		return models.Failure(ReasonNotEnoughData)
	}

	v := s.values[s.cursor]
	s.cursor++

	n, ok := toCount(v)
	if !ok {
		return models.Failure(ReasonInvalidValue)
	}
	return models.Count(n)
}

// Remaining reports how many entries, blank or not, are left unconsumed.
func (s *Substitute) Remaining() int {
	return len(s.values) - s.cursor
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if str, ok := v.(string); ok {
		return strings.TrimSpace(str) == ""
	}
	return false
}

// toCount converts a fixture value to an integer count. Floats are
// truncated toward zero; strings must hold an integer.
func toCount(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float32:
		return floatCount(float64(n))
	case float64:
		return floatCount(n)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	}
	return 0, false
}

func floatCount(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}
