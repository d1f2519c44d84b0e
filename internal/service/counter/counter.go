package counter

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tejaswadiwala/torcc/internal/client/shopify"
	"github.com/tejaswadiwala/torcc/internal/xslog"
)

type Service interface {
	// Add parses price and adds it to the remote sales counter.
	Add(ctx context.Context, price string) error
}

// Aggregator maintains a lifetime sales counter held in a Shopify
// metaobject field. The fetch and write are two independent remote
// calls with no compare-and-swap: concurrent deliveries racing on
// this sequence can lose updates (last-writer-wins).
type Aggregator struct {
	metaobjects shopify.MetaobjectService
	objectID    string
	fieldKey    string
}

var _ Service = (*Aggregator)(nil)

func NewAggregator(metaobjects shopify.MetaobjectService, objectID, fieldKey string) *Aggregator {
	return &Aggregator{
		metaobjects: metaobjects,
		objectID:    objectID,
		fieldKey:    fieldKey,
	}
}

func (a *Aggregator) Add(ctx context.Context, price string) error {
	logger := xslog.FromContext(ctx)

	current, err := a.fetch(ctx)
	if err != nil {
		return err
	}

	newValue, err := ComputeNewValue(current, price)
	if err != nil {
		return err
	}

	if err := a.metaobjects.UpdateField(ctx, a.objectID, a.fieldKey, strconv.Itoa(newValue)); err != nil {
		return fmt.Errorf("writing counter: %w", err)
	}

	logger.InfoContext(ctx, "updated sales counter",
		xslog.Counter(newValue),
		xslog.Delta(newValue-current),
	)

	return nil
}

func (a *Aggregator) fetch(ctx context.Context) (int, error) {
	raw, err := a.metaobjects.GetField(ctx, a.objectID, a.fieldKey)
	if err != nil {
		return 0, fmt.Errorf("fetching counter: %w", err)
	}

	current, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("counter field %q is not numeric: %q", a.fieldKey, raw)
	}

	return current, nil
}

// ComputeNewValue adds a string-encoded price to the current counter
// value. The price is parsed with ParsePrice, so any fractional part
// is dropped.
func ComputeNewValue(current int, price string) (int, error) {
	delta, err := ParsePrice(price)
	if err != nil {
		return 0, err
	}
	return current + delta, nil
}

// ParsePrice parses a string-encoded price as an integer: an optional
// sign followed by leading digits, everything after them ignored, so
// "50.90" parses to 50. Truncating cents matches the behavior this
// counter has always had; see DESIGN.md before changing it.
func ParsePrice(s string) (int, error) {
	s = strings.TrimSpace(s)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, fmt.Errorf("price %q is not numeric", s)
	}

	return strconv.Atoi(s[:j])
}
