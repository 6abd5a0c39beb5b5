package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/renchinlab/cookware-api/internal/rakuten"
)

// --- MockSearcher ---

// MockSearcher is a mock implementation of rakuten.Searcher. It records
// every keyword it is called with so tests can assert on outbound calls.
type MockSearcher struct {
	mu              sync.Mutex
	keywords        []string
	SearchItemsFunc func(ctx context.Context, keyword string) ([]rakuten.Item, error)
}

func (m *MockSearcher) SearchItems(ctx context.Context, keyword string) ([]rakuten.Item, error) {
	m.mu.Lock()
	m.keywords = append(m.keywords, keyword)
	m.mu.Unlock()

	if m.SearchItemsFunc != nil {
		return m.SearchItemsFunc(ctx, keyword)
	}
	return nil, fmt.Errorf("SearchItems not configured")
}

// CallCount returns the number of SearchItems calls made so far.
func (m *MockSearcher) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.keywords)
}

// Keywords returns a copy of the keywords SearchItems was called with,
// in call order.
func (m *MockSearcher) Keywords() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.keywords))
	copy(out, m.keywords)
	return out
}
