// Package pagination tracks the cursor state of a paged child list.
package pagination

import (
	"context"
	"fmt"
	"sync"

	apperrors "metadata-catalog/internal/errors"
	"metadata-catalog/internal/paging"
)

// InitialPage is the page index shown before any navigation.
const InitialPage = 1

// Fetcher loads the page reached by following token in direction d.
type Fetcher[T any] func(ctx context.Context, d paging.Direction, token string) (*paging.List[T], error)

// Controller remembers the last Paging block and the page index shown to the
// user. The page index is informational; the server only sees cursors.
type Controller[T any] struct {
	fetch Fetcher[T]

	mu     sync.Mutex
	gen    uint64
	paging paging.Paging
	page   int
}

// New creates a controller positioned on the first page.
func New[T any](fetch Fetcher[T]) *Controller[T] {
	return &Controller[T]{
		fetch: fetch,
		page:  InitialPage,
	}
}

// Reset installs the paging of a freshly loaded first page. Any request still
// in flight is superseded.
func (c *Controller[T]) Reset(p paging.Paging) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	c.paging = p
	c.page = InitialPage
}

// RequestPage follows the stored cursor for d. On success the stored paging
// and page index are replaced; on failure they are left untouched. It returns
// ErrNoPage without fetching when there is no cursor for d, and ErrSuperseded
// when Reset or another RequestPage ran while the fetch was in flight.
func (c *Controller[T]) RequestPage(ctx context.Context, d paging.Direction, pageIndex int) (*paging.List[T], error) {
	if !d.Valid() {
		return nil, fmt.Errorf("unknown paging direction %q", d)
	}

	c.mu.Lock()
	token := c.paging.Token(d)
	if token == "" {
		c.mu.Unlock()
		return nil, apperrors.ErrNoPage
	}
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	list, err := c.fetch(ctx, d, token)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return nil, apperrors.ErrSuperseded
	}
	c.paging = list.Paging
	c.page = pageIndex
	return list, nil
}

// Paging returns the last accepted paging block.
func (c *Controller[T]) Paging() paging.Paging {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paging
}

// CurrentPage returns the page index shown to the user.
func (c *Controller[T]) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// HasPage reports whether a cursor exists for d.
func (c *Controller[T]) HasPage(d paging.Direction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paging.Token(d) != ""
}
