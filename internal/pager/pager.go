// Package pager drives cursor pagination for one list view. Cursors are
// opaque backend tokens: the pager stores and replays them verbatim and
// never looks inside. There is deliberately no back-stack — "first page"
// resets to an empty cursor instead of supporting arbitrary backwards
// navigation.
package pager

import (
	"context"

	"github.com/pkg/errors"

	"chainlens/internal/model"
)

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
)

var ErrNoNextPage = errors.New("pager: no next page")

type (
	State int

	// FetchFunc retrieves one page. An empty cursor means the first page.
	FetchFunc[T any] func(ctx context.Context, cursor string) (model.Page[T], error)

	Pager[T any] struct {
		fetch FetchFunc[T]

		state State
		items []T
		next  string
	}
)

func New[T any](fetch FetchFunc[T]) *Pager[T] {
	return &Pager[T]{fetch: fetch, state: StateIdle}
}

func (p *Pager[T]) State() State { return p.state }
func (p *Pager[T]) Items() []T   { return p.items }

// HasNext reports whether the last loaded page advertised a next cursor. A
// page with no cursor is the last page.
func (p *Pager[T]) HasNext() bool { return p.state == StateLoaded && p.next != "" }

// First loads the first page, discarding any cursor position held so far.
func (p *Pager[T]) First(ctx context.Context) error {
	return p.load(ctx, "")
}

// Next loads the page after the current one using the stored cursor.
func (p *Pager[T]) Next(ctx context.Context) error {
	if p.state != StateLoaded || p.next == "" {
		return ErrNoNextPage
	}
	return p.load(ctx, p.next)
}

func (p *Pager[T]) load(ctx context.Context, cursor string) error {
	prevState, prevItems, prevNext := p.state, p.items, p.next
	p.state = StateLoading

	page, err := p.fetch(ctx, cursor)
	if err != nil {
		// A failed load keeps the previously rendered page visible.
		p.state, p.items, p.next = prevState, prevItems, prevNext
		return errors.Wrap(err, "load page")
	}

	p.state = StateLoaded
	p.items = page.Items
	p.next = page.NextCursor
	return nil
}
