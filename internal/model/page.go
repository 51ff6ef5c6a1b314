package model

type (
	// Page is one slice of a cursor-paginated listing. NextCursor is an
	// opaque backend token: an empty value means the last page, anything
	// else must be round-tripped verbatim to fetch the following page.
	Page[T any] struct {
		Items      []T
		NextCursor string
	}
)

func (p Page[T]) Last() bool { return p.NextCursor == "" }
