package domain

import (
	"context"
)

// PageRepository provides page-indexed access to the remote catalog
type PageRepository interface {
	// Fetch returns the records at the given 1-based page index plus the
	// total collection size. Out-of-range pages return an empty page.
	Fetch(ctx context.Context, page int) (*Page, error)
}
