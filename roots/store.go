package roots

import (
	"context"

	"github.com/claimtrail/go-xmt/xmt"
)

// RootStore is the narrow contract for holding the trusted root. Get and Set
// are presumed atomic with respect to each other. Access control for SetRoot
// is explicitly the embedding system's concern.
type RootStore interface {
	GetRoot(ctx context.Context) (xmt.Value, error)
	SetRoot(ctx context.Context, root xmt.Value) error
}
