package providers

import (
	"context"

	"github.com/vukan322/gitstreak/internal/core"
)

// Provider is one acquisition strategy for a user's activity data.
// Implementations must either return a complete ActivityStats or fail;
// partial data is never returned.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, handle string) (core.ActivityStats, error)
}
