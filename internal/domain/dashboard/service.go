package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetSummary returns the combined dashboard payload; when the database
	// is unreachable it returns a typed degraded fallback instead of failing
	GetSummary(ctx context.Context) (Summary, error)
}
