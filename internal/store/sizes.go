package store

import (
	"context"

	"github.com/angelmondragon/applestore-backend/pkg/metrics"
)

const (
	collectionUsers    = "users"
	collectionInvoices = "invoices"
)

// ReportSizes keeps the collection-size gauges in step with published
// snapshots until ctx is done. Run it in its own goroutine.
func (s *Store) ReportSizes(ctx context.Context, m *metrics.StoreMetrics) {
	ch, cancel := s.Subscribe(1)
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-ch:
			if !ok {
				return
			}
			m.SetCollectionSize(collectionUsers, len(snap.Users))
			m.SetCollectionSize(collectionInvoices, len(snap.Invoices))
		}
	}
}
