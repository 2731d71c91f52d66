package store

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/applestore-backend/pkg/metrics"
	"github.com/angelmondragon/applestore-backend/pkg/types"
)

func gaugeValue(t *testing.T, reg *prometheus.Registry, collection string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != "store_collection_size" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "collection" && l.GetValue() == collection {
					return m.GetGauge().GetValue()
				}
			}
		}
	}
	return -1
}

func TestReportSizesFollowsSnapshots(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewStoreMetrics(reg)
	s := newTestStore(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.ReportSizes(ctx, m)
		close(done)
	}()

	require.Eventually(t, func() bool { return gaugeValue(t, reg, collectionUsers) == 10 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return gaugeValue(t, reg, collectionInvoices) == 12 }, time.Second, 5*time.Millisecond)

	_, err := s.CreateUser(context.Background(), types.NewUser{Name: "Sam", Email: "sam@x.com"})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return gaugeValue(t, reg, collectionUsers) == 11 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ReportSizes did not return after cancel")
	}
}
