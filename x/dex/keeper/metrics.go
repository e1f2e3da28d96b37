package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the dex module
type Metrics struct {
	// Swap metrics
	SwapsTotal *prometheus.CounterVec
	SwapVolume *prometheus.CounterVec

	// Liquidity metrics
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec
	PoolReserves     *prometheus.GaugeVec

	// Fee metrics
	FeesAccrued   *prometheus.CounterVec
	FeesWithdrawn *prometheus.CounterVec

	// Lifecycle metrics
	PauseEvents prometheus.Counter
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// GetMetrics creates and registers dex metrics (singleton pattern)
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "picoin",
					Subsystem: "dex",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
				[]string{"pair"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "picoin",
					Subsystem: "dex",
					Name:      "swap_volume_total",
					Help:      "Total swap input volume in base units",
				},
				[]string{"denom"},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "picoin",
					Subsystem: "dex",
					Name:      "liquidity_added_total",
					Help:      "Total liquidity deposits",
				},
				[]string{"pair"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "picoin",
					Subsystem: "dex",
					Name:      "liquidity_removed_total",
					Help:      "Total liquidity withdrawals",
				},
				[]string{"pair"},
			),
			PoolReserves: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "picoin",
					Subsystem: "dex",
					Name:      "pool_reserves",
					Help:      "Current pool reserves in base units",
				},
				[]string{"pair", "denom"},
			),
			FeesAccrued: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "picoin",
					Subsystem: "dex",
					Name:      "fees_accrued_total",
					Help:      "Total protocol fees skimmed from swaps",
				},
				[]string{"denom"},
			),
			FeesWithdrawn: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "picoin",
					Subsystem: "dex",
					Name:      "fees_withdrawn_total",
					Help:      "Total protocol fees paid out to the authority",
				},
				[]string{"denom"},
			),
			PauseEvents: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "picoin",
					Subsystem: "dex",
					Name:      "pause_events_total",
					Help:      "Total pause and unpause transitions",
				},
			),
		}
	})
	return metrics
}
