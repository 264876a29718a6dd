// Package metrics exposes engine counters and gauges to Prometheus.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics is nil-safe: a nil receiver turns every observation into a
// no-op so the engine can run without a registry (tests, TUI).
type Metrics struct {
	ticks             prometheus.Counter
	settlements       *prometheus.CounterVec
	insufficientFunds prometheus.Counter
	cancellations     prometheus.Counter
	completions       prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plan_ticks_total",
			Help: "Scheduler ticks processed while the plan was active.",
		}),
		settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plan_settlements_total",
			Help: "Activities settled to prepaid, by payer kind.",
		}, []string{"payer"}),
		insufficientFunds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plan_insufficient_funds_total",
			Help: "Settlement attempts deferred for lack of wallet balance.",
		}),
		cancellations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plan_cancellations_total",
			Help: "Activities cancelled after a split rejection.",
		}),
		completions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plan_completions_total",
			Help: "Activities that reached completed.",
		}),
	}

	reg.MustRegister(m.ticks, m.settlements, m.insufficientFunds, m.cancellations, m.completions)

	return m
}

// RegisterWalletGauges registers on-scrape gauges for the wallet
// balance and allocated spend, both in QAR.
func RegisterWalletGauges(reg prometheus.Registerer, balanceQAR, allocatedQAR func() float64) {
	reg.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "plan_wallet_balance_qar",
			Help: "Current wallet balance.",
		},
		balanceQAR,
	))

	reg.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "plan_allocated_qar",
			Help: "Total allocated spend across non-cancelled activities.",
		},
		allocatedQAR,
	))
}

func (m *Metrics) TickObserved() {
	if m != nil {
		m.ticks.Inc()
	}
}

func (m *Metrics) SettlementObserved(payer string) {
	if m != nil {
		m.settlements.WithLabelValues(payer).Inc()
	}
}

func (m *Metrics) InsufficientFundsObserved() {
	if m != nil {
		m.insufficientFunds.Inc()
	}
}

func (m *Metrics) CancellationObserved() {
	if m != nil {
		m.cancellations.Inc()
	}
}

func (m *Metrics) CompletionObserved() {
	if m != nil {
		m.completions.Inc()
	}
}
