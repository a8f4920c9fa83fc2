package jobs

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts job runs and the orders they touched.
type Metrics struct {
	runs          *prometheus.CounterVec
	expiredOrders prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ootdverse",
			Subsystem: "jobs",
			Name:      "runs_total",
			Help:      "Scheduled job runs by job and result.",
		}, []string{"job", "result"}),
		expiredOrders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ootdverse",
			Subsystem: "jobs",
			Name:      "expired_orders_total",
			Help:      "Unpaid orders cancelled by the expiry job.",
		}),
	}
	reg.MustRegister(m.runs, m.expiredOrders)
	return m
}

func (m *Metrics) runFinished(job string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.runs.WithLabelValues(job, result).Inc()
}

func (m *Metrics) ordersExpired(n int) {
	if m == nil || n == 0 {
		return
	}
	m.expiredOrders.Add(float64(n))
}
