package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Successful logins by role",
		},
		[]string{"role"},
	)
	LoginFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "login_failures_total",
			Help: "Login attempts that matched no configured PIN",
		},
	)

	MutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_mutations_total",
			Help: "Committed ledger mutations",
		},
		[]string{"action"}, // create|update|delete
	)

	SessionsSwept = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_swept_total",
			Help: "Expired session records reclaimed by the sweep",
		},
	)
)

// Handler serves /metrics.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(LoginsTotal)
	prometheus.MustRegister(LoginFailures)
	prometheus.MustRegister(MutationsTotal)
	prometheus.MustRegister(SessionsSwept)
}
