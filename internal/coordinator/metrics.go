package coordinator

import (
	"github.com/prometheus/client_golang/prometheus"

	grpcprom "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
)

var (
	connectedAgents = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "verfploeter_server_connected_agents",
		Help: "The number of currently connected agents",
	})

	tasksScheduled = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "verfploeter_server_tasks_scheduled_total",
		Help: "The total number of tasks scheduled via do_task",
	})

	keepalivesSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "verfploeter_server_keepalives_sent_total",
		Help: "The total number of keepalive tasks enqueued to agents",
	})

	resultsReceived = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "verfploeter_server_results_received_total",
		Help: "The total number of task results submitted by agents",
	})

	resultsFannedOut = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "verfploeter_server_results_fanned_out_total",
		Help: "The total number of result deliveries attempted to subscribers",
	})

	srvMetrics = grpcprom.NewServerMetrics(
		grpcprom.WithServerHandlingTimeHistogram(
			grpcprom.WithHistogramBuckets([]float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 5}),
		),
	)
)

func init() {
	prometheus.MustRegister(connectedAgents)
	prometheus.MustRegister(tasksScheduled)
	prometheus.MustRegister(keepalivesSent)
	prometheus.MustRegister(resultsReceived)
	prometheus.MustRegister(resultsFannedOut)

	// gRPC middleware metrics
	prometheus.MustRegister(srvMetrics)
}
