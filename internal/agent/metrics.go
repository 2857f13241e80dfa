package agent

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	tasksReceived = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "verfploeter_client_tasks_received_total",
		Help: "The total number of ping tasks received from the coordinator",
	})

	probesSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "verfploeter_client_probes_sent_total",
		Help: "The total number of echo requests transmitted",
	})

	repliesMatched = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "verfploeter_client_replies_matched_total",
		Help: "The total number of captured echo replies matched to a task",
	})

	resultsSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "verfploeter_client_results_submitted_total",
		Help: "The total number of replies submitted to the coordinator",
	})
)

func init() {
	prometheus.MustRegister(tasksReceived)
	prometheus.MustRegister(probesSent)
	prometheus.MustRegister(repliesMatched)
	prometheus.MustRegister(resultsSubmitted)
}
