package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of every HTTP request served by the API
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "coursehub_http_request_duration_seconds",
		Help:    "Latency of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "coursehub_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	CheckoutTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "coursehub_checkout_total",
		Help: "Total number of completed checkouts",
	})

	CheckoutFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "coursehub_checkout_failures_total",
		Help: "Checkouts that failed midway",
	})

	PaymentIntentRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "coursehub_payment_intent_requests_total",
		Help: "Payment intents requested from the processor",
	})
)

func Init() {
	prometheus.MustRegister(
		RequestDuration,
		RequestsTotal,
		CheckoutTotal,
		CheckoutFailures,
		PaymentIntentRequests,
	)
}
