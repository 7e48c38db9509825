// Package observability exposes Prometheus metrics for the gRPC endpoint and
// serves them, together with a health probe, over HTTP.
package observability

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Metrics holds the RPC collectors.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates the RPC collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "planwise_rpc_requests_total",
				Help: "Total number of RPCs by method and status code",
			},
			[]string{"method", "code"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "planwise_rpc_duration_seconds",
				Help:    "RPC latency by method",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}

	reg.MustRegister(m.RequestsTotal)
	reg.MustRegister(m.RequestDuration)

	return m
}

// methodLabel trims "/planwise.v1.PlanWise/Login" down to "Login".
func methodLabel(fullMethod string) string {
	if i := strings.LastIndex(fullMethod, "/"); i >= 0 {
		return fullMethod[i+1:]
	}
	return fullMethod
}

// UnaryServerInterceptor records a count and a latency sample for every RPC.
func (m *Metrics) UnaryServerInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	method := methodLabel(info.FullMethod)
	m.RequestsTotal.WithLabelValues(method, status.Code(err).String()).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	return resp, err
}
