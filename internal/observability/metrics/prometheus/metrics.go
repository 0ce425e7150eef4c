package prometheus

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var requestMetrics = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "request_duration_seconds",
		Help:    "Request duration by status and operation",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"status", "op"},
)

var requestCount = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "request_total",
		Help: "Request count by status and operation",
	},
	[]string{"status", "op"},
)

func ObserveRequest(d time.Duration, status int, op string) {
	requestMetrics.WithLabelValues(strconv.Itoa(status), op).Observe(d.Seconds())
	requestCount.WithLabelValues(strconv.Itoa(status), op).Inc()
}

type Srv struct {
	srv *http.Server
}

func New(port int) *Srv {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Srv{
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%v", port),
			Handler: mux,
		},
	}
}

func (s *Srv) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			zap.L().Warn("failed to shutdown metrics server", zap.Error(err))
		}
	}()

	zap.L().Info("Starting metrics server", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zap.L().Error("metrics server error", zap.Error(err))
	}
}
