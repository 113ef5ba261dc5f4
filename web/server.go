// Package web wires the calendar handlers, metrics and middleware into
// an HTTP server.
package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/avlae/solgrid/grid"
	"github.com/avlae/solgrid/hover"
	"github.com/avlae/solgrid/logging"
	"github.com/avlae/solgrid/metrics"
	"github.com/avlae/solgrid/model"
	"github.com/avlae/solgrid/palette"
	"github.com/avlae/solgrid/web/routes"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options carries everything the server renders from. Records must
// already be normalized and sorted.
type Options struct {
	Records []model.DayRecord
	Layout  grid.Layout
	Palette palette.Palette
	Hover   hover.Config
	Title   string
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func observe(collector *metrics.Collector, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r.WithContext(logging.RequestCtx(r.Context(), r.URL.Path)))

		elapsed := time.Since(start)
		collector.PageRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(recorder.status)).Inc()
		collector.RequestDuration.WithLabelValues(r.URL.Path).Observe(elapsed.Seconds())

		slog.Debug("Handled request", "path", r.URL.Path, "status", recorder.status, "elapsed", elapsed)
	})
}

// BuildServer builds the route table.
func BuildServer(opts Options, collector *metrics.Collector) *http.ServeMux {
	handler := routes.ServerHandler{
		Records: opts.Records,
		Layout:  opts.Layout,
		Palette: opts.Palette,
		Hover:   opts.Hover,
		Title:   opts.Title,
	}

	collector.RecordsLoaded.Set(float64(len(opts.Records)))

	mux := http.NewServeMux()
	mux.Handle("/", observe(collector, http.HandlerFunc(handler.CalendarHandle)))
	mux.Handle("/calendar.svg", observe(collector, http.HandlerFunc(handler.SVGHandle)))
	mux.Handle("/healthz", http.HandlerFunc(handler.HealthHandle))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

// StartServer blocks serving the calendar until the process exits.
func StartServer(port int, opts Options, collector *metrics.Collector) error {
	slog.Info("Running interface", "port", port, "records", len(opts.Records))

	err := http.ListenAndServe(fmt.Sprintf(":%d", port), BuildServer(opts, collector))
	if err != nil {
		return fmt.Errorf("could not run server: %w", err)
	}

	return nil
}
