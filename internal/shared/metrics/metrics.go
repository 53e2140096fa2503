package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	enhanceStartedTotal   atomic.Uint64
	enhanceCompletedTotal atomic.Uint64
	enhanceFailedTotal    atomic.Uint64
	importTotal           atomic.Uint64
	importFailedTotal     atomic.Uint64

	enhanceDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncEnhanceStarted increments the started counter.
func IncEnhanceStarted() {
	enhanceStartedTotal.Add(1)
}

// IncEnhanceCompleted increments the completed counter.
func IncEnhanceCompleted() {
	enhanceCompletedTotal.Add(1)
}

// IncEnhanceFailed increments the failed counter.
func IncEnhanceFailed() {
	enhanceFailedTotal.Add(1)
}

// IncImport increments the successful import counter.
func IncImport() {
	importTotal.Add(1)
}

// IncImportFailed increments the failed import counter.
func IncImportFailed() {
	importFailedTotal.Add(1)
}

// ObserveEnhanceDurationMs records an enhancement duration in milliseconds.
func ObserveEnhanceDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	enhanceDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "enhance_started_total", "Total enhancements started", enhanceStartedTotal.Load())
	writeCounter(&buf, "enhance_completed_total", "Total enhancements completed", enhanceCompletedTotal.Load())
	writeCounter(&buf, "enhance_failed_total", "Total enhancements failed", enhanceFailedTotal.Load())
	writeCounter(&buf, "resume_imports_total", "Total resumes imported", importTotal.Load())
	writeCounter(&buf, "resume_imports_failed_total", "Total resume imports failed", importFailedTotal.Load())
	writeHistogram(&buf, "enhance_duration_ms", "Enhancement duration in milliseconds", enhanceDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
