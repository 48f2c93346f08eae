package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "folio",
		Subsystem: "cache",
		Name:      "requests_total",
		Help:      "Blog cache lookups partitioned by kind (detail, list) and result (hit, miss).",
	}, []string{"kind", "result"})

	cacheLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "folio",
		Subsystem: "cache",
		Name:      "lookup_seconds",
		Help:      "Blog cache lookup latency partitioned by result.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"result"})

	mediaUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "folio",
		Subsystem: "media",
		Name:      "uploads_total",
		Help:      "Image uploads to the media host partitioned by result.",
	}, []string{"result"})

	mediaUploadLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "folio",
		Subsystem: "media",
		Name:      "upload_seconds",
		Help:      "Latency of a single image upload.",
		Buckets:   prometheus.DefBuckets,
	})

	mediaOrphans = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "folio",
		Subsystem: "media",
		Name:      "orphaned_urls_total",
		Help:      "Hosted images no longer referenced by any blog, partitioned by reason.",
	}, []string{"reason"})

	relationshipFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "folio",
		Subsystem: "relationship",
		Name:      "failures_total",
		Help:      "Category back-reference updates that failed after the blog write committed.",
	}, []string{"op"})
)

func IncDetailHit()  { cacheRequests.WithLabelValues("detail", "hit").Inc() }
func IncDetailMiss() { cacheRequests.WithLabelValues("detail", "miss").Inc() }
func IncListHit()    { cacheRequests.WithLabelValues("list", "hit").Inc() }
func IncListMiss()   { cacheRequests.WithLabelValues("list", "miss").Inc() }

func AddHitDuration(seconds float64)  { cacheLatency.WithLabelValues("hit").Observe(seconds) }
func AddMissDuration(seconds float64) { cacheLatency.WithLabelValues("miss").Observe(seconds) }

// ObserveUpload records the outcome and latency of one upload.
func ObserveUpload(ok bool, seconds float64) {
	result := "success"
	if !ok {
		result = "failure"
	}
	mediaUploads.WithLabelValues(result).Inc()
	mediaUploadLatency.Observe(seconds)
}

func AddOrphans(reason string, n int) {
	mediaOrphans.WithLabelValues(reason).Add(float64(n))
}

func IncRelationshipFailure(op string) {
	relationshipFailures.WithLabelValues(op).Inc()
}
