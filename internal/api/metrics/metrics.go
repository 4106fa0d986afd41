// Package metrics defines and registers all custom Prometheus metrics for
// the tutorial platform API. It is the single source of truth for metric
// names, labels, and help strings; metrics register with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tutorial_platform"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts signup attempts.
// Label:
//   - result: "created", "conflict", "invalid", "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, labelled by result.",
	},
	[]string{"result"},
)

// SigninsTotal counts signin attempts.
// Label:
//   - result: "ok" or "rejected" — never distinguishes the rejection cause
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of signin attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Progress metrics ──────────────────────────────────────────────────────────

// ProgressUpsertsTotal counts progress writes (manual updates and quiz
// completions combined).
var ProgressUpsertsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "progress_upserts_total",
		Help:      "Total number of progress upserts.",
	},
)

// QuizSubmissionsTotal counts scored quiz submissions.
// Label:
//   - tutorial_id: the tutorial whose quiz was submitted
var QuizSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quiz_submissions_total",
		Help:      "Total number of quiz submissions successfully scored.",
	},
	[]string{"tutorial_id"},
)

// SummaryCacheTotal counts progress summary cache lookups.
// Label:
//   - result: "hit" or "miss"
var SummaryCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "summary_cache_total",
		Help:      "Total number of summary cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// QuizScorePercent observes the percentage score of each submission.
var QuizScorePercent = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "quiz_score_percent",
		Help:      "Distribution of quiz scores as percentages.",
		Buckets:   prometheus.LinearBuckets(0, 10, 11), // 0, 10, …, 100
	},
)
