package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RecommendDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ai_recommend_latency_seconds",
		Help:    "Latency of the AI recommendation endpoint",
		Buckets: prometheus.DefBuckets,
	})

	RecommendTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ai_recommendations_served_total",
		Help: "Total recommendation lists served",
	})

	ClickTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ai_recommendation_clicks_total",
		Help: "Total recommendation clicks tracked",
	})
)

func Init() {
	prometheus.MustRegister(RecommendDuration, RecommendTotal, ClickTotal)
}
