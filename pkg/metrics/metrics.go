package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	MirrorOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mirror_operations_total",
			Help: "Hash mirror operations per collection",
		},
		[]string{"collection", "op"}, // hit|miss|put
	)
	RankingOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranking_operations_total",
			Help: "Ranking index operations per set",
		},
		[]string{"set", "op"}, // upsert|seed
	)
	CacheRebuilds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_rebuilds_total",
			Help: "Lazy cache warm-ups per region",
		},
		[]string{"region"},
	)
)

func MustRegister() {
	prometheus.MustRegister(
		KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		MirrorOps, RankingOps, CacheRebuilds,
	)
}
