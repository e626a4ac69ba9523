package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PagesFetched = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "csscatalog_pages_fetched_total",
		Help: "Total number of documentation pages successfully fetched",
	})
	BytesFetched = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "csscatalog_bytes_fetched_total",
		Help: "Total bytes downloaded",
	})
	ItemsAssembled = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "csscatalog_items_assembled_total",
		Help: "Records assembled, by item kind",
	}, []string{"kind"})
	ItemsSkipped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "csscatalog_items_skipped_total",
		Help: "Items dropped because their primary document was unreadable",
	})
	FieldsMissing = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "csscatalog_fields_missing_total",
		Help: "Extracted fields that fell back to an empty value, by field",
	}, []string{"field"})
)

func init() {
	prometheus.MustRegister(PagesFetched, BytesFetched, ItemsAssembled, ItemsSkipped, FieldsMissing)
}
