package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ProductsScraped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "products_scraped_total",
			Help: "Total de produtos extraídos das páginas",
		},
	)
	RecordsIngested = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "records_ingested_total",
			Help: "Total de registros aplicados via upsert",
		},
	)
	FetchErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fetch_errors_total",
			Help: "Total de falhas de fetch de página",
		},
	)
)

func Start(port string) {
	prometheus.MustRegister(ProductsScraped, RecordsIngested, FetchErrors)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
