package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// ComposeTotal counts proposal composition outcomes.
	ComposeTotal *prometheus.CounterVec
	// ExportTotal counts document export outcomes by format.
	ExportTotal *prometheus.CounterVec
	// CatalogLoadTotal counts catalog load outcomes.
	CatalogLoadTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		ComposeTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compose_total",
			Help:      "Count of proposal composition outcomes.",
		}, []string{"result"})
		ExportTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "export_total",
			Help:      "Count of proposal export outcomes by format.",
		}, []string{"format", "result"})
		CatalogLoadTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_load_total",
			Help:      "Count of catalog load outcomes.",
		}, []string{"result"})
		reg.MustRegister(ComposeTotal, ExportTotal, CatalogLoadTotal)
	})
}

// CountCompose records a composition outcome when metrics are registered.
func CountCompose(result string) {
	if ComposeTotal != nil {
		ComposeTotal.WithLabelValues(result).Inc()
	}
}

// CountExport records an export outcome when metrics are registered.
func CountExport(format, result string) {
	if ExportTotal != nil {
		ExportTotal.WithLabelValues(format, result).Inc()
	}
}

// CountCatalogLoad records a catalog load outcome when metrics are registered.
func CountCatalogLoad(result string) {
	if CatalogLoadTotal != nil {
		CatalogLoadTotal.WithLabelValues(result).Inc()
	}
}
