package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SolicitudMetrics agrupa los contadores de negocio del módulo solicitud
type SolicitudMetrics struct {
	Creadas    prometheus.Counter
	Rechazadas *prometheus.CounterVec
}

// NewSolicitudMetrics registra y retorna los contadores del módulo solicitud
func NewSolicitudMetrics() *SolicitudMetrics {
	creadas := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "almacen",
		Subsystem: "solicitudes",
		Name:      "creadas_total",
		Help:      "Total de solicitudes creadas con éxito.",
	})
	rechazadas := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "almacen",
		Subsystem: "solicitudes",
		Name:      "rechazadas_total",
		Help:      "Total de solicitudes rechazadas, por motivo.",
	}, []string{"motivo"})

	prometheus.MustRegister(creadas, rechazadas)
	return &SolicitudMetrics{Creadas: creadas, Rechazadas: rechazadas}
}

// Handler expone el endpoint /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
