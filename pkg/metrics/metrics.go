// Package metrics expone los contadores Prometheus de la aplicación.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LoginAttempts cuenta intentos de login por resultado:
	// "exitoso", "credenciales_invalidas", "cuenta_suspendida".
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "guardarecursos",
		Name:      "login_attempts_total",
		Help:      "Intentos de inicio de sesión por resultado.",
	}, []string{"resultado"})

	// ReportsGenerated cuenta reportes PDF de cumplimiento por resultado.
	ReportsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "guardarecursos",
		Name:      "reportes_generados_total",
		Help:      "Reportes de cumplimiento generados por resultado.",
	}, []string{"resultado"})

	// HTTPRequests cuenta peticiones por ruta y código de estado.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "guardarecursos",
		Name:      "http_requests_total",
		Help:      "Peticiones HTTP atendidas.",
	}, []string{"ruta", "codigo"})
)
