package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conap-gt/guardarecursos-api/internal/domain/geo"
)

func TestProyectar_ConstantesExactas(t *testing.T) {
	// Parque Nacional Tikal: 17.2221, -89.6237
	p := geo.Proyectar(17.2221, -89.6237)
	assert.InDelta(t, (-89.6237+92)*180, p.X, 1e-9)
	assert.InDelta(t, (19-17.2221)*80, p.Y, 1e-9)

	// El origen del lienzo corresponde a lat 19, lng -92.
	origen := geo.Proyectar(19, -92)
	assert.Equal(t, 0.0, origen.X)
	assert.Equal(t, 0.0, origen.Y)
}
