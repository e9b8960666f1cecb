package cumplimiento_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/conap-gt/guardarecursos-api/internal/domain/cumplimiento"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestPorcentaje_Calculo(t *testing.T) {
	casos := []struct {
		nombre        string
		actual, meta  int64
		esperado      float64
	}{
		{"mitad de la meta", 50, 100, 50},
		{"meta exacta", 100, 100, 100},
		{"sobre-cumplimiento se recorta a 100", 1000, 10, 100},
		{"meta cero resuelve a cero", 50, 0, 0},
		{"actual cero", 0, 40, 0},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.InDelta(t, c.esperado, cumplimiento.Porcentaje(d(c.actual), d(c.meta)), 0.0001)
		})
	}
}

// Para meta positiva fija, el porcentaje es monótono no decreciente en actual.
func TestPorcentaje_MonotonoEnActual(t *testing.T) {
	meta := d(80)
	anterior := -1.0
	for actual := int64(0); actual <= 200; actual += 5 {
		pct := cumplimiento.Porcentaje(d(actual), meta)
		assert.GreaterOrEqual(t, pct, anterior,
			"porcentaje debe ser no decreciente (actual=%d)", actual)
		assert.LessOrEqual(t, pct, 100.0)
		anterior = pct
	}
}

// Los límites de banda son inclusivos en el límite inferior.
func TestNivel_LimitesInclusivos(t *testing.T) {
	casos := []struct {
		pct      float64
		esperado string
	}{
		{100, cumplimiento.NivelAlto},
		{90, cumplimiento.NivelAlto},
		{89.99, cumplimiento.NivelMedio},
		{75, cumplimiento.NivelMedio},
		{74.99, cumplimiento.NivelBajo},
		{60, cumplimiento.NivelBajo},
		{59.99, cumplimiento.NivelCritico},
		{0, cumplimiento.NivelCritico},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, cumplimiento.Nivel(c.pct), "pct=%v", c.pct)
	}
}
