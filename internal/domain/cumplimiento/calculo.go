// Package cumplimiento contiene el cálculo puro de cumplimiento: porcentaje
// contra meta y clasificación por niveles. Los límites de banda alimentan el
// código de colores de la UI y del PDF, así que son parte del contrato.
package cumplimiento

import "github.com/shopspring/decimal"

// Niveles de cumplimiento. Cada banda incluye su límite inferior.
const (
	NivelAlto    = "alto"    // >= 90
	NivelMedio   = "medio"   // >= 75
	NivelBajo    = "bajo"    // >= 60
	NivelCritico = "critico" // < 60
)

var cien = decimal.NewFromInt(100)

// Porcentaje calcula min(actual/meta*100, 100). Superar la meta nunca produce
// más de 100. Una meta cero o negativa resuelve a 0 en lugar de dividir.
func Porcentaje(actual, meta decimal.Decimal) float64 {
	if meta.Sign() <= 0 {
		return 0
	}
	pct := actual.Div(meta).Mul(cien)
	if pct.GreaterThan(cien) {
		return 100
	}
	if pct.Sign() < 0 {
		return 0
	}
	f, _ := pct.Float64()
	return f
}

// Nivel clasifica un porcentaje en su banda.
func Nivel(porcentaje float64) string {
	switch {
	case porcentaje >= 90:
		return NivelAlto
	case porcentaje >= 75:
		return NivelMedio
	case porcentaje >= 60:
		return NivelBajo
	default:
		return NivelCritico
	}
}
