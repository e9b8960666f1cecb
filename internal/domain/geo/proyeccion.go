// Package geo proyección esquemática para el mapa de áreas protegidas.
package geo

// Punto coordenada 2D en el plano del mapa esquemático.
type Punto struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Proyectar aplica la transformación afín fija del mapa esquemático:
//
//	x = (lng + 92) * 180
//	y = (19 - lat) * 80
//
// No es una proyección geodésica; las constantes encuadran el territorio de
// Guatemala en el lienzo de la UI y deben conservarse exactas para paridad
// visual con el cliente.
func Proyectar(lat, lng float64) Punto {
	return Punto{
		X: (lng + 92) * 180,
		Y: (19 - lat) * 80,
	}
}
