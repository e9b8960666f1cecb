// Package pdf implementa la generación del Reporte de Cumplimiento en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  ENCABEZADO: CONAP · Reporte de Cumplimiento · período      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIÓN (una por guardarecurso seleccionado):              │
//	│    Nombre + código + área asignada │ Promedio del período   │
//	│    TABLA: Métrica | Meta | Actual | % Cumplimiento          │
//	│    (o línea "Sin métricas disponibles")                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ... secciones siguientes; una sección que no cabe en el    │
//	│  presupuesto de página arranca página nueva, nunca a medias │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/conap-gt/guardarecursos-api/internal/application/reporte"
	"github.com/conap-gt/guardarecursos-api/internal/domain/cumplimiento"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 92, Blue: 53} // verde institucional
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}

	colorAlto    = &props.Color{Red: 22, Green: 130, Blue: 57}
	colorMedio   = &props.Color{Red: 181, Green: 140, Blue: 16}
	colorBajo    = &props.Color{Red: 204, Green: 102, Blue: 0}
	colorCritico = &props.Color{Red: 180, Green: 32, Blue: 32}
)

// Presupuesto de altura imprimible por página: pasado este umbral (~250 de
// 297 unidades de contenido A4) una sección nueva fuerza página nueva.
const alturaMaxPagina = 250.0

// Alturas fijas de cada tipo de fila; la paginación manual depende de ellas.
const (
	altoTitulo        = 16.0
	altoEncabezado    = 14.0
	altoPromedio      = 6.0
	altoCabeceraTabla = 8.0
	altoFilaMetrica   = 7.0
	altoSinMetricas   = 8.0
	altoSeparador     = 4.0
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reporte.PDFGenerator = (*MarotoReporteGenerator)(nil)

// MarotoReporteGenerator implementa reporte.PDFGenerator usando Maroto v2.
type MarotoReporteGenerator struct{}

// NewMarotoReporteGenerator construye el generador.
func NewMarotoReporteGenerator() *MarotoReporteGenerator { return &MarotoReporteGenerator{} }

// GenerarReporteCumplimiento genera el PDF y devuelve sus bytes. El documento
// se construye completo en memoria; ante cualquier error no queda escritura
// parcial.
func (g *MarotoReporteGenerator) GenerarReporteCumplimiento(
	_ context.Context,
	periodo string,
	generadoEn time.Time,
	secciones []reporte.Seccion,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Cumplimiento CONAP", true).
		Build()

	m := maroto.New(cfg)

	pag := nuevaPaginadora()
	pag.agregar(altoTitulo, tituloRow(periodo, generadoEn))

	for _, s := range secciones {
		pag.asegurarEspacio(alturaSeccion(s))
		pag.agregar(altoEncabezado, encabezadoSeccion(s))
		pag.agregar(altoPromedio, promedioRow(s.Promedio))
		if len(s.Metricas) == 0 {
			// Un guardarecurso sin métricas en el período igual lleva su
			// encabezado con la línea explícita, nunca se omite la sección.
			pag.agregar(altoSinMetricas, sinMetricasRow())
		} else {
			pag.agregarTabla(s.Metricas)
		}
		pag.agregar(altoSeparador, line.NewRow(altoSeparador, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	m.AddPages(pag.paginas()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// alturaSeccion altura del bloque completo de una sección.
func alturaSeccion(s reporte.Seccion) float64 {
	h := altoEncabezado + altoPromedio + altoSeparador
	if len(s.Metricas) == 0 {
		return h + altoSinMetricas
	}
	return h + altoCabeceraTabla + float64(len(s.Metricas))*altoFilaMetrica
}

// ── Paginadora ────────────────────────────────────────────────────────────────

// paginadora acumula filas contra el presupuesto de altura y corta páginas.
type paginadora struct {
	todas  []core.Page
	actual []core.Row
	altura float64
}

func nuevaPaginadora() *paginadora { return &paginadora{} }

func (p *paginadora) agregar(alto float64, r core.Row) {
	if p.altura+alto > alturaMaxPagina {
		p.cerrarPagina()
	}
	p.actual = append(p.actual, r)
	p.altura += alto
}

// asegurarEspacio fuerza página nueva si el bloque completo no cabe en lo que
// resta de la actual. Un bloque más alto que el presupuesto entra igual (se
// partirá en la tabla, repitiendo cabecera).
func (p *paginadora) asegurarEspacio(alto float64) {
	if p.altura > 0 && p.altura+alto > alturaMaxPagina && alto <= alturaMaxPagina {
		p.cerrarPagina()
	}
}

// agregarTabla agrega cabecera y filas; si la tabla se parte entre páginas la
// cabecera se repite al inicio de la continuación.
func (p *paginadora) agregarTabla(filas []reporte.FilaMetrica) {
	p.agregar(altoCabeceraTabla, cabeceraTablaRow())
	for _, f := range filas {
		if p.altura+altoFilaMetrica > alturaMaxPagina {
			p.cerrarPagina()
			p.agregar(altoCabeceraTabla, cabeceraTablaRow())
		}
		p.agregar(altoFilaMetrica, filaMetricaRow(f))
	}
}

func (p *paginadora) cerrarPagina() {
	if len(p.actual) == 0 {
		return
	}
	p.todas = append(p.todas, page.New().Add(p.actual...))
	p.actual = nil
	p.altura = 0
}

func (p *paginadora) paginas() []core.Page {
	p.cerrarPagina()
	return p.todas
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func tituloRow(periodo string, generadoEn time.Time) core.Row {
	return row.New(altoTitulo).Add(
		col.New(8).Add(
			text.New("CONAP — Reporte de Cumplimiento", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Consejo Nacional de Áreas Protegidas de Guatemala", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Período: "+periodo, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Generado: "+generadoEn.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func encabezadoSeccion(s reporte.Seccion) core.Row {
	return row.New(altoEncabezado).Add(
		col.New(12).Add(
			text.New(s.GuardarecursoNombre, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
			}),
			text.New(fmt.Sprintf("Código: %s   |   Área: %s", s.Codigo, s.AreaNombre), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
	)
}

func promedioRow(promedio float64) core.Row {
	return row.New(altoPromedio).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Cumplimiento promedio del período: %.1f%%", promedio), props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorNivel(cumplimiento.Nivel(promedio)), Top: 1,
			}),
		),
	)
}

func sinMetricasRow() core.Row {
	return row.New(altoSinMetricas).Add(
		col.New(12).Add(
			text.New("Sin métricas disponibles para el período seleccionado", props.Text{
				Size: 9, Color: colorGray, Top: 2, Style: fontstyle.Italic,
			}),
		),
	)
}

func cabeceraTablaRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(altoCabeceraTabla).Add(
		h("Métrica", 5, align.Left),
		h("Meta", 2, align.Right),
		h("Actual", 2, align.Right),
		h("% Cumplimiento", 3, align.Right),
	)
}

func filaMetricaRow(f reporte.FilaMetrica) core.Row {
	return row.New(altoFilaMetrica).Add(
		col.New(5).Add(text.New(
			f.Nombre,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			f.Meta.StringFixed(0)+" "+f.Unidad,
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(2).Add(text.New(
			f.Actual.StringFixed(0),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(3).Add(text.New(
			fmt.Sprintf("%.1f%%", f.Porcentaje),
			props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorNivel(f.Nivel)},
		)),
	)
}

// colorNivel color del código de niveles de cumplimiento.
func colorNivel(nivel string) *props.Color {
	switch nivel {
	case cumplimiento.NivelAlto:
		return colorAlto
	case cumplimiento.NivelMedio:
		return colorMedio
	case cumplimiento.NivelBajo:
		return colorBajo
	default:
		return colorCritico
	}
}
