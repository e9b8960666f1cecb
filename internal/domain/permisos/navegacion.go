package permisos

// ItemNavegacion entrada del menú lateral de la SPA.
type ItemNavegacion struct {
	Modulo   string `json:"modulo"`
	Etiqueta string `json:"etiqueta"`
	Ruta     string `json:"ruta"`
}

// CategoriaNavegacion agrupación ordenada de items del menú.
type CategoriaNavegacion struct {
	Titulo string           `json:"titulo"`
	Items  []ItemNavegacion `json:"items"`
}

// NavegacionPorDefecto árbol completo del menú, antes de filtrar por rol.
func NavegacionPorDefecto() []CategoriaNavegacion {
	return []CategoriaNavegacion{
		{
			Titulo: "Principal",
			Items: []ItemNavegacion{
				{Modulo: ModuloDashboard, Etiqueta: "Panel de Control", Ruta: "/dashboard"},
			},
		},
		{
			Titulo: "Gestión",
			Items: []ItemNavegacion{
				{Modulo: ModuloGuardarecursos, Etiqueta: "Guardarecursos", Ruta: "/guardarecursos"},
				{Modulo: ModuloAreas, Etiqueta: "Áreas Protegidas", Ruta: "/areas"},
				{Modulo: ModuloActividades, Etiqueta: "Actividades", Ruta: "/actividades"},
			},
		},
		{
			Titulo: "Monitoreo",
			Items: []ItemNavegacion{
				{Modulo: ModuloEvidencias, Etiqueta: "Evidencia Fotográfica", Ruta: "/evidencias"},
				{Modulo: ModuloCumplimiento, Etiqueta: "Cumplimiento", Ruta: "/cumplimiento"},
				{Modulo: ModuloReportes, Etiqueta: "Reportes", Ruta: "/reportes"},
			},
		},
		{
			Titulo: "Administración",
			Items: []ItemNavegacion{
				{Modulo: ModuloUsuarios, Etiqueta: "Usuarios", Ruta: "/usuarios"},
				{Modulo: ModuloPerfil, Etiqueta: "Mi Perfil", Ruta: "/perfil"},
			},
		},
	}
}

// FiltrarNavegacion devuelve el árbol con los items que el rol no puede ver
// removidos, preservando el orden original. Una categoría que queda sin items
// se descarta completa. No muta el árbol de entrada.
func FiltrarNavegacion(rol string, categorias []CategoriaNavegacion) []CategoriaNavegacion {
	resultado := make([]CategoriaNavegacion, 0, len(categorias))
	for _, cat := range categorias {
		items := make([]ItemNavegacion, 0, len(cat.Items))
		for _, item := range cat.Items {
			if Resolver(rol, item.Modulo).Ver {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			continue
		}
		resultado = append(resultado, CategoriaNavegacion{Titulo: cat.Titulo, Items: items})
	}
	return resultado
}
