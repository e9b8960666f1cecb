package memoria

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
)

// Repos agrupa las tablas en memoria del driver por defecto.
type Repos struct {
	Users          *UserRepo
	Guardarecursos *GuardarecursoRepo
	Areas          *AreaRepo
	Actividades    *ActividadRepo
	Evidencias     *EvidenciaRepo
	Metricas       *MetricaRepo
}

// NewRepos construye todas las tablas vacías.
func NewRepos() *Repos {
	return &Repos{
		Users:          NewUserRepo(),
		Guardarecursos: NewGuardarecursoRepo(),
		Areas:          NewAreaRepo(),
		Actividades:    NewActividadRepo(),
		Evidencias:     NewEvidenciaRepo(),
		Metricas:       NewMetricaRepo(),
	}
}

// SeedDemo siembra el directorio de demostración: cuentas en cada estado,
// áreas de CONAP, guardarecursos con y sin asignación, actividades en los
// tres estados, evidencias (incluida una con referencia rota) y métricas.
//
// Las contraseñas van en texto plano a propósito; ver entity.User.
func (r *Repos) SeedDemo() error {
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	users := []*entity.User{
		{ID: "usr-001", Email: "admin@conap.gob.gt", Password: "admin123", Nombre: "Carlos", Apellido: "Morales", Rol: entity.RolAdministrador, Estado: entity.EstadoActivo},
		{ID: "usr-002", Email: "coordinador@conap.gob.gt", Password: "coord123", Nombre: "María", Apellido: "Castillo", Rol: entity.RolCoordinador, Estado: entity.EstadoActivo},
		{ID: "usr-003", Email: "jperez@conap.gob.gt", Password: "guarda123", Nombre: "Juan", Apellido: "Pérez", Rol: entity.RolGuardarecurso, Estado: entity.EstadoActivo, GuardarecursoID: "gr-001"},
		{ID: "usr-004", Email: "lgomez@conap.gob.gt", Password: "guarda123", Nombre: "Lucía", Apellido: "Gómez", Rol: entity.RolGuardarecurso, Estado: entity.EstadoActivo, GuardarecursoID: "gr-002"},
		{ID: "usr-005", Email: "suspendido@conap.gob.gt", Password: "guarda123", Nombre: "Pedro", Apellido: "Xol", Rol: entity.RolGuardarecurso, Estado: entity.EstadoSuspendido, GuardarecursoID: "gr-003"},
		{ID: "usr-006", Email: "baja@conap.gob.gt", Password: "guarda123", Nombre: "Rosa", Apellido: "Choc", Rol: entity.RolGuardarecurso, Estado: entity.EstadoDesactivado},
	}
	for _, u := range users {
		u.CreatedAt, u.UpdatedAt = base, base
		if err := r.Users.Create(u); err != nil {
			return err
		}
	}

	areas := []*entity.AreaProtegida{
		{ID: "area-001", Nombre: "Parque Nacional Tikal", Departamento: "Petén", Descripcion: "Patrimonio mixto de la humanidad, selva y ciudad maya", Latitud: 17.2221, Longitud: -89.6237, Ecosistemas: []string{"Bosque tropical húmedo", "Humedal"}, Extension: decimal.NewFromInt(57600), Estado: entity.EstadoActivo},
		{ID: "area-002", Nombre: "Biotopo del Quetzal", Departamento: "Baja Verapaz", Descripcion: "Bosque nuboso, hábitat del quetzal", Latitud: 15.2126, Longitud: -90.2177, Ecosistemas: []string{"Bosque nuboso"}, Extension: decimal.NewFromInt(1044), Estado: entity.EstadoActivo},
		{ID: "area-003", Nombre: "Parque Nacional Laguna Lachuá", Departamento: "Alta Verapaz", Descripcion: "Laguna kárstica y bosque tropical", Latitud: 15.9186, Longitud: -90.6731, Ecosistemas: []string{"Humedal", "Bosque tropical húmedo"}, Extension: decimal.NewFromInt(14500), Estado: entity.EstadoActivo},
		{ID: "area-004", Nombre: "Reserva Cerro San Gil", Departamento: "Izabal", Descripcion: "Reserva hídrica del Caribe guatemalteco", Latitud: 15.6672, Longitud: -88.7564, Ecosistemas: []string{"Bosque lluvioso"}, Extension: decimal.NewFromInt(47433), Estado: entity.EstadoDesactivado},
	}
	for _, a := range areas {
		a.CreatedAt, a.UpdatedAt = base, base
		if err := r.Areas.Create(a); err != nil {
			return err
		}
	}

	guardas := []*entity.Guardarecurso{
		{ID: "gr-001", Codigo: "GR-0001", Nombre: "Juan", Apellido: "Pérez", DPI: "1234567890101", Telefono: "5555-0001", Email: "jperez@conap.gob.gt", AreaAsignadaID: "area-001", Estado: entity.EstadoActivo, FechaIngreso: base.AddDate(-3, 0, 0)},
		{ID: "gr-002", Codigo: "GR-0002", Nombre: "Lucía", Apellido: "Gómez", DPI: "2234567890101", Telefono: "5555-0002", Email: "lgomez@conap.gob.gt", AreaAsignadaID: "area-002", Estado: entity.EstadoActivo, FechaIngreso: base.AddDate(-1, -6, 0)},
		{ID: "gr-003", Codigo: "GR-0003", Nombre: "Pedro", Apellido: "Xol", DPI: "3234567890101", Telefono: "5555-0003", Email: "suspendido@conap.gob.gt", Estado: entity.EstadoSuspendido, FechaIngreso: base.AddDate(-5, 0, 0)},
	}
	for _, g := range guardas {
		g.CreatedAt, g.UpdatedAt = base, base
		if err := r.Guardarecursos.Create(g); err != nil {
			return err
		}
	}

	actividades := []*entity.Actividad{
		{ID: "act-001", Titulo: "Patrullaje sendero norte", Tipo: "patrullaje", GuardarecursoID: "gr-001", AreaID: "area-001", Fecha: base.AddDate(0, 0, 3), Estado: entity.ActividadProgramada},
		{ID: "act-002", Titulo: "Monitoreo de quetzales", Tipo: "monitoreo", GuardarecursoID: "gr-002", AreaID: "area-002", Fecha: base.AddDate(0, 0, 1), Estado: entity.ActividadEnProgreso},
		{ID: "act-003", Titulo: "Mantenimiento de brechas", Tipo: "mantenimiento", GuardarecursoID: "gr-001", AreaID: "area-001", Fecha: base.AddDate(0, 0, -7), Estado: entity.ActividadCompletada},
	}
	for _, a := range actividades {
		a.CreatedAt, a.UpdatedAt = base, base
		if err := r.Actividades.Create(a); err != nil {
			return err
		}
	}

	evidencias := []*entity.EvidenciaFotografica{
		{ID: "evi-001", Titulo: "Huella de jaguar", Clasificacion: "fauna", Latitud: 17.23, Longitud: -89.61, FechaCaptura: base.AddDate(0, 0, -6), ActividadID: "act-003", GuardarecursoID: "gr-001"},
		{ID: "evi-002", Titulo: "Tala ilegal detectada", Clasificacion: "amenaza", Latitud: 15.21, Longitud: -90.22, FechaCaptura: base.AddDate(0, 0, -2), ActividadID: "act-002", GuardarecursoID: "gr-002"},
		// Referencia rota a propósito: la actividad act-999 no existe.
		{ID: "evi-003", Titulo: "Nido de quetzal", Clasificacion: "fauna", Latitud: 15.22, Longitud: -90.21, FechaCaptura: base.AddDate(0, 0, -1), ActividadID: "act-999", GuardarecursoID: "gr-002"},
	}
	for _, e := range evidencias {
		e.CreatedAt = base
		if err := r.Evidencias.Create(e); err != nil {
			return err
		}
	}

	metricas := []*entity.MetricaCumplimiento{
		{ID: "met-001", Nombre: "Kilómetros patrullados", Meta: decimal.NewFromInt(120), Actual: decimal.NewFromInt(96), Unidad: "km", Periodicidad: entity.PeriodicidadMensual, GuardarecursoID: "gr-001"},
		{ID: "met-002", Nombre: "Reportes de campo", Meta: decimal.NewFromInt(8), Actual: decimal.NewFromInt(8), Unidad: "reportes", Periodicidad: entity.PeriodicidadMensual, GuardarecursoID: "gr-001"},
		{ID: "met-003", Nombre: "Kilómetros patrullados", Meta: decimal.NewFromInt(120), Actual: decimal.NewFromInt(60), Unidad: "km", Periodicidad: entity.PeriodicidadMensual, GuardarecursoID: "gr-002"},
		{ID: "met-004", Nombre: "Monitoreos de especies", Meta: decimal.NewFromInt(4), Actual: decimal.NewFromInt(6), Unidad: "monitoreos", Periodicidad: entity.PeriodicidadTrimestral, GuardarecursoID: "gr-002"},
		{ID: "met-005", Nombre: "Visitantes atendidos", Meta: decimal.NewFromInt(500), Actual: decimal.NewFromInt(210), Unidad: "visitantes", Periodicidad: entity.PeriodicidadMensual},
	}
	for _, m := range metricas {
		m.CreatedAt, m.UpdatedAt = base, base
		if err := r.Metricas.Create(m); err != nil {
			return err
		}
	}

	return nil
}
