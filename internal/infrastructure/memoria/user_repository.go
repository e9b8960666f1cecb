// Package memoria implementa los puertos de persistencia sobre tablas en
// memoria sembradas al arranque. Es el driver por defecto: reproduce el
// directorio en memoria del sistema original detrás de la misma abstracción
// de repositorio que el driver de PostgreSQL.
//
// Las lecturas entregan copias (semántica de snapshot); las escrituras toman
// el lock de la tabla. El proceso HTTP es concurrente aunque el sistema
// original no lo fuera.
package memoria

import (
	"sync"

	"github.com/conap-gt/guardarecursos-api/internal/domain"
	"github.com/conap-gt/guardarecursos-api/internal/domain/entity"
	"github.com/conap-gt/guardarecursos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo tabla de usuarios en memoria.
type UserRepo struct {
	mu    sync.RWMutex
	orden []string
	porID map[string]*entity.User
}

// NewUserRepo construye la tabla vacía.
func NewUserRepo() *UserRepo {
	return &UserRepo{porID: make(map[string]*entity.User)}
}

// Create inserta un usuario; email duplicado es ErrDuplicate.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.porID[user.ID]; ok {
		return domain.ErrDuplicate
	}
	for _, u := range r.porID {
		if u.Email == user.Email {
			return domain.ErrDuplicate
		}
	}
	copia := *user
	r.porID[user.ID] = &copia
	r.orden = append(r.orden, user.ID)
	return nil
}

// GetByID devuelve una copia o (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}

// GetByEmail devuelve una copia o (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.orden {
		if r.porID[id].Email == email {
			copia := *r.porID[id]
			return &copia, nil
		}
	}
	return nil, nil
}

// Update reemplaza el registro; no existe es ErrNotFound.
func (r *UserRepo) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.porID[user.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *user
	r.porID[user.ID] = &copia
	return nil
}

// List devuelve un snapshot en orden de inserción.
func (r *UserRepo) List() ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.orden))
	for _, id := range r.orden {
		copia := *r.porID[id]
		out = append(out, &copia)
	}
	return out, nil
}
