package contacts

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/contactos-api/internal/domain"
	"github.com/jhoicas/contactos-api/internal/domain/entity"
	"github.com/jhoicas/contactos-api/internal/domain/repository"
)

// CategoryResolver resuelve metadatos de categorías para el directorio y el ciclo de vida.
// Trabaja sobre la tabla completa cacheada; si la caché falla consulta el store directamente.
type CategoryResolver struct {
	repo  repository.CategoryRepository
	cache CategoryCache
	log   zerolog.Logger

	// gen cambia en cada Invalidate; una carga iniciada antes no se guarda en caché.
	mu  sync.Mutex
	gen uint64
}

// NewCategoryResolver construye el resolver. cache puede ser nil (sin caché).
func NewCategoryResolver(repo repository.CategoryRepository, cache CategoryCache, log zerolog.Logger) *CategoryResolver {
	if cache == nil {
		cache = nopCache{}
	}
	return &CategoryResolver{repo: repo, cache: cache, log: log}
}

// table devuelve la tabla completa, desde la caché o desde el store.
func (r *CategoryResolver) table(ctx context.Context) ([]entity.Category, error) {
	cached, ok, err := r.cache.Load(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("caché de categorías no disponible")
	}
	if ok {
		return cached, nil
	}
	gen := r.generation()
	list, err := r.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	out := make([]entity.Category, 0, len(list))
	for _, c := range list {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gen != gen {
		r.log.Debug().Msg("categorías modificadas durante la carga, no se cachea la tabla")
		return out, nil
	}
	if err := r.cache.Store(ctx, out); err != nil {
		r.log.Warn().Err(err).Msg("guardar categorías en caché")
	}
	return out, nil
}

func (r *CategoryResolver) generation() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen
}

// ListByDomain categorías del dominio ordenadas por ID (para listas de selección).
func (r *CategoryResolver) ListByDomain(ctx context.Context, d entity.Domain) ([]entity.Category, error) {
	if !d.Valid() {
		return nil, domain.Validationf("dominio desconocido: %q", d)
	}
	all, err := r.table(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Category, 0)
	for _, c := range all {
		if c.Domain == d {
			out = append(out, c)
		}
	}
	return out, nil
}

// ResolveOne obtiene una categoría por ID. Devuelve domain.ErrNotFound si no existe.
func (r *CategoryResolver) ResolveOne(ctx context.Context, id int64) (*entity.Category, error) {
	all, err := r.table(ctx)
	if err != nil {
		r.log.Warn().Err(err).Int64("category_id", id).Msg("tabla de categorías no disponible, consulta directa")
	}
	for _, c := range all {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	c, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolver categoría %d: %w", id, err)
	}
	if all != nil {
		// La tabla cacheada no tenía la categoría: quedó desactualizada.
		r.Invalidate(ctx)
	}
	return c, nil
}

// ResolveMany resuelve un conjunto de IDs; los que no existen quedan fuera del mapa.
// Los IDs ausentes de la tabla se piden en una sola llamada por lote.
func (r *CategoryResolver) ResolveMany(ctx context.Context, ids []int64) (map[int64]entity.Category, error) {
	out := make(map[int64]entity.Category, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	all, err := r.table(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("tabla de categorías no disponible, consulta por lote")
	}
	index := make(map[int64]entity.Category, len(all))
	for _, c := range all {
		index[c.ID] = c
	}
	var missing []int64
	for _, id := range uniqueIDs(ids) {
		if c, ok := index[id]; ok {
			out[id] = c
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return out, nil
	}
	fetched, err := r.repo.ListByIDs(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("categorías por lote: %w", err)
	}
	for _, c := range fetched {
		out[c.ID] = *c
	}
	if len(fetched) > 0 && all != nil {
		r.Invalidate(ctx)
	}
	return out, nil
}

// BuildDescriptionMap ID → descripción (o nombre si no hay descripción).
// Los IDs que no resuelven simplemente no aparecen.
func (r *CategoryResolver) BuildDescriptionMap(ctx context.Context, ids []int64) (map[int64]string, error) {
	resolved, err := r.ResolveMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]string, len(resolved))
	for id, c := range resolved {
		out[id] = c.Label()
	}
	return out, nil
}

// Invalidate descarta la tabla cacheada. Los fallos solo se registran.
// Solo protege a este proceso: otra réplica puede dejar en Redis una tabla vieja
// hasta que venza el TTL.
func (r *CategoryResolver) Invalidate(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	if err := r.cache.Invalidate(ctx); err != nil {
		r.log.Warn().Err(err).Msg("invalidar caché de categorías")
	}
}
