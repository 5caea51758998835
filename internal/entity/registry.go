package entity

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"

	"splatcast/internal/config"
	"splatcast/internal/render"
	"splatcast/internal/world"

	"github.com/harbdog/raycaster-go/geom"
)

var ErrUnknownEntity = errors.New("unknown entity")

// ID identifies an entity within one Registry
type ID uint64

// Entity is anything placed in the arena. Geometry lives in Bounds; the
// rest describes how it is drawn.
type Entity struct {
	ID       ID
	Kind     Kind
	Bounds   Bounds
	Sprite   string  // sprite name for the image source
	Scale    float64 // billboard height in tiles
	MapColor color.RGBA
}

// Position is the center of the entity's bounds
func (e *Entity) Position() geom.Vector2 {
	return e.Bounds.Center
}

// ImageSource resolves sprite names to images
type ImageSource interface {
	GetSprite(name string) image.Image
}

// Registry owns every entity of one arena and hands out their IDs.
// Registries never share IDs or state with each other.
type Registry struct {
	nextID   ID
	entities map[ID]*Entity
	order    []ID // spawn order
}

// NewRegistry creates an empty registry whose first ID is 1
func NewRegistry() *Registry {
	return &Registry{
		nextID:   1,
		entities: make(map[ID]*Entity),
	}
}

// Spawn stores a copy of e under a fresh ID and returns it
func (r *Registry) Spawn(e Entity) *Entity {
	e.ID = r.nextID
	r.nextID++

	entity := &e
	r.entities[entity.ID] = entity
	r.order = append(r.order, entity.ID)
	return entity
}

// Get returns the entity with the given ID
func (r *Registry) Get(id ID) (*Entity, bool) {
	entity, ok := r.entities[id]
	return entity, ok
}

// Remove deletes an entity. IDs are never reused.
func (r *Registry) Remove(id ID) bool {
	if _, ok := r.entities[id]; !ok {
		return false
	}
	delete(r.entities, id)
	for i, orderedID := range r.order {
		if orderedID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of live entities
func (r *Registry) Len() int {
	return len(r.entities)
}

// Each visits live entities in spawn order
func (r *Registry) Each(fn func(*Entity)) {
	for _, id := range r.order {
		fn(r.entities[id])
	}
}

// Move places an entity at a new center
func (r *Registry) Move(id ID, position geom.Vector2) error {
	entity, ok := r.entities[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownEntity, id)
	}
	entity.Bounds = entity.Bounds.At(position)
	return nil
}

// CanMoveTo checks whether an entity's bounds fit at position without
// overlapping a wall or another solid entity.
func (r *Registry) CanMoveTo(id ID, position geom.Vector2, grid *world.TileGrid) bool {
	entity, ok := r.entities[id]
	if !ok {
		return false
	}

	moved := entity.Bounds.At(position)
	if !moved.Clear(grid) {
		return false
	}

	for otherID, other := range r.entities {
		if otherID == id || !other.Kind.Solid() {
			continue
		}
		if moved.Intersects(other.Bounds) {
			return false
		}
	}
	return true
}

// Billboards returns one sprite per entity, in spawn order, for the
// renderer. The viewer's own entity is left out; pass 0 to keep all.
func (r *Registry) Billboards(images ImageSource, viewer ID) []render.Sprite {
	sprites := make([]render.Sprite, 0, len(r.order))
	r.Each(func(e *Entity) {
		if e.ID == viewer {
			return
		}
		sprites = append(sprites, render.Sprite{
			Position: e.Position(),
			Image:    images.GetSprite(e.Sprite),
			Scale:    e.Scale,
			MapColor: e.MapColor,
		})
	})
	return sprites
}

// SpawnMarkers places one entity at the center of every marker tile of an
// arena, as described by the arena's marker table.
func (r *Registry) SpawnMarkers(arena *world.Arena) error {
	tileSize := arena.Grid.TileSize()
	for _, marker := range arena.Markers {
		markerConfig, ok := arena.Config.Markers[string(marker.Letter)]
		if !ok {
			return fmt.Errorf("marker %q has no catalog entry", marker.Letter)
		}
		kind, err := ParseKind(markerConfig.Kind)
		if err != nil {
			return fmt.Errorf("marker %q: %w", marker.Letter, err)
		}

		scale := markerConfig.Scale
		if scale <= 0 {
			scale = 1
		}
		sprite := markerConfig.Sprite
		if sprite == "" {
			sprite = kind.String()
		}

		x, y := arena.Grid.TileCenter(marker.X, marker.Y)
		size := tileSize * 0.5
		r.Spawn(Entity{
			Kind:     kind,
			Bounds:   NewBounds(x, y, size, size),
			Sprite:   sprite,
			Scale:    scale,
			MapColor: config.RGB(markerConfig.MapColor),
		})
	}
	log.Printf("[Arena] %s: spawned %d entities", arena.Key, len(arena.Markers))
	return nil
}
