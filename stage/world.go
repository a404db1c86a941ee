package stage

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// Handle is a non-owning identifier for a GameObject in a World. Scenes hold
// handles, never objects, so a removed object leaves only dangling handles
// instead of dangling pointers.
type Handle uint64

// World is the application-level object store. It owns the GameObjects;
// everything else refers to them through handles.
type World struct {
	objects *intmap.Map[Handle, *GameObject]
	next    Handle
}

// NewWorld creates an empty object store.
func NewWorld() *World {
	return &World{
		objects: intmap.New[Handle, *GameObject](64),
	}
}

// Insert stores obj and returns its handle. Handles are never reused.
func (w *World) Insert(obj *GameObject) Handle {
	w.next++
	w.objects.Put(w.next, obj)
	return w.next
}

// Remove drops the object behind h. Handles held by scenes become dangling
// and are skipped by the processor.
func (w *World) Remove(h Handle) {
	w.objects.Del(h)
}

// Get resolves a handle to its object.
func (w *World) Get(h Handle) (*GameObject, error) {
	obj, ok := w.objects.Get(h)
	if !ok {
		return nil, fmt.Errorf("handle %d: %w", h, ErrUnknownObject)
	}
	return obj, nil
}

// Len returns the number of stored objects.
func (w *World) Len() int {
	return w.objects.Len()
}
