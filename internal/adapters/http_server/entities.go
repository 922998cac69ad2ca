package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hotel_inventory/internal/app"
	"hotel_inventory/internal/domain"
)

// entityHandlers serves the plain CRUD routes of one entity kind.
type entityHandlers[T any] struct {
	kind string // "hotel", "room", ...
	svc  *app.EntityService[T]
}

func mountEntity[T any](r chi.Router, path, kind string, svc *app.EntityService[T]) {
	e := &entityHandlers[T]{kind: kind, svc: svc}
	r.Post(path, e.create)
	r.Get(path, e.list)
	r.Get(path+"/{id}", e.get)
	r.Put(path+"/{id}", e.update)
	r.Delete(path+"/{id}", e.delete)
}

func (e *entityHandlers[T]) decode(w http.ResponseWriter, r *http.Request) (T, bool) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "request body must be a JSON "+e.kind)
		return v, false
	}
	return v, true
}

func (e *entityHandlers[T]) create(w http.ResponseWriter, r *http.Request) {
	v, ok := e.decode(w, r)
	if !ok {
		return
	}
	id, err := e.svc.Create(r.Context(), v)
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusBody{Status: e.kind + " added", ID: id})
}

func (e *entityHandlers[T]) list(w http.ResponseWriter, r *http.Request) {
	out, err := e.svc.List(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeRead(w, r, out)
}

func (e *entityHandlers[T]) get(w http.ResponseWriter, r *http.Request) {
	v, err := e.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, domain.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", e.kind+" not found")
		return
	}
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeRead(w, r, v)
}

// update replaces every mutable field; an unknown id is not reported.
func (e *entityHandlers[T]) update(w http.ResponseWriter, r *http.Request) {
	v, ok := e.decode(w, r)
	if !ok {
		return
	}
	if err := e.svc.Update(r.Context(), chi.URLParam(r, "id"), v); err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusBody{Status: e.kind + " updated"})
}

func (e *entityHandlers[T]) delete(w http.ResponseWriter, r *http.Request) {
	if err := e.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusBody{Status: e.kind + " deleted"})
}
