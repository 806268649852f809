package events

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/mandelsoft/logging"

	"github.com/mandelsoft/femodel/pkg/model"
)

var REALM = logging.DefineRealm("femodel/events", "model change notification")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)

// Action describes the kind of change.
type Action string

const (
	CREATED  Action = "created"
	REMOVED  Action = "removed"
	CLEARED  Action = "cleared"
	LOADED   Action = "loaded"
	SELECTED Action = "selected"
)

// Event describes a change of a model object or
// a complete category (Id is 0).
type Event struct {
	Category model.ObjectType
	Id       int
	Action   Action
}

func (e Event) String() string {
	if e.Id == 0 {
		return fmt.Sprintf("%s %s", e.Category, e.Action)
	}
	return fmt.Sprintf("%s %d %s", e.Category, e.Id, e.Action)
}

// ObjectLister lists the ids of the actual objects
// of a category.
type ObjectLister interface {
	ListObjectIds(category model.ObjectType) []int
}

type EventHandler interface {
	HandleEvent(Event)
}

// HandlerFunc is a function usable as EventHandler.
type HandlerFunc func(Event)

func (f HandlerFunc) HandleEvent(e Event) {
	f(e)
}

type HandlerRegistration interface {
	RegisterHandler(h EventHandler, current bool, categories ...model.ObjectType)
	UnregisterHandler(h EventHandler, categories ...model.ObjectType)
}

type HandlerRegistry interface {
	HandlerRegistration
	EventHandler

	TriggerEvent(Event)
}

type eventhandlers []EventHandler

// registry dispatches events synchronously in
// registration order. Handlers registered for the empty
// category receive all events.
type registry struct {
	types  map[model.ObjectType]eventhandlers
	lister ObjectLister
}

var _ HandlerRegistry = (*registry)(nil)

// NewHandlerRegistry provides a handler registry. The lister is
// used to replay the actual objects for handlers registered with
// current=true. It may be nil.
func NewHandlerRegistry(l ObjectLister) HandlerRegistry {
	return &registry{
		types:  map[model.ObjectType]eventhandlers{},
		lister: l,
	}
}

func (r *registry) HandleEvent(e Event) {
	r.TriggerEvent(e)
}

func index(list []EventHandler, h EventHandler) int {
	return slices.IndexFunc(list, func(e EventHandler) bool { return same(e, h) })
}

// same compares handlers. Function handlers are compared
// by their code pointer.
func same(a, b EventHandler) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Kind() == reflect.Func {
		return va.Pointer() == vb.Pointer()
	}
	if !va.Type().Comparable() {
		return false
	}
	return a == b
}

// RegisterHandler registers a handler for the given categories.
// With current=true, the handler is called with a created event
// for every actual object of the categories.
func (r *registry) RegisterHandler(h EventHandler, current bool, categories ...model.ObjectType) {
	if len(categories) == 0 {
		categories = []model.ObjectType{""}
	}
	for _, c := range categories {
		handlers := r.types[c]
		if index(handlers, h) >= 0 {
			continue
		}
		r.types[c] = append(handlers, h)
		if current && r.lister != nil && c != "" {
			for _, id := range r.lister.ListObjectIds(c) {
				h.HandleEvent(Event{Category: c, Id: id, Action: CREATED})
			}
		}
	}
}

func (r *registry) UnregisterHandler(h EventHandler, categories ...model.ObjectType) {
	if len(categories) == 0 {
		categories = []model.ObjectType{""}
	}
	for _, c := range categories {
		handlers := r.types[c]
		if i := index(handlers, h); i >= 0 {
			handlers = slices.Delete(handlers, i, i+1)
		}
		if len(handlers) > 0 {
			r.types[c] = handlers
		} else {
			delete(r.types, c)
		}
	}
}

func (r *registry) getHandlers(e Event) []EventHandler {
	var handlers []EventHandler
	handlers = append(handlers, r.types[""]...)
	if e.Category != "" {
		handlers = append(handlers, r.types[e.Category]...)
	}
	return handlers
}

func (r *registry) TriggerEvent(e Event) {
	handlers := r.getHandlers(e)
	if len(handlers) > 0 {
		log.Trace("dispatching {{event}} to {{count}} handler(s)", "event", e.String(), "count", len(handlers))
	}
	for _, h := range handlers {
		h.HandleEvent(e)
	}
}
