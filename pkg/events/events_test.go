package events_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/femodel/pkg/events"
	"github.com/mandelsoft/femodel/pkg/model"
)

type recorder struct {
	events []events.Event
}

func (r *recorder) HandleEvent(e events.Event) {
	r.events = append(r.events, e)
}

func ev(c model.ObjectType, id int, a events.Action) events.Event {
	return events.Event{Category: c, Id: id, Action: a}
}

type lister map[model.ObjectType][]int

func (l lister) ListObjectIds(c model.ObjectType) []int {
	return l[c]
}

var _ = Describe("event registry", func() {
	var reg events.HandlerRegistry

	BeforeEach(func() {
		reg = events.NewHandlerRegistry(lister{model.NODE: {1, 2}})
	})

	It("dispatches by category", func() {
		nodes := &recorder{}
		all := &recorder{}
		reg.RegisterHandler(nodes, false, model.NODE)
		reg.RegisterHandler(all, false)

		reg.TriggerEvent(ev(model.NODE, 1, events.CREATED))
		reg.TriggerEvent(ev(model.ELEMENT, 3, events.REMOVED))

		Expect(nodes.events).To(Equal([]events.Event{ev(model.NODE, 1, events.CREATED)}))
		Expect(all.events).To(HaveLen(2))
	})

	It("replays current objects", func() {
		r := &recorder{}
		reg.RegisterHandler(r, true, model.NODE)
		Expect(r.events).To(Equal([]events.Event{
			ev(model.NODE, 1, events.CREATED),
			ev(model.NODE, 2, events.CREATED),
		}))
	})

	It("registers a handler only once", func() {
		r := &recorder{}
		reg.RegisterHandler(r, false, model.NODE)
		reg.RegisterHandler(r, false, model.NODE)
		reg.TriggerEvent(ev(model.NODE, 1, events.CREATED))
		Expect(r.events).To(HaveLen(1))
	})

	It("unregisters", func() {
		r := &recorder{}
		reg.RegisterHandler(r, false, model.NODE)
		reg.UnregisterHandler(r, model.NODE)
		reg.TriggerEvent(ev(model.NODE, 1, events.CREATED))
		Expect(r.events).To(BeEmpty())
	})

	It("accepts functions", func() {
		var got []string
		reg.RegisterHandler(events.HandlerFunc(func(e events.Event) { got = append(got, e.String()) }), false)
		reg.TriggerEvent(events.Event{Category: model.STAGE, Action: events.CLEARED})
		Expect(got).To(Equal([]string{"STAGE cleared"}))
	})
})
