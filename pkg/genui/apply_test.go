package genui_test

import (
	"github.com/lexiconlabs/counsel/pkg/genui"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Apply", func() {
	var reg *genui.Registry

	start := func(streamID string) {
		genui.Apply(reg, genui.StreamEvent{StreamID: streamID, Action: genui.ActionStart, Agent: "research"})
	}

	component := func(streamID, id string, data map[string]any) {
		genui.Apply(reg, genui.StreamEvent{
			StreamID:  streamID,
			Action:    genui.ActionComponent,
			Component: &genui.Component{ID: id, Type: genui.KindStatusCard, Data: data},
		})
	}

	BeforeEach(func() {
		reg = genui.NewRegistry()
	})

	Describe("stream_start", func() {
		It("should create an entry with an empty component list", func() {
			start("s1")

			state, exists := reg.Get("s1")
			Expect(exists).To(BeTrue())
			Expect(state.Components).To(BeEmpty())
			Expect(state.IsStreaming).To(BeTrue())
			Expect(state.Agent).To(Equal("research"))
		})

		It("should discard accumulated components when restarted", func() {
			start("s1")
			component("s1", "c1", map[string]any{"title": "x"})

			start("s1")

			state, _ := reg.Get("s1")
			Expect(state.Components).To(BeEmpty())
			Expect(state.IsStreaming).To(BeTrue())
		})

		It("should carry expected types and metadata through", func() {
			genui.Apply(reg, genui.StreamEvent{
				StreamID:      "s1",
				Action:        genui.ActionStart,
				ExpectedTypes: []genui.Kind{genui.KindCaseCard, genui.KindCaseCard},
				Metadata:      map[string]any{"matter": "M-42"},
			})

			state, _ := reg.Get("s1")
			Expect(state.ExpectedTypes).To(Equal([]genui.Kind{genui.KindCaseCard, genui.KindCaseCard}))
			Expect(state.Metadata).To(HaveKeyWithValue("matter", "M-42"))
		})
	})

	Describe("stream_component", func() {
		It("should append components in arrival order", func() {
			start("s1")
			component("s1", "c1", nil)
			component("s1", "c2", nil)
			component("s1", "c3", nil)

			state, _ := reg.Get("s1")
			Expect(state.Components).To(HaveLen(3))
			Expect(state.Components[0].ID).To(Equal("c1"))
			Expect(state.Components[1].ID).To(Equal("c2"))
			Expect(state.Components[2].ID).To(Equal("c3"))
		})

		It("should drop components for an unknown stream", func() {
			component("missing", "c1", nil)

			_, exists := reg.Get("missing")
			Expect(exists).To(BeFalse())
		})

		It("should drop events without a component payload", func() {
			start("s1")
			genui.Apply(reg, genui.StreamEvent{StreamID: "s1", Action: genui.ActionComponent})

			state, _ := reg.Get("s1")
			Expect(state.Components).To(BeEmpty())
		})

		It("should allow duplicate component ids to coexist", func() {
			start("s1")
			component("s1", "c1", map[string]any{"n": 1})
			component("s1", "c1", map[string]any{"n": 2})

			state, _ := reg.Get("s1")
			Expect(state.Components).To(HaveLen(2))
		})
	})

	Describe("stream_delta", func() {
		It("should shallow-merge into the targeted component", func() {
			start("s1")
			component("s1", "c1", map[string]any{"title": "x", "count": 1})

			genui.Apply(reg, genui.StreamEvent{
				StreamID:    "s1",
				Action:      genui.ActionDelta,
				ComponentID: "c1",
				Delta:       map[string]any{"subtitle": "y"},
			})

			state, _ := reg.Get("s1")
			Expect(state.Components[0].Data).To(Equal(map[string]any{"title": "x", "count": 1, "subtitle": "y"}))
		})

		It("should replace nested maps wholesale rather than combining them", func() {
			start("s1")
			component("s1", "c1", map[string]any{"a": map[string]any{"x": 1}})

			genui.Apply(reg, genui.StreamEvent{
				StreamID:    "s1",
				Action:      genui.ActionDelta,
				ComponentID: "c1",
				Delta:       map[string]any{"a": map[string]any{"y": 2}},
			})

			state, _ := reg.Get("s1")
			Expect(state.Components[0].Data["a"]).To(Equal(map[string]any{"y": 2}))
		})

		It("should leave the stream unchanged for an unknown component id", func() {
			start("s1")
			component("s1", "c1", map[string]any{"title": "x"})

			genui.Apply(reg, genui.StreamEvent{
				StreamID:    "s1",
				Action:      genui.ActionDelta,
				ComponentID: "ghost",
				Delta:       map[string]any{"title": "y"},
			})

			state, _ := reg.Get("s1")
			Expect(state.Components).To(HaveLen(1))
			Expect(state.Components[0].Data).To(Equal(map[string]any{"title": "x"}))
		})

		It("should no-op for an unknown stream", func() {
			Expect(func() {
				genui.Apply(reg, genui.StreamEvent{
					StreamID:    "missing",
					Action:      genui.ActionDelta,
					ComponentID: "c1",
					Delta:       map[string]any{"title": "y"},
				})
			}).ToNot(Panic())
		})

		It("should target the first match when duplicate ids exist", func() {
			start("s1")
			component("s1", "c1", map[string]any{"n": 1})
			component("s1", "c1", map[string]any{"n": 2})

			genui.Apply(reg, genui.StreamEvent{
				StreamID:    "s1",
				Action:      genui.ActionDelta,
				ComponentID: "c1",
				Delta:       map[string]any{"hit": true},
			})

			state, _ := reg.Get("s1")
			Expect(state.Components[0].Data).To(HaveKeyWithValue("hit", true))
			Expect(state.Components[1].Data).ToNot(HaveKey("hit"))
		})

		It("should drop deltas without a payload", func() {
			start("s1")
			component("s1", "c1", map[string]any{"title": "x"})

			genui.Apply(reg, genui.StreamEvent{StreamID: "s1", Action: genui.ActionDelta, ComponentID: "c1"})

			state, _ := reg.Get("s1")
			Expect(state.Components[0].Data).To(Equal(map[string]any{"title": "x"}))
		})
	})

	Describe("stream_end", func() {
		It("should flip streaming off and leave components untouched", func() {
			start("s1")
			component("s1", "c1", map[string]any{"title": "x"})
			before, _ := reg.Get("s1")
			componentsBefore := append([]genui.Component{}, before.Components...)

			genui.Apply(reg, genui.StreamEvent{StreamID: "s1", Action: genui.ActionEnd})

			state, _ := reg.Get("s1")
			Expect(state.IsStreaming).To(BeFalse())
			Expect(state.Components).To(Equal(componentsBefore))
		})

		It("should no-op for an unknown stream", func() {
			Expect(func() {
				genui.Apply(reg, genui.StreamEvent{StreamID: "missing", Action: genui.ActionEnd})
			}).ToNot(Panic())
		})
	})

	Describe("unknown actions", func() {
		It("should be dropped without touching the registry", func() {
			start("s1")
			genui.Apply(reg, genui.StreamEvent{StreamID: "s1", Action: "stream_destroy"})

			state, exists := reg.Get("s1")
			Expect(exists).To(BeTrue())
			Expect(state.IsStreaming).To(BeTrue())
		})
	})

	Describe("end to end", func() {
		It("should project the shallow-merged document after a full turn", func() {
			genui.Apply(reg, genui.StreamEvent{StreamID: "s1", Action: genui.ActionStart, Agent: "A"})
			genui.Apply(reg, genui.StreamEvent{
				StreamID:  "s1",
				Action:    genui.ActionComponent,
				Component: &genui.Component{ID: "c1", Type: genui.KindStatusCard, Data: map[string]any{"data": map[string]any{"title": "x"}}},
			})
			genui.Apply(reg, genui.StreamEvent{
				StreamID:    "s1",
				Action:      genui.ActionDelta,
				ComponentID: "c1",
				Delta:       map[string]any{"data": map[string]any{"subtitle": "y"}},
			})

			state, _ := reg.Get("s1")
			doc := genui.Project(state)
			Expect(doc.Components).To(HaveLen(1))
			Expect(doc.Components[0].Data["data"]).To(Equal(map[string]any{"subtitle": "y"}))
		})
	})
})
