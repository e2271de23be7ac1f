package genui_test

import (
	"github.com/lexiconlabs/counsel/pkg/genui"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reap", func() {
	var reg *genui.Registry

	addStream := func(id string, streaming bool) {
		reg.Set(id, &genui.StreamState{StreamID: id, IsStreaming: streaming})
	}

	BeforeEach(func() {
		reg = genui.NewRegistry()
	})

	It("should remove exactly the finished entries", func() {
		addStream("live1", true)
		addStream("done1", false)
		addStream("live2", true)
		addStream("done2", false)

		reaped := genui.Reap(reg)

		Expect(reaped).To(ConsistOf("done1", "done2"))
		Expect(reg.Entries()).To(ConsistOf("live1", "live2"))
	})

	It("should be idempotent", func() {
		addStream("done1", false)

		Expect(genui.Reap(reg)).To(ConsistOf("done1"))
		Expect(genui.Reap(reg)).To(BeEmpty())
	})

	It("should do nothing on an empty registry", func() {
		Expect(genui.Reap(reg)).To(BeEmpty())
		Expect(reg.Len()).To(BeZero())
	})

	It("should leave a stream finished after reap untouched until the next call", func() {
		addStream("live1", true)
		genui.Reap(reg)

		state, _ := reg.Get("live1")
		state.IsStreaming = false

		Expect(genui.Reap(reg)).To(ConsistOf("live1"))
	})
})
