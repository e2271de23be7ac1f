package genui_test

import (
	"time"

	"github.com/lexiconlabs/counsel/pkg/genui"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Expired", func() {
	var deadline time.Time

	docExpiring := func(v any) genui.Document {
		return genui.Project(&genui.StreamState{
			StreamID:    "s1",
			IsStreaming: true,
			Metadata:    map[string]any{genui.MetadataExpiresAt: v},
		})
	}

	BeforeEach(func() {
		deadline = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	})

	It("should not expire a document without a deadline", func() {
		doc := genui.Project(&genui.StreamState{StreamID: "s1", IsStreaming: true})
		Expect(genui.Expired(doc, deadline.Add(time.Hour))).To(BeFalse())
	})

	It("should forward interactions before the deadline", func() {
		Expect(genui.Expired(docExpiring(deadline), deadline.Add(-time.Second))).To(BeFalse())
	})

	It("should drop interactions after the deadline", func() {
		Expect(genui.Expired(docExpiring(deadline), deadline.Add(time.Second))).To(BeTrue())
	})

	It("should still forward at exactly the deadline", func() {
		Expect(genui.Expired(docExpiring(deadline), deadline)).To(BeFalse())
	})

	It("should accept RFC 3339 strings from the wire", func() {
		doc := docExpiring(deadline.Format(time.RFC3339))
		Expect(genui.Expired(doc, deadline.Add(time.Minute))).To(BeTrue())
		Expect(genui.Expired(doc, deadline.Add(-time.Minute))).To(BeFalse())
	})

	It("should accept unix milliseconds from the wire", func() {
		doc := docExpiring(float64(deadline.UnixMilli()))
		Expect(genui.Expired(doc, deadline.Add(time.Minute))).To(BeTrue())
	})

	It("should treat unparseable deadlines as absent", func() {
		Expect(genui.Expired(docExpiring("next thursday"), deadline)).To(BeFalse())
		Expect(genui.Expired(docExpiring([]string{"no"}), deadline)).To(BeFalse())
	})
})
