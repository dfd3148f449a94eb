package anim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/curvesketch/internal/anim"
	"github.com/san-kum/curvesketch/internal/config"
)

var _ = Describe("Driver", func() {
	var d *anim.Driver

	BeforeEach(func() {
		var err error
		d, err = anim.FromConfig(config.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
	})

	Context("before the first render", func() {
		It("starts with nothing revealed", func() {
			Expect(d.Reveal()).To(Equal(0))
			Expect(d.Initialized()).To(BeFalse())
		})
	})

	Context("on the first render", func() {
		It("emits the backdrop and no segments", func() {
			f := d.Render(0)
			Expect(f.Backdrop()).To(Equal(5))
			Expect(f.Segments()).To(BeZero())
			Expect(f.Commands[0].Kind).To(Equal(anim.KindClear))
			Expect(d.Initialized()).To(BeTrue())
		})
	})

	Context("while running", func() {
		BeforeEach(func() {
			d.Render(0)
		})

		It("reveals one point every two frames", func() {
			d.Advance(20)
			Expect(d.Reveal()).To(Equal(10))
			Expect(d.Render(20).Segments()).To(Equal(9))
		})

		It("never redraws the backdrop", func() {
			for frame := uint64(1); frame < 50; frame++ {
				d.Advance(frame)
				Expect(d.Render(frame).Backdrop()).To(BeZero())
			}
		})

		It("clamps at the curve length", func() {
			d.Advance(1 << 20)
			Expect(d.Reveal()).To(Equal(d.Curve().Len()))
			Expect(d.Done()).To(BeTrue())
			Expect(d.Render(1 << 20).Segments()).To(Equal(d.Curve().Len() - 1))
		})
	})

	Describe("a full run", func() {
		It("composites the backdrop once under the whole curve", func() {
			r := anim.NewRecorder()
			Expect(anim.Simulate(d, r, 400)).To(Succeed())

			var labels []string
			for _, c := range r.Commands() {
				if c.Kind == anim.KindText {
					labels = append(labels, c.Text)
				}
			}
			Expect(labels).To(ConsistOf("X", "Y"))
			Expect(r.Commands()).To(HaveLen(5 + d.Curve().Len() - 1))
		})
	})
})
