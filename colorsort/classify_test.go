package colorsort

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/apexrobotics/pushback/config"
)

var _ = Describe("classifySample", func() {
	cfg := config.Default().Sort

	It("should report no ball when nothing is close", func() {
		Expect(classifySample(cfg, 255, 10, 80, 60)).To(Equal(ColorNoBall))
	})

	It("should report unknown for washed out samples", func() {
		Expect(classifySample(cfg, 50, 10, 20, 60)).To(Equal(ColorUnknown))
		Expect(classifySample(cfg, 50, 10, 80, 10)).To(Equal(ColorUnknown))
	})

	It("should classify red in both hue windows", func() {
		Expect(classifySample(cfg, 50, 10, 80, 60)).To(Equal(ColorRed))
		Expect(classifySample(cfg, 50, 345, 80, 60)).To(Equal(ColorRed))
	})

	It("should classify blue", func() {
		Expect(classifySample(cfg, 50, 220, 80, 60)).To(Equal(ColorBlue))
	})

	It("should report unknown for out of window hues", func() {
		Expect(classifySample(cfg, 50, 120, 80, 60)).To(Equal(ColorUnknown))
	})
})

var _ = Describe("shouldEject", func() {
	DescribeTable("policy decisions",
		func(mode SortingMode, color BallColor, want bool) {
			Expect(shouldEject(mode, color)).To(Equal(want))
		},
		Entry("collect red keeps red", CollectRed, ColorRed, false),
		Entry("collect red ejects blue", CollectRed, ColorBlue, true),
		Entry("collect blue ejects red", CollectBlue, ColorRed, true),
		Entry("collect blue keeps blue", CollectBlue, ColorBlue, false),
		Entry("collect all keeps everything", CollectAll, ColorBlue, false),
		Entry("eject all ejects everything", EjectAll, ColorRed, true),
	)
})

var _ = Describe("sensorChannel", func() {
	var ch *sensorChannel

	BeforeEach(func() {
		ch = newSensorChannel(3)
	})

	It("should not confirm a mixed buffer", func() {
		Expect(ch.addSample(ColorRed)).To(Equal(ColorUnknown))
		Expect(ch.addSample(ColorRed)).To(Equal(ColorUnknown))
		Expect(ch.addSample(ColorBlue)).To(Equal(ColorUnknown))
	})

	It("should confirm on the third identical sample", func() {
		Expect(ch.addSample(ColorRed)).To(Equal(ColorUnknown))
		Expect(ch.addSample(ColorRed)).To(Equal(ColorUnknown))
		Expect(ch.addSample(ColorRed)).To(Equal(ColorRed))
	})

	It("should confirm each color once across a changeover", func() {
		confirmed := []BallColor{}
		for _, c := range []BallColor{
			ColorRed, ColorRed, ColorRed,
			ColorBlue, ColorBlue, ColorBlue,
		} {
			if got := ch.addSample(c); got != ColorUnknown {
				confirmed = append(confirmed, got)
			}
		}

		Expect(confirmed).To(Equal([]BallColor{ColorRed, ColorBlue}))
	})

	It("should never confirm unknown or no ball", func() {
		for i := 0; i < 5; i++ {
			Expect(ch.addSample(ColorUnknown)).To(Equal(ColorUnknown))
			Expect(ch.addSample(ColorNoBall)).To(Equal(ColorUnknown))
		}
	})
})
