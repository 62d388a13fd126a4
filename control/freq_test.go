package control

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Freq", func() {
	It("should convert frequency to period", func() {
		Expect((50 * Hz).Period()).To(Equal(20 * time.Millisecond))
		Expect((1 * KHz).Period()).To(Equal(time.Millisecond))
	})

	It("should count cycles", func() {
		Expect((50 * Hz).Cycle(time.Second)).To(Equal(uint64(50)))
	})

	It("should compute n cycles later", func() {
		Expect((50 * Hz).NCyclesLater(3, 20*time.Millisecond)).
			To(Equal(80 * time.Millisecond))
	})
})
