package colorsort

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"

	"github.com/apexrobotics/pushback/config"
	"github.com/apexrobotics/pushback/hardware"
	"github.com/apexrobotics/pushback/indexer"
)

var blueReading = hardware.Reading{
	Proximity: 50, Hue: 220, Saturation: 80, Brightness: 60}

var redReading = hardware.Reading{
	Proximity: 50, Hue: 10, Saturation: 80, Brightness: 60}

var _ = Describe("Controller", func() {
	var (
		cfg       config.Config
		actuators *hardware.BenchActuators
		sensors   *hardware.BenchSensors
		scorer    *indexer.Controller
		sorter    *Controller
		now       time.Duration
	)

	tick := func() {
		now += 20 * time.Millisecond
		scorer.Tick(now)
		sorter.Tick(now)
	}

	ticks := func(n int) {
		for i := 0; i < n; i++ {
			tick()
		}
	}

	BeforeEach(func() {
		cfg = config.Default()
		actuators = hardware.NewBenchActuators()
		sensors = hardware.NewBenchSensors()
		now = 0

		clock := clockFunc(func() time.Duration { return now })
		scorer = indexer.NewController(
			"scorer", cfg.Indexer, actuators, nil, nil, clock)
		actuators.SetCoupling(hardware.CouplingScorer)

		handle, err := hardware.OpenSensors(sensors)
		Expect(err).ToNot(HaveOccurred())

		sorter = NewController("sorter", cfg.Sort, handle, scorer)
		sorter.SetSortingMode(CollectRed)
	})

	It("should confirm a color after the debounce depth", func() {
		sensors.SetReading(hardware.Checkpoint1, blueReading)

		ticks(2)
		Expect(sorter.LastColor()).To(Equal(ColorUnknown))

		tick()
		Expect(sorter.LastColor()).To(Equal(ColorBlue))
		Expect(sorter.Statistics().BlueDetected).To(Equal(1))
	})

	It("should not eject a wanted color", func() {
		sensors.SetReading(hardware.Checkpoint1, redReading)
		ticks(3)
		sensors.ClearChannel(hardware.Checkpoint1)
		sensors.SetReading(hardware.Checkpoint2, redReading)
		ticks(3)

		Expect(sorter.Ejecting()).To(BeFalse())
		Expect(scorer.ScoringActive()).To(BeFalse())
	})

	It("should eject an unwanted ball at the downstream checkpoint", func() {
		sensors.SetReading(hardware.Checkpoint1, blueReading)
		ticks(3)
		Expect(sorter.LastColor()).To(Equal(ColorBlue))
		Expect(sorter.Ejecting()).To(BeFalse())

		sensors.ClearChannel(hardware.Checkpoint1)
		sensors.SetReading(hardware.Checkpoint2, blueReading)
		tick()

		Expect(sorter.Ejecting()).To(BeTrue())
		Expect(scorer.ScoringActive()).To(BeTrue())
		Expect(scorer.Mode()).To(Equal(indexer.ModeMidGoal))
		Expect(scorer.Direction()).To(Equal(indexer.DirectionBack))
		Expect(sorter.Statistics().Ejected).To(Equal(1))
	})

	It("should stop the ejection and reset detection after the duration",
		func() {
			sensors.SetReading(hardware.Checkpoint1, blueReading)
			ticks(3)
			sensors.ClearChannel(hardware.Checkpoint1)
			sensors.SetReading(hardware.Checkpoint2, blueReading)
			tick()
			Expect(sorter.Ejecting()).To(BeTrue())

			sensors.ClearChannel(hardware.Checkpoint2)
			ticks(int(cfg.Sort.EjectDuration/(20*time.Millisecond)) + 1)

			Expect(sorter.Ejecting()).To(BeFalse())
			Expect(scorer.ScoringActive()).To(BeFalse())
			Expect(actuators.AllStopped()).To(BeTrue())
			Expect(sorter.LastColor()).To(Equal(ColorUnknown))
			Expect(sorter.BallDetected()).To(BeFalse())

			// Stopping again with no active ejection changes nothing.
			sorter.stopEjection()
			Expect(sorter.Ejecting()).To(BeFalse())
			Expect(sorter.Statistics().Ejected).To(Equal(1))
		})

	It("should not re-detect the just ejected ball", func() {
		sensors.SetReading(hardware.Checkpoint1, blueReading)
		ticks(3)
		sensors.ClearChannel(hardware.Checkpoint1)
		sensors.SetReading(hardware.Checkpoint2, blueReading)
		tick()

		sensors.ClearChannel(hardware.Checkpoint2)
		ticks(int(cfg.Sort.EjectDuration/(20*time.Millisecond)) + 1)

		ticks(5)
		Expect(sorter.Ejecting()).To(BeFalse())
		Expect(sorter.Statistics().Ejected).To(Equal(1))
	})

	It("should infer the travel direction from trigger order", func() {
		sensors.SetReading(hardware.Checkpoint1, redReading)
		tick()
		sensors.SetReading(hardware.Checkpoint2, redReading)
		tick()

		Expect(sorter.LastDirection()).To(Equal(DirectionForward))
	})

	It("should report a single triggered checkpoint as stationary", func() {
		sensors.SetReading(hardware.Checkpoint1, redReading)
		tick()

		Expect(sorter.LastDirection()).To(Equal(DirectionStationary))
	})

	It("should clear a checkpoint stuck past the passage timeout", func() {
		sensors.SetReading(hardware.Checkpoint1, blueReading)
		ticks(int(cfg.Sort.PassageTimeout/(20*time.Millisecond)) + 2)

		Expect(sorter.BallDetected()).To(BeFalse())
	})

	It("should clamp the ejection duration", func() {
		Expect(sorter.SetEjectionDuration(10 * time.Millisecond)).
			To(Equal(cfg.Sort.EjectMinDuration))
		Expect(sorter.SetEjectionDuration(10 * time.Second)).
			To(Equal(cfg.Sort.EjectMaxDuration))
		Expect(sorter.SetEjectionDuration(700 * time.Millisecond)).
			To(Equal(700 * time.Millisecond))
	})

	It("should eject on the manual trigger without confirmation", func() {
		sorter.TriggerEjection()
		tick()

		Expect(sorter.Ejecting()).To(BeTrue())
		Expect(scorer.Mode()).To(Equal(indexer.ModeMidGoal))
	})

	It("should be a no-op without sensors", func() {
		deaf := NewController("deaf", cfg.Sort, hardware.SensorHandle{}, scorer)
		deaf.TriggerEjection()

		deaf.Tick(20 * time.Millisecond)

		Expect(deaf.Ejecting()).To(BeFalse())
		Expect(scorer.ScoringActive()).To(BeFalse())
	})

	It("should be a no-op without a scoring controller", func() {
		handle, err := hardware.OpenSensors(sensors)
		Expect(err).ToNot(HaveOccurred())

		blind := NewController("blind", cfg.Sort, handle, nil)
		sensors.SetReading(hardware.Checkpoint1, blueReading)

		blind.Tick(20 * time.Millisecond)

		Expect(blind.BallDetected()).To(BeFalse())
	})
})

var _ = Describe("Controller arming guard", func() {
	var (
		mockCtrl *gomock.Controller
		sensors  *hardware.BenchSensors
		scorer   *MockScorer
		sorter   *Controller
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		sensors = hardware.NewBenchSensors()
		scorer = NewMockScorer(mockCtrl)

		handle, err := hardware.OpenSensors(sensors)
		Expect(err).ToNot(HaveOccurred())

		sorter = NewController("sorter", config.Default().Sort, handle, scorer)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should refuse and retry while the operator is mid-sequence", func() {
		sorter.TriggerEjection()

		scorer.EXPECT().ScoringActive().Return(true)
		sorter.Tick(20 * time.Millisecond)
		Expect(sorter.Ejecting()).To(BeFalse())

		scorer.EXPECT().ScoringActive().Return(true)
		sorter.Tick(40 * time.Millisecond)
		Expect(sorter.Ejecting()).To(BeFalse())

		scorer.EXPECT().ScoringActive().Return(false).Times(2)
		scorer.EXPECT().InputActive().Return(false)
		scorer.EXPECT().Mode().Return(indexer.ModeNone)
		scorer.EXPECT().Direction().Return(indexer.DirectionNone)
		scorer.EXPECT().StopAll()
		scorer.EXPECT().SetMode(indexer.ModeMidGoal)
		scorer.EXPECT().Execute(indexer.DirectionBack).Return(nil)

		sorter.Tick(60 * time.Millisecond)
		Expect(sorter.Ejecting()).To(BeTrue())
	})
})

type clockFunc func() time.Duration

func (f clockFunc) CurrentTime() time.Duration {
	return f()
}
