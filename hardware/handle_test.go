package hardware

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("OpenSensors", func() {
	var sensors *BenchSensors

	BeforeEach(func() {
		sensors = NewBenchSensors()
	})

	It("should return a ready handle when both channels respond", func() {
		handle, err := OpenSensors(sensors)

		Expect(err).ToNot(HaveOccurred())
		Expect(handle.Ready()).To(BeTrue())
		Expect(handle.Port()).To(BeIdenticalTo(sensors))
	})

	It("should turn both LEDs to full power", func() {
		_, err := OpenSensors(sensors)

		Expect(err).ToNot(HaveOccurred())
		Expect(sensors.LEDBrightness(Checkpoint1)).To(Equal(100))
		Expect(sensors.LEDBrightness(Checkpoint2)).To(Equal(100))
	})

	It("should fail when a channel does not respond", func() {
		sensors.Disconnect()

		handle, err := OpenSensors(sensors)

		Expect(err).To(MatchError(ErrSensorUnavailable))
		Expect(handle.Ready()).To(BeFalse())
	})

	It("should fail on a nil port", func() {
		handle, err := OpenSensors(nil)

		Expect(err).To(MatchError(ErrSensorUnavailable))
		Expect(handle.Ready()).To(BeFalse())
	})

	It("should treat the zero value as not ready", func() {
		var handle SensorHandle

		Expect(handle.Ready()).To(BeFalse())
		Expect(handle.Port()).To(BeNil())
	})
})

var _ = Describe("BenchActuators", func() {
	var rig *BenchActuators

	BeforeEach(func() {
		rig = NewBenchActuators()
	})

	It("should start with the coupling on the drivetrain", func() {
		Expect(rig.Coupling()).To(Equal(CouplingDrivetrain))
	})

	It("should track the last commanded state", func() {
		rig.SetVelocity(MotorIntake, 550)
		rig.SetValve(ValveFrontFlap, true)
		rig.SetCoupling(CouplingScorer)

		Expect(rig.Velocity(MotorIntake)).To(Equal(550))
		Expect(rig.ValveOpen(ValveFrontFlap)).To(BeTrue())
		Expect(rig.Coupling()).To(Equal(CouplingScorer))
	})

	It("should keep the command log in issue order", func() {
		rig.SetVelocity(MotorTopRoller, -350)
		rig.SetCoupling(CouplingScorer)

		cmds := rig.Commands()
		Expect(cmds).To(HaveLen(2))
		Expect(cmds[0].Kind).To(Equal("velocity"))
		Expect(cmds[0].Motor).To(Equal(MotorTopRoller))
		Expect(cmds[0].RPM).To(Equal(-350))
		Expect(cmds[1].Kind).To(Equal("coupling"))
		Expect(cmds[1].Coupling).To(Equal(CouplingScorer))
	})

	It("should hold the old position on a failed coupling switch", func() {
		rig.FailCouplingSwitch(true)

		rig.SetCoupling(CouplingScorer)

		Expect(rig.Coupling()).To(Equal(CouplingDrivetrain))
	})

	It("should report all stopped only when every motor is zeroed", func() {
		Expect(rig.AllStopped()).To(BeTrue())

		rig.SetVelocity(MotorLeftRoller, 400)
		Expect(rig.AllStopped()).To(BeFalse())

		rig.SetVelocity(MotorLeftRoller, 0)
		Expect(rig.AllStopped()).To(BeTrue())
	})
})

var _ = Describe("SensorScript", func() {
	var (
		sensors *BenchSensors
		script  *SensorScript
	)

	ball := Reading{Proximity: 40, Hue: 15, Saturation: 80, Brightness: 55}

	BeforeEach(func() {
		sensors = NewBenchSensors()
		script = NewSensorScript("balls", sensors, []BallPass{
			{
				Start:   100 * time.Millisecond,
				Dwell:   60 * time.Millisecond,
				Transit: 40 * time.Millisecond,
				Reading: ball,
			},
		})
	})

	It("should keep both channels idle before the pass", func() {
		script.Tick(80 * time.Millisecond)

		Expect(sensors.Proximity(Checkpoint1)).
			To(Equal(IdleReading.Proximity))
		Expect(sensors.Proximity(Checkpoint2)).
			To(Equal(IdleReading.Proximity))
	})

	It("should present the ball at checkpoint 1 during the dwell", func() {
		script.Tick(120 * time.Millisecond)

		Expect(sensors.Hue(Checkpoint1)).To(Equal(ball.Hue))
		Expect(sensors.Proximity(Checkpoint2)).
			To(Equal(IdleReading.Proximity))
	})

	It("should move the ball to checkpoint 2 after the transit", func() {
		script.Tick(220 * time.Millisecond)

		Expect(sensors.Proximity(Checkpoint1)).
			To(Equal(IdleReading.Proximity))
		Expect(sensors.Hue(Checkpoint2)).To(Equal(ball.Hue))
	})

	It("should clear both channels after the pass", func() {
		script.Tick(300 * time.Millisecond)

		Expect(sensors.Proximity(Checkpoint1)).
			To(Equal(IdleReading.Proximity))
		Expect(sensors.Proximity(Checkpoint2)).
			To(Equal(IdleReading.Proximity))
	})
})
