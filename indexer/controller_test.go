package indexer

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"

	"github.com/apexrobotics/pushback/config"
	"github.com/apexrobotics/pushback/hardware"
)

type benchClock struct {
	now time.Duration
}

func (c *benchClock) CurrentTime() time.Duration {
	return c.now
}

// advance moves the clock forward in loop-sized steps, ticking the
// controller once per step.
func advance(c *Controller, clock *benchClock, d time.Duration) {
	end := clock.now + d
	for clock.now < end {
		clock.now += 20 * time.Millisecond
		c.Tick(clock.now)
	}
}

var _ = Describe("Controller", func() {
	var (
		mockCtrl  *gomock.Controller
		actuators *hardware.BenchActuators
		inputs    *hardware.BenchInputs
		feedback  *hardware.MockOperatorFeedback
		clock     *benchClock
		cfg       config.IndexerConfig
		c         *Controller
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		actuators = hardware.NewBenchActuators()
		inputs = hardware.NewBenchInputs()
		feedback = hardware.NewMockOperatorFeedback(mockCtrl)
		feedback.EXPECT().Connected().Return(false).AnyTimes()
		clock = &benchClock{}
		cfg = config.Default().Indexer

		c = NewController("scorer", cfg, actuators, inputs, feedback, clock)
		actuators.ResetCommands()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should start idle with the flap closed", func() {
		Expect(c.Mode()).To(Equal(ModeNone))
		Expect(c.Direction()).To(Equal(DirectionNone))
		Expect(c.ScoringActive()).To(BeFalse())
		Expect(c.FlapOpen()).To(BeFalse())
		Expect(actuators.AllStopped()).To(BeTrue())
	})

	Context("mode selection", func() {
		It("should change mode without touching actuators", func() {
			c.SetMode(ModeMidGoal)

			Expect(c.Mode()).To(Equal(ModeMidGoal))
			Expect(actuators.Commands()).To(BeEmpty())
		})

		It("should panic on an invalid mode", func() {
			Expect(func() { c.SetMode(ScoringMode(99)) }).To(Panic())
		})
	})

	Context("execute", func() {
		It("should reject execute without a mode", func() {
			err := c.Execute(DirectionFront)

			Expect(err).To(MatchError(ErrNoModeSelected))
			Expect(c.ScoringActive()).To(BeFalse())
			Expect(actuators.Commands()).To(BeEmpty())
		})

		It("should dispatch the collection front table", func() {
			actuators.SetCoupling(hardware.CouplingScorer)
			c.SetMode(ModeCollection)

			Expect(c.Execute(DirectionFront)).To(Succeed())

			Expect(c.ScoringActive()).To(BeTrue())
			Expect(c.Direction()).To(Equal(DirectionFront))
			Expect(actuators.Velocity(hardware.MotorIntake)).
				To(Equal(config.InputMotorSpeed))
			Expect(actuators.Velocity(hardware.MotorLeftRoller)).
				To(Equal(config.LeftRollerFrontCollectionSpeed))
			Expect(actuators.Velocity(hardware.MotorRightRoller)).
				To(Equal(config.RightRollerCollectionSpeed))
			Expect(actuators.Velocity(hardware.MotorTopRoller)).
				To(Equal(config.TopRollerFrontSpeed))
			Expect(actuators.ValveOpen(hardware.ValveFrontFlap)).
				To(BeFalse())
		})

		It("should open the flap only for top goal front", func() {
			actuators.SetCoupling(hardware.CouplingScorer)

			c.SetMode(ModeTopGoal)
			Expect(c.Execute(DirectionFront)).To(Succeed())
			Expect(c.FlapOpen()).To(BeTrue())

			c.StopAll()

			c.SetMode(ModeTopGoal)
			Expect(c.Execute(DirectionBack)).To(Succeed())
			Expect(c.FlapOpen()).To(BeFalse())
		})

		It("should only reverse the intake for low goal", func() {
			c.SetMode(ModeLowGoal)

			Expect(c.Execute(DirectionFront)).To(Succeed())

			Expect(actuators.Velocity(hardware.MotorIntake)).
				To(Equal(config.InputMotorReverseSpeed))
			Expect(actuators.Velocity(hardware.MotorLeftRoller)).To(BeZero())
			Expect(actuators.Velocity(hardware.MotorRightRoller)).To(BeZero())
			Expect(actuators.Velocity(hardware.MotorTopRoller)).To(BeZero())
		})

		It("should fully stop before dispatching a new sequence", func() {
			actuators.SetCoupling(hardware.CouplingScorer)
			c.SetMode(ModeMidGoal)
			Expect(c.Execute(DirectionFront)).To(Succeed())

			actuators.ResetCommands()
			Expect(c.Execute(DirectionBack)).To(Succeed())

			commands := actuators.Commands()
			sawNonZero := false
			zeroed := map[hardware.MotorID]bool{}
			for _, cmd := range commands {
				if cmd.Kind != "velocity" {
					continue
				}
				if cmd.RPM == 0 && !sawNonZero {
					zeroed[cmd.Motor] = true
				}
				if cmd.RPM != 0 {
					sawNonZero = true
				}
			}

			Expect(zeroed).To(HaveLen(4))
			Expect(sawNonZero).To(BeTrue())
		})

		It("should defer roller commands until the coupling settles", func() {
			c.SetMode(ModeMidGoal)

			Expect(c.Execute(DirectionFront)).To(Succeed())

			Expect(c.ScoringActive()).To(BeTrue())
			Expect(actuators.Coupling()).To(Equal(hardware.CouplingScorer))
			Expect(actuators.Velocity(hardware.MotorIntake)).To(BeZero())

			advance(c, clock, cfg.SettleDelay+20*time.Millisecond)

			Expect(actuators.Velocity(hardware.MotorIntake)).
				To(Equal(config.InputMotorSpeed))
			Expect(actuators.Velocity(hardware.MotorLeftRoller)).
				To(Equal(config.LeftRollerFrontMidGoalSpeed))
		})

		It("should draw a ball from storage for storage-source runs", func() {
			actuators.SetCoupling(hardware.CouplingScorer)
			Expect(c.AddBallToStorage()).To(Succeed())
			Expect(c.AddBallToStorage()).To(Succeed())
			c.ToggleStorageSource()
			c.SetMode(ModeMidGoal)

			Expect(c.Execute(DirectionBack)).To(Succeed())

			Expect(c.StorageCount()).To(Equal(1))
			Expect(actuators.Velocity(hardware.MotorTopRoller)).
				To(Equal(config.TopRollerStorageToBackSpeed))
		})
	})

	Context("push mode", func() {
		It("should return the coupling to drivetrain and run only the intake",
			func() {
				actuators.SetCoupling(hardware.CouplingScorer)
				c.SetMode(ModeCollection)

				Expect(c.Push(DirectionBack)).To(Succeed())
				Expect(actuators.Coupling()).
					To(Equal(hardware.CouplingDrivetrain))
				Expect(actuators.Velocity(hardware.MotorIntake)).To(BeZero())

				advance(c, clock, cfg.PushSettleDelay+20*time.Millisecond)

				Expect(actuators.Velocity(hardware.MotorIntake)).
					To(Equal(config.InputMotorReverseSpeed))
				Expect(actuators.Velocity(hardware.MotorLeftRoller)).
					To(BeZero())
			})

		It("should push immediately when already in drivetrain position",
			func() {
				c.SetMode(ModeCollection)

				Expect(c.Push(DirectionFront)).To(Succeed())

				Expect(actuators.Velocity(hardware.MotorIntake)).
					To(Equal(config.InputMotorSpeed))
			})
	})

	Context("storage fill", func() {
		It("should reject the fill when storage is full", func() {
			for i := 0; i < cfg.StorageCapacity; i++ {
				Expect(c.AddBallToStorage()).To(Succeed())
			}
			actuators.ResetCommands()

			err := c.StartIntakeStorage()

			Expect(err).To(MatchError(ErrStorageFull))
			Expect(c.StorageCount()).To(Equal(cfg.StorageCapacity))
			Expect(actuators.Commands()).To(BeEmpty())
		})

		It("should verify the coupling by read-back", func() {
			actuators.FailCouplingSwitch(true)

			Expect(c.StartIntakeStorage()).To(Succeed())
			Expect(c.ScoringActive()).To(BeTrue())

			advance(c, clock, cfg.StorageSettleDelay+20*time.Millisecond)

			Expect(c.ScoringActive()).To(BeFalse())
			Expect(actuators.AllStopped()).To(BeTrue())
		})

		It("should run the fill speeds after the settle", func() {
			Expect(c.StartIntakeStorage()).To(Succeed())
			Expect(c.Direction()).To(Equal(DirectionStorage))

			advance(c, clock, cfg.StorageSettleDelay+20*time.Millisecond)

			Expect(actuators.Velocity(hardware.MotorIntake)).
				To(Equal(config.InputMotorSpeed))
			Expect(actuators.Velocity(hardware.MotorTopRoller)).
				To(Equal(config.TopRollerStorageFillSpeed))
			Expect(actuators.Velocity(hardware.MotorLeftRoller)).
				To(Equal(config.LeftRollerFrontCollectionSpeed / 2))
			Expect(actuators.Velocity(hardware.MotorRightRoller)).
				To(Equal(config.RightRollerTopGoalHelperSpeed))
			Expect(actuators.ValveOpen(hardware.ValveFrontFlap)).To(BeFalse())
		})
	})

	Context("storage count", func() {
		It("should stay within bounds", func() {
			Expect(c.RemoveBallFromStorage()).To(MatchError(ErrStorageEmpty))
			Expect(c.StorageCount()).To(Equal(0))

			for i := 0; i < cfg.StorageCapacity; i++ {
				Expect(c.AddBallToStorage()).To(Succeed())
			}

			Expect(c.AddBallToStorage()).To(MatchError(ErrStorageFull))
			Expect(c.StorageCount()).To(Equal(cfg.StorageCapacity))
			Expect(c.IsStorageFull()).To(BeTrue())

			c.ResetStorageCount()
			Expect(c.StorageCount()).To(Equal(0))
		})
	})

	Context("timeouts", func() {
		It("should stop low goal at its own bucket before the default one",
			func() {
				c.SetMode(ModeLowGoal)
				Expect(c.Execute(DirectionFront)).To(Succeed())

				advance(c, clock, cfg.LowGoalTimeout-20*time.Millisecond)
				Expect(c.ScoringActive()).To(BeTrue())

				advance(c, clock, 60*time.Millisecond)
				Expect(c.ScoringActive()).To(BeFalse())
				Expect(actuators.AllStopped()).To(BeTrue())
			})

		It("should stop a scoring run at the default bucket", func() {
			actuators.SetCoupling(hardware.CouplingScorer)
			c.SetMode(ModeMidGoal)
			Expect(c.Execute(DirectionBack)).To(Succeed())

			advance(c, clock, cfg.DefaultTimeout-20*time.Millisecond)
			Expect(c.ScoringActive()).To(BeTrue())

			advance(c, clock, 60*time.Millisecond)
			Expect(c.ScoringActive()).To(BeFalse())
		})

		It("should give storage fills the long bucket", func() {
			actuators.SetCoupling(hardware.CouplingScorer)
			Expect(c.StartIntakeStorage()).To(Succeed())

			advance(c, clock, cfg.StorageTimeout-20*time.Millisecond)
			Expect(c.ScoringActive()).To(BeTrue())

			advance(c, clock, 60*time.Millisecond)
			Expect(c.ScoringActive()).To(BeFalse())
		})

		It("should give pushes the short bucket", func() {
			c.SetMode(ModeCollection)
			Expect(c.Push(DirectionFront)).To(Succeed())

			advance(c, clock, cfg.PushTimeout-20*time.Millisecond)
			Expect(c.ScoringActive()).To(BeTrue())

			advance(c, clock, 60*time.Millisecond)
			Expect(c.ScoringActive()).To(BeFalse())
		})
	})

	Context("operator buttons", func() {
		press := func(b hardware.ButtonInputs) {
			inputs.Set(b)
			clock.now += 20 * time.Millisecond
			c.Tick(clock.now)
			inputs.Release()
			clock.now += 20 * time.Millisecond
			c.Tick(clock.now)
		}

		It("should start a storage fill from a mode button", func() {
			press(hardware.ButtonInputs{Collection: true})

			Expect(c.Mode()).To(Equal(ModeCollection))
			Expect(c.Direction()).To(Equal(DirectionStorage))
			Expect(c.ScoringActive()).To(BeTrue())
		})

		It("should stop the fill on a second press of the same mode button",
			func() {
				press(hardware.ButtonInputs{MidGoal: true})
				advance(c, clock, cfg.StorageSettleDelay)
				Expect(c.ScoringActive()).To(BeTrue())

				press(hardware.ButtonInputs{MidGoal: true})

				Expect(c.ScoringActive()).To(BeFalse())
				Expect(c.Mode()).To(Equal(ModeMidGoal))
			})

		It("should report missing mode on execute", func() {
			press(hardware.ButtonInputs{FrontExecute: true})

			Expect(c.ScoringActive()).To(BeFalse())
		})

		It("should return to storage on a second press of the running direction",
			func() {
				actuators.SetCoupling(hardware.CouplingScorer)
				c.SetMode(ModeTopGoal)

				press(hardware.ButtonInputs{FrontExecute: true})
				Expect(c.Direction()).To(Equal(DirectionFront))

				press(hardware.ButtonInputs{FrontExecute: true})
				Expect(c.Direction()).To(Equal(DirectionStorage))
			})

		It("should push in collection mode", func() {
			c.SetMode(ModeCollection)

			press(hardware.ButtonInputs{BackExecute: true})
			advance(c, clock, cfg.PushSettleDelay)

			Expect(actuators.Velocity(hardware.MotorIntake)).
				To(Equal(config.InputMotorReverseSpeed))
		})

		It("should adjust the count with the storage chord", func() {
			actuators.ResetCommands()

			press(hardware.ButtonInputs{StorageToggle: true, BackExecute: true})
			Expect(c.StorageCount()).To(Equal(1))

			press(hardware.ButtonInputs{StorageToggle: true, FrontExecute: true})
			Expect(c.StorageCount()).To(Equal(0))

			for _, cmd := range actuators.Commands() {
				Expect(cmd.Kind).NotTo(Equal("velocity"))
			}
		})

		It("should toggle the flap", func() {
			press(hardware.ButtonInputs{FlapToggle: true})
			Expect(c.FlapOpen()).To(BeTrue())

			press(hardware.ButtonInputs{FlapToggle: true})
			Expect(c.FlapOpen()).To(BeFalse())
		})
	})
})
