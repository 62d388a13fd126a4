package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/apexrobotics/pushback/colorsort"
	"github.com/apexrobotics/pushback/config"
	"github.com/apexrobotics/pushback/control"
	"github.com/apexrobotics/pushback/datarecording"
	"github.com/apexrobotics/pushback/hardware"
	"github.com/apexrobotics/pushback/indexer"
	"github.com/apexrobotics/pushback/monitoring"
)

var benchFlags = struct {
	configPath  string
	recordPath  string
	monitorPort int
	monitor     bool
	openBrowser bool
	realtime    bool
	verbose     bool
}{}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Replay a scripted match on the in-memory rig",
	Long: `Bench builds both controllers on the in-memory hardware rig, ` +
		`replays a scripted operator and ball sequence, and reports the ` +
		`sorting statistics at the end. By default the match runs in virtual ` +
		`time and finishes immediately.`,
	Run: func(cmd *cobra.Command, args []string) {
		runBench()
	},
}

func init() {
	benchCmd.Flags().StringVar(&benchFlags.configPath, "config", "",
		"YAML file overriding the default configuration")
	benchCmd.Flags().StringVar(&benchFlags.recordPath, "record", "",
		"record telemetry into <path>.sqlite3")
	benchCmd.Flags().BoolVar(&benchFlags.monitor, "monitor", false,
		"serve the control loop over HTTP")
	benchCmd.Flags().IntVar(&benchFlags.monitorPort, "monitor-port", 3001,
		"port of the monitoring server")
	benchCmd.Flags().BoolVar(&benchFlags.openBrowser, "open", false,
		"open the monitoring page in a browser")
	benchCmd.Flags().BoolVar(&benchFlags.realtime, "realtime", false,
		"drive the loop from the wall clock instead of virtual time")
	benchCmd.Flags().BoolVarP(&benchFlags.verbose, "verbose", "v", false,
		"log every ticker invocation")

	rootCmd.AddCommand(benchCmd)
}

func runBench() {
	cfg, err := config.Load(benchFlags.configPath)
	if err != nil {
		log.Fatal(err)
	}

	loop := control.NewLoop(control.Freq(cfg.Loop.FreqHz) * control.Hz)

	actuators := hardware.NewBenchActuators()
	sensors := hardware.NewBenchSensors()
	inputs := hardware.NewBenchInputs()
	feedback := hardware.NewConsoleFeedback(
		log.New(os.Stdout, "operator ", 0))

	scorer := indexer.NewController(
		"scorer", cfg.Indexer, actuators, inputs, feedback, loop)

	handle, err := hardware.OpenSensors(sensors)
	if err != nil {
		log.Fatal(err)
	}

	sorter := colorsort.NewController("sorter", cfg.Sort, handle, scorer)
	sorter.SetSortingMode(colorsort.CollectRed)

	loop.Register(hardware.NewSensorScript("balls", sensors, benchPasses()))
	loop.Register(newButtonScript("driver", inputs, benchPresses()))
	loop.Register(scorer)
	loop.Register(sorter)

	if benchFlags.verbose {
		loop.AcceptHook(control.NewTickLogger(
			log.New(os.Stdout, "loop ", 0)))
	}

	if benchFlags.recordPath != "" {
		recorder := datarecording.New(benchFlags.recordPath)
		matchRecorder := datarecording.NewMatchRecorder(recorder, loop)
		scorer.AcceptHook(matchRecorder)
		sorter.AcceptHook(matchRecorder)
		loop.RegisterLoopEndHandler(matchRecorder)
	}

	if benchFlags.monitor {
		startMonitor(loop, cfg, scorer, sorter)
	}

	if benchFlags.realtime {
		ctx, cancel := context.WithTimeout(
			context.Background(), cfg.Loop.MatchDuration)
		defer cancel()

		if err := loop.RunRealtime(ctx); err != nil &&
			err != context.DeadlineExceeded {
			log.Fatal(err)
		}
	} else {
		if err := loop.RunFor(cfg.Loop.MatchDuration); err != nil {
			log.Fatal(err)
		}
	}

	loop.Finished()

	printMatchReport(scorer, sorter)
}

func startMonitor(
	loop *control.Loop,
	cfg config.Config,
	scorer *indexer.Controller,
	sorter *colorsort.Controller,
) {
	monitor := monitoring.NewMonitor()
	monitor.WithPortNumber(benchFlags.monitorPort)
	monitor.RegisterLoop(loop)
	monitor.RegisterComponent(scorer)
	monitor.RegisterComponent(sorter)

	totalTicks := uint64(cfg.Loop.MatchDuration /
		loop.Freq().Period())
	bar := monitor.CreateProgressBar("match", totalTicks)
	loop.AcceptHook(monitoring.NewLoopProgressHook(bar, scorer.Name()))

	port := monitor.StartServer()

	if benchFlags.openBrowser {
		url := fmt.Sprintf("http://localhost:%d/api/progress", port)
		if err := browser.OpenURL(url); err != nil {
			log.Printf("cannot open browser: %s", err)
		}
	}
}

func printMatchReport(
	scorer *indexer.Controller,
	sorter *colorsort.Controller,
) {
	stats := sorter.Statistics()

	fmt.Println()
	fmt.Println("=== MATCH REPORT ===")
	fmt.Printf("Red detected:    %d\n", stats.RedDetected)
	fmt.Printf("Blue detected:   %d\n", stats.BlueDetected)
	fmt.Printf("Ejected:         %d\n", stats.Ejected)
	fmt.Printf("False passes:    %d\n", stats.FalsePasses)
	fmt.Printf("Storage count:   %d\n", scorer.StorageCount())
	fmt.Printf("Ejection length: %s\n", sorter.EjectionDuration())
}

// benchPasses scripts the balls of the demo match: a red ball early while
// the robot is collecting, then a blue ball the sorter must eject, then a
// final red ball.
func benchPasses() []hardware.BallPass {
	red := hardware.Reading{
		Proximity: 50, Hue: 10, Saturation: 80, Brightness: 60}
	blue := hardware.Reading{
		Proximity: 50, Hue: 220, Saturation: 80, Brightness: 60}

	return []hardware.BallPass{
		{Start: 2 * time.Second, Dwell: 200 * time.Millisecond,
			Transit: 150 * time.Millisecond, Reading: red},
		{Start: 12 * time.Second, Dwell: 200 * time.Millisecond,
			Transit: 150 * time.Millisecond, Reading: blue},
		{Start: 20 * time.Second, Dwell: 200 * time.Millisecond,
			Transit: 150 * time.Millisecond, Reading: red},
	}
}

// benchPresses scripts the operator: start a collection storage fill, score
// front mid goal, and stop everything near the end.
func benchPresses() []buttonPress {
	return []buttonPress{
		{at: 1 * time.Second, hold: 100 * time.Millisecond,
			buttons: hardware.ButtonInputs{Collection: true}},
		{at: 10 * time.Second, hold: 100 * time.Millisecond,
			buttons: hardware.ButtonInputs{MidGoal: true}},
		{at: 18 * time.Second, hold: 100 * time.Millisecond,
			buttons: hardware.ButtonInputs{FrontExecute: true}},
		{at: 25 * time.Second, hold: 100 * time.Millisecond,
			buttons: hardware.ButtonInputs{FlapToggle: true}},
	}
}

// buttonPress holds one scripted press: the buttons go down at a time and
// stay down for a hold interval.
type buttonPress struct {
	at      time.Duration
	hold    time.Duration
	buttons hardware.ButtonInputs
}

// buttonScript feeds scripted presses into a BenchInputs in lockstep with
// the loop.
type buttonScript struct {
	name    string
	inputs  *hardware.BenchInputs
	presses []buttonPress
}

func newButtonScript(
	name string,
	inputs *hardware.BenchInputs,
	presses []buttonPress,
) *buttonScript {
	return &buttonScript{name: name, inputs: inputs, presses: presses}
}

func (s *buttonScript) Name() string {
	return s.name
}

func (s *buttonScript) Tick(now time.Duration) {
	var level hardware.ButtonInputs

	for _, p := range s.presses {
		if now < p.at || now >= p.at+p.hold {
			continue
		}

		level.Collection = level.Collection || p.buttons.Collection
		level.MidGoal = level.MidGoal || p.buttons.MidGoal
		level.LowGoal = level.LowGoal || p.buttons.LowGoal
		level.TopGoal = level.TopGoal || p.buttons.TopGoal
		level.FrontExecute = level.FrontExecute || p.buttons.FrontExecute
		level.BackExecute = level.BackExecute || p.buttons.BackExecute
		level.StorageToggle = level.StorageToggle || p.buttons.StorageToggle
		level.FlapToggle = level.FlapToggle || p.buttons.FlapToggle
	}

	s.inputs.Set(level)
}
