package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/apexrobotics/pushback/colorsort"
	"github.com/apexrobotics/pushback/config"
	"github.com/apexrobotics/pushback/hardware"
)

var sensorFlags = struct {
	configPath string
	proximity  float64
	hue        float64
	saturation float64
	brightness float64
}{}

var sensorsCmd = &cobra.Command{
	Use:   "sensors",
	Short: "Run one classification pass over both checkpoints",
	Long: `Sensors initializes the optical sensors, presents the given ` +
		`sample on both checkpoints, and prints the raw values next to the ` +
		`color each checkpoint classifies. Useful for checking thresholds ` +
		`against a recorded sample.`,
	Run: func(cmd *cobra.Command, args []string) {
		runSensors()
	},
}

func init() {
	sensorsCmd.Flags().StringVar(&sensorFlags.configPath, "config", "",
		"YAML file overriding the default configuration")
	sensorsCmd.Flags().Float64Var(&sensorFlags.proximity, "proximity", 50,
		"proximity sample, lower is closer")
	sensorsCmd.Flags().Float64Var(&sensorFlags.hue, "hue", 10,
		"hue sample in degrees [0, 360]")
	sensorsCmd.Flags().Float64Var(&sensorFlags.saturation, "saturation", 80,
		"saturation sample in percent")
	sensorsCmd.Flags().Float64Var(&sensorFlags.brightness, "brightness", 60,
		"brightness sample in percent")

	rootCmd.AddCommand(sensorsCmd)
}

func runSensors() {
	cfg, err := config.Load(sensorFlags.configPath)
	if err != nil {
		log.Fatal(err)
	}

	sensors := hardware.NewBenchSensors()
	sample := hardware.Reading{
		Proximity:  sensorFlags.proximity,
		Hue:        sensorFlags.hue,
		Saturation: sensorFlags.saturation,
		Brightness: sensorFlags.brightness,
	}
	sensors.SetReading(hardware.Checkpoint1, sample)
	sensors.SetReading(hardware.Checkpoint2, sample)

	handle, err := hardware.OpenSensors(sensors)
	if err != nil {
		log.Fatal(err)
	}

	port := handle.Port()
	for _, ch := range []hardware.OpticalChannel{
		hardware.Checkpoint1,
		hardware.Checkpoint2,
	} {
		color := colorsort.ClassifyReading(cfg.Sort, port, ch)

		fmt.Printf(
			"checkpoint %d: prox %.0f hue %.0f sat %.0f bright %.0f -> %s\n",
			ch,
			port.Proximity(ch),
			port.Hue(ch),
			port.Saturation(ch),
			port.Brightness(ch),
			color)
	}
}
