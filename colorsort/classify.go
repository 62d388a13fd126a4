package colorsort

import (
	"github.com/apexrobotics/pushback/config"
	"github.com/apexrobotics/pushback/hardware"
)

// ballPresent applies the proximity presence threshold. Lower proximity
// means closer.
func ballPresent(cfg config.SortConfig, proximity float64) bool {
	return proximity <= cfg.MaxProximity
}

// classifySample maps one raw sensor sample to a ball color. Samples too
// washed out for a reliable hue read classify as unknown rather than
// guessing; the debounce buffer absorbs them.
func classifySample(
	cfg config.SortConfig,
	proximity, hue, saturation, brightness float64,
) BallColor {
	if !ballPresent(cfg, proximity) {
		return ColorNoBall
	}

	if saturation < cfg.MinSaturation || brightness < cfg.MinBrightness {
		return ColorUnknown
	}

	// Red wraps around the hue circle.
	if (hue >= cfg.RedHueMin && hue <= cfg.RedHueMax) ||
		(hue >= cfg.RedHueHighMin && hue <= cfg.RedHueHighMax) {
		return ColorRed
	}

	if hue >= cfg.BlueHueMin && hue <= cfg.BlueHueMax {
		return ColorBlue
	}

	return ColorUnknown
}

// ClassifyReading maps the current sample of one optical channel to a ball
// color. It is the single-sample classification without debounce, for
// sensor checks and tooling.
func ClassifyReading(
	cfg config.SortConfig,
	port hardware.SensorPort,
	ch hardware.OpticalChannel,
) BallColor {
	return classifySample(cfg,
		port.Proximity(ch),
		port.Hue(ch),
		port.Saturation(ch),
		port.Brightness(ch))
}

// shouldEject applies the sorting policy to a confirmed color.
func shouldEject(mode SortingMode, color BallColor) bool {
	switch mode {
	case CollectRed:
		return color == ColorBlue
	case CollectBlue:
		return color == ColorRed
	case EjectAll:
		return true
	}
	return false
}
