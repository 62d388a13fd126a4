package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/apexrobotics/pushback/datarecording"
)

var statsCmd = &cobra.Command{
	Use:   "stats <recording.sqlite3>",
	Short: "Summarize a recorded match",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runStats(args[0])
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(path string) {
	reader := datarecording.NewReader(path)
	defer reader.Close()

	reader.MapTable("commands", datarecording.CommandEntry{})
	reader.MapTable("detections", datarecording.DetectionEntry{})
	reader.MapTable("ejections", datarecording.EjectionEntry{})

	ctx := context.Background()

	commands, commandCount, err := reader.Query(ctx, "commands",
		datarecording.QueryParams{OrderBy: "TimeMs"})
	if err != nil {
		log.Fatal(err)
	}

	_, detectionCount, err := reader.Query(ctx, "detections",
		datarecording.QueryParams{Limit: 1})
	if err != nil {
		log.Fatal(err)
	}

	ejections, _, err := reader.Query(ctx, "ejections",
		datarecording.QueryParams{
			Where:   "Event = ?",
			Args:    []any{"start"},
			OrderBy: "TimeMs",
		})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("commands:   %d\n", commandCount)
	fmt.Printf("detections: %d\n", detectionCount)
	fmt.Printf("ejections:  %d\n", len(ejections))

	for _, e := range ejections {
		entry := e.(datarecording.EjectionEntry)
		fmt.Printf("  %6dms eject %s (manual=%v, %dms)\n",
			entry.TimeMs, entry.Color, entry.Manual, entry.DurationMs)
	}

	fmt.Println()
	for _, c := range commands {
		entry := c.(datarecording.CommandEntry)
		fmt.Printf("  %6dms %-8s %-10s %-7s\n",
			entry.TimeMs, entry.Event, entry.Mode, entry.Direction)
	}
}
