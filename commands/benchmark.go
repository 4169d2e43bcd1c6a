package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/quizgen/wordquiz/words"
)

type benchRecord struct {
	Round        int   `json:"round"`
	Lines        int   `json:"lines"`
	Picked       int   `json:"picked"`
	ReadMicros   int64 `json:"read_us"`
	SampleMicros int64 `json:"sample_us"`
	SortMicros   int64 `json:"sort_us"`
	TotalMicros  int64 `json:"total_us"`
}

func benchmarkPipeline(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected an <input> argument")
	}

	if logPath := c.String("log"); logPath != "" {
		f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("opening bench log %s: %w", logPath, err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	filepath := c.Args().Get(0)
	repeat := c.Int("repeat")
	rng := randSource(c.Int64("seed"))

	records := make([]string, 0, repeat)
	for round := 0; round < repeat; round++ {
		start := time.Now()
		lines, err := words.ReadLines(filepath)
		if err != nil {
			return err
		}
		readTime := time.Since(start)

		pick := c.Int("pick")
		if pick == 0 {
			pick = len(lines)
		}

		sampleStart := time.Now()
		sampled, err := words.Sample(rng, lines, pick)
		if err != nil {
			return err
		}
		sampleTime := time.Since(sampleStart)

		sortStart := time.Now()
		sorted := words.SortFolded(sampled)
		sortTime := time.Since(sortStart)

		record := benchRecord{
			Round:        round + 1,
			Lines:        len(lines),
			Picked:       len(sorted),
			ReadMicros:   readTime.Microseconds(),
			SampleMicros: sampleTime.Microseconds(),
			SortMicros:   sortTime.Microseconds(),
			TotalMicros:  time.Since(start).Microseconds(),
		}
		log.Printf("%v,%v,%v,%v,%v,%v,%v", record.Round, record.Lines, record.Picked,
			record.ReadMicros, record.SampleMicros, record.SortMicros, record.TotalMicros)

		serialized, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("serializing bench record: %w", err)
		}
		records = append(records, string(serialized))
	}

	if c.Bool("telemetry") {
		getTelemetryInstance(c.String("elastic")).streamDataToElastic(records)
	}
	if project := c.String("project"); project != "" {
		if err := streamDataToCloudLogging(project, records); err != nil {
			return err
		}
	}
	return nil
}
