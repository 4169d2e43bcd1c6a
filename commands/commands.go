package commands

import (
	"github.com/urfave/cli"
)

var Commands = []cli.Command{
	{
		Name:      "shuffle",
		Usage:     "Randomly sample a word list and write it case-insensitively sorted",
		ArgsUsage: "<input> <output>",
		Action:    ShuffleWordList,
		Flags: []cli.Flag{
			cli.IntFlag{
				Name:  "pick, p",
				Usage: "number of lines to sample (0 = all lines)",
			},
			cli.Int64Flag{
				Name:  "seed, s",
				Usage: "fixed random seed (0 = system entropy)",
			},
		},
	},
	{
		Name:      "count",
		Usage:     "Print the number of lines in a word list",
		ArgsUsage: "<input>",
		Action:    CountWordList,
	},
	{
		Name:   "classify",
		Usage:  "Guess the language of words read from stdin",
		Action: classifyWords,
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "crk",
				Value: "itwêwina",
				Usage: "nêhiyawêwin training word list",
			},
			cli.StringFlag{
				Name:  "eng",
				Value: "words",
				Usage: "English training word list",
			},
		},
	},
	{
		Name:      "bench",
		Usage:     "Time the sample-and-sort pipeline over a word list",
		ArgsUsage: "<input>",
		Action:    benchmarkPipeline,
		Flags: []cli.Flag{
			cli.IntFlag{
				Name:  "pick, p",
				Usage: "number of lines to sample (0 = all lines)",
			},
			cli.IntFlag{
				Name:  "repeat, r",
				Value: 10,
				Usage: "number of timed rounds",
			},
			cli.Int64Flag{
				Name:  "seed, s",
				Usage: "fixed random seed (0 = system entropy)",
			},
			cli.StringFlag{
				Name:  "log",
				Usage: "append timing records to this file instead of stderr",
			},
			cli.BoolFlag{
				Name:  "telemetry",
				Usage: "stream timing records to elasticsearch",
			},
			cli.StringFlag{
				Name:  "elastic",
				Value: "http://localhost:9200",
				Usage: "elasticsearch address for --telemetry",
			},
			cli.StringFlag{
				Name:  "project",
				Usage: "also stream timing records to this Cloud Logging project",
			},
		},
	},
}
