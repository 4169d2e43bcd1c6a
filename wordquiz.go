package main

import (
	"log"
	"os"

	"github.com/urfave/cli"

	"github.com/quizgen/wordquiz/commands"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "wordquiz"
	app.Usage = "Randomly sample a word list and write it case-insensitively sorted"
	app.ArgsUsage = "<input> <output>"
	app.Commands = commands.Commands

	// Running without a subcommand is the same as `wordquiz shuffle`.
	app.Action = commands.ShuffleWordList
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "pick, p",
			Usage: "number of lines to sample (0 = all lines)",
		},
		cli.Int64Flag{
			Name:  "seed, s",
			Usage: "fixed random seed (0 = system entropy)",
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
