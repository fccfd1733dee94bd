package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"dragboard/internal/app"
	"dragboard/internal/debug"
)

func main() {
	boardPath := flag.String("board", "", "Board definition file (YAML); defaults to the built-in board")
	seed := flag.Bool("seed", true, "Fill the built-in board with sample cards")
	flag.Parse()

	var logFile io.Closer
	if path, ok := os.LookupEnv(debug.EnvVar); ok {
		f, err := debug.Setup(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not open debug log: %v\n", err)
			os.Exit(1)
		}
		logFile = f
	}

	err := app.Run(app.Options{BoardPath: *boardPath, Seed: *seed})
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
