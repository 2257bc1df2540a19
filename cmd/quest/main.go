// Command quest checks whether a dungeon described by a '.aut' file still
// admits a winning run under the chosen level's constraints, and prints the
// shortest such run.
package main

import (
	"flag"
	"fmt"
	"os"

	u "github.com/araddon/gou"

	"github.com/questfa/automata"
	"github.com/questfa/automata/quest"
)

var (
	level    = flag.Int("level", 0, "constraint level to apply [0|1|2]")
	logLevel = flag.String("loglevel", "warn", "log level [debug|info|warn|error]")
)

func main() {
	flag.Parse()

	u.SetupLogging(*logLevel)
	u.SetColorIfTerminal()

	if flag.NArg() < 1 {
		fmt.Println("Error: The first argument must be the path to a '.aut' file.")
		os.Exit(1)
	}
	if *level < int(quest.Level0) || *level > int(quest.Level2) {
		fmt.Printf("Error: Unknown level %d.\n", *level)
		os.Exit(1)
	}

	dungeon, err := automata.ParseFile(flag.Arg(0), quest.EventAlphabet())
	if err != nil {
		u.Debugf("parse failed: %v", err)
		fmt.Println("Error: The given file is not a valid '.aut' file.")
		os.Exit(1)
	}

	constrained := quest.Level(*level).Apply(dungeon)

	example, ok := constrained.ShortestExample(true)
	if !ok {
		fmt.Println("No accepted run exists.")
		os.Exit(0)
	}
	fmt.Println(example)
}
