package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/amirrezaask/stenografi"
	"github.com/amirrezaask/stenografi/lexers"
)

func main() {
	var (
		configPath string
		parse      bool
		strict     bool
		debug      bool
	)
	flag.StringVar(&configPath, "cfg", path.Join(os.Getenv("HOME"), ".stenografi"), "path to config file, defaults to: ~/.stenografi")
	flag.BoolVar(&parse, "parse", false, "print the symbols of the arguments instead of opening a window")
	flag.BoolVar(&strict, "strict", false, "with -parse, fail when a character matches no symbol")
	flag.BoolVar(&debug, "debug", false, "with -parse, dump the parsed sentence")
	flag.Parse()

	cfg, err := stenografi.ReadConfig(configPath)
	if err != nil {
		panic(err)
	}

	if parse {
		os.Exit(runParse(cfg, strings.Join(flag.Args(), " "), strict || cfg.Strict, debug, os.Stdout, os.Stderr))
	}

	app, err := stenografi.New(cfg)
	if err != nil {
		panic(err)
	}
	defer app.Close()

	// start main loop
	app.StartMainLoop()
}

// runParse prints one line per word, the symbol names separated by spaces.
func runParse(cfg *stenografi.Config, input string, strict bool, debug bool, stdout io.Writer, stderr io.Writer) int {
	lexer := lexers.NewStenoLexer(cfg.Alphabet)
	sentence, skips := lexer.LexWithSkips(input)

	if debug {
		spew.Fdump(stdout, sentence)
	}
	for _, word := range sentence {
		names := make([]string, 0, len(word))
		for _, sym := range word {
			names = append(names, sym.String())
		}
		fmt.Fprintln(stdout, strings.Join(names, " "))
	}

	if strict && len(skips) > 0 {
		fmt.Fprintln(stderr, skips.Error())
		return 1
	}
	return 0
}
