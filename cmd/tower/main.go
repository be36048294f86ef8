package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/crypto/ssh/terminal"
)

// Version is a version of this build.
var Version = "tower/0.1"

func main() {
	var verbose, eval, version bool
	pflag.BoolVarP(&verbose, "verbose", "v", false, `log operands and joint kinds`)
	pflag.BoolVarP(&eval, "eval", "e", false, `evaluate arguments and exit`)
	pflag.BoolVar(&version, "version", false, `print version and exit`)
	pflag.Parse()

	if version {
		fmt.Println(Version)
		return
	}

	efs := New()

	if eval {
		if err := evalArgs(os.Stdout, efs, pflag.Args(), verbose); err != nil {
			log.Panicf("failed to evaluate: %v", err)
		}
		return
	}

	oldState, err := terminal.MakeRaw(0)
	if err != nil {
		log.Panicf("failed to enter raw mode: %v", err)
	}
	restore := func() {
		_ = terminal.Restore(0, oldState)
	}
	defer restore()

	t := terminal.NewTerminal(os.Stdin, ">> ")
	defer fmt.Printf("\r\n")

	log.SetOutput(t)

	for {
		line, err := t.ReadLine()
		switch err {
		case nil:
			break
		case io.EOF:
			return
		default:
			log.Printf("failed to read line: %v", err)
			continue
		}

		if err := handleLine(t, efs, line, verbose); err != nil {
			log.Printf("failed: %v", err)
		}
	}
}
