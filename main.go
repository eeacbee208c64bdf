// Command lc3vm loads one or more LC-3 object images and executes them
// against the controlling terminal: a blocking byte-oriented keyboard, a
// flushed byte-oriented display, until the program HALTs.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/lc3-tools/lc3vm/internal/device"
	"github.com/lc3-tools/lc3vm/internal/term"
	"github.com/lc3-tools/lc3vm/vm"
)

const usage = "usage: lc3vm [-v] [-image file] [image-file] ...\n"

// version is printed by -v/-version. This binary has no release process of
// its own, so it's just a fixed string rather than something stamped in by
// a build step.
const version = "lc3vm 0.1.0"

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var showVersion bool
	var image string

	fs := flag.NewFlagSet("lc3vm", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	fs.BoolVar(&showVersion, "v", false, "print version and exit")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	fs.StringVar(&image, "image", "", "load a single image file, a convenience for quick manual testing (overrides positional image-file arguments)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if showVersion {
		fmt.Println(version)
		return 0
	}

	images := fs.Args()
	if image != "" {
		images = []string{image}
	}
	if len(images) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	keyboard := device.NewKeyboard(bufio.NewReader(os.Stdin))
	defer keyboard.Close()
	display := device.NewDisplay(bufio.NewWriter(os.Stdout))

	m := vm.New(keyboard, display)
	m.SetLogger(log.Default())

	for _, path := range images {
		if err := m.Load(path); err != nil {
			log.Printf("failed to load image: %s", path)
			return 1
		}
	}

	raw, err := term.Enter(os.Stdin)
	if err != nil {
		log.Println(err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	done := make(chan struct{})
	go func() {
		m.Run()
		close(done)
	}()

	select {
	case <-done:
		display.Flush()
		raw.Exit()
		return 0
	case <-ctx.Done():
		raw.Exit()
		return -2 // matches the reference implementation's exit(-2) on SIGINT
	}
}
