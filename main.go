// Command thirdcc cross-compiles a small stack-oriented source language
// (a Forth dialect) into a flat image of 16-bit words for a fixed stack
// CPU. The output carries an entry vector at address 0 that branches to a
// user-defined startup word; everything past the front end -- how the
// target CPU actually executes those words -- is someone else's problem.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/thirdstack/thirdcc/internal/flushio"
	"github.com/thirdstack/thirdcc/internal/logio"
	"github.com/thirdstack/thirdcc/internal/panicerr"
)

func main() {
	var (
		entry       string
		memLimit    uint
		trace       bool
		outPath     string
		outHexPath  string
		printDisasm bool
		configPath  string
	)

	flag.StringVar(&configPath, "config", "thirdcc.toml", "optional project config file")
	cfg, cfgErr := LoadConfig(configPath)

	flag.StringVar(&entry, "entry", orDefault(cfg.Entry, "start"), "name of the entry-point word")
	flag.UintVar(&memLimit, "mem-limit", uint(cfg.MemLimit), "tighter code/data limit than the target's own 256-word budget (0 disables)")
	flag.BoolVar(&trace, "trace", false, "enable per-token trace logging")
	flag.StringVar(&outPath, "o", cfg.Output, "write a big-endian binary image to PATH")
	flag.StringVar(&outPath, "output", cfg.Output, "write a big-endian binary image to PATH")
	flag.StringVar(&outHexPath, "output-hex", cfg.OutputHex, "write one hex word per line to PATH")
	flag.BoolVar(&printDisasm, "print-disassembly", cfg.PrintDisassembly, "print an annotated disassembly to stdout")
	flag.Parse()

	// A --config naming another file replaces the defaults loaded above;
	// parsing again re-applies any explicit flags over them.
	if configPath != "thirdcc.toml" {
		cfg, cfgErr = LoadConfig(configPath)
		entry = orDefault(cfg.Entry, "start")
		memLimit = uint(cfg.MemLimit)
		outPath, outHexPath = cfg.Output, cfg.OutputHex
		printDisasm = cfg.PrintDisassembly
		flag.Parse()
	}

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer os.Exit(log.ExitCode())

	if cfgErr != nil {
		log.Errorf("loading %s: %v", configPath, cfgErr)
		return
	}

	if outPath == "" && outHexPath == "" && !printDisasm {
		log.Errorf("did you forget one of --output, --output-hex, or --print-disassembly?")
		return
	}

	paths := flag.Args()
	if len(paths) == 0 {
		log.Errorf("no source files given")
		return
	}

	c, err := compile(context.Background(), paths, entry, memLimit, trace, &log)
	if err != nil {
		log.Errorf("%v", err)
		return
	}

	if printDisasm {
		fmt.Print(c.Disassemble())
	}
	if outPath != "" {
		if err := writeFile(outPath, c.Binary()); err != nil {
			log.Errorf("writing %s: %v", outPath, err)
			return
		}
	}
	if outHexPath != "" {
		if err := writeFile(outHexPath, []byte(c.HexListing())); err != nil {
			log.Errorf("writing %s: %v", outHexPath, err)
			return
		}
	}
}

// compile reads every source path, feeds them through one Compiler session
// in argument order, and links the result, recovering any unexpected panic
// as a clean error rather than letting it crash the process.
func compile(ctx context.Context, paths []string, entry string, memLimit uint, trace bool, log *logio.Logger) (*Compiler, error) {
	var c *Compiler
	err := panicerr.Recover("compile", func() error {
		src, err := ReadSources(ctx, paths)
		if err != nil {
			return err
		}

		var logf func(string, ...interface{})
		if trace {
			logf = log.Leveledf("TRACE")
		}
		c = NewCompiler(logf, log.Leveledf("Warning"))

		if err := c.Evaluate(src); err != nil {
			return err
		}
		if memLimit != 0 {
			if here := c.Image().Here(); uint(here) > memLimit {
				return CodeOverflowError{Here: here, Max: int(memLimit)}
			}
			if pos := c.Image().MemPos(); uint(pos) > memLimit {
				return DataOverflowError{Pos: pos, Max: int(memLimit)}
			}
		}
		return c.Link(entry)
	})
	return c, err
}

func writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	wf := flushio.NewWriteFlusher(f)
	if _, err := wf.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := wf.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
