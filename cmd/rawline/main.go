package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/rawline/audio"
	"github.com/lixenwraith/rawline/config"
	"github.com/lixenwraith/rawline/console"
	"github.com/lixenwraith/rawline/history"
	"github.com/lixenwraith/rawline/terminal"
)

var (
	configFlag    = flag.String("config", "", "Config file (default $XDG_CONFIG_HOME/rawline/config.toml)")
	historyFlag   = flag.Int("history", 100, "History capacity, 0 disables recall")
	maskFlag      = flag.String("mask", "", "Echo this character in place of input")
	hiddenFlag    = flag.Bool("hidden", false, "Echo nothing while typing")
	colourFlag    = flag.String("colour", "", "Prompt colour: std black red green yellow blue magenta cyan grey, a tcell colour name or #rrggbb")
	noNewlineFlag = flag.Bool("no-newline", false, "Do not echo a newline after each accepted line")
	soundFlag     = flag.Bool("sound", false, "Buzz when a key is refused")
	keysFlag      = flag.Bool("keys", false, "Print the byte values of typed keys instead of reading lines")
	countFlag     = flag.Int("n", 0, "Lines (or bytes with -keys) to read, 0 reads until exit or end of input")
	debugFlag     = flag.Bool("debug", false, "Write logs to logs/rawline.log")
)

const (
	exitWord    = "exit"
	historyWord = "history"
)

func main() {
	// Panic Recovery: ensure the terminal leaves raw mode even if the program crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mRAWLINE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()
	os.Exit(run())
}

func run() int {
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rawline: %v\n", err)
		return 1
	}

	// ISIG stays on in raw mode, so Ctrl-C arrives here while a read is blocked
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Printf("rawline: %v, restoring terminal", sig)
		terminal.RestoreCookedMode(os.Stdout)
		fmt.Fprintln(os.Stdout)
		os.Exit(130)
	}()

	con := console.NewStdio()

	if cfg.Feedback.Sound {
		fb := audio.NewFeedback()
		if err := fb.Initialize(); err != nil {
			log.Printf("rawline: audio unavailable: %v", err)
		} else {
			defer fb.Cleanup()
			con.OnRefuse(fb.Refuse)
		}
	}

	if *keysFlag {
		err = con.TestChars(*countFlag)
	} else {
		err = readLines(con, cfg)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		fmt.Fprintf(os.Stderr, "rawline: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the config file and applies command line overrides
func loadConfig() (*config.Config, error) {
	path := *configFlag
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			log.Printf("rawline: no config path: %v", err)
			return overrideConfig(config.Default(), flagsSet())
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return overrideConfig(cfg, flagsSet())
}

// flagsSet returns the names of flags given on the command line
func flagsSet() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// overrideConfig copies explicitly set flags over cfg and validates the result
func overrideConfig(cfg *config.Config, set map[string]bool) (*config.Config, error) {
	if set["history"] {
		cfg.History.Capacity = *historyFlag
	}
	if set["mask"] {
		cfg.Echo.Mode = config.EchoMask
		cfg.Echo.Mask = *maskFlag
	}
	if set["hidden"] && *hiddenFlag {
		cfg.Echo.Mode = config.EchoNone
	}
	if set["colour"] {
		cfg.Prompt.Colour = *colourFlag
	}
	if set["no-newline"] {
		cfg.Prompt.Newline = !*noNewlineFlag
	}
	if set["sound"] {
		cfg.Feedback.Sound = *soundFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// printHistory lists the retained lines, oldest first
func printHistory(con *console.Console, ring *history.Ring) error {
	for i, line := range ring.Entries() {
		if err := con.Println(fmt.Sprintf("%4d  %s", i+1, line)); err != nil {
			return err
		}
	}
	return nil
}

// readLines prompts until the exit word, end of input or the line count is reached
func readLines(con *console.Console, cfg *config.Config) error {
	echo, err := cfg.LineEcho()
	if err != nil {
		return err
	}
	colour, err := cfg.PromptColour()
	if err != nil {
		return err
	}
	style, err := cfg.PromptStyle()
	if err != nil {
		return err
	}

	ring := history.New(cfg.History.Capacity)
	for n := 0; *countFlag == 0 || n < *countFlag; n++ {
		if err := con.PrintColoursStyle("> ", colour, terminal.ColourStd, style); err != nil {
			return err
		}
		if !cfg.Prompt.Newline {
			con.DiscardNewlineOnPromptNextTime()
		}

		line, err := con.InputFieldCustom(ring, echo)
		if err != nil {
			if errors.Is(err, io.EOF) {
				con.Println("")
			}
			return err
		}
		switch line {
		case exitWord:
			log.Printf("rawline: exit, %d of %d history entries in use", ring.Len(), ring.Cap())
			return nil
		case historyWord:
			if err := printHistory(con, ring); err != nil {
				return err
			}
			continue
		}

		// Without the echoed newline the reply shares the input line
		reply := line
		if !cfg.Prompt.Newline {
			reply = " => " + line
		}
		if err := con.Println(reply); err != nil {
			return err
		}
	}
	return nil
}
