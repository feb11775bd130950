package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/keilerkonzept/countish"
	"github.com/keilerkonzept/countish/internal/config"
)

func main() {
	log.SetFlags(0)
	app := &cli.App{
		Name:  "countish",
		Usage: "report items whose frequency in a line stream exceeds a threshold",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "algorithm", Aliases: []string{"a"}, Value: "sticky", Usage: "one of naive|lossy|sticky"},
			&cli.Float64Flag{Name: "threshold", Aliases: []string{"t"}, Value: 0.05, Usage: "report items whose frequency is at least this value"},
			&cli.Float64Flag{Name: "support", Aliases: []string{"s"}, Usage: "base granularity; items below this frequency are not guaranteed to be found (default: threshold)"},
			&cli.Float64Flag{Name: "error-tolerance", Aliases: []string{"e"}, Usage: "tolerable undercount as a fraction of the stream length (default: support/2)"},
			&cli.Float64Flag{Name: "failure-prob", Aliases: []string{"p"}, Value: 0.01, Usage: "chance that a frequent item is missed (sticky only)"},
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "read items from this file instead of stdin"},
			&cli.BoolFlag{Name: "hashed", Usage: "count 32-bit key fingerprints instead of raw lines"},
			&cli.StringFlag{Name: "config", Usage: "YAML config file; flags take precedence"},
			&cli.BoolFlag{Name: "stats", Usage: "print counter statistics to stderr after the run"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	algorithm := c.String("algorithm")
	threshold := c.Float64("threshold")
	support := c.Float64("support")
	errorTolerance := c.Float64("error-tolerance")
	failureProb := c.Float64("failure-prob")
	hashed := c.Bool("hashed")

	if path := c.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return cli.Exit(err, 1)
		}
		if err := cfg.Validate(); err != nil {
			return cli.Exit(err, 1)
		}
		if !c.IsSet("algorithm") && cfg.Algorithm != "" {
			algorithm = cfg.Algorithm
		}
		if !c.IsSet("threshold") && cfg.Threshold != 0 {
			threshold = cfg.Threshold
		}
		if !c.IsSet("support") && cfg.Support != 0 {
			support = cfg.Support
		}
		if !c.IsSet("error-tolerance") && cfg.ErrorTolerance != 0 {
			errorTolerance = cfg.ErrorTolerance
		}
		if !c.IsSet("failure-prob") && cfg.FailureProb != 0 {
			failureProb = cfg.FailureProb
		}
		if !c.IsSet("hashed") {
			hashed = cfg.Hashed
		}
	}
	if support == 0 {
		support = threshold
	}
	if errorTolerance == 0 {
		errorTolerance = support / 2
	}

	counter, err := newCounter(algorithm, support, errorTolerance, failureProb)
	if err != nil {
		return cli.Exit(err, 1)
	}

	var reader io.Reader = os.Stdin
	if name := c.String("file"); name != "" {
		f, err := os.Open(name)
		if err != nil {
			return cli.Exit(err, 1)
		}
		defer f.Close()
		reader = f
	}

	n, err := observeLines(counter, reader, hashed)
	if err != nil {
		return cli.Exit(fmt.Sprintf("read: %v", err), 1)
	}

	entries, err := counter.ItemsAboveThreshold(threshold)
	if err != nil {
		return cli.Exit(err, 1)
	}
	for _, entry := range entries {
		fmt.Printf("%s %g\n", entry.Key, entry.Frequency)
	}

	if c.Bool("stats") {
		if s, ok := counter.(interface {
			Len() int
			SizeBytes() int
		}); ok {
			log.Printf("n=%d entries=%d size=%dB", n, s.Len(), s.SizeBytes())
		}
	}
	return nil
}

func newCounter(algorithm string, support, errorTolerance, failureProb float64) (countish.Counter, error) {
	switch algorithm {
	case "naive":
		return countish.NewNaive(), nil
	case "lossy":
		counter, err := countish.NewLossy(support, errorTolerance)
		if err != nil {
			return nil, err
		}
		return counter, nil
	case "sticky":
		counter, err := countish.NewSticky(support, errorTolerance, failureProb)
		if err != nil {
			return nil, err
		}
		return counter, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", algorithm)
	}
}

// observeLines feeds each input line to the counter and returns the number
// of observed lines.
func observeLines(counter countish.Counter, reader io.Reader, hashed bool) (uint64, error) {
	var n uint64
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		item := scanner.Text()
		if hashed {
			item = strconv.FormatUint(uint64(countish.Fingerprint(item)), 16)
		}
		counter.Observe(item)
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, err
	}
	return n, nil
}
