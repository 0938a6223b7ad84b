package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dshills/foolsgambit/pkg/content"
	"github.com/dshills/foolsgambit/pkg/foolsgambit"
	"github.com/dshills/foolsgambit/pkg/replay"
	"github.com/dshills/foolsgambit/pkg/saveio"
)

const version = "1.0.0"

var (
	majorsPath  = flag.String("majors", "", "Path to the majors_bundle YAML file (required)")
	stringsPath = flag.String("strings", "", "Path to the strings_bundle YAML file (required)")
	replayPath  = flag.String("replay", "", "Path to an ActionLog JSON file to replay")
	savePath    = flag.String("save", "", "Path to write a SaveBlob JSON file after replay")
	seedFlag    = flag.Uint64("seed", 0, "Override the seed from the replay log's START_RUN action (0 = use log seed)")
	verbose     = flag.Bool("verbose", false, "Enable verbose output")
	versionF    = flag.Bool("version", false, "Print version and exit")
	help        = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("foolsgambit version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}

	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if *majorsPath == "" || *stringsPath == "" || *replayPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -majors, -strings and -replay flags are required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		log.Error().Err(err).Msg("foolsgambit run failed")
		os.Exit(1)
	}
}

func run() error {
	majorsRaw, err := os.ReadFile(*majorsPath)
	if err != nil {
		return fmt.Errorf("reading majors bundle: %w", err)
	}
	stringsRaw, err := os.ReadFile(*stringsPath)
	if err != nil {
		return fmt.Errorf("reading strings bundle: %w", err)
	}

	bundle, err := content.LoadContent(majorsRaw, stringsRaw)
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}
	if *verbose {
		fmt.Printf("Loaded content_version=%s with %d majors\n", bundle.ContentVersion, len(bundle.MajorOrder))
	}

	engine, err := foolsgambit.NewEngine(bundle)
	if err != nil {
		return fmt.Errorf("constructing engine: %w", err)
	}

	logRaw, err := os.ReadFile(*replayPath)
	if err != nil {
		return fmt.Errorf("reading replay log: %w", err)
	}
	var log_ replay.ActionLog
	if err := json.Unmarshal(logRaw, &log_); err != nil {
		return fmt.Errorf("decoding replay log: %w", err)
	}
	if *seedFlag != 0 && len(log_.Actions) > 0 {
		if *verbose {
			fmt.Printf("Overriding seed from %d to %d\n", log_.Actions[0].Seed, *seedFlag)
		}
		log_.Actions[0].Seed = uint32(*seedFlag)
	}

	start := time.Now()
	final, hashes, err := engine.ReplayLog(&log_)
	if err != nil {
		return fmt.Errorf("replaying action log: %w", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("Replayed %d steps in %v\n", len(hashes), elapsed)
	fmt.Printf("Final hash (step %d): %s\n", len(log_.Actions)-1, hashes[len(log_.Actions)-1])

	if *savePath != "" {
		seed := log_.Actions[0].Seed
		runLengthTarget := log_.Actions[0].RunLengthTarget
		blob, err := saveio.SerializeSave(final, seed, runLengthTarget, &log_, bundle, time.Now())
		if err != nil {
			return fmt.Errorf("serializing save: %w", err)
		}
		if err := os.WriteFile(*savePath, blob, 0644); err != nil {
			return fmt.Errorf("writing save file: %w", err)
		}
		if *verbose {
			fmt.Printf("Wrote save blob to %s (%d bytes)\n", *savePath, len(blob))
		}
	}

	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: foolsgambit -majors <majors.yaml> -strings <strings.yaml> -replay <log.json> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'foolsgambit -help' for detailed help")
}

func printHelp() {
	fmt.Printf("foolsgambit version %s\n\n", version)
	fmt.Println("Replays a Fool's Gambit action log through the rules engine and prints the number of replayed steps and the final state hash.")
	fmt.Println("\nUsage:")
	fmt.Println("  foolsgambit -majors <majors.yaml> -strings <strings.yaml> -replay <log.json> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -majors string")
	fmt.Println("        Path to the majors_bundle YAML file")
	fmt.Println("  -strings string")
	fmt.Println("        Path to the strings_bundle YAML file")
	fmt.Println("  -replay string")
	fmt.Println("        Path to an ActionLog JSON file to replay")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -save string")
	fmt.Println("        Path to write a SaveBlob JSON file after replay")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the seed from the replay log's START_RUN action (0 = use log seed)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
}
