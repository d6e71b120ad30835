package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/lumipallolabs/hashseek/internal/cli"
	"github.com/lumipallolabs/hashseek/internal/config"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Enable CPU profiling if CPUPROFILE env var is set
	if cpuProfile := config.FromEnv().CPUProfile; cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", cpuProfile)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCmd(version).ExecuteContext(ctx); err != nil {
		if errors.Is(err, cli.ErrInterrupted) {
			fmt.Fprintln(os.Stderr, "Search interrupted.")
			return 130
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
