package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/pkg/profile"

	options "github.com/chill-nemesis/glad-cmake-python-fix/options"
	smoke "github.com/chill-nemesis/glad-cmake-python-fix/smoke"
)

func init() {
	runtime.LockOSThread()
}

func runSmoke(opts *options.SmokeOptions) int {
	if *opts.Profile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*opts.Profile), profile.Quiet).Stop()
	}
	return smoke.Run(opts)
}

func main() {
	opts := &options.SmokeOptions{
		Width:        flag.Int("width", 50, "Probe surface width in pixels"),
		Height:       flag.Int("height", 50, "Probe surface height in pixels"),
		Title:        flag.String("title", "gladsmoke", "Window title"),
		Help:         flag.Bool("help", false, "Show help message"),
		Log:          flag.Bool("log", false, "Print progress output to stdout"),
		Visible:      flag.Bool("visible", false, "Show the probe window instead of hiding it"),
		Headless:     flag.Bool("headless", false, "Use an EGL pbuffer context instead of a window (linux)"),
		MinVersion:   flag.String("min", "", "Minimum GL version to accept (GLADSMOKE_MIN env var if not set; default 3.3)"),
		ClearColor:   flag.String("clear", "0.2,0.3,0.3,1.0", "Clear color as r,g,b,a in [0,1]"),
		Report:       flag.Bool("report", false, "Log the adapter report after loading"),
		JSON:         flag.Bool("json", false, "Write the adapter report to stdout as JSON"),
		Verify:       flag.Bool("verify", false, "Read the frame back and check the clear color"),
		Snapshot:     flag.String("snapshot", "", "Write the rendered frame to this PNG file"),
		Requirements: flag.String("requirements", "", "TOML manifest of required version/extensions"),
		Profile:      flag.String("profile", "", "Write a CPU profile to this directory"),
	}

	flag.Parse()

	if *opts.Help {
		fmt.Println("gladsmoke - OpenGL context and loader smoke check")
		flag.PrintDefaults()
		return
	}

	if *opts.Log || *opts.Report {
		log.SetOutput(os.Stdout)
	} else {
		log.SetOutput(io.Discard)
	}

	minVersion := *opts.MinVersion
	if minVersion == "" {
		minVersion = os.Getenv("GLADSMOKE_MIN")
	}
	if minVersion == "" {
		minVersion = "3.3"
	}
	opts.MinVersion = &minVersion

	os.Exit(runSmoke(opts))
}
