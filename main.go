package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/flyscan/app"
	"github.com/AnkushinDaniil/flyscan/config"
)

var (
	configPath   = flag.String("config", "", "YAML scan file")
	modeFlag     = flag.String("mode", "", "b|blur, a|acquisition or t|theta")
	formatFlag   = flag.String("format", "", "text, html, png or csv")
	output       = flag.String("output", "", "Output file for the sweep")
	exposureTime = flag.Float64("exposure", 0, "Exposure time, s")
	readoutTime  = flag.Float64("readout", 0, "Readout time, s")
	cameraSizeX  = flag.Float64("camera-x", 0, "Camera X size, pixels")
	angularRange = flag.Float64("range", 0, "Angular range, degrees")
	numberOfProj = flag.Int("proj", 0, "Total number of projections")
	blurBudget   = flag.Float64("blur", 0, "Blur budget, pixels")
	sweepMin     = flag.Float64("sweep-min", 0, "Sweep start: exposure time (blur) or blur budget (acquisition)")
	sweepMax     = flag.Float64("sweep-max", 0, "Sweep end")
	sweepSteps   = flag.Int("sweep-steps", 0, "Number of sweep points")
	debug        = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	scan := config.Default()
	if *configPath != "" {
		var err error
		scan, err = config.Load(*configPath)
		if err != nil {
			log.WithError(err).Fatal("Failed to load config")
		}
		log.WithField("config", *configPath).Debug("Config loaded")
	}
	applyFlags(scan)

	params, err := scan.Parameters()
	if err != nil {
		log.WithError(err).Fatal("Failed to build parameters")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.New(scan.Output, params).Run(ctx); err != nil {
		stop()
		log.WithError(err).Fatal("Run failed")
	}
}

// applyFlags overrides scan values with the flags set on the command line.
func applyFlags(scan *config.Scan) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			scan.Mode = *modeFlag
		case "format":
			scan.Format = *formatFlag
		case "output":
			scan.Output = *output
		case "exposure":
			scan.ExposureTime = *exposureTime
		case "readout":
			scan.ReadoutTime = *readoutTime
		case "camera-x":
			scan.CameraSizeX = *cameraSizeX
		case "range":
			scan.AngularRange = *angularRange
		case "proj":
			scan.NumberOfProj = *numberOfProj
		case "blur":
			scan.BlurBudget = *blurBudget
		case "sweep-min":
			scan.Sweep.Min = *sweepMin
		case "sweep-max":
			scan.Sweep.Max = *sweepMax
		case "sweep-steps":
			scan.Sweep.Steps = *sweepSteps
		}
	})
}
