package main

import (
	"ColorGradient/gradient"
	"ColorGradient/misc"
	"ColorGradient/service"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

var (
	anchors, remoteAddress, serverAddress, settingsFile, verbosity string
	serve, swatch                                                  bool
)

func main() {
	parseArguments()
	if serve {
		startService()
		return
	}

	logger := misc.NewLogger("ColorGradient", verbosity)
	settings, err := gradient.NewSettings(settingsFile, misc.NewLogger("Settings", verbosity))
	misc.CheckError(err, logger, misc.Fatal)
	if anchors != "" {
		settings.Anchors = nil
		settings.HexAnchors = splitAnchors(anchors)
		misc.CheckError(settings.Verify(), logger, misc.Fatal)
	}

	var colors []gradient.RGB
	if remoteAddress != "" {
		logger.Infof("Calculating gradient with service at %s", remoteAddress)
		colors, err = service.CalculateRemote(remoteAddress, settings.Colors(), misc.NewLogger("GradientClient", verbosity))
	} else {
		colors, err = gradient.Calculate(settings.Colors())
	}
	misc.CheckError(err, logger, misc.Fatal)
	logger.Infof("Calculated %d colors from %d anchors", len(colors), len(settings.Colors()))

	if swatch && !term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Warning("Standard output is not a terminal. Disabling swatch.")
		swatch = false
	}
	misc.CheckError(printGradient(os.Stdout, colors, swatch), logger, misc.Fatal)
}

func startService() {
	logger := misc.NewLogger("GradientService", verbosity)

	if serverAddress == "" {
		localAddress, err := misc.GetLocalAddress()
		misc.CheckError(err, logger, misc.Fatal)
		serverAddress = fmt.Sprintf("%s:%s", localAddress, "51000")
	}

	gradientService := service.NewGradient(serverAddress, logger)
	misc.CheckError(gradientService.Server.Run(), logger, misc.Fatal)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	if !misc.CheckError(gradientService.Server.Stop(), logger, misc.Error) {
		gradientService.Server.WG.Wait()
	}
	logger.Info("Shutting down")
}
