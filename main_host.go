//go:build !tinygo

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"nifri2/pixel-dispatch/cmd"
)

// buildView is set at compile time via -ldflags and wins over PIXEL_VIEW
// e.g. -ldflags="-X main.buildView=terminal"
var buildView string

func main() {
	config := cmd.LoadSettings()
	if buildView != "" {
		config.View = cmd.ParseView(buildView)
	}
	// The terminal view owns the tty, so its logs go to a file.
	if config.View == cmd.View_Terminal && config.LogFile == "" {
		config.LogFile = "pixel-dispatch.log"
	}
	log := cmd.Logger()
	if err := cmd.ConfigureLogging(config); err != nil {
		log.WithError(err).Warn("Logging to stderr")
	}

	if config.Role == cmd.Worker {
		log.Fatal("The worker role only runs on the controller board (build with tinygo)")
	}

	color, err := cmd.NormalizeColor(config.Color)
	if err != nil {
		log.Warnf("PIXEL_COLOR %q: %v, using %s", config.Color, err, cmd.DefaultColor)
		color = cmd.DefaultColor
	}
	palette := cmd.NewPalette(color)

	transport, err := cmd.OpenTransport(config)
	if err != nil {
		log.Fatalf("Failed to open transport: %v", err)
	}
	dispatcher := cmd.NewDispatcher(transport, config.QueueSize)
	defer func() {
		if err := dispatcher.Close(); err != nil {
			log.WithError(err).Warn("Closing transport failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	switch config.View {
	case cmd.View_Script:
		go exitOnSignal(quit, dispatcher)
		session, err := cmd.NewSession(config.SideLength, cmd.NewScriptView(os.Stdout), palette, dispatcher)
		if err != nil {
			log.Fatalf("Failed to start session: %v", err)
		}
		if err := cmd.RunScript(os.Stdin, os.Stdout, session); err != nil {
			log.WithError(err).Error("Script failed")
		}

	case cmd.View_Terminal:
		screen, err := tcell.NewScreen()
		if err != nil {
			log.Fatalf("Failed to open terminal: %v", err)
		}
		if err := screen.Init(); err != nil {
			log.Fatalf("Failed to open terminal: %v", err)
		}
		view := cmd.NewTerminalView(screen, palette)
		session, err := cmd.NewSession(config.SideLength, view, palette, dispatcher)
		if err != nil {
			screen.Fini()
			log.Fatalf("Failed to start session: %v", err)
		}
		view.Attach(session)
		// The screen must be restored before exit, so a signal stops the
		// event loop instead of killing the process.
		go func() {
			<-quit
			log.Info("Shutdown signal received...")
			view.Stop()
		}()
		if err := cmd.RunTerminal(view); err != nil {
			log.WithError(err).Error("Terminal view failed")
		}

	default:
		go exitOnSignal(quit, dispatcher)
		view := cmd.NewWindowView()
		session, err := cmd.NewSession(config.SideLength, view, palette, dispatcher)
		if err != nil {
			log.Fatalf("Failed to start session: %v", err)
		}
		if err := cmd.RunWindow(view, session, palette); err != nil {
			log.WithError(err).Error("Window failed")
		}
	}
}

// exitOnSignal flushes the link and exits on SIGINT or SIGTERM.
func exitOnSignal(quit <-chan os.Signal, dispatcher *cmd.Dispatcher) {
	<-quit
	cmd.Logger().Info("Shutdown signal received...")
	if err := dispatcher.Close(); err != nil {
		cmd.Logger().WithError(err).Warn("Closing transport failed")
	}
	os.Exit(0)
}
