package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "net/http/pprof" // profiling

	_ "github.com/joho/godotenv/autoload" // automatically load .env files

	"github.com/charmbracelet/simpleterm/internal/cmd"
	"github.com/charmbracelet/simpleterm/internal/log"
)

func main() {
	defer log.RecoverPanic("main", func() {
		slog.Error("Application terminated due to unhandled panic")
	})

	// Nothing is logged to the terminal until config picks a log file.
	log.Discard()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Interrupt only stops the foreground passthrough command; typing exit
	// is the way out.
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		for {
			select {
			case sig := <-intChan:
				slog.Debug("Received interrupt", "signal", sig)
			case sig := <-sigChan:
				slog.Info("Received signal, initiating graceful shutdown", "signal", sig)
				cancel()
				return
			}
		}
	}()

	if os.Getenv("SIMPLETERM_PROFILE") != "" {
		go func() {
			slog.Info("Serving pprof at localhost:6060")
			if httpErr := http.ListenAndServe("localhost:6060", nil); httpErr != nil {
				slog.Error(fmt.Sprintf("Failed to pprof listen: %v", httpErr))
			}
		}()
	}

	cmd.Execute(ctx)
}
