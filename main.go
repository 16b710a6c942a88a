// ABOUTME: Entry point for the ListenLab practice CLI
// ABOUTME: Parses CLI flags and starts the practice application
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ListenLab/listenlab-go/internal/app"
	"github.com/ListenLab/listenlab-go/internal/ui"
	"github.com/ListenLab/listenlab-go/internal/version"
	"github.com/sirupsen/logrus"
)

var (
	practiceType = flag.String("type", "", "Practice type: lecture or conversation")
	topic        = flag.String("topic", "", "Topic for the generated passage (default: model picks)")
	voice        = flag.String("voice", "", "Synthesis voice name")
	audioFile    = flag.String("audio-file", "", "Play a local MP3 instead of generating a passage")
	dbPath       = flag.String("db", "", "Practice history database path (default: user config dir)")
	logFile      = flag.String("log-file", "listenlab.log", "Log file path")
	showVersion  = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", version.Product, version.Version)
		return
	}

	// The TUI owns the terminal, so logs go to a file only.
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = f.Close() }()

	logrus.SetOutput(f)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.WithField("version", version.Version).Info("starting")

	historyPath := *dbPath
	if historyPath == "" {
		historyPath, err = defaultHistoryPath()
		if err != nil {
			fatal("failed to resolve history path: %v", err)
		}
	}

	application, err := app.New(context.Background(), app.Config{
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		HistoryPath: historyPath,
	})
	if err != nil {
		fatal("failed to start: %v", err)
	}
	defer application.Close()

	// The import flow prepares its session before the UI starts so a bad
	// file fails fast on the command line instead of inside the TUI.
	var sess *app.Session
	if *audioFile != "" {
		sess, err = application.PrepareImport(*audioFile)
		if err != nil {
			fatal("failed to import %s: %v", *audioFile, err)
		}
		defer sess.Close()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("shutdown signal received")
		application.Close()
		os.Exit(1)
	}()

	setup := ui.Setup{Kind: *practiceType, Topic: *topic, Voice: *voice}
	if err := ui.Run(application, sess, setup); err != nil {
		fatal("UI error: %v", err)
	}

	logrus.Info("stopped")
}

// defaultHistoryPath places the database under the user config dir,
// creating the directory if needed.
func defaultHistoryPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "listenlab")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

// fatal logs the error and reports it on stderr, since the log file is
// not where a CLI user is looking.
func fatal(format string, args ...any) {
	logrus.Errorf(format, args...)
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
