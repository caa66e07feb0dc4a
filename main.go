package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"inkpress/app/ai"
	"inkpress/app/auth"
	"inkpress/app/config"
	"inkpress/app/repositories"
	"inkpress/app/routes"
	"inkpress/app/services"
	"inkpress/app/uploads"

	"github.com/dgraph-io/badger/v4"
)

const cliVersion = "1.0.0"

// exit is swapped out in tests.
var exit = os.Exit

func main() {
	run()
}

func run() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("inkpress version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkpress <command>
Commands:
  help       Display this help message.
  version    Show version information.
  serve      Run the blog publishing server.

Configuration comes from INKPRESS_* environment variables; see app/config.
`
	fmt.Println(helpText)
}

func serve() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(cfg.DBPath).WithLogger(nil))
	if err != nil {
		slog.Error("failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	uploadStore, err := uploads.NewDiskStore(cfg.UploadsDir, cfg.BaseURL)
	if err != nil {
		slog.Error("failed to prepare uploads directory", "error", err)
		os.Exit(1)
	}

	gate := auth.NewGate(cfg.JWTSecret, cfg.AdminEmail, cfg.AdminPasswordHash, cfg.TokenTTL)

	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	generator := ai.NewGenerator(ai.NewClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel), cfg.AITimeout)

	router := routes.SetupRoutes(routes.Deps{
		Gate:       gate,
		Posts:      services.NewPostService(postRepo, gate),
		Comments:   services.NewCommentService(commentRepo, postRepo, gate),
		Dashboard:  services.NewDashboardService(postRepo, commentRepo, gate),
		Generate:   generator.Generate,
		Uploads:    uploadStore,
		UploadsDir: uploadStore.Dir(),
	})

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
