package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pavelanni/diagnostic/internal/bank"
	"github.com/pavelanni/diagnostic/internal/handler"
	appI18n "github.com/pavelanni/diagnostic/internal/i18n"
	"github.com/pavelanni/diagnostic/internal/llm"
	"github.com/pavelanni/diagnostic/internal/llm/prompts"
	"github.com/pavelanni/diagnostic/internal/model"
	"github.com/pavelanni/diagnostic/internal/session"
)

func main() {
	_ = godotenv.Load()
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "diagnostic",
		Short: "Diagnostic quiz with personalized study plans",
	}

	serve := serveCmd()
	root.AddCommand(serve, reportCmd())

	// Make "serve" the default when no subcommand is given.
	root.RunE = serve.RunE

	// Register serve flags on root so bare `diagnostic --addr ...` still works.
	root.Flags().AddFlagSet(serve.Flags())

	return root
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP quiz server",
		RunE:  runServe,
	}
	f := cmd.Flags()
	f.StringP("addr", "a", ":8080", "HTTP listen address")
	f.StringP("questions", "q", "", "Path to a questions JSON file (empty = built-in bank)")
	f.StringP("lang", "l", "en", "Default UI language (en, fr)")
	f.String("base-path", "", "URL prefix for sub-path deployments (e.g. /quiz)")
	f.Bool("secure-cookies", true, "Set Secure flag on cookies")
	f.Int("minutes-per-subject", 5, "Suggested minutes per subject shown on test pages (0 = hide)")
	f.Duration("session-ttl", session.DefaultTTL, "How long a quiz session stays valid")
	f.Duration("shutdown-timeout", 10*time.Second, "Grace period for in-flight requests on shutdown")
	f.String("llm-url", "", "OpenAI-compatible API base URL for advisor notes (empty = disabled)")
	f.String("llm-key", "ollama", "API key for LLM")
	f.String("llm-model", "llama3.2", "LLM model name")
	f.String("prompt-variant", string(prompts.PromptStandard), "Advisor prompt variant (standard, supportive, direct)")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
	return cmd
}

func setupLogging(cmd *cobra.Command) {
	v := viperForCmd(cmd)

	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))
}

// viperForCmd binds a command's flags and environment to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("DIAGNOSTIC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("diagnostic")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/diagnostic")
	v.AddConfigPath("/etc/diagnostic")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Debug("loaded config file", "path", v.ConfigFileUsed())
	}

	return v
}

// loadBank returns the built-in bank, or the bank from path when it is set.
func loadBank(path string) (*bank.Bank, error) {
	if path == "" {
		return bank.Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	b, err := bank.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	slog.Info("loaded questions", "path", path, "count", b.Len())
	return b, nil
}

func normalizeBasePath(p string) string {
	p = strings.TrimRight(p, "/")
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func runServe(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	b, err := loadBank(v.GetString("questions"))
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}

	lang := v.GetString("lang")
	if err := appI18n.Init(lang); err != nil {
		return fmt.Errorf("init i18n: %w", err)
	}

	var advisor handler.Advisor
	if llmURL := v.GetString("llm-url"); llmURL != "" {
		client, err := llm.New(llmURL, v.GetString("llm-key"), v.GetString("llm-model"),
			strings.ToLower(strings.TrimSpace(v.GetString("prompt-variant"))))
		if err != nil {
			return fmt.Errorf("create LLM client: %w", err)
		}
		if err := client.Ping(cmd.Context()); err != nil {
			slog.Warn("LLM endpoint not reachable, advisor notes may fail", "url", llmURL, "error", err)
		} else {
			slog.Info("LLM endpoint OK", "url", llmURL, "model", v.GetString("llm-model"))
		}
		advisor = client
	}

	basePath := normalizeBasePath(v.GetString("base-path"))
	cfg := model.QuizConfig{
		Lang:          lang,
		BasePath:      basePath,
		SecureCookies: v.GetBool("secure-cookies"),
		MinutesPerSub: v.GetInt("minutes-per-subject"),
	}

	sessions := session.NewManager(v.GetDuration("session-ttl"))
	h, err := handler.New(b, sessions, advisor, cfg)
	if err != nil {
		return fmt.Errorf("create handler: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(appI18n.Middleware(lang))

	if basePath != "" {
		r.Route(basePath, func(sub chi.Router) {
			sub.Use(h.BasePathMiddleware)
			h.Routes(sub)
		})
		r.Get(basePath, func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, basePath+"/", http.StatusMovedPermanently)
		})
	} else {
		r.Use(h.BasePathMiddleware)
		h.Routes(r)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go sessions.RunCleanup(ctx, time.Hour)

	ln, err := net.Listen("tcp", v.GetString("addr"))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	slog.Info("starting server",
		"addr", ln.Addr().String(),
		"lang", lang,
		"questions", b.Len(),
		"base_path", basePath,
		"advisor", advisor != nil,
		"session_ttl", v.GetDuration("session-ttl"),
	)
	srv := &http.Server{Handler: r}
	return serveUntilDone(ctx, srv, ln, v.GetDuration("shutdown-timeout"))
}

// serveUntilDone serves on ln until ctx is cancelled, then waits up to timeout
// for in-flight requests before returning.
func serveUntilDone(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration) error {
	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		slog.Info("shutting down server")
		shutdownErr <- srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err := <-shutdownErr; err != nil {
		slog.Error("server forced to shutdown", "error", err)
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

