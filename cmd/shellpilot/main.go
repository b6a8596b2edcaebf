package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/halcyonlabs/shellpilot/internal/config"
	"github.com/halcyonlabs/shellpilot/internal/logging"
	"github.com/halcyonlabs/shellpilot/internal/monitoring"
	"github.com/halcyonlabs/shellpilot/internal/session"
	"github.com/halcyonlabs/shellpilot/internal/tokens"
)

// commandLogger adapts zap to the controller's logging sink.
type commandLogger struct {
	log *logging.Logger
}

func (l commandLogger) Log(message string) {
	l.log.Info(message)
}

func main() {
	shell := flag.String("shell", "", "shell binary (overrides env config)")
	timeout := flag.Duration("timeout", 0, "per-command timeout (overrides env config)")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *shell != "" {
		cfg.Shell.Path = *shell
	}
	if *timeout > 0 {
		cfg.Shell.Timeout = *timeout
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	tok, err := tokens.NewTiktoken(cfg.Tokens.Model)
	if err != nil {
		logger.Fatal("failed to load tokenizer", zap.Error(err))
	}

	ptySession, err := session.StartPTY(session.Options{
		Shell:        cfg.Shell.Path,
		Cols:         cfg.Term.Width,
		Rows:         cfg.Term.Height,
		StartTimeout: cfg.Shell.StartTimeout,
	})
	if err != nil {
		logger.Fatal("failed to start shell", zap.Error(err))
	}

	var metrics *monitoring.Metrics
	if cfg.Metrics.Addr != "" {
		reg := prometheus.NewRegistry()
		metrics = monitoring.New(reg)
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				logger.Warn("metrics listener stopped", zap.Error(err))
			}
		}()
	}

	ctrl := session.NewController(session.ControllerOptions{
		Transport:  ptySession,
		Truncator:  tokens.NewTruncator(tok, cfg.Tokens.Budget),
		Logger:     commandLogger{log: logger},
		Metrics:    metrics,
		Timeout:    cfg.Shell.Timeout,
		TermWidth:  cfg.Term.Width,
		TermHeight: cfg.Term.Height,
	})
	defer ctrl.Close()

	logger.Info("session ready",
		zap.String("session_id", ctrl.ID().String()),
		zap.String("shell", cfg.Shell.Path),
		zap.Duration("timeout", cfg.Shell.Timeout),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutting down")
		ctrl.Close()
		os.Exit(0)
	}()

	repl(ctrl)
}

// repl reads one request per line from stdin and prints results to
// stdout. Lines starting with ":key " or ":raw " deliver special input;
// everything else is a command.
func repl(ctrl *session.Controller) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		req, err := parseRequest(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}

		out, err := ctrl.Execute(context.Background(), req)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}
		fmt.Println(out)
	}
}

func parseRequest(line string) (session.Request, error) {
	if name, ok := strings.CutPrefix(line, ":key "); ok {
		k, known := session.ParseKey(strings.TrimSpace(name))
		if !known {
			return session.Request{}, fmt.Errorf("unknown key %q", strings.TrimSpace(name))
		}
		return session.Special(session.KeyPress(k)), nil
	}
	if raw, ok := strings.CutPrefix(line, ":raw "); ok {
		decoded, err := strconv.Unquote(`"` + raw + `"`)
		if err != nil {
			return session.Request{}, fmt.Errorf("bad raw input %q: %w", raw, err)
		}
		return session.Special(session.RawBytes([]byte(decoded))), nil
	}
	return session.Command(line), nil
}
