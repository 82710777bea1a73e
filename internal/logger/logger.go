package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"

	"github.com/templui/healthjournal/internal/ctxkeys"
)

// Log is the global logger instance
var Log *slog.Logger

var sentryEnabled bool

// Init initializes the global logger based on environment
// Development: Text format with Debug level
// Production: JSON format with Info level
// Optionally sends errors to Sentry for error tracking
func Init(isDev bool, sentryDSN string) {
	var handlers []slog.Handler
	handlers = append(handlers, NewHandler(os.Stdout, isDev))

	// Optional Sentry handler (sends errors only)
	if sentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              sentryDSN,
			TracesSampleRate: 1.0,
		})
		if err == nil {
			sentryEnabled = true
			handlers = append(handlers, slogsentry.Option{
				Level: slog.LevelError,
			}.NewSentryHandler())
		}
	}

	// Use multi-handler if we have multiple, otherwise use single
	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}

	Log = slog.New(WithRequestAttrs(handler))
	slog.SetDefault(Log)
}

// NewHandler returns the stdout handler for the environment.
func NewHandler(w io.Writer, isDev bool) slog.Handler {
	if isDev {
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
}

// WithRequestAttrs wraps h so records logged with a request context carry
// its request id and caller id.
func WithRequestAttrs(h slog.Handler) slog.Handler {
	return slogmulti.Pipe(requestAttrs()).Handler(h)
}

func requestAttrs() slogmulti.Middleware {
	return slogmulti.NewHandleInlineMiddleware(func(ctx context.Context, record slog.Record, next func(context.Context, slog.Record) error) error {
		if id := ctxkeys.RequestID(ctx); id != "" {
			record.AddAttrs(slog.String("request_id", id))
		}
		if identity, ok := ctxkeys.Identity(ctx); ok {
			record.AddAttrs(slog.String("user_id", identity.UserID))
		}
		return next(ctx, record)
	})
}

// Flush waits for buffered Sentry events. It is a no-op without Sentry.
func Flush() {
	if sentryEnabled {
		sentry.Flush(2 * time.Second)
	}
}
