package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gitlab.com/greyxor/slogor"
)

type ctxKey string

const (
	slogFields  ctxKey = "slog_fields"
	PackageName string = "package"
)

// ContextHandler adds attributes stored with AppendCtx to every record.
type ContextHandler struct {
	slog.Handler
}

// Handle adds contextual attributes to the Record before calling the underlying handler.
func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}

	if err := h.Handler.Handle(ctx, r); err != nil {
		return fmt.Errorf("error handling record for a log: %+v: %w", r, err)
	}

	return nil
}

func (h ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h ContextHandler) WithGroup(name string) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithGroup(name)}
}

// AppendCtx adds an slog attribute to the provided context so that it will be included in any Record created with such context.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if v, ok := parent.Value(slogFields).([]slog.Attr); ok {
		// copy so that sibling contexts do not share the backing array
		attrs := make([]slog.Attr, 0, len(v)+1)
		attrs = append(attrs, v...)

		return context.WithValue(parent, slogFields, append(attrs, attr))
	}

	return context.WithValue(parent, slogFields, []slog.Attr{attr})
}

func PackageCtx(packageName string) context.Context {
	return AppendCtx(context.Background(), slog.String(PackageName, packageName))
}

// New builds the logger used by the command line: colored slogor output
// wrapped in a ContextHandler.
func New(w io.Writer, level slog.Level) *slog.Logger {
	var handler slog.Handler
	if level <= slog.LevelDebug {
		handler = slogor.NewHandler(w,
			slogor.SetLevel(level),
			slogor.SetTimeFormat(time.DateTime),
			slogor.ShowSource())
	} else {
		handler = slogor.NewHandler(w,
			slogor.SetLevel(level),
			slogor.SetTimeFormat(time.DateTime))
	}

	return slog.New(ContextHandler{Handler: handler})
}

// Level maps the verbose flag to a log level. The menu owns the terminal,
// so only warnings are shown unless asked for more.
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}

	return slog.LevelWarn
}
