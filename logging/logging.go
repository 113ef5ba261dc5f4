// Package logging carries slog attributes through contexts so per-request
// and per-package fields show up on every record logged under them.
package logging

import (
	"context"
	"fmt"
	"log/slog"
)

type ctxKey string

const (
	slogFields ctxKey = "slog_fields"

	PackageName string = "package"
	RequestPath string = "path"
)

// ContextHandler decorates a slog.Handler with attributes stored in the
// record's context.
type ContextHandler struct {
	slog.Handler
}

// Handle adds contextual attributes to the record before calling the
// underlying handler.
func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		for _, v := range attrs {
			r.AddAttrs(v)
		}
	}

	if err := h.Handler.Handle(ctx, r); err != nil {
		return fmt.Errorf("error handling record for a log: %+v: %w", r, err)
	}

	return nil
}

// AppendCtx adds an slog attribute to the provided context so that it
// will be included in any record created with that context.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if v, ok := parent.Value(slogFields).([]slog.Attr); ok {
		v = append(v, attr)

		return context.WithValue(parent, slogFields, v)
	}

	return context.WithValue(parent, slogFields, []slog.Attr{attr})
}

// PackageCtx returns a background context tagged with the package name.
func PackageCtx(packageName string) context.Context {
	return AppendCtx(context.Background(), slog.String(PackageName, packageName))
}

// RequestCtx tags a request context with its URL path for the server
// middleware.
func RequestCtx(parent context.Context, path string) context.Context {
	return AppendCtx(parent, slog.String(RequestPath, path))
}
