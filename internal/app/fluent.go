package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"

	"github.com/saudaghar/marketplace-backend/internal/config"
)

// fluentPoster is the part of *fluent.Fluent the handler needs.
type fluentPoster interface {
	PostWithTime(tag string, tm time.Time, message any) error
}

// NewFluentClient connects to a Fluent Bit forward input. The client buffers
// asynchronously; Close flushes it.
func NewFluentClient(cfg config.FluentConfig) (*fluent.Fluent, error) {
	client, err := fluent.New(fluent.Config{
		FluentHost: cfg.Host,
		FluentPort: cfg.Port,
		Async:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect fluent %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	return client, nil
}

// FluentHandler is a slog.Handler that forwards records to Fluent Bit as flat
// maps. Grouped attributes are flattened with dotted keys.
type FluentHandler struct {
	client fluentPoster
	tag    string
	level  slog.Leveler
	group  string
	attrs  []boundAttr
}

type boundAttr struct {
	prefix string
	attr   slog.Attr
}

// NewFluentHandler creates a handler posting under tag.
func NewFluentHandler(client fluentPoster, tag string, level string) *FluentHandler {
	return &FluentHandler{client: client, tag: tag, level: parseLevel(level)}
}

func (h *FluentHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *FluentHandler) Handle(_ context.Context, r slog.Record) error {
	data := map[string]any{
		"level":   r.Level.String(),
		"message": r.Message,
	}
	for _, b := range h.attrs {
		addAttr(data, b.prefix, b.attr)
	}
	r.Attrs(func(a slog.Attr) bool {
		addAttr(data, h.group, a)
		return true
	})

	return h.client.PostWithTime(h.tag, r.Time, data)
}

func (h *FluentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]boundAttr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, a := range attrs {
		next.attrs = append(next.attrs, boundAttr{prefix: h.group, attr: a})
	}
	return &next
}

func (h *FluentHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.group = joinKey(h.group, name)
	return &next
}

func addAttr(data map[string]any, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := joinKey(prefix, a.Key)
	switch a.Value.Kind() {
	case slog.KindGroup:
		for _, ga := range a.Value.Group() {
			addAttr(data, key, ga)
		}
	case slog.KindTime:
		data[key] = a.Value.Time().Format(time.RFC3339Nano)
	case slog.KindDuration:
		data[key] = a.Value.Duration().String()
	case slog.KindAny:
		switch v := a.Value.Any().(type) {
		case error:
			data[key] = v.Error()
		case fmt.Stringer:
			data[key] = v.String()
		default:
			data[key] = fmt.Sprint(v)
		}
	default:
		data[key] = a.Value.Any()
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	if key == "" {
		return prefix
	}
	return prefix + "." + key
}
