package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType names a security relevant event.
type EventType string

const (
	EventRegistered         EventType = "account_registered"
	EventLoginSuccess       EventType = "login_success"
	EventLoginFailed        EventType = "login_failed"
	EventTokenRejected      EventType = "token_rejected"
	EventAccessForbidden    EventType = "access_forbidden"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
)

// Event is one audit record. SubjectValue must already be masked or hashed.
type Event struct {
	Timestamp    time.Time
	Event        EventType
	SubjectType  string
	SubjectValue string
	Details      map[string]interface{}
}

// RequestMeta identifies the HTTP request an event belongs to.
type RequestMeta struct {
	RequestID string
	IP        string
	UserAgent string
	Path      string
}

type metaKey struct{}

func WithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, metaKey{}, meta)
}

func RequestMetaFrom(ctx context.Context) RequestMeta {
	meta, _ := ctx.Value(metaKey{}).(RequestMeta)
	return meta
}

// Logger writes security events as structured zap entries.
type Logger struct {
	zap         *zap.Logger
	service     string
	environment string
}

// New builds a production zap logger writing JSON to stdout.
func New(service, environment string) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.MessageKey = "message"
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	zl, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return nil, err
	}
	return NewWithZap(zl, service, environment), nil
}

func NewWithZap(zl *zap.Logger, service, environment string) *Logger {
	return &Logger{zap: zl, service: service, environment: environment}
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return NewWithZap(zap.NewNop(), "", "")
}

func (l *Logger) Log(ctx context.Context, event Event) {
	if l == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	fields := []zap.Field{
		zap.String("service", l.service),
		zap.String("env", l.environment),
		zap.String("event", string(event.Event)),
		zap.Time("event_time", event.Timestamp),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
	}

	meta := RequestMetaFrom(ctx)
	if meta.RequestID != "" {
		fields = append(fields, zap.String("request_id", meta.RequestID))
	}
	if meta.IP != "" {
		fields = append(fields, zap.String("ip", meta.IP))
	}
	if meta.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", meta.UserAgent))
	}
	if meta.Path != "" {
		fields = append(fields, zap.String("path", meta.Path))
	}
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}

	l.zap.Log(levelFor(event.Event), string(event.Event), fields...)
}

func levelFor(event EventType) zapcore.Level {
	switch event {
	case EventRegistered, EventLoginSuccess:
		return zapcore.InfoLevel
	case EventAccessForbidden:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

func (l *Logger) Registered(ctx context.Context, kind, email string) {
	l.Log(ctx, Event{
		Event:        EventRegistered,
		SubjectType:  "email",
		SubjectValue: HashValue(email),
		Details:      map[string]interface{}{"kind": kind},
	})
}

func (l *Logger) LoginSucceeded(ctx context.Context, kind, email string) {
	l.Log(ctx, Event{
		Event:        EventLoginSuccess,
		SubjectType:  "email",
		SubjectValue: HashValue(email),
		Details:      map[string]interface{}{"kind": kind},
	})
}

func (l *Logger) LoginFailed(ctx context.Context, kind, email, reason string) {
	l.Log(ctx, Event{
		Event:        EventLoginFailed,
		SubjectType:  "email",
		SubjectValue: HashValue(email),
		Details:      map[string]interface{}{"kind": kind, "reason": reason},
	})
}

func (l *Logger) TokenRejected(ctx context.Context, reason string) {
	l.Log(ctx, Event{
		Event:   EventTokenRejected,
		Details: map[string]interface{}{"reason": reason},
	})
}

func (l *Logger) AccessForbidden(ctx context.Context, subjectID, requiredRole string) {
	l.Log(ctx, Event{
		Event:        EventAccessForbidden,
		SubjectType:  "account_id",
		SubjectValue: subjectID,
		Details:      map[string]interface{}{"required_role": requiredRole},
	})
}

func (l *Logger) RateLimited(ctx context.Context, key string) {
	l.Log(ctx, Event{
		Event:        EventRateLimitTriggered,
		SubjectType:  "rate_limit_key",
		SubjectValue: key,
	})
}

func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.zap.Sync()
}

// HashValue returns a short SHA-256 fingerprint so PII never reaches the logs.
func HashValue(value string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(value))))
	return hex.EncodeToString(sum[:8])
}
