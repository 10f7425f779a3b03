package service

import (
	"context"
	"log"

	"github.com/authcore-id/auth-backend/internal/auth/domain"
	"github.com/jonboulle/clockwork"
)

// RequestMeta carries the transport facts an audit entry records. Handlers
// attach it to the request context; service code never sees fiber.
type RequestMeta struct {
	IP     string
	Path   string
	Method string
}

type metaKey struct{}

func WithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, metaKey{}, meta)
}

// requestMetaFrom falls back to "internal" fields so background or CLI
// callers produce well-formed entries.
func requestMetaFrom(ctx context.Context) RequestMeta {
	if meta, ok := ctx.Value(metaKey{}).(RequestMeta); ok {
		return meta
	}
	return RequestMeta{IP: "internal", Path: "internal", Method: "internal"}
}

// SecurityLogger appends audit events. Writes are best-effort: a store
// failure is warned and swallowed so the triggering operation still
// completes.
type SecurityLogger struct {
	repo  domain.SecurityLogRepository
	clock clockwork.Clock
}

func NewSecurityLogger(repo domain.SecurityLogRepository, clock clockwork.Clock) *SecurityLogger {
	return &SecurityLogger{repo: repo, clock: clock}
}

func (l *SecurityLogger) Record(ctx context.Context, action, status, detail, userID, email string) {
	meta := requestMetaFrom(ctx)

	entry := &domain.SecurityLog{
		UserID:     userID,
		Email:      email,
		Action:     action,
		IP:         meta.IP,
		Path:       meta.Path,
		Method:     meta.Method,
		StatusCode: status,
		Detail:     detail,
		CreatedAt:  l.clock.Now(),
	}

	if err := l.repo.Insert(ctx, entry); err != nil {
		log.Printf("warn: failed to write security log for %s: %v", action, err)
	}
}

func (l *SecurityLogger) List(ctx context.Context, filter domain.SecurityLogFilter) ([]domain.SecurityLog, int, error) {
	return l.repo.List(ctx, filter)
}
