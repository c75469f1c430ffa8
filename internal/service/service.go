package service

import (
	"context"
	"time"

	"github.com/RudraNarayan94/MOK/internal/mailer"
	"github.com/RudraNarayan94/MOK/internal/token"
	"github.com/RudraNarayan94/MOK/internal/worker"
	"go.uber.org/zap"
)

type CacheI interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any, ttl time.Duration)
}

type QueueI interface {
	Submit(job worker.Job) error
}

type MailerI interface {
	Send(msg mailer.Message) error
}

type RepositoryI interface {
	UsersRI
	PracticeRI
	RoomsRI
	SnippetsRI
}

type Service struct {
	*AuthS
	*PracticeS
	*RoomsS
	*NotifierS
}

// AuthOptions carries registration and reset policy that comes from
// configuration rather than the request.
type AuthOptions struct {
	ResetLinkBase string
	VerifyEmailMX bool
}

func InitServices(
	repo RepositoryI,
	cache CacheI,
	queue QueueI,
	mail MailerI,
	tokens *token.Manager,
	resets *token.ResetTokens,
	opts AuthOptions,
	log *zap.Logger,
) *Service {
	notifier := NewNotifierService(queue, mail, log)
	return &Service{
		AuthS:     NewAuthService(repo, tokens, resets, notifier, opts, log),
		PracticeS: NewPracticeService(repo, repo, cache, queue, log),
		RoomsS:    NewRoomsService(repo, cache, log),
		NotifierS: notifier,
	}
}
