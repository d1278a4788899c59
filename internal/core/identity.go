package core

import "context"

// Identity resolves the opaque user id behind a request. Transports decide how:
// a session cookie on the web, the phone number on WhatsApp, the chat id on Telegram.
type Identity interface {
	UserID(ctx context.Context) (string, error)
}

type IdentityFunc func(ctx context.Context) (string, error)

func (f IdentityFunc) UserID(ctx context.Context) (string, error) {
	return f(ctx)
}

// StaticIdentity is an identity that is known up front.
type StaticIdentity string

func (s StaticIdentity) UserID(context.Context) (string, error) {
	return string(s), nil
}
