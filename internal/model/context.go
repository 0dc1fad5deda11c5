package model

import "context"

type ContextManager interface {
	SetLoginToContext(ctx context.Context, login string) context.Context
	GetLoginFromContext(ctx context.Context) (string, bool)
}
