package model

import (
	"context"
	"io"
)

// Storage uploads opaque objects, such as table backups.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader) error
}
