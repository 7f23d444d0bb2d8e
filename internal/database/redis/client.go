package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/osse101/Adventure_Go/internal/logger"
)

// Options configures NewClient
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient connects and pings. The caller owns Close.
func NewClient(ctx context.Context, opts Options) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToConnect, err)
	}

	logger.FromContext(ctx).Info(LogMsgConnected, "addr", opts.Addr)
	return client, nil
}
