package cli

import (
	"fmt"
	"time"

	"github.com/aretw0/fling/pkg/adapters/file"
	"github.com/aretw0/fling/pkg/adapters/memory"
	"github.com/aretw0/fling/pkg/adapters/redis"
	"github.com/aretw0/fling/pkg/ports"
)

// OpenStore builds the swipe journal selected by cfg. The returned close
// function is never nil.
func OpenStore(cfg StoreConfig) (ports.SwipeStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case "", "file":
		return file.New(cfg.Path), noop, nil
	case "memory":
		return memory.NewStore(), noop, nil
	case "redis":
		var opts []redis.Option
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		if cfg.Redis.TTL != "" {
			ttl, err := time.ParseDuration(cfg.Redis.TTL)
			if err != nil {
				return nil, noop, fmt.Errorf("invalid redis ttl: %w", err)
			}
			opts = append(opts, redis.WithTTL(ttl))
		}
		addr := cfg.Redis.Addr
		if addr == "" {
			addr = "localhost:6379"
		}
		s := redis.New(addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		return s, s.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
