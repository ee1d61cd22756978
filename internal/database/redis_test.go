package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func stubRedis(t *testing.T) {
	t.Helper()
	origNew := newRedisClient
	origPing := redisPing
	origClose := closeRedisClient
	t.Cleanup(func() {
		newRedisClient = origNew
		redisPing = origPing
		closeRedisClient = origClose
	})
}

func TestNewRedisDB_PingErrorClosesClient(t *testing.T) {
	stubRedis(t)
	newRedisClient = func(opts *redis.Options) *redis.Client {
		return &redis.Client{}
	}
	redisPing = func(ctx context.Context, client *redis.Client) error {
		return errors.New("ping failed")
	}
	closed := false
	closeRedisClient = func(client *redis.Client) error {
		closed = true
		return nil
	}

	if _, err := NewRedisDB("localhost:6379", "pass", 2); err == nil {
		t.Fatal("expected ping error")
	}
	if !closed {
		t.Fatal("expected client to be closed")
	}
}

func TestNewRedisDB_SetsOptions(t *testing.T) {
	stubRedis(t)
	var got redis.Options
	newRedisClient = func(opts *redis.Options) *redis.Client {
		got = *opts
		return &redis.Client{}
	}
	redisPing = func(ctx context.Context, client *redis.Client) error {
		return nil
	}

	db, err := NewRedisDB("localhost:6379", "pass", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db.Client == nil {
		t.Fatal("expected client")
	}
	if got.Addr != "localhost:6379" || got.Password != "pass" || got.DB != 2 {
		t.Fatalf("unexpected connection options: %+v", got)
	}
	if got.DialTimeout != 5*time.Second || got.ReadTimeout != 3*time.Second || got.WriteTimeout != 3*time.Second {
		t.Fatalf("unexpected timeouts: %+v", got)
	}
	if got.PoolSize != 10 || got.MinIdleConns != 2 {
		t.Fatalf("unexpected pool sizing: %+v", got)
	}
}

func TestRedisDB_Health(t *testing.T) {
	stubRedis(t)
	redisPing = func(ctx context.Context, client *redis.Client) error {
		return errors.New("health failed")
	}

	db := &RedisDB{Client: &redis.Client{}}
	if err := db.Health(context.Background()); err == nil {
		t.Fatal("expected health error")
	}
}

func TestRedisDB_Close(t *testing.T) {
	if err := (&RedisDB{}).Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	db := &RedisDB{Client: redis.NewClient(&redis.Options{Addr: "localhost:0"})}
	if err := db.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
}
