package redis

import (
	"testing"
	"time"

	"github.com/chucksbakes/chucks-bakes-backend/pkg/config"
)

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected an error without url or address")
	}
}

func TestOptionsFromConfigParsesURL(t *testing.T) {
	cfg := config.RedisConfig{
		URL:          "redis://:hunter2@cache.internal:6380/2",
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
	}
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Addr != "cache.internal:6380" || opts.DB != 2 || opts.Password != "hunter2" {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.PoolSize != 10 || opts.DialTimeout != 5*time.Second {
		t.Fatalf("config defaults not applied: %+v", opts)
	}
}

func TestOptionsFromConfigAddressFallback(t *testing.T) {
	cfg := config.RedisConfig{Address: "localhost:6379", Password: "pw", DB: 1}
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Addr != "localhost:6379" || opts.Password != "pw" || opts.DB != 1 {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestKeyBuilders(t *testing.T) {
	c := &Client{}
	if got := c.WizardSlotKey("abc-123", "draft"); got != "cb:wizard:abc-123:draft" {
		t.Fatalf("got %q", got)
	}
	if got := c.ContentKey("homepage"); got != "cb:content:homepage" {
		t.Fatalf("got %q", got)
	}
	if got := c.WizardSlotKey("", "list"); got != "cb:wizard:list" {
		t.Fatalf("empty parts must be dropped, got %q", got)
	}
}
