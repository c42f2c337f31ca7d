package cache

import (
	"context"
	"testing"
	"time"
)

func TestNilCacheIsDisabled(t *testing.T) {
	c, err := NewReferenceCache(context.Background(), "", time.Minute)
	if err != nil || c != nil {
		t.Fatalf("empty url should disable cache, got %v %v", c, err)
	}
	if _, ok := c.Version(context.Background()); ok {
		t.Fatalf("nil cache must not report a version")
	}
	if _, ok := c.Get(context.Background(), 0); ok {
		t.Fatalf("nil cache must always miss")
	}
	c.Set(context.Background(), 0, ReferenceSnapshot{})
	c.Invalidate(context.Background())
	if err := c.Close(); err != nil {
		t.Fatalf("close on nil cache: %v", err)
	}
}

func TestInvalidURL(t *testing.T) {
	if _, err := NewReferenceCache(context.Background(), "not-a-url://", time.Minute); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSnapshotKeyPerVersion(t *testing.T) {
	if got := snapshotKey(0); got != "travel:reference:v1:0" {
		t.Fatalf("snapshotKey(0) = %q", got)
	}
	if snapshotKey(1) == snapshotKey(2) {
		t.Fatalf("generations must not share a key")
	}
}
