package cache

import (
	"strings"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	a := Key("https://example.com/a")
	b := Key("https://example.com/b")

	if a == b {
		t.Error("distinct URLs must produce distinct keys")
	}
	if a != Key("https://example.com/a") {
		t.Error("key must be deterministic")
	}
	if !strings.HasPrefix(a, "confminer:v1:") {
		t.Errorf("key %q missing version prefix", a)
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("empty cache reported a hit")
	}

	if err := c.Set("k", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "value" {
		t.Errorf("Get = %q, %v", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("deleted key still present")
	}
}

func TestDiskCache(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	if err := c.Set("k", []byte("page body"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// A fresh instance sees the same entry.
	c2 := NewDiskCache(dir, time.Hour)
	val, found := c2.Get("k")
	if !found || string(val) != "page body" {
		t.Errorf("Get = %q, %v", val, found)
	}
}

func TestDiskCacheExpiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	if err := c.Set("k", []byte("stale"), -time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expired entry reported as a hit")
	}
}

func TestLayeredCachePromotesDiskHits(t *testing.T) {
	dir := t.TempDir()

	seed := NewDiskCache(dir, time.Hour)
	if err := seed.Set("k", []byte("warm"), 0); err != nil {
		t.Fatalf("seed disk: %v", err)
	}

	c := NewLayeredCache(time.Minute, dir, time.Hour)
	val, found := c.Get("k")
	if !found || string(val) != "warm" {
		t.Fatalf("Get = %q, %v", val, found)
	}

	// Removing the disk entry must not hide the promoted copy.
	if err := seed.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get("k"); !found {
		t.Error("disk hit was not promoted to memory")
	}
}

func TestLayeredCacheSetAndClear(t *testing.T) {
	c := NewLayeredCache(time.Minute, t.TempDir(), time.Hour)

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found := c.Get("k"); !found {
		t.Error("set key missing")
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("cleared key still present")
	}
}
