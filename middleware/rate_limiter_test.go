package middleware

import (
	"testing"
	"time"
)

func TestTokenBucketExhaustsBurst(t *testing.T) {
	tb := NewTokenBucket(0.001, 3)

	for i := 0; i < 3; i++ {
		if !tb.Allow() {
			t.Fatalf("request %d denied within burst", i+1)
		}
	}
	if tb.Allow() {
		t.Error("request beyond burst allowed")
	}
}

func TestTokenBucketRefills(t *testing.T) {
	tb := NewTokenBucket(100, 1)

	if !tb.Allow() {
		t.Fatal("first request denied")
	}
	if tb.Allow() {
		t.Fatal("second immediate request allowed")
	}

	time.Sleep(50 * time.Millisecond)
	if !tb.Allow() {
		t.Error("request denied after refill window")
	}
}

func TestSeparateIPsGetSeparateBuckets(t *testing.T) {
	a := getIPLimiter("10.0.0.1", 0.001, 1)
	b := getIPLimiter("10.0.0.2", 0.001, 1)

	if !a.Allow() {
		t.Fatal("first ip denied")
	}
	if !b.Allow() {
		t.Error("second ip shares the first ip's bucket")
	}
	if getIPLimiter("10.0.0.1", 0.001, 1) != a {
		t.Error("limiter not reused for a known ip")
	}
}
