package testutil

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestWithTimeout(t *testing.T) {
	ctx, cancel := WithTimeout(t)
	defer cancel()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("expected a deadline")
	}
	if remaining := time.Until(deadline); remaining > TestTimeout {
		t.Fatalf("deadline too far in the future: %v", remaining)
	}
}

func TestAssertEqual(t *testing.T) {
	AssertEqual(t, 42, 42)
	AssertEqual(t, "a", "a")
	AssertNotEqual(t, 1, 2)
}

func TestEventually(t *testing.T) {
	var flag int32
	go func() {
		time.Sleep(10 * time.Millisecond)
		atomic.StoreInt32(&flag, 1)
	}()

	Eventually(t, time.Second, time.Millisecond, func() bool {
		return atomic.LoadInt32(&flag) == 1
	}, "flag should flip")
}
