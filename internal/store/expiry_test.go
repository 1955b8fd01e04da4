package store

import (
	"errors"
	"testing"
	"time"
)

func TestTimerExpiryDeletesAssetOnce(t *testing.T) {
	st, deleter, runner := newTestStore(t)

	post, err := st.Insert(validInsert("alice", 10, 10))
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	runner.fire()

	if got := st.Query(10, 10, 1); len(got) != 0 {
		t.Fatalf("post should be gone after timer fired, got %v", got)
	}
	if deleter.count() != 1 || deleter.deleted[0] != post.ImageURL {
		t.Fatalf("expected one delete for %q, got %v", post.ImageURL, deleter.deleted)
	}
}

func TestTimerAfterSweepIsNoOp(t *testing.T) {
	st, deleter, runner := newTestStore(t)

	base := time.Now()
	st.now = func() time.Time { return base }

	if _, err := st.Insert(validInsert("alice", 10, 10)); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	// A query sweeps the post first, then the timer fires on the same id.
	st.now = func() time.Time { return base.Add(DefaultLifetime) }
	st.Query(10, 10, 1)
	runner.fire()

	if deleter.count() != 1 {
		t.Fatalf("racing expiry paths must issue exactly one delete, got %d", deleter.count())
	}
}

func TestSweepAfterTimerIsNoOp(t *testing.T) {
	st, deleter, runner := newTestStore(t)

	base := time.Now()
	st.now = func() time.Time { return base }

	if _, err := st.Insert(validInsert("alice", 10, 10)); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	runner.fire()
	st.now = func() time.Time { return base.Add(DefaultLifetime) }
	st.Query(10, 10, 1)

	if deleter.count() != 1 {
		t.Fatalf("racing expiry paths must issue exactly one delete, got %d", deleter.count())
	}
}

func TestExpiryDeleteFailureIsSwallowed(t *testing.T) {
	st, deleter, runner := newTestStore(t)
	deleter.err = errors.New("backend down")

	if _, err := st.Insert(validInsert("alice", 10, 10)); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	// Neither the timer path nor a later query may surface the failure.
	runner.fire()
	if got := st.Query(10, 10, 1); len(got) != 0 {
		t.Fatalf("post should be gone despite delete failure, got %v", got)
	}
}
