package access

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestTTLCacheCoalescesConcurrentLoads(t *testing.T) {
	c := newTTLCache[int](10, time.Minute)
	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})

	load := func(ctx context.Context) (int, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
			<-release
		}
		return 42, nil
	}

	var wg sync.WaitGroup
	results := make([]int, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.getOrLoad(context.Background(), "key", load)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			results[i] = v
		}(i)
	}

	<-started
	close(release)
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("expected exactly one backend call, got %d", got)
	}
	for _, v := range results {
		if v != 42 {
			t.Errorf("expected all callers to observe 42, got %d", v)
		}
	}
}

func TestTTLCacheCancellationDoesNotPoisonOtherWaiters(t *testing.T) {
	c := newTTLCache[int](10, time.Minute)
	release := make(chan struct{})

	load := func(ctx context.Context) (int, error) {
		<-release
		return 7, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancelledDone := make(chan error, 1)
	go func() {
		_, err := c.getOrLoad(ctx, "key", load)
		cancelledDone <- err
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-cancelledDone:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("canceled caller did not return promptly")
	}

	winnerDone := make(chan int, 1)
	go func() {
		v, _ := c.getOrLoad(context.Background(), "key", load)
		winnerDone <- v
	}()

	time.Sleep(10 * time.Millisecond)
	close(release)

	select {
	case v := <-winnerDone:
		if v != 7 {
			t.Errorf("expected surviving waiter to get the loaded value, got %d", v)
		}
	case <-time.After(time.Second):
		t.Fatal("surviving waiter never completed")
	}
}

func TestTTLCacheFailedLoadIsNotCached(t *testing.T) {
	c := newTTLCache[int](10, time.Minute)
	boom := errors.New("boom")
	attempts := 0

	load := func(ctx context.Context) (int, error) {
		attempts++
		if attempts == 1 {
			return 0, boom
		}
		return 99, nil
	}

	_, err := c.getOrLoad(context.Background(), "key", load)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	v, err := c.getOrLoad(context.Background(), "key", load)
	if err != nil {
		t.Fatalf("unexpected error on retry: %v", err)
	}
	if v != 99 {
		t.Errorf("expected retry to succeed with 99, got %d", v)
	}
}
