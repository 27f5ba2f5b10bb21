package timing

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSleep_Completes(t *testing.T) {
	start := time.Now()
	if err := Sleep(context.Background(), 10*time.Millisecond); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("returned after %v, want >= 10ms", elapsed)
	}
}

func TestSleep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Sleep(ctx, time.Minute); !errors.Is(err, context.Canceled) {
		t.Errorf("Sleep on cancelled context = %v, want context.Canceled", err)
	}
}

func TestRace_FirstWins(t *testing.T) {
	fast := func(ctx context.Context) error {
		return nil
	}
	slow := func(ctx context.Context) error {
		return Sleep(ctx, time.Minute)
	}

	if err := Race(context.Background(), time.Second, fast, slow); err != nil {
		t.Errorf("Race = %v, want nil from the fast operation", err)
	}
}

func TestRace_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	op := func(ctx context.Context) error {
		return boom
	}

	if err := Race(context.Background(), time.Second, op); !errors.Is(err, boom) {
		t.Errorf("Race = %v, want boom", err)
	}
}

func TestRace_Deadline(t *testing.T) {
	stuck := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}

	err := Race(context.Background(), 10*time.Millisecond, stuck, stuck)
	if !errors.Is(err, ErrDeadline) {
		t.Errorf("Race = %v, want ErrDeadline", err)
	}
}

func TestRace_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stuck := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}

	err := Race(ctx, time.Minute, stuck)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Race = %v, want context.Canceled", err)
	}
}

func TestRace_LosersAreCancelled(t *testing.T) {
	cancelled := make(chan struct{})
	loser := func(ctx context.Context) error {
		<-ctx.Done()
		close(cancelled)
		return ctx.Err()
	}
	winner := func(ctx context.Context) error {
		return nil
	}

	if err := Race(context.Background(), time.Second, winner, loser); err != nil {
		t.Fatalf("Race: %v", err)
	}

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Error("losing operation was not cancelled after the race resolved")
	}
}
