package resilience

import (
	"errors"
	"testing"
	"time"
)

func newTestBreaker(maxFailures int, coolDown time.Duration) *Breaker {
	return NewBreaker(BreakerConfig{
		Name:             "test",
		MaxFailures:      maxFailures,
		CoolDown:         coolDown,
		HalfOpenMaxCalls: 1,
	})
}

func TestBreakerOpensAfterFailures(t *testing.T) {
	b := newTestBreaker(3, time.Minute)
	errBoom := errors.New("boom")

	for i := 0; i < 3; i++ {
		if !b.Allow() {
			t.Fatalf("call %d rejected while closed", i)
		}
		b.Record(errBoom)
	}

	if b.State() != StateOpen {
		t.Errorf("State = %v, want open", b.State())
	}
	if b.Allow() {
		t.Error("open breaker allowed a call")
	}
}

func TestBreakerSuccessResetsFailureCount(t *testing.T) {
	b := newTestBreaker(2, time.Minute)
	errBoom := errors.New("boom")

	b.Allow()
	b.Record(errBoom)
	b.Allow()
	b.Record(nil)
	b.Allow()
	b.Record(errBoom)

	if b.State() != StateClosed {
		t.Errorf("State = %v, want closed after interleaved success", b.State())
	}
}

func TestBreakerHalfOpenRecovery(t *testing.T) {
	b := newTestBreaker(1, 10*time.Millisecond)

	b.Allow()
	b.Record(errors.New("boom"))
	if b.State() != StateOpen {
		t.Fatalf("State = %v, want open", b.State())
	}

	time.Sleep(20 * time.Millisecond)
	if b.State() != StateHalfOpen {
		t.Fatalf("State = %v, want half-open after cool down", b.State())
	}

	if !b.Allow() {
		t.Fatal("half-open breaker rejected the probe call")
	}
	b.Record(nil)

	if b.State() != StateClosed {
		t.Errorf("State = %v, want closed after successful probe", b.State())
	}
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	b := newTestBreaker(1, 10*time.Millisecond)

	b.Allow()
	b.Record(errors.New("boom"))
	time.Sleep(20 * time.Millisecond)

	b.Allow()
	b.Record(errors.New("still down"))

	if b.State() != StateOpen {
		t.Errorf("State = %v, want open after failed probe", b.State())
	}
}

func TestBreakerStateChangeCallback(t *testing.T) {
	var transitions []string
	b := NewBreaker(BreakerConfig{
		Name:        "cb",
		MaxFailures: 1,
		CoolDown:    time.Minute,
		OnStateChange: func(name string, from, to State) {
			transitions = append(transitions, from.String()+">"+to.String())
		},
	})

	b.Allow()
	b.Record(errors.New("boom"))
	b.Reset()

	want := []string{"closed>open", "open>closed"}
	if len(transitions) != len(want) {
		t.Fatalf("transitions = %v, want %v", transitions, want)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Errorf("transition %d = %s, want %s", i, transitions[i], want[i])
		}
	}
}
