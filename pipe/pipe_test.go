package pipe

import (
	"context"
	"errors"
	"strconv"
	"testing"
)

func TestJoin(t *testing.T) {
	double := func(_ context.Context, n int) (int, error) { return n * 2, nil }
	str := func(_ context.Context, n int) (string, error) { return strconv.Itoa(n), nil }

	out, err := Join(double, str)(context.Background(), 21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "42" {
		t.Errorf("expected %q, got %q", "42", out)
	}
}

func TestJoinShortCircuits(t *testing.T) {
	boom := errors.New("boom")
	fail := func(_ context.Context, n int) (int, error) { return 0, boom }

	calls := 0
	next := func(_ context.Context, n int) (int, error) {
		calls++
		return n, nil
	}

	_, err := Join(fail, next)(context.Background(), 1)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if calls != 0 {
		t.Errorf("second stage invoked %d times after first stage failed", calls)
	}
}

func TestJoinAssociative(t *testing.T) {
	inc := func(_ context.Context, n int) (int, error) { return n + 1, nil }
	double := func(_ context.Context, n int) (int, error) { return n * 2, nil }
	str := func(_ context.Context, n int) (string, error) { return strconv.Itoa(n), nil }

	left := Join(Join(inc, double), str)
	right := Join(inc, Join(double, str))

	for _, in := range []int{-3, 0, 7, 100} {
		l, lErr := left(context.Background(), in)
		r, rErr := right(context.Background(), in)
		if l != r || (lErr == nil) != (rErr == nil) {
			t.Errorf("input %d: left=(%q,%v) right=(%q,%v)", in, l, lErr, r, rErr)
		}
	}
}

func TestJoinAssociativeOnError(t *testing.T) {
	boom := errors.New("boom")
	inc := func(_ context.Context, n int) (int, error) { return n + 1, nil }
	fail := func(_ context.Context, n int) (int, error) { return 0, boom }
	str := func(_ context.Context, n int) (string, error) { return strconv.Itoa(n), nil }

	_, lErr := Join(Join(inc, fail), str)(context.Background(), 1)
	_, rErr := Join(inc, Join(fail, str))(context.Background(), 1)
	if !errors.Is(lErr, boom) || !errors.Is(rErr, boom) {
		t.Errorf("expected boom from both groupings, got %v and %v", lErr, rErr)
	}
}

func TestJoin3AndJoin4(t *testing.T) {
	inc := func(_ context.Context, n int) (int, error) { return n + 1, nil }
	str := func(_ context.Context, n int) (string, error) { return strconv.Itoa(n), nil }
	wrap := func(_ context.Context, s string) (string, error) { return "<" + s + ">", nil }

	out, err := Join3(inc, inc, str)(context.Background(), 0)
	if err != nil || out != "2" {
		t.Errorf("Join3: expected (2, nil), got (%q, %v)", out, err)
	}

	out, err = Join4(inc, inc, str, wrap)(context.Background(), 0)
	if err != nil || out != "<2>" {
		t.Errorf("Join4: expected (<2>, nil), got (%q, %v)", out, err)
	}
}
