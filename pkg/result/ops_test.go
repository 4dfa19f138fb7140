package result

import (
	"strconv"
	"testing"
)

func TestMap_Success(t *testing.T) {
	t.Parallel()
	r := Map(Success[int, string](4), func(v int) string { return strconv.Itoa(v * 2) })
	if !r.IsSuccess() || r.Result() != "8" {
		t.Fatalf("expected success '8', got: success=%v val=%v err=%v", r.IsSuccess(), r.Result(), r.Err())
	}
}

func TestMap_FailureUntouched(t *testing.T) {
	t.Parallel()
	called := false
	r := Map(Fail[int, string]("boom"), func(v int) string {
		called = true
		return ""
	})

	if r.UnwrapErr() != "boom" {
		t.Fatalf("expected error 'boom', got %v", r.Err())
	}
	if called {
		t.Fatalf("transform should not run on failure")
	}
}

func TestMapErr(t *testing.T) {
	t.Parallel()
	r := MapErr(Fail[int, string]("boom"), func(e string) int { return len(e) })
	if !r.IsFailure() || r.Err() != 4 {
		t.Fatalf("expected failure 4, got: failure=%v err=%v", r.IsFailure(), r.Err())
	}

	calls := 0
	s := MapErr(Success[int, string](7), func(e string) int {
		calls++
		return 0
	})
	if !s.IsSuccess() || s.Result() != 7 || calls != 0 {
		t.Fatalf("expected untouched success 7, got: success=%v val=%v calls=%d", s.IsSuccess(), s.Result(), calls)
	}
}

func TestAndThen_ShortCircuit(t *testing.T) {
	t.Parallel()
	afterFailure := 0

	r := AndThen(Success[int, string](1), func(v int) Result[int, string] {
		return Success[int, string](v + 1)
	})
	r = AndThen(r, func(v int) Result[int, string] {
		return Fail[int, string]("bad")
	})
	r = AndThen(r, func(v int) Result[int, string] {
		afterFailure++
		return Success[int, string](v + 100)
	})

	if !r.IsFailure() || r.Err() != "bad" {
		t.Fatalf("expected failure 'bad', got: failure=%v err=%v", r.IsFailure(), r.Err())
	}
	if afterFailure != 0 {
		t.Fatalf("functions after the first failure must not run, ran %d times", afterFailure)
	}
}

func TestFailFrom_RelabelsAndPreservesProvenance(t *testing.T) {
	t.Parallel()
	from := Fail[int, string]("boom")
	to := FailFrom[string](from)

	if !to.IsFailure() || to.Err() != "boom" {
		t.Fatalf("expected failure 'boom', got: failure=%v err=%v", to.IsFailure(), to.Err())
	}
	if to.Id() != from.Id() || !to.CreatedAt().Equal(from.CreatedAt()) {
		t.Fatalf("relabel must preserve id and creation time")
	}
}

func TestFailFrom_PanicsOnSuccess(t *testing.T) {
	t.Parallel()
	expectBadUnwrap(t, "FailFrom", 5, func() { FailFrom[string](Success[int, string](5)) })
}

func TestSuccessFrom_RelabelsAndPreservesProvenance(t *testing.T) {
	t.Parallel()
	from := Success[int, string](5)
	to := SuccessFrom[error](from)

	if !to.IsSuccess() || to.Result() != 5 {
		t.Fatalf("expected success 5, got: success=%v val=%v", to.IsSuccess(), to.Result())
	}
	if to.Id() != from.Id() || !to.CreatedAt().Equal(from.CreatedAt()) {
		t.Fatalf("relabel must preserve id and creation time")
	}
}

func TestSuccessFrom_PanicsOnFailure(t *testing.T) {
	t.Parallel()
	expectBadUnwrap(t, "SuccessFrom", "boom", func() { SuccessFrom[error](Fail[int, string]("boom")) })
}

func TestConstructorsGetFreshIds(t *testing.T) {
	t.Parallel()
	a := Success[int, string](1)
	b := Success[int, string](1)
	if a.Id() == b.Id() {
		t.Fatalf("each constructed result should carry its own id")
	}
}

func TestCollect_AllSuccess(t *testing.T) {
	t.Parallel()
	r := Collect([]Result[int, string]{
		Success[int, string](1),
		Success[int, string](2),
		Success[int, string](3),
	})

	if !r.IsSuccess() {
		t.Fatalf("expected success, got err=%v", r.Err())
	}
	got := r.Result()
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("expected [1 2 3] in order, got %v", got)
	}
}

func TestCollect_FirstFailureWins(t *testing.T) {
	t.Parallel()
	r := Collect([]Result[int, string]{
		Success[int, string](1),
		Fail[int, string]("x"),
		Fail[int, string]("y"),
	})

	if !r.IsFailure() || r.Err() != "x" {
		t.Fatalf("expected first failure 'x', got: failure=%v err=%v", r.IsFailure(), r.Err())
	}
}

func TestCollect_Empty(t *testing.T) {
	t.Parallel()
	r := Collect([]Result[int, string]{})
	if !r.IsSuccess() || len(r.Result()) != 0 {
		t.Fatalf("expected empty success, got: success=%v val=%v", r.IsSuccess(), r.Result())
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	onSuccess := func(v int) string { return "ok:" + strconv.Itoa(v) }
	onFailure := func(e string) string { return "err:" + e }

	if got := Finally(Success[int, string](5), onSuccess, onFailure); got != "ok:5" {
		t.Fatalf("expected 'ok:5', got %q", got)
	}
	if got := Finally(Fail[int, string]("boom"), onSuccess, onFailure); got != "err:boom" {
		t.Fatalf("expected 'err:boom', got %q", got)
	}
}
