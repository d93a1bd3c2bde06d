package execution

import (
	"errors"
	"testing"
	"time"

	"scriptest/internal/domain"
)

func caseWith(id string, run func() error) domain.TestCase {
	return domain.TestCase{ID: id, Run: run}
}

func TestExecute_Outcomes(t *testing.T) {
	cases := []domain.TestCase{
		caseWith("a/Pass", func() error { return nil }),
		caseWith("a/Fail", func() error { return errors.New("boom") }),
		caseWith("a/Panic", func() error { panic("kaboom") }),
		caseWith("a/After", func() error { return nil }),
	}

	results := NewExecutor(nil).Execute(cases)
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}

	if !results[0].Passed {
		t.Error("Pass should pass")
	}
	if results[1].Passed || results[1].Err == nil || results[1].Err.Error() != "boom" {
		t.Errorf("Fail result = %+v", results[1])
	}
	if results[2].Passed {
		t.Error("Panic should fail")
	}
	if results[2].Stack == "" {
		t.Error("panicking test should capture a stack")
	}
	if !results[3].Passed {
		t.Error("execution must continue past failures")
	}
}

func TestExecute_ErrorKeptAsIs(t *testing.T) {
	sentinel := errors.New("original")
	results := NewExecutor(nil).Execute([]domain.TestCase{
		caseWith("a/Sentinel", func() error { return sentinel }),
	})
	if results[0].Err != sentinel {
		t.Errorf("raised value must not be wrapped, got %v", results[0].Err)
	}
}

func TestExecute_StrictOrder(t *testing.T) {
	var order []string
	record := func(name string, delay time.Duration) domain.TestCase {
		return caseWith("o/"+name, func() error {
			time.Sleep(delay)
			order = append(order, name)
			return nil
		})
	}

	// The slow test finishes before the fast ones start; nothing runs
	// during another test's suspension.
	NewExecutor(nil).Execute([]domain.TestCase{
		record("slow", 20*time.Millisecond),
		record("fast1", 0),
		record("fast2", 0),
	})

	want := []string{"slow", "fast1", "fast2"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestExecute_HookSeesEveryResult(t *testing.T) {
	var seen []string
	hook := func(r domain.TestResult, done int) {
		seen = append(seen, r.ID)
		if done != len(seen) {
			t.Errorf("done = %d after %d results", done, len(seen))
		}
	}

	NewExecutor(hook).Execute([]domain.TestCase{
		caseWith("h/One", func() error { return nil }),
		caseWith("h/Two", func() error { return errors.New("x") }),
	})

	if len(seen) != 2 || seen[0] != "h/One" || seen[1] != "h/Two" {
		t.Errorf("hook saw %v", seen)
	}
}

func TestSummarize(t *testing.T) {
	results := NewExecutor(nil).Execute([]domain.TestCase{
		caseWith("s/A", func() error { return nil }),
		caseWith("s/B", func() error { return errors.New("x") }),
		caseWith("s/C", func() error { return nil }),
	})

	s := domain.Summarize(results)
	if s.Total != 3 || s.Passed != 2 || s.Failed != 1 {
		t.Errorf("summary = %+v", s)
	}
}
