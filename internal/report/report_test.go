package report

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"scriptest/assert"
	"scriptest/internal/domain"
)

func TestFrames(t *testing.T) {
	stack := strings.Join([]string{
		"goroutine 1 [running]:",
		"runtime/debug.Stack()",
		"\t/usr/local/go/src/runtime/debug/stack.go:24 +0x64",
		"scriptest/assert.Failf(...)",
		"\t/work/assert/assert.go:70 +0x32",
		"main.CheckTotals()",
		"\t/work/checks/totals.go:18 +0x11",
		"main.Helper()",
		"\t/work/checks/helpers.go:5 +0x2a",
		"main.Deep()",
		"\t/work/checks/deep.go:9 +0x1f",
	}, "\n")

	frames := Frames(stack, 2)
	want := []string{"at /work/checks/totals.go:18", "at /work/checks/helpers.go:5"}
	if len(frames) != len(want) {
		t.Fatalf("frames = %v, want %v", frames, want)
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frames[%d] = %q, want %q", i, frames[i], want[i])
		}
	}
}

func TestFrames_Unparseable(t *testing.T) {
	if frames := Frames("not a stack at all", 2); len(frames) != 0 {
		t.Errorf("expected no frames, got %v", frames)
	}
}

func TestStripANSI(t *testing.T) {
	in := "\x1b[31mred\x1b[0m plain"
	if got := StripANSI(in); got != "red plain" {
		t.Errorf("StripANSI = %q", got)
	}
}

func TestInspect_BoundedDepth(t *testing.T) {
	v := map[string]any{"outer": map[string]any{"inner": []int{1, 2}}}

	deep := Inspect(v, 4)
	if !strings.Contains(deep, "[1, 2]") {
		t.Errorf("deep inspect should reach the slice, got %q", deep)
	}

	shallow := Inspect(v, 1)
	if !strings.Contains(shallow, "{...}") {
		t.Errorf("shallow inspect should elide, got %q", shallow)
	}
}

func TestDiff_Composites(t *testing.T) {
	d := Diff(map[string]int{"a": 1}, map[string]int{"a": 2}, 4)
	if d == "" {
		t.Fatal("expected a diff")
	}
	if !strings.Contains(d, `"a"`) {
		t.Errorf("diff should mention changed field a, got %q", d)
	}
}

func TestDiff_Scalars(t *testing.T) {
	d := Diff("yes", "no", 4)
	if !strings.Contains(d, "expected:") || !strings.Contains(d, "actual:") {
		t.Errorf("scalar diff should show labeled blocks, got %q", d)
	}
	if !strings.Contains(d, `"yes"`) || !strings.Contains(d, `"no"`) {
		t.Errorf("scalar diff should show both values, got %q", d)
	}
}

func TestNormalize_SpecialCases(t *testing.T) {
	re := regexp.MustCompile(`^x+$`)
	if got := normalize(re); got != "^x+$" {
		t.Errorf("regexp normalized to %v", got)
	}

	plain := errors.New("went wrong")
	if got := normalize(plain); got != "went wrong" {
		t.Errorf("error normalized to %v", got)
	}

	nested := map[string]any{"pattern": re}
	tree := normalize(nested).(map[string]any)
	if tree["pattern"] != "^x+$" {
		t.Errorf("nested regexp normalized to %v", tree["pattern"])
	}
}

func TestBuild_PlainError(t *testing.T) {
	f := NewReporter(4).Build(domain.TestResult{
		ID:  "x/Boom",
		Err: errors.New("boom"),
	})
	if f.Message != "boom" {
		t.Errorf("message = %q", f.Message)
	}
	if f.Diff != "" {
		t.Errorf("plain error should produce no diff block, got %q", f.Diff)
	}
}

func TestBuild_PairProducesDiff(t *testing.T) {
	err := assert.Equal(map[string]int{"a": 1}, map[string]int{"a": 2})
	f := NewReporter(4).Build(domain.TestResult{ID: "x/Pair", Err: err})

	if f.Diff == "" {
		t.Fatal("expected a diff block")
	}
	if !strings.Contains(f.Diff, `"a"`) {
		t.Errorf("diff should mention field a, got %q", f.Diff)
	}
	if len(f.Frames) == 0 {
		t.Error("assert failures should yield summary frames")
	}
	if len(f.StackTrace) == 0 {
		t.Error("assert failures should yield a full stack")
	}
}

func TestBuild_PanicStackUsed(t *testing.T) {
	f := NewReporter(4).Build(domain.TestResult{
		ID:    "x/Panic",
		Err:   errors.New("kaboom"),
		Stack: "goroutine 7 [running]:\nmain.Blow()\n\t/work/x.go:3 +0x1\n",
	})
	if len(f.StackTrace) == 0 {
		t.Error("expected stack lines from the executor capture")
	}
	if len(f.Frames) != 1 || f.Frames[0] != "at /work/x.go:3" {
		t.Errorf("frames = %v", f.Frames)
	}
}
