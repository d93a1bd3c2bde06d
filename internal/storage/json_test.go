package storage

import (
	"errors"
	"testing"
	"time"

	"scriptest/internal/config"
	"scriptest/internal/domain"
)

func TestJSONStorage_SaveLoad(t *testing.T) {
	cfg := &config.Config{
		ProjectPath: t.TempDir(),
		ResultsDir:  ".scriptest",
		ResultsFile: "scriptest-results.json",
	}
	st := NewJSONStorage(cfg)

	results := []domain.TestResult{
		{ID: "x/Pass", Passed: true, Duration: time.Millisecond},
		{ID: "x/Fail", Passed: false, Err: errors.New("boom")},
	}
	failures := []domain.TestFailure{
		{TestID: "x/Fail", FilePath: "x.go", Message: "boom"},
	}

	if err := st.Save(results, failures, 42*time.Millisecond); err != nil {
		t.Fatal(err)
	}

	out, err := st.Load()
	if err != nil {
		t.Fatal(err)
	}
	if out.Meta.TotalTests != 2 || out.Meta.PassedTests != 1 || out.Meta.FailedTests != 1 {
		t.Errorf("meta = %+v", out.Meta)
	}
	if len(out.Details) != 1 || out.Details[0].TestID != "x/Fail" {
		t.Errorf("details = %+v", out.Details)
	}
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	cfg := &config.Config{
		ProjectPath: t.TempDir(),
		ResultsDir:  ".scriptest",
		ResultsFile: "scriptest-results.json",
	}
	if _, err := NewJSONStorage(cfg).Load(); err == nil {
		t.Fatal("expected error when no results file exists")
	}
}
