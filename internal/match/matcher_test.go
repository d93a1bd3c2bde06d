package match

import (
	"testing"
)

func TestCompile_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
	}{
		{name: "bare dash", patterns: []string{"-"}},
		{name: "separator after dash", patterns: []string{"-/foo"}},
		{name: "double dash", patterns: []string{"--foo"}},
		{name: "empty pattern", patterns: []string{""}},
		{name: "only separators", patterns: []string{"///"}},
		{name: "valid then malformed", patterns: []string{"foo", "-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.patterns)
			if err == nil {
				t.Fatalf("expected error for patterns %v", tt.patterns)
			}
			if _, ok := err.(*PatternError); !ok {
				t.Errorf("expected *PatternError, got %T", err)
			}
		})
	}
}

func TestMatcher_Modes(t *testing.T) {
	t.Run("no patterns allows everything", func(t *testing.T) {
		m, err := Compile(nil)
		if err != nil {
			t.Fatal(err)
		}
		if m.Whitelist() {
			t.Error("expected blacklist mode with no patterns")
		}
		for _, id := range []string{"a", "a/b", "deep/nested/test"} {
			if !m.Allowed(id) {
				t.Errorf("expected %q allowed", id)
			}
		}
	})

	t.Run("only negated patterns is blacklist", func(t *testing.T) {
		m, err := Compile([]string{"-skip"})
		if err != nil {
			t.Fatal(err)
		}
		if m.Whitelist() {
			t.Error("expected blacklist mode")
		}
		if m.Allowed("skip/one") {
			t.Error("expected skip/one excluded")
		}
		if !m.Allowed("keep/one") {
			t.Error("expected keep/one allowed")
		}
	})

	t.Run("any include pattern is whitelist", func(t *testing.T) {
		m, err := Compile([]string{"-skip", "only"})
		if err != nil {
			t.Fatal(err)
		}
		if !m.Whitelist() {
			t.Error("expected whitelist mode")
		}
		if m.Allowed("other") {
			t.Error("expected other excluded in whitelist mode")
		}
		if !m.Allowed("only/test") {
			t.Error("expected only/test allowed")
		}
	})
}

func TestMatcher_Allowed(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		id       string
		allowed  bool
	}{
		{name: "include then exclude under it", patterns: []string{"a", "-a/b"}, id: "a/b/c", allowed: false},
		{name: "include sibling survives", patterns: []string{"a", "-a/b"}, id: "a/x", allowed: true},
		{name: "unmatched in whitelist mode", patterns: []string{"a", "-a/b"}, id: "z", allowed: false},
		{name: "prefix respects segment boundary", patterns: []string{"foo"}, id: "foobar/test", allowed: false},
		{name: "exact segment match", patterns: []string{"foo"}, id: "foo", allowed: true},
		{name: "segment prefix match", patterns: []string{"foo"}, id: "foo/test", allowed: true},
		{name: "separators stripped from pattern", patterns: []string{"/foo/"}, id: "foo/test", allowed: true},
		{name: "last matching rule wins", patterns: []string{"-a/b", "a"}, id: "a/b", allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Compile(tt.patterns)
			if err != nil {
				t.Fatal(err)
			}
			if got := m.Allowed(tt.id); got != tt.allowed {
				t.Errorf("Allowed(%q) with %v = %v, want %v", tt.id, tt.patterns, got, tt.allowed)
			}
		})
	}
}
