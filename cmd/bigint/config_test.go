package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFindBigintTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	manifest := filepath.Join(root, "bigint.toml")
	if err := os.WriteFile(manifest, []byte("[output]\nbase = 16\n"), 0o600); err != nil {
		t.Fatalf("write bigint.toml: %v", err)
	}

	path, ok, err := findBigintToml(nested)
	if err != nil {
		t.Fatalf("findBigintToml: %v", err)
	}
	if !ok {
		t.Fatalf("expected to find a manifest above %s", nested)
	}
	if path != manifest {
		t.Fatalf("path = %q, want %q", path, manifest)
	}
}

func TestFindBigintTomlPrefersNearest(t *testing.T) {
	root := t.TempDir()
	mid := filepath.Join(root, "a", "b")
	nested := filepath.Join(mid, "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, dir := range []string{root, mid} {
		if err := os.WriteFile(filepath.Join(dir, "bigint.toml"), []byte(""), 0o600); err != nil {
			t.Fatalf("write bigint.toml: %v", err)
		}
	}

	path, ok, err := findBigintToml(nested)
	if err != nil {
		t.Fatalf("findBigintToml: %v", err)
	}
	if !ok {
		t.Fatalf("expected to find a manifest above %s", nested)
	}
	if want := filepath.Join(mid, "bigint.toml"); path != want {
		t.Fatalf("path = %q, want nearest manifest %q", path, want)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bigint.toml")
	data := `# local settings
[output]
base = 16

[prime]
rounds = 12

[repl]
persist = false
history = 50
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write bigint.toml: %v", err)
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if cfg.Output.Base != 16 {
		t.Fatalf("Output.Base = %d, want 16", cfg.Output.Base)
	}
	if cfg.Prime.Rounds != 12 {
		t.Fatalf("Prime.Rounds = %d, want 12", cfg.Prime.Rounds)
	}
	if cfg.Repl.Persist == nil || *cfg.Repl.Persist {
		t.Fatalf("Repl.Persist = %v, want false", cfg.Repl.Persist)
	}
	if cfg.Repl.History != 50 {
		t.Fatalf("Repl.History = %d, want 50", cfg.Repl.History)
	}
}

func TestLoadConfigFilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bigint.toml")
	if err := os.WriteFile(path, []byte("[output]\nbase = 2\n"), 0o600); err != nil {
		t.Fatalf("write bigint.toml: %v", err)
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if cfg.Output.Base != 2 {
		t.Fatalf("Output.Base = %d, want 2", cfg.Output.Base)
	}
	if cfg.Repl.Persist != nil {
		t.Fatalf("Repl.Persist = %v, want nil for an absent key", *cfg.Repl.Persist)
	}
	if cfg.Prime.Rounds != 0 {
		t.Fatalf("Prime.Rounds = %d, want 0", cfg.Prime.Rounds)
	}
}

func TestLoadConfigFileRejects(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"negative rounds", "[prime]\nrounds = -1\n", "[prime].rounds"},
		{"negative history", "[repl]\nhistory = -5\n", "[repl].history"},
		{"bad toml", "[output\n", "failed to parse TOML"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bigint.toml")
			if err := os.WriteFile(path, []byte(tc.data), 0o600); err != nil {
				t.Fatalf("write bigint.toml: %v", err)
			}
			_, err := loadConfigFile(path)
			if err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}
