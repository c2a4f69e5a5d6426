package plot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMissingScript(t *testing.T) {
	r := &Runner{Script: filepath.Join(t.TempDir(), "nope.py")}
	if err := r.Generate(); !errors.Is(err, ErrScriptMissing) {
		t.Fatalf("expected ErrScriptMissing, got %v", err)
	}
}

func TestStrategyOrder(t *testing.T) {
	r := &Runner{Script: "x.py", VenvDir: filepath.Join(t.TempDir(), "no-venv")}
	s := r.Strategies()
	if len(s) != 1 || s[0].Python != "python3" {
		t.Fatalf("missing venv should fall through to python3 only: %+v", s)
	}

	venv := t.TempDir()
	bin := filepath.Join(venv, "bin")
	if err := os.MkdirAll(bin, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	python := filepath.Join(bin, "python")
	if err := os.WriteFile(python, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write: %v", err)
	}

	r = &Runner{Script: "x.py", VenvDir: venv}
	s = r.Strategies()
	if len(s) != 2 || s[0].Name != "virtualenv" || s[0].Python != python || s[1].Python != "python3" {
		t.Fatalf("strategy order wrong: %+v", s)
	}
}
