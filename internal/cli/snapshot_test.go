package cli

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lifeviz/internal/core"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var logs, out bytes.Buffer
	root := newRootCmd(&logs)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func decodeSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestSnapshotWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	_, logs, err := execute(t, "snapshot", "-o", path, "--rows", "3", "--cols", "4", "--cell-size", "4", "-g", "2", "--seed", "7")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	w, h := decodeSize(t, path)
	if w != 21 || h != 16 {
		t.Fatalf("png %dx%d, want 21x16", w, h)
	}
	if !strings.Contains(logs, "wrote snapshot") {
		t.Fatalf("logs %q should report the write", logs)
	}
}

func TestSnapshotConfigFileWithFlagOverride(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "lifeviz.toml")
	if err := os.WriteFile(conf, []byte("rows = 2\ncols = 2\ncell_size = 10\nrandom = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "out.png")
	if _, _, err := execute(t, "--config", conf, "snapshot", "--cols", "5", "-o", path); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	w, h := decodeSize(t, path)
	if w != 56 || h != 23 {
		t.Fatalf("png %dx%d, want 56x23", w, h)
	}
}

func TestSnapshotRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name   string
		args   []string
		target error
	}{
		{"unknown engine", []string{"snapshot", "--engine", "nope"}, core.ErrUnknownEngine},
		{"bad color", []string{"snapshot", "--alive-color", "green"}, nil},
		{"negative generations", []string{"snapshot", "--generations=-1"}, nil},
		{"missing config", []string{"--config", filepath.Join(dir, "nope.toml"), "snapshot"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "-o", filepath.Join(dir, tt.name+".png"))
			_, _, err := execute(t, args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Fatalf("err = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestEnginesListsLife(t *testing.T) {
	out, _, err := execute(t, "engines")
	if err != nil {
		t.Fatalf("engines: %v", err)
	}
	if !strings.Contains(out, "life") {
		t.Fatalf("output %q should list life", out)
	}
}
