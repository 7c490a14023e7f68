package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/strategy/pkg/rps"
)

func writeGuide(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "strategy.txt")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func execute(args ...string) (string, error) {
	var out bytes.Buffer

	root := Root()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRoot(t *testing.T) {
	path := writeGuide(t, "A Y\nB X\nC Z\n")

	out, err := execute(path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := "Loading strategy from: " + path + "\nTotal score is: 13\n"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestRootMissingArgument(t *testing.T) {
	if _, err := execute(); err == nil {
		t.Fatal("expected error for missing argument")
	}
}

func TestRootMissingFile(t *testing.T) {
	out, err := execute(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if bytes.Contains([]byte(out), []byte("Total score")) {
		t.Fatalf("unexpected total in output %q", out)
	}
}

func TestRootMalformedLine(t *testing.T) {
	out, err := execute(writeGuide(t, "A Y\nD X\n"))

	var formatErr *rps.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected *rps.FormatError, got %v", err)
	}
	if bytes.Contains([]byte(out), []byte("Total score")) {
		t.Fatalf("unexpected total in output %q", out)
	}
}

func TestRootTrace(t *testing.T) {
	level := logrus.GetLevel()
	defer logrus.SetLevel(level)

	if _, err := execute("--trace", writeGuide(t, "A Y\n")); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if logrus.GetLevel() != logrus.TraceLevel {
		t.Fatalf("expected trace level, got %v", logrus.GetLevel())
	}
}
