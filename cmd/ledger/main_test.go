package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer

	if err := runDemo(&buf, zerolog.Nop(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()

	for _, want := range []string{
		"--- after first entries ---",
		"1: Bob 100.43",
		"2: Joe 200.2",
		"total: 300.63",
		"--- before restore ---",
		"3: Alice 500",
		"4: Tony 20",
		"total: 820.63",
		"--- after restore ---",
		"--- after posting over restored state ---",
		"3: Carl 50",
		"total: 350.63",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected demo output to contain %q, got:\n%s", want, out)
		}
	}

	// After the restore the discarded entries are gone for good.
	if strings.Count(out, "3: Alice 500") != 1 {
		t.Errorf("expected Alice to appear exactly once, got:\n%s", out)
	}
}

func TestRunDemo_WithRetentionCap(t *testing.T) {
	var buf bytes.Buffer

	if err := runDemo(&buf, zerolog.Nop(), 1); err != nil {
		t.Fatalf("unexpected error with retention cap: %v", err)
	}
}
