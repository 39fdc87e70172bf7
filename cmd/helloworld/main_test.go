package main

import (
	"bytes"
	"testing"
)

func setSuffix(t *testing.T, value string) {
	t.Helper()
	old := suffix
	suffix = value
	t.Cleanup(func() { suffix = old })
}

func TestRunDefaultBanner(t *testing.T) {
	setSuffix(t, "")
	var out bytes.Buffer

	run(&out)

	if got := out.String(); got != "Hello World!\nA test string\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRunLinkTimeSuffix(t *testing.T) {
	setSuffix(t, "CROSS")
	var out bytes.Buffer

	run(&out)

	if got := out.String(); got != "Hello World!\nCROSS\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}
