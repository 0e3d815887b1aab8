// Package main provides tests for the minic CLI.
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leapstack-labs/minic/internal/cli"
)

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("version command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "minic") {
		t.Errorf("version output should contain 'minic', got: %s", output)
	}
}

func TestCompileSample(t *testing.T) {
	cmd := cli.NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"compile", "-e", "int x = 10; if (x > 5) { x = x + 1; }"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("compile error = %v", err)
	}

	want := "MOV R0, 10\nMOV x, R0\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
