package clisurface_test

import (
	"testing"

	"github.com/lavender-lang/lavender/internal/clisurface"
)

func TestParseFlagsAndPositional(t *testing.T) {
	opts, err := clisurface.Parse([]string{"--debug", "--bare", "main.lv", "arg1", "arg2"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !opts.Debug || !opts.Bare {
		t.Errorf("Debug/Bare = %v/%v, want true/true", opts.Debug, opts.Bare)
	}
	if opts.MainFile != "main.lv" {
		t.Errorf("MainFile = %q, want main.lv", opts.MainFile)
	}
	if len(opts.ForwardedArgs) != 2 || opts.ForwardedArgs[0] != "arg1" || opts.ForwardedArgs[1] != "arg2" {
		t.Errorf("ForwardedArgs = %v, want [arg1 arg2]", opts.ForwardedArgs)
	}
}

func TestParseFilepathFlagBothForms(t *testing.T) {
	opts, err := clisurface.Parse([]string{"--filepath", "/tmp/x"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opts.Filepath != "/tmp/x" {
		t.Errorf("Filepath = %q, want /tmp/x", opts.Filepath)
	}
	opts, err = clisurface.Parse([]string{"--filepath=/tmp/y"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opts.Filepath != "/tmp/y" {
		t.Errorf("Filepath = %q, want /tmp/y", opts.Filepath)
	}
}

// Sizes accept K/M/G suffixes, 1024-based.
func TestParseStackSizeSuffixes(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"1024", 1024},
		{"1K", 1024},
		{"2M", 2 * 1024 * 1024},
		{"1G", 1024 * 1024 * 1024},
	}
	for _, c := range cases {
		opts, err := clisurface.Parse([]string{"--stack-size=" + c.in})
		if err != nil {
			t.Fatalf("Parse(--stack-size=%s): %v", c.in, err)
		}
		if opts.StackSize != c.want {
			t.Errorf("--stack-size=%s -> %d, want %d", c.in, opts.StackSize, c.want)
		}
	}
}

func TestParseUnrecognizedFlagErrors(t *testing.T) {
	_, err := clisurface.Parse([]string{"--nonexistent"})
	if err == nil {
		t.Error("expected an error for an unrecognized flag")
	}
}

func TestParseMissingValueErrors(t *testing.T) {
	_, err := clisurface.Parse([]string{"--filepath"})
	if err == nil {
		t.Error("expected an error when --filepath has no following value")
	}
}

func TestParseHelpAndVersion(t *testing.T) {
	opts, err := clisurface.Parse([]string{"--help"})
	if err != nil || !opts.Help {
		t.Errorf("--help: opts=%+v, err=%v", opts, err)
	}
	opts, err = clisurface.Parse([]string{"--version"})
	if err != nil || !opts.Version {
		t.Errorf("--version: opts=%+v, err=%v", opts, err)
	}
}

func TestEffectiveBareExplicitWins(t *testing.T) {
	opts := &clisurface.Options{Bare: true}
	if !opts.EffectiveBare() {
		t.Error("explicit --bare should always resolve to true")
	}
}
