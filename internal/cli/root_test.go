package cli

import (
	"strings"
	"testing"
)

func TestRootLongListsGlobalOptions(t *testing.T) {
	root := NewRootCommand(Dependencies{Weather: &testWeatherAPI{}})
	for _, token := range []string{"--format", "--api-key", "--verbose", "--version/-v"} {
		if !strings.Contains(root.Long, token) {
			t.Fatalf("expected option %q in root help, got:\n%s", token, root.Long)
		}
	}
	if strings.Contains(root.Long, "--help") {
		t.Fatalf("expected help flag to be excluded, got:\n%s", root.Long)
	}
}

func TestOptionLinesSkipsHiddenFlags(t *testing.T) {
	root := NewRootCommand(Dependencies{Weather: &testWeatherAPI{}})
	if err := root.Flags().MarkHidden("verbose"); err != nil {
		t.Fatalf("mark hidden: %v", err)
	}
	for _, line := range optionLines(root.Flags()) {
		if strings.Contains(line, "--verbose") {
			t.Fatalf("expected hidden flag to be skipped, got %q", line)
		}
	}
}
