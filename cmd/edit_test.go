package cmd

import (
	"bytes"
	"testing"

	"daylog/archiver"
)

func TestConfirmSnapshotPrompt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "uppercase Y confirms", input: "Y\n", want: true},
		{name: "lowercase y does not confirm", input: "y\n", want: false},
		{name: "N does not confirm", input: "N\n", want: false},
		{name: "empty does not confirm", input: "\n", want: false},
		{name: "Y without newline confirms", input: "Y", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := confirmSnapshotPrompt(bytes.NewBufferString(tt.input), &out)
			if err != nil {
				t.Fatalf("confirm prompt returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if out.Len() == 0 {
				t.Fatalf("expected prompt output")
			}
		})
	}
}

func TestResolveSnapshotDecision(t *testing.T) {
	t.Run("archive flag skips prompt", func(t *testing.T) {
		decision, err := resolveSnapshotDecision(true, false, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if decision != archiver.SnapshotConfirmed {
			t.Fatalf("expected confirmed decision, got %v", decision)
		}
	})

	t.Run("no-archive flag skips prompt", func(t *testing.T) {
		decision, err := resolveSnapshotDecision(false, true, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if decision != archiver.SnapshotDeclined {
			t.Fatalf("expected declined decision, got %v", decision)
		}
	})

	t.Run("prompt answer decides", func(t *testing.T) {
		var out bytes.Buffer
		decision, err := resolveSnapshotDecision(false, false, bytes.NewBufferString("Y\n"), &out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if decision != archiver.SnapshotConfirmed {
			t.Fatalf("expected confirmed decision, got %v", decision)
		}
	})
}
