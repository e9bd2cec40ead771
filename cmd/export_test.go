package cmd

import "testing"

func TestDetectExportFormat(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "./entries.csv", want: "csv"},
		{path: "./entries.CSV", want: "csv"},
		{path: "./entries.xlsx", want: "excel"},
		{path: "./entries.xlsm", want: "excel"},
		{path: "./entries.xls", want: "excel"},
		{path: "./entries.out", want: "csv"},
		{path: "no-extension", want: "csv"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := detectExportFormat(tt.path); got != tt.want {
				t.Fatalf("expected %q for %q, got %q", tt.want, tt.path, got)
			}
		})
	}
}
