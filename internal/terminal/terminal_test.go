package terminal

import (
	"os"
	"path/filepath"
	"testing"
)

func tempFile(t *testing.T) *os.File {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { _ = f.Close() })

	return f
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(nil) {
		t.Error("IsTerminal(nil) = true, want false")
	}

	if IsTerminal(tempFile(t)) {
		t.Error("IsTerminal(regular file) = true, want false")
	}
}

func TestSizeProvider_Size(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		wantWidth  int
		wantHeight int
	}{
		{name: "defaults", wantWidth: DefaultWidth, wantHeight: DefaultHeight},
		{name: "from env", env: map[string]string{"COLUMNS": "132", "LINES": "50"}, wantWidth: 132, wantHeight: 50},
		{name: "bad env", env: map[string]string{"COLUMNS": "wide", "LINES": "-3"}, wantWidth: DefaultWidth, wantHeight: DefaultHeight},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s := NewSizeProvider(tempFile(t))
			s.getenv = func(name string) string { return tt.env[name] }

			width, height, err := s.Size()
			if err != nil {
				t.Fatalf("Size() error = %v", err)
			}

			if width != tt.wantWidth || height != tt.wantHeight {
				t.Errorf("Size() = %d, %d, want %d, %d", width, height, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}
