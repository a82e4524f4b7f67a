package build

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestParseCopy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		workdir string
		src     string
		dest    string
		wantErr bool
	}{
		{
			name:  "absolute dest",
			input: "setup.cfg /app/setup.cfg",
			src:   "setup.cfg",
			dest:  "/app/setup.cfg",
		},
		{
			name:    "relative dest with workdir",
			input:   "requirements requirements",
			workdir: "/app",
			src:     "requirements",
			dest:    "/app/requirements",
		},
		{
			name:    "relative dest without workdir",
			input:   "file.txt out/",
			wantErr: true,
		},
		{
			name:    "missing destination",
			input:   "file.txt",
			wantErr: true,
		},
		{
			name:    "too many tokens",
			input:   "a b c",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, dest, err := parseCopy(tt.input, tt.workdir)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertParseCopy(t, src, dest, tt.src, tt.dest)
		})
	}
}

func assertParseCopy(t *testing.T, gotSrc, gotDest, wantSrc, wantDest string) {
	t.Helper()
	if gotSrc != wantSrc {
		t.Errorf("src = %q, want %q", gotSrc, wantSrc)
	}
	if gotDest != wantDest {
		t.Errorf("dest = %q, want %q", gotDest, wantDest)
	}
}

func TestWriteDirToTar(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte("flask\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "extra.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	archive := filepath.Join(t.TempDir(), "out.tar")
	f, err := os.Create(archive)
	if err != nil {
		t.Fatal(err)
	}

	tw := tar.NewWriter(f)
	if err := writeDirToTar(tw, dir, "requirements"); err != nil {
		t.Fatalf("writeDirToTar: %v", err)
	}
	tw.Close()
	f.Close()

	entries := readTarNames(t, archive)
	for _, want := range []string{"requirements", "requirements/requirements.txt", "requirements/sub", "requirements/sub/extra.txt"} {
		if !entries[want] {
			t.Errorf("archive missing entry %q (got %v)", want, entries)
		}
	}
}

func TestWriteFileToTar(t *testing.T) {
	src := filepath.Join(t.TempDir(), "Makefile")
	if err := os.WriteFile(src, []byte("all:\n"), 0644); err != nil {
		t.Fatal(err)
	}

	archive := filepath.Join(t.TempDir(), "out.tar")
	f, err := os.Create(archive)
	if err != nil {
		t.Fatal(err)
	}

	tw := tar.NewWriter(f)
	if err := writeFileToTar(tw, src, "Makefile"); err != nil {
		t.Fatalf("writeFileToTar: %v", err)
	}
	tw.Close()
	f.Close()

	entries := readTarNames(t, archive)
	if !entries["Makefile"] {
		t.Fatalf("archive missing Makefile entry, got %v", entries)
	}
}

func readTarNames(t *testing.T, path string) map[string]bool {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	names := make(map[string]bool)
	tr := tar.NewReader(f)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		names[filepath.Clean(hdr.Name)] = true
	}
	return names
}
