package runtime

import (
	"strings"
	"testing"
)

func TestImageTag(t *testing.T) {
	tag := imageTag("/var/cache/ospackd/images/base.tar")

	if !strings.HasPrefix(tag, "import/") {
		t.Fatalf("tag %q missing import/ prefix", tag)
	}
	if !strings.HasSuffix(tag, ":latest") {
		t.Fatalf("tag %q missing :latest suffix", tag)
	}

	// The same archive path must tag identically on every import.
	if imageTag("/var/cache/ospackd/images/base.tar") != tag {
		t.Fatal("imageTag is not deterministic")
	}

	if imageTag("/tmp/image.tar") == tag {
		t.Fatal("distinct archive paths produced the same tag")
	}
}

func TestDefaultPlatform(t *testing.T) {
	p := defaultPlatform()

	if !strings.HasPrefix(p, "linux/") {
		t.Fatalf("defaultPlatform = %q, want linux/<arch>", p)
	}
	if arch := strings.TrimPrefix(p, "linux/"); arch == "" || strings.Contains(arch, "/") {
		t.Fatalf("defaultPlatform = %q, want linux/<arch>", p)
	}
}
