package registry

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare name",
			input: "python:3.10-slim",
			want:  "docker.io/library/python:3.10-slim",
		},
		{
			name:  "repository without registry",
			input: "openslides/openslides-backend:latest",
			want:  "docker.io/openslides/openslides-backend:latest",
		},
		{
			name:  "fully qualified",
			input: "docker.io/library/python:3.10.17-slim-bookworm",
			want:  "docker.io/library/python:3.10.17-slim-bookworm",
		},
		{
			name:  "other registry",
			input: "ghcr.io/owner/image:tag",
			want:  "ghcr.io/owner/image:tag",
		},
		{
			name:  "localhost registry",
			input: "localhost:5000/image:tag",
			want:  "localhost:5000/image:tag",
		},
		{
			name:  "localhost without port",
			input: "localhost/image:tag",
			want:  "localhost/image:tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
