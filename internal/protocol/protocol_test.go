package protocol

import (
	"errors"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data, err := Encode(CmdBuild, &BuildRequest{
		Name:      "openslides-backend",
		Output:    "dist",
		Root:      ".",
		Platforms: []string{"linux/amd64"},
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	env, raw, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Command != CmdBuild {
		t.Fatalf("command = %q, want %q", env.Command, CmdBuild)
	}

	req, err := DecodePayload[BuildRequest](raw)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if req.Name != "openslides-backend" {
		t.Errorf("name = %q", req.Name)
	}
	if req.Output != "dist" || req.Root != "." {
		t.Errorf("output = %q, root = %q", req.Output, req.Root)
	}
	if len(req.Platforms) != 1 || req.Platforms[0] != "linux/amd64" {
		t.Errorf("platforms = %v", req.Platforms)
	}
	if req.Recipe != nil {
		t.Errorf("recipe = %v, want nil", req.Recipe)
	}
}

func TestEncodeNilPayload(t *testing.T) {
	data, err := Encode(CmdShutdown, nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	env, raw, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Command != CmdShutdown {
		t.Fatalf("command = %q, want %q", env.Command, CmdShutdown)
	}
	if len(raw) != 0 {
		t.Fatalf("payload = %q, want empty", raw)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  error
	}{
		{name: "empty input", input: nil, want: ErrEmptyMessage},
		{name: "missing command", input: []byte(`{}`), want: ErrMissingCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, _, err := Decode([]byte("not json")); err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

func TestDecodePayloadEmpty(t *testing.T) {
	req, err := DecodePayload[ContainerRequest](nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.ID != "" {
		t.Fatalf("id = %q, want empty", req.ID)
	}
}

func TestDecodePayloadMalformed(t *testing.T) {
	if _, err := DecodePayload[ContainerRequest]([]byte(`{`)); err == nil {
		t.Fatal("expected error, got nil")
	}
}
