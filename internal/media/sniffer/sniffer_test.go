package sniffer

import (
	"errors"
	"net/http"
	"testing"
)

func TestDetectHead(t *testing.T) {
	tests := []struct {
		name     string
		head     []byte
		wantType MediaType
		wantMIME string
	}{
		{
			name:     "jpeg",
			head:     []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10},
			wantType: TypeJPEG,
			wantMIME: "image/jpeg",
		},
		{
			name:     "png",
			head:     []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00},
			wantType: TypePNG,
			wantMIME: "image/png",
		},
		{
			name:     "webp",
			head:     []byte("RIFF\x24\x00\x00\x00WEBPVP8 "),
			wantType: TypeWEBP,
			wantMIME: "image/webp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectHead(tt.head)
			if err != nil {
				t.Fatalf("detect: %v", err)
			}
			if got.Type != tt.wantType || got.MIME != tt.wantMIME {
				t.Fatalf("got %+v, want %s/%s", got, tt.wantType, tt.wantMIME)
			}
		})
	}
}

func TestDetectHeadRejectsUnknown(t *testing.T) {
	rejected := [][]byte{
		nil,
		{},
		[]byte("GIF89a"),
		[]byte("<svg xmlns=\"http://www.w3.org/2000/svg\"/>"),
		[]byte("RIFF\x24\x00\x00\x00WAVE"),
		{0xff, 0xd8},
	}

	for _, head := range rejected {
		if _, err := DetectHead(head); !errors.Is(err, ErrUnknownType) {
			t.Fatalf("head %q: got %v, want ErrUnknownType", head, err)
		}
	}
}

func TestMimeTypeFromHTTP(t *testing.T) {
	header := http.Header{}
	if got := MimeTypeFromHTTP(header); got != "" {
		t.Fatalf("missing content type: got %q", got)
	}

	header.Set("Content-Type", "image/png")
	if got := MimeTypeFromHTTP(header); got != "image/png" {
		t.Fatalf("plain content type: got %q", got)
	}

	header.Set("Content-Type", "image/jpeg; charset=binary")
	if got := MimeTypeFromHTTP(header); got != "image/jpeg" {
		t.Fatalf("parameterized content type: got %q", got)
	}
}
