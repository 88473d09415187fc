package extractor

import (
	"errors"
	"testing"

	"docsum/internal/domain/entity"
)

func TestExtract_PlainText(t *testing.T) {
	e := New()

	got, err := e.Extract([]byte("hello world\nsecond line"), entity.FileTypeText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello world\nsecond line" {
		t.Errorf("Extract() = %q", got)
	}
}

func TestExtract_PlainTextDropsInvalidUTF8(t *testing.T) {
	e := New()

	// 0xff is never valid in UTF-8; it must be dropped, not replaced.
	payload := []byte{'o', 'k', 0xff, '!', 0xfe}
	got, err := e.Extract(payload, entity.FileTypeText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok!" {
		t.Errorf("Extract() = %q, want %q", got, "ok!")
	}
}

func TestExtract_CorruptPDF(t *testing.T) {
	e := New()

	_, err := e.Extract([]byte("definitely not a pdf"), entity.FileTypePDF)
	if err == nil {
		t.Fatal("expected extraction error for corrupt pdf")
	}
	if !errors.Is(err, entity.ErrExtraction) {
		t.Errorf("err = %v, want wrapped ErrExtraction", err)
	}
}

func TestExtract_UnsupportedType(t *testing.T) {
	e := New()

	_, err := e.Extract([]byte("content"), entity.FileType("docx"))
	if !errors.Is(err, entity.ErrInvalidInput) {
		t.Errorf("err = %v, want wrapped ErrInvalidInput", err)
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty string", "", true},
		{"whitespace only", "  \n\t  ", true},
		{"real content", "some text", false},
		{"content with padding", "  x  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmpty(tt.text); got != tt.want {
				t.Errorf("IsEmpty(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
