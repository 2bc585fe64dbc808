package retrieval

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestChunk_SlidingWindow(t *testing.T) {
	text := strings.Repeat("a", 2500)
	chunks := Chunk(text, 1000, 200)

	// Window starts at 0, 800, 1600, 2400.
	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks, got %d", len(chunks))
	}

	wantLens := []int{1000, 1000, 900, 100}
	for i, want := range wantLens {
		if len(chunks[i]) != want {
			t.Errorf("chunk %d: expected length %d, got %d", i, want, len(chunks[i]))
		}
	}
}

func TestChunk_Overlap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 250; i++ {
		b.WriteString("0123456789")
	}
	text := b.String()

	chunks := Chunk(text, 1000, 200)
	if len(chunks) < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", len(chunks))
	}

	// The last 200 chars of one chunk start the next.
	tail := chunks[0][800:]
	head := chunks[1][:200]
	if tail != head {
		t.Error("expected consecutive chunks to share the overlap region")
	}
}

func TestChunk_Multibyte(t *testing.T) {
	// Window size and overlap count characters. 1200 CJK characters are
	// 3600 bytes; byte-based slicing would split runes and cut 4 chunks
	// instead of 2.
	text := strings.Repeat("史", 1200)
	chunks := Chunk(text, 1000, 200)

	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	wantRunes := []int{1000, 400}
	for i, want := range wantRunes {
		if !utf8.ValidString(chunks[i]) {
			t.Errorf("chunk %d is not valid UTF-8", i)
		}
		if got := utf8.RuneCountInString(chunks[i]); got != want {
			t.Errorf("chunk %d: expected %d characters, got %d", i, want, got)
		}
	}
}

func TestChunk_ShortText(t *testing.T) {
	chunks := Chunk("short text", 1000, 200)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != "short text" {
		t.Errorf("unexpected chunk: %q", chunks[0])
	}
}

func TestChunk_Empty(t *testing.T) {
	if chunks := Chunk("", 1000, 200); len(chunks) != 0 {
		t.Errorf("expected no chunks for empty text, got %d", len(chunks))
	}
}

func TestChunk_BlankTrailingChunkDropped(t *testing.T) {
	text := strings.Repeat("a", 800) + strings.Repeat(" ", 400)
	chunks := Chunk(text, 1000, 200)
	// Second window is all whitespace and must be dropped.
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
}

func TestChunk_InvalidParamsFallBack(t *testing.T) {
	text := strings.Repeat("a", 1500)

	if got := Chunk(text, 0, 0); len(got) == 0 {
		t.Error("expected default size to apply for size 0")
	}
	// Overlap >= size would never advance; defaults take over.
	if got := Chunk(text, 100, 100); len(got) == 0 {
		t.Error("expected default overlap to apply for overlap >= size")
	}
}
