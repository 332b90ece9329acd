//go:build !integration

package usecase_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"daycare-backend/internal/domain/model"
	"daycare-backend/internal/usecase"
)

func TestCodeGenerator_Generate(t *testing.T) {
	t.Run("codes have fixed length and alphabet", func(t *testing.T) {
		gen := usecase.NewCodeGenerator(nil)
		for i := 0; i < 100; i++ {
			code, err := gen.Generate()
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if len(code) != model.CodeLength {
				t.Fatalf("expected length %d, got %q", model.CodeLength, code)
			}
			for _, r := range code {
				if !strings.ContainsRune(model.CodeAlphabet, r) {
					t.Fatalf("code %q contains %q outside the alphabet", code, r)
				}
			}
		}
	})

	t.Run("deterministic source yields deterministic codes", func(t *testing.T) {
		gen := usecase.NewCodeGenerator(bytes.NewReader([]byte{0, 1, 2, 3, 4, 5}))
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if code != "ABCDEF" {
			t.Errorf("expected ABCDEF, got %q", code)
		}
	})

	t.Run("bytes past the unbiased range are redrawn", func(t *testing.T) {
		// 252..255 would wrap onto A..D; they must be skipped, not mapped.
		gen := usecase.NewCodeGenerator(bytes.NewReader([]byte{252, 253, 254, 255, 0, 1, 2, 3, 4, 5, 0, 0}))
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if code != "ABCDEF" {
			t.Errorf("expected ABCDEF, got %q", code)
		}
	})

	t.Run("exhausted source errors", func(t *testing.T) {
		gen := usecase.NewCodeGenerator(bytes.NewReader([]byte{0, 1}))
		if _, err := gen.Generate(); !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
		}
	})
}
