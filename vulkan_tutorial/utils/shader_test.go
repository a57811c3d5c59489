package utils

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
)

func spirvWords(words ...uint32) []byte {
	b := make([]byte, 4*len(words))
	for i, word := range words {
		binary.LittleEndian.PutUint32(b[i*4:], word)
	}
	return b
}

func TestBytesToBytecode(t *testing.T) {
	code, err := BytesToBytecode("test.spv", spirvWords(spirvMagic, 0x00010000, 42))
	if err != nil {
		t.Fatal(err)
	}
	if len(code) != 3 || code[0] != spirvMagic || code[1] != 0x00010000 || code[2] != 42 {
		t.Errorf("BytesToBytecode() = %x", code)
	}

	tests := []struct {
		name string
		b    []byte
	}{
		{name: "empty"},
		{name: "truncated", b: spirvWords(spirvMagic, 1)[:7]},
		{name: "bad magic", b: spirvWords(0xdeadbeef, 1)},
		{name: "big endian magic", b: []byte{0x07, 0x23, 0x02, 0x03}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := BytesToBytecode("test.spv", test.b)
			if !errors.Is(err, ErrInvalidShader) {
				t.Errorf("err = %v, want ErrInvalidShader", err)
			}
		})
	}
}

func TestLoadShaderFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "vert.spv")
	if err := os.WriteFile(path, spirvWords(spirvMagic, 7), 0o644); err != nil {
		t.Fatal(err)
	}

	code, err := LoadShaderFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(code) != 2 || code[1] != 7 {
		t.Errorf("LoadShaderFile() = %x", code)
	}

	_, err = LoadShaderFile(filepath.Join(dir, "frag.spv"))
	if !errors.Is(err, ErrShaderNotFound) {
		t.Errorf("err = %v, want ErrShaderNotFound", err)
	}
}
