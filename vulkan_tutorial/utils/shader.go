package utils

import (
	"encoding/binary"
	"os"

	"github.com/cockroachdb/errors"
)

const spirvMagic uint32 = 0x07230203

// LoadShaderFile reads a compiled SPIR-V module from disk and returns it as the
// little-endian words vkngwrapper expects.
func LoadShaderFile(path string) ([]uint32, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrapf(ErrShaderNotFound, "%s", path)
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	return BytesToBytecode(path, b)
}

func BytesToBytecode(name string, b []byte) ([]uint32, error) {
	if len(b) == 0 || len(b)%4 != 0 {
		return nil, errors.Wrapf(ErrInvalidShader, "%s: size %d is not a positive multiple of 4", name, len(b))
	}

	byteCode := make([]uint32, len(b)/4)
	for i := 0; i < len(byteCode); i++ {
		byteCode[i] = binary.LittleEndian.Uint32(b[i*4:])
	}

	if byteCode[0] != spirvMagic {
		return nil, errors.Wrapf(ErrInvalidShader, "%s: bad magic number 0x%08x", name, byteCode[0])
	}

	return byteCode, nil
}
