package ioutil

import (
	"os"
	"path/filepath"

	"github.com/tatterwing/lootkit/util/errors"
)

// includes file's abs path when an error occurs

func ReadFile(filePath string) ([]byte, error) {
	fullPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}
	bs, err := os.ReadFile(fullPath)
	return bs, errors.WithStack(err)
}

func WriteFile(filePath string, bs []byte) error {
	fullPath, err := filepath.Abs(filePath)
	if err != nil {
		return err
	}
	return errors.WithStack(os.WriteFile(fullPath, bs, 0o644))
}
