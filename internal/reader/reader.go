// Package reader loads the whole file to be searched into memory
package reader

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/UnendingLoop/minigrep/internal/model"
)

func ReadContents(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", model.NewIOError(fmt.Sprintf("error opening file %q", fileName), err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", model.NewIOError(fmt.Sprintf("specified source filename %q is a directory", fileName), nil)
	}

	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", model.NewIOError(fmt.Sprintf("couldn't read file %q", fileName), err)
	}

	if !utf8.Valid(raw) {
		return "", model.NewIOError(fmt.Sprintf("couldn't read file %q", fileName), model.ErrInvalidEncoding)
	}

	return string(raw), nil
}
