// Package appmode provides 2 methods to run the app: a one-shot file search and a long-running search node
package appmode

import (
	"fmt"
	"io"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/reader"
)

// RunSearch loads cfg.FilePath, scans it and prints every matching line to out.
func RunSearch(cfg *model.Config, out io.Writer) error {
	contents, err := reader.ReadContents(cfg.FilePath)
	if err != nil {
		return err
	}

	// печатаем результат
	for _, line := range matcher.Search(cfg.Query, contents, cfg.Policy) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return model.NewIOError("failed to write output", err)
		}
	}
	return nil
}
