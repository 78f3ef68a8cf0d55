// Package processor runs a received search task through the matcher and sends result back to transport-layer
package processor

import (
	"context"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/cespare/xxhash/v2"
	"github.com/docker/distribution/uuid"
)

type Processor struct{}

func (p Processor) ProcessInput(ctx context.Context, task *model.SearchTask) *model.SearchResult {
	result := model.SearchResult{
		TaskID: task.TaskID,
	}
	if result.TaskID == "" {
		result.TaskID = uuid.Generate().String()
	}

	select {
	case <-ctx.Done():
		result.Output = []string{}
	default:
		result.Output = matcher.Search(task.Query, task.Contents, task.Policy())
	}

	// считаем общий хеш
	result.HashSumm = Hasher(ctx, result.Output)

	return &result
}

// Hasher returns xxhash of the lines in order, 0 if ctx is done midway.
func Hasher(ctx context.Context, input []string) uint64 {
	hs := xxhash.New()
	for _, s := range input {
		select {
		case <-ctx.Done():
			return 0
		default:
			_, _ = hs.WriteString(s)
			_, _ = hs.WriteString("\n")
		}
	}
	return hs.Sum64()
}
