package pipeline

import "context"

// Pipeline turns one recorded meeting audio file into rendered minutes.
type Pipeline interface {
	Process(ctx context.Context, audioPath string) error
}
