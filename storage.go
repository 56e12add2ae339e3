package basia

import (
	"context"
	"time"
)

type ResultWriter interface {
	Type() string
	Version() string
	WriteResult(ctx context.Context, entry ResultEntry) error
}

//	ResultEntry is a single recorded check outcome. RunID groups the
//	rows produced by one tool invocation.
type ResultEntry struct {
	RunID     string
	Timestamp time.Time
	Label     string
	Variant   CheckVariant
	Status    CheckStatus
	Elapsed   time.Duration
	Failure   FailureKind
	Excerpt   string
}
