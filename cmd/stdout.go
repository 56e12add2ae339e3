package main

import (
	"context"
	"log/slog"

	basia "github.com/pskeshu/basia"
)

type StdoutWriter struct {
}

func (this *StdoutWriter) Type() string {
	return "stdout"
}

func (this *StdoutWriter) Version() string {
	return "x"
}

func (this *StdoutWriter) WriteResult(ctx context.Context, entry basia.ResultEntry) error {

	failure := "<nil>"
	if entry.Failure != basia.FailureNone {
		failure = entry.Failure.String()
	}

	slog.Debug("Result",
		slog.String("run_id", entry.RunID),
		slog.String("label", entry.Label),
		slog.String("variant", entry.Variant.String()),
		slog.String("status", entry.Status.String()),
		slog.Duration("elapsed", entry.Elapsed),
		slog.String("failure", failure))
	return nil
}
