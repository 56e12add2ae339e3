package basia

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

//	RunObserver gets notified as the check sequence advances. The console
//	report hangs off this; a nil observer is fine.
type RunObserver interface {
	CheckStarting(kind string)
	CheckDone(result *CheckResult)
}

type Runner struct {
	Chat     *ChatCheck
	Vision   *VisionCheck
	Writer   ResultWriter
	Observer RunObserver

	runID string
}

type RunSummary struct {
	RunID      string
	Connection *CheckResult
	Vision     *CheckResult
}

//	Ok reports whether the run as a whole counts as passed. Only the
//	connection check gates this; a vision failure is recorded but
//	non-fatal.
func (this *RunSummary) Ok() bool {
	return this.Connection != nil && this.Connection.Passed()
}

func (this *Runner) validateConfig() error {

	switch {
	case this.Chat == nil:
		return errors.New("chat check is nil")
	case this.Vision == nil:
		return errors.New("vision check is nil")
	}

	if this.runID == "" {
		this.runID = uuid.NewString()
	}

	return nil
}

//	RunOnce executes the fixed check sequence: connection first, and the
//	vision check only after the connection check passed.
func (this *Runner) RunOnce(ctx context.Context) (*RunSummary, error) {

	if err := this.validateConfig(); err != nil {
		return nil, err
	}

	summary := &RunSummary{RunID: this.runID}

	this.notifyStarting(this.Chat.Type())

	connection, err := this.Chat.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to run connection check: %s", err.Error())
	}

	summary.Connection = connection
	this.notifyDone(connection)
	this.record(ctx, connection)

	if !connection.Passed() {
		return summary, nil
	}

	this.notifyStarting(this.Vision.Type())

	vision, err := this.Vision.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to run vision check: %s", err.Error())
	}

	summary.Vision = vision
	this.notifyDone(vision)
	this.record(ctx, vision)

	return summary, nil
}

func (this *Runner) notifyStarting(kind string) {
	if this.Observer != nil {
		this.Observer.CheckStarting(kind)
	}
}

func (this *Runner) notifyDone(result *CheckResult) {
	if this.Observer != nil {
		this.Observer.CheckDone(result)
	}
}

func (this *Runner) record(ctx context.Context, result *CheckResult) {

	if this.Writer == nil {
		return
	}

	entry := ResultEntry{
		RunID:     this.runID,
		Timestamp: time.Now(),
		Label:     result.Label,
		Variant:   result.Variant,
		Status:    result.Status,
		Elapsed:   result.Elapsed,
		Failure:   result.Failure,
		Excerpt:   result.Excerpt,
	}

	if err := this.Writer.WriteResult(ctx, entry); err != nil {
		slog.Error("storage.WriteResult",
			slog.String("label", entry.Label),
			slog.String("err", err.Error()))
	}
}
