package basia

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

//	ChatClient is the slice of VlmClient the checks actually need;
//	tests substitute fakes here.
type ChatClient interface {
	Chat(ctx context.Context, prompt string, images [][]byte) (string, error)
}

const connectionPrompt = "Hello! Can you help with fluorescence microscopy?"

const connectionExcerptLen = 100

type ChatCheck struct {
	Label  string
	Client ChatClient
}

func (this *ChatCheck) Type() string {
	return "chat"
}

func (this *ChatCheck) validateConfig() error {

	switch {
	case this.Label == "":
		return errors.New("label is empty")
	case this.Client == nil:
		return errors.New("client is nil")
	}

	return nil
}

//	Exec runs a single text chat round-trip against the server. Every
//	failure mode is folded into the result; the returned error covers
//	configuration problems only.
func (this *ChatCheck) Exec(ctx context.Context) (*CheckResult, error) {

	if err := this.validateConfig(); err != nil {
		return nil, err
	}

	started := time.Now()

	content, err := this.Client.Chat(ctx, connectionPrompt, nil)
	elapsed := time.Since(started)

	if err != nil {

		slog.Debug("chat check failed",
			slog.String("label", this.Label),
			slog.String("err", err.Error()),
			slog.Duration("after", elapsed))

		return &CheckResult{
			Label:   this.Label,
			Variant: VariantText,
			Status:  CheckStatusFail,
			Elapsed: elapsed,
			Failure: classifyFailure(err),
			Err:     err,
		}, nil
	}

	return &CheckResult{
		Label:   this.Label,
		Variant: VariantText,
		Status:  CheckStatusPass,
		Elapsed: elapsed,
		Excerpt: excerpt(content, connectionExcerptLen),
	}, nil
}

func classifyFailure(err error) FailureKind {

	if errors.Is(err, ErrEmptyResponse) {
		return FailureMalformed
	}

	return FailureTransport
}
