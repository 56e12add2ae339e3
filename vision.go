package basia

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"
)

const visionPrompt = "Analyze this image. Describe what you see and suggest " +
	"if this could be useful for fluorescence microscopy analysis."

const visionTextOnlyPrompt = "Describe what you would expect to see in a " +
	"fluorescence microscopy image of cells with GFP-labeled mitochondria."

const (
	visionExcerptLen         = 200
	visionTextOnlyExcerptLen = 150
)

type VisionCheck struct {
	Label     string
	Client    ChatClient
	ImagePath string
}

func (this *VisionCheck) Type() string {
	return "vision"
}

func (this *VisionCheck) validateConfig() error {

	switch {
	case this.Label == "":
		return errors.New("label is empty")
	case this.Client == nil:
		return errors.New("client is nil")
	}

	if this.ImagePath == "" {
		this.ImagePath = "test.jpg"
	}

	return nil
}

//	Exec sends the test image together with an analysis prompt. A missing
//	image file is not an error: the check degrades to the text-only
//	variant and records that on the result, so a PASS here does not by
//	itself mean image understanding was exercised.
func (this *VisionCheck) Exec(ctx context.Context) (*CheckResult, error) {

	if err := this.validateConfig(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(this.ImagePath); err != nil {

		slog.Debug("vision check image not found, falling back to text-only",
			slog.String("label", this.Label),
			slog.String("path", this.ImagePath))

		return this.execTextOnly(ctx)
	}

	imageData, err := os.ReadFile(this.ImagePath)
	if err != nil {
		return &CheckResult{
			Label:   this.Label,
			Variant: VariantVision,
			Status:  CheckStatusFail,
			Failure: FailureTransport,
			Err:     err,
		}, nil
	}

	started := time.Now()

	content, err := this.Client.Chat(ctx, visionPrompt, [][]byte{imageData})
	elapsed := time.Since(started)

	if err != nil {

		slog.Debug("vision check failed",
			slog.String("label", this.Label),
			slog.String("err", err.Error()),
			slog.Duration("after", elapsed))

		return &CheckResult{
			Label:   this.Label,
			Variant: VariantVision,
			Status:  CheckStatusFail,
			Elapsed: elapsed,
			Failure: classifyFailure(err),
			Err:     err,
		}, nil
	}

	return &CheckResult{
		Label:   this.Label,
		Variant: VariantVision,
		Status:  CheckStatusPass,
		Elapsed: elapsed,
		Excerpt: excerpt(content, visionExcerptLen),
	}, nil
}

func (this *VisionCheck) execTextOnly(ctx context.Context) (*CheckResult, error) {

	started := time.Now()

	content, err := this.Client.Chat(ctx, visionTextOnlyPrompt, nil)
	elapsed := time.Since(started)

	if err != nil {

		slog.Debug("vision text-only check failed",
			slog.String("label", this.Label),
			slog.String("err", err.Error()),
			slog.Duration("after", elapsed))

		return &CheckResult{
			Label:   this.Label,
			Variant: VariantVisionTextOnly,
			Status:  CheckStatusFail,
			Elapsed: elapsed,
			Failure: classifyFailure(err),
			Err:     err,
		}, nil
	}

	return &CheckResult{
		Label:   this.Label,
		Variant: VariantVisionTextOnly,
		Status:  CheckStatusPass,
		Elapsed: elapsed,
		Excerpt: excerpt(content, visionTextOnlyExcerptLen),
	}, nil
}
