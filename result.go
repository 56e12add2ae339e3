package basia

import (
	"time"
)

type CheckStatus int

const (
	CheckStatusFail       = 0
	CheckStatusPass       = 1
	CheckStatusFailString = "fail"
	CheckStatusPassString = "pass"
)

func (this CheckStatus) String() string {
	switch this {
	case CheckStatusPass:
		return CheckStatusPassString
	case CheckStatusFail:
		return CheckStatusFailString
	default:
		return ""
	}
}

func ParseCheckStatus(token string) CheckStatus {
	switch token {
	case CheckStatusPassString:
		return CheckStatusPass
	default:
		return CheckStatusFail
	}
}

//	CheckVariant records which prompt variant a check actually ran.
//	The vision check silently degrades to a text-only prompt when the
//	image file is missing, so the variant is the only way to tell a real
//	vision round-trip from the fallback.
type CheckVariant int

const (
	VariantText           CheckVariant = 0
	VariantVision         CheckVariant = 1
	VariantVisionTextOnly CheckVariant = 2
)

func (this CheckVariant) String() string {
	switch this {
	case VariantText:
		return "text"
	case VariantVision:
		return "vision"
	case VariantVisionTextOnly:
		return "vision-text-only"
	default:
		return ""
	}
}

type FailureKind int

const (
	FailureNone      FailureKind = 0
	FailureTransport FailureKind = 1
	FailureMalformed FailureKind = 2
)

func (this FailureKind) String() string {
	switch this {
	case FailureNone:
		return "none"
	case FailureTransport:
		return "transport"
	case FailureMalformed:
		return "malformed"
	default:
		return ""
	}
}

type CheckResult struct {
	Label   string
	Variant CheckVariant
	Status  CheckStatus
	Elapsed time.Duration
	Excerpt string
	Failure FailureKind
	Err     error
}

func (this *CheckResult) Passed() bool {
	return this.Status == CheckStatusPass
}

//	excerpt trims a model response down to the first maxRunes characters
//	for the report. Logging only; never used for correctness checks.
func excerpt(text string, maxRunes int) string {

	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}

	return string(runes[:maxRunes])
}
