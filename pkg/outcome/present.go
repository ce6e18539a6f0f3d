package outcome

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"runbox-api/pkg/i18nmsg"
	"runbox-api/pkg/sandbox"
)

// TruncationMarker is appended when output or stderr is cut at the cap.
const TruncationMarker = "... (truncated)"

// DefaultMaxLen caps output and stderr independently during presentation.
const DefaultMaxLen = 30000

// Truncate caps s at max bytes, appending the truncation marker when any
// content was dropped. The truncated result is exactly max plus the marker
// length.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + TruncationMarker
}

// Presenter assembles the final user-facing text for a classified response.
type Presenter struct {
	translator i18nmsg.Translator
	maxLen     int
}

// NewPresenter builds a Presenter. A non-positive maxLen falls back to
// DefaultMaxLen.
func NewPresenter(translator i18nmsg.Translator, maxLen int) *Presenter {
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	return &Presenter{translator: translator, maxLen: maxLen}
}

// Present renders the text shown to the user for one execution response.
// An empty category shows the raw run output (compiler diagnostics included)
// since the output itself is the diagnostic. Non-empty categories show the
// localized message for the feature namespace; the unknown category always
// carries the raw numeric code so failures stay diagnosable. Present never
// fails: a translator miss degrades to the category name.
func (p *Presenter) Present(ctx context.Context, feature string, resp *sandbox.ExecutionResponse, out Outcome) string {
	if resp == nil {
		resp = &sandbox.ExecutionResponse{}
	}
	text := resp.Cmpinfo + Truncate(resp.Output, p.maxLen) + Truncate(resp.Stderr, p.maxLen)
	if out.Category == CategoryNone {
		return text
	}

	msg, err := p.translator.Get(ctx, out.Category.MessageKey(), feature)
	if err != nil {
		logx.WithContext(ctx).Errorf("outcome: lookup %s for %s: %v", out.Category.MessageKey(), feature, err)
		msg = string(out.Category)
	}
	if out.Category == CategoryUnknown {
		if !resp.Ran() {
			msg = fmt.Sprintf("%s (Sandbox error code: %d)", msg, resp.Error)
		} else {
			msg = fmt.Sprintf("%s (Run result: %d)", msg, resp.Result)
		}
	}
	if text == "" {
		return msg
	}
	return text + "\n" + msg
}
