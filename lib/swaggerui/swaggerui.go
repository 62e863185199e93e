package swaggerui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel/codes"
)

// DefaultPageUrl is the production swagger ui page for the metObs API.
const DefaultPageUrl = "https://dmigw.govcloud.dk/v2/metObs/swagger-ui/index.html"

const (
	DefaultReadySelector = ".swagger-ui"
	DefaultReadyTimeout  = time.Second * 10
	DefaultSettleDelay   = time.Second * 3
)

// Options configure a single extraction run.
type Options struct {
	// PageUrl is the documentation page to load. Defaults to DefaultPageUrl.
	PageUrl string
	// ReadySelector is the element whose presence marks the page as
	// rendered. Defaults to DefaultReadySelector.
	ReadySelector string
	// ReadyTimeout bounds the wait for ReadySelector. Defaults to
	// DefaultReadyTimeout.
	ReadyTimeout time.Duration
	// SettleDelay is a fixed pause after the page renders, giving its own
	// scripts time to finish assembling the spec object in memory. Defaults
	// to DefaultSettleDelay.
	SettleDelay time.Duration
	// DebuggerUrl attaches to an already-running browser over the devtools
	// protocol instead of launching one.
	DebuggerUrl string
}

func (o Options) withDefaults() Options {
	if o.PageUrl == "" {
		o.PageUrl = DefaultPageUrl
	}
	if o.ReadySelector == "" {
		o.ReadySelector = DefaultReadySelector
	}
	if o.ReadyTimeout == 0 {
		o.ReadyTimeout = DefaultReadyTimeout
	}
	if o.SettleDelay == 0 {
		o.SettleDelay = DefaultSettleDelay
	}
	return o
}

// Result of an extraction run.
type Result struct {
	// Spec is the extracted document, nil when no lookup found one.
	Spec json.RawMessage
	// Strategy names the lookup that produced Spec.
	Strategy string
	// SpecUrl is the url the page loads its spec from, probed for
	// diagnostics only when Spec is nil. Empty when the probe fails too.
	SpecUrl string
}

// Extract drives a headless browser through the documentation page and pulls
// the spec object out of the page's own javascript state. The browser is
// torn down before Extract returns, on every path. A page that renders but
// exposes no spec is not an error: the result carries a nil Spec and, when
// the probe succeeds, the url the page would have loaded it from.
func Extract(ctx context.Context, opts Options) (Result, error) {
	ctx, span := tracer.Start(ctx, "Extract")
	defer span.End()

	opts = opts.withDefaults()

	s, err := startSession(ctx, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to start browser session")
		return Result{}, fmt.Errorf("start browser session: %w", err)
	}
	defer s.close()

	slog.Info("loading swagger ui page", "url", opts.PageUrl)
	err = s.navigate(opts.PageUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to load page")
		return Result{}, fmt.Errorf("navigate to %s: %w", opts.PageUrl, err)
	}
	err = s.waitReady(opts.ReadySelector, opts.ReadyTimeout)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "page never became ready")
		return Result{}, fmt.Errorf("wait for %q: %w", opts.ReadySelector, err)
	}
	err = s.settle(opts.SettleDelay)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "interrupted while settling")
		return Result{}, err
	}

	slog.Info("extracting api specification")
	spec, strategy := lookupSpec(s)
	if spec != nil {
		slog.Info("extracted api specification", "strategy", strategy, "bytes", len(spec))
		return Result{Spec: spec, Strategy: strategy}, nil
	}

	slog.Warn("could not extract specification from page state")
	specUrl := lookupSpecUrl(s)
	if specUrl != "" {
		slog.Info("found spec url", "url", specUrl)
	}
	return Result{SpecUrl: specUrl}, nil
}

// WriteSpec re-indents an extracted document and fully overwrites path.
func WriteSpec(path string, spec json.RawMessage) error {
	var buf bytes.Buffer
	err := json.Indent(&buf, spec, "", "  ")
	if err != nil {
		return fmt.Errorf("reindent spec: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
