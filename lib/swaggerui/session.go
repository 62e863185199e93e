package swaggerui

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// session is the slice of browser behavior Extract needs.
type session interface {
	navigate(url string) error
	waitReady(selector string, timeout time.Duration) error
	settle(d time.Duration) error
	evaluate(expr string, out *string) error
	close()
}

// Swapped out by tests.
var startSession = newChromeSession

type chromeSession struct {
	ctx     context.Context
	cancels []context.CancelFunc
}

func newChromeSession(ctx context.Context, opts Options) (session, error) {
	var cancels []context.CancelFunc

	var allocCtx context.Context
	var cancel context.CancelFunc
	if opts.DebuggerUrl != "" {
		allocCtx, cancel = chromedp.NewRemoteAllocator(ctx, opts.DebuggerUrl)
	} else {
		allocCtx, cancel = chromedp.NewExecAllocator(ctx, append(
			chromedp.DefaultExecAllocatorOptions[:],
			chromedp.NoSandbox,
			chromedp.Flag("disable-dev-shm-usage", true),
		)...)
	}
	cancels = append(cancels, cancel)

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	cancels = append(cancels, cancel)

	s := &chromeSession{ctx: browserCtx, cancels: cancels}

	// Connect up front so launch failures surface here instead of on the
	// first action.
	err := chromedp.Run(browserCtx)
	if err != nil {
		s.close()
		return nil, err
	}
	return s, nil
}

func (s *chromeSession) navigate(url string) error {
	return chromedp.Run(s.ctx, chromedp.Navigate(url))
}

func (s *chromeSession) waitReady(selector string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()
	return chromedp.Run(ctx, chromedp.WaitReady(selector, chromedp.ByQuery))
}

func (s *chromeSession) settle(d time.Duration) error {
	return chromedp.Run(s.ctx, chromedp.Sleep(d))
}

func (s *chromeSession) evaluate(expr string, out *string) error {
	return chromedp.Run(s.ctx, chromedp.Evaluate(expr, out))
}

func (s *chromeSession) close() {
	// Reverse order, the browser context before its allocator.
	for i := len(s.cancels) - 1; i >= 0; i-- {
		s.cancels[i]()
	}
}
