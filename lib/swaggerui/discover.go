package swaggerui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"dmi-explorer/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

// ErrSpecUrlNotFound means the page's markup never names the url it loads
// its spec from.
var ErrSpecUrlNotFound = errors.New("no spec url found in page")

var specUrlPattern = regexp.MustCompile(`\burl\s*:\s*["']([^"']+)["']`)

func newDiscoveryClient() *resty.Client {
	client := resty.New()
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	restyutil.InstrumentClient(client, "swaggerui/discovery", restyInstrumentOutput)

	return client
}

// DiscoverSpecUrl fetches the documentation page over plain HTTP and scans
// its markup for the url the swagger ui is configured to load. It only sees
// what is in the static page: an inline initializer, or the stock
// swagger-initializer.js script next to the page. The url comes back
// resolved against pageUrl.
func DiscoverSpecUrl(ctx context.Context, pageUrl string) (string, error) {
	ctx, span := tracer.Start(ctx, "DiscoverSpecUrl")
	defer span.End()

	client := newDiscoveryClient()

	res, err := client.R().SetContext(ctx).Get(pageUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch page")
		return "", err
	}
	if !res.IsSuccess() {
		return "", fmt.Errorf("GET %s: unexpected status %s", pageUrl, res.Status())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return "", fmt.Errorf("parse page: %w", err)
	}

	// Inline initializers first.
	var inline string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		m := specUrlPattern.FindStringSubmatch(s.Text())
		if m != nil {
			inline = m[1]
			return false
		}
		return true
	})
	if inline != "" {
		return resolveAgainst(pageUrl, inline)
	}

	// The stock distribution keeps the url in a script next to the page.
	var initializers []string
	doc.Find("script[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if strings.Contains(src, "swagger-initializer") {
			initializers = append(initializers, src)
		}
	})
	for _, src := range initializers {
		scriptUrl, err := resolveAgainst(pageUrl, src)
		if err != nil {
			continue
		}
		res, err := client.R().SetContext(ctx).Get(scriptUrl)
		if err != nil || !res.IsSuccess() {
			continue
		}
		m := specUrlPattern.FindStringSubmatch(string(res.Body()))
		if m != nil {
			return resolveAgainst(pageUrl, m[1])
		}
	}

	return "", ErrSpecUrlNotFound
}

// FetchSpec downloads the spec document from a discovered url.
func FetchSpec(ctx context.Context, specUrl string) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "FetchSpec")
	defer span.End()

	client := newDiscoveryClient()

	res, err := client.R().SetContext(ctx).Get(specUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch spec")
		return nil, err
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("GET %s: unexpected status %s", specUrl, res.Status())
	}
	if !json.Valid(res.Body()) {
		return nil, fmt.Errorf("GET %s: response is not json", specUrl)
	}
	return json.RawMessage(res.Body()), nil
}

func resolveAgainst(pageUrl, ref string) (string, error) {
	base, err := url.Parse(pageUrl)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(u).String(), nil
}
