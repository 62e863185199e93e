package metobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dmi-explorer/lib/restyutil"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

// DefaultBaseUrl points at the production metObs deployment.
const DefaultBaseUrl = "https://dmigw.govcloud.dk/v2/metObs"

// Client wraps the metObs REST API. Every request carries the API key in
// the X-Gravitee-Api-Key header.
type Client struct {
	http *resty.Client
}

type Options struct {
	// BaseUrl defaults to DefaultBaseUrl when empty.
	BaseUrl string
	ApiKey  string
	// Timeout defaults to 30 seconds when zero.
	Timeout time.Duration
}

func NewClient(opts Options) *Client {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetHeader("X-Gravitee-Api-Key", opts.ApiKey)
	client.SetHeader("Accept", "application/json")
	client.SetTimeout(opts.Timeout)

	restyutil.InstrumentClient(client, "metobs/http", restyInstrumentOutput)

	return &Client{http: client}
}

func (c *Client) getJson(ctx context.Context, path string, query map[string]string, out any) error {
	req := c.http.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParams(query)
	}

	res, err := req.Get(path)
	if err != nil {
		return err
	}
	if !res.IsSuccess() {
		return fmt.Errorf("GET %s: unexpected status %s", path, res.Status())
	}

	err = json.Unmarshal(res.Body(), out)
	if err != nil {
		return fmt.Errorf("GET %s: parse response: %w", path, err)
	}
	return nil
}

// Spec fetches the OpenAPI specification document.
func (c *Client) Spec(ctx context.Context) (Document, error) {
	ctx, span := tracer.Start(ctx, "client:Spec")
	defer span.End()

	var doc Document
	err := c.getJson(ctx, "/api", nil, &doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch openapi spec")
		return nil, err
	}
	return doc, nil
}

// Collections lists the feature collections the service exposes.
func (c *Client) Collections(ctx context.Context) (CollectionList, error) {
	ctx, span := tracer.Start(ctx, "client:Collections")
	defer span.End()

	var out CollectionList
	err := c.getJson(ctx, "/collections", nil, &out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch collections")
		return CollectionList{}, err
	}
	return out, nil
}

// Conformance lists the OGC API standards the service conforms to.
func (c *Client) Conformance(ctx context.Context) (Conformance, error) {
	ctx, span := tracer.Start(ctx, "client:Conformance")
	defer span.End()

	var out Conformance
	err := c.getJson(ctx, "/conformance", nil, &out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch conformance")
		return Conformance{}, err
	}
	return out, nil
}

// Stations lists meteorological stations matching the query.
func (c *Client) Stations(ctx context.Context, query StationQuery) (StationList, error) {
	ctx, span := tracer.Start(ctx, "client:Stations")
	defer span.End()

	var out StationList
	err := c.getJson(ctx, "/collections/station/items", query.params(), &out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch stations")
		return StationList{}, err
	}
	return out, nil
}

// Observations lists observations matching whichever filters were supplied.
func (c *Client) Observations(ctx context.Context, query ObservationQuery) (ObservationList, error) {
	ctx, span := tracer.Start(ctx, "client:Observations")
	defer span.End()

	var out ObservationList
	err := c.getJson(ctx, "/collections/observation/items", query.params(), &out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch observations")
		return ObservationList{}, err
	}
	return out, nil
}
