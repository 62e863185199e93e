package metobs

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultLimit is applied whenever a query leaves Limit unset.
const DefaultLimit = 10

// BBox is a geographic bounding box in decimal degrees.
type BBox struct {
	West  float64
	South float64
	East  float64
	North float64
}

// String returns the bounding box as a comma-separated string for API queries.
func (b BBox) String() string {
	return fmt.Sprintf("%.2f,%.2f,%.2f,%.2f", b.West, b.South, b.East, b.North)
}

// ParseBBox parses the "west,south,east,north" form used on the command line.
func ParseBBox(s string) (*BBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("bbox needs 4 comma-separated values, got %d", len(parts))
	}

	values := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bbox value %q: %w", part, err)
		}
		values[i] = v
	}

	return &BBox{
		West:  values[0],
		South: values[1],
		East:  values[2],
		North: values[3],
	}, nil
}

// StationQuery filters the station listing.
type StationQuery struct {
	Limit int
	BBox  *BBox
}

func (q StationQuery) params() map[string]string {
	limit := q.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	params := map[string]string{"limit": strconv.Itoa(limit)}
	if q.BBox != nil {
		params["bbox"] = q.BBox.String()
	}
	return params
}

// ObservationQuery filters the observation listing. Zero-valued optional
// fields are left out of the outgoing request entirely.
type ObservationQuery struct {
	ParameterId string
	StationId   string
	// Datetime is passed through verbatim, either an RFC 3339 instant or a
	// "start/end" interval. Malformed values are the service's to reject.
	Datetime string
	Limit    int
}

func (q ObservationQuery) params() map[string]string {
	limit := q.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	params := map[string]string{"limit": strconv.Itoa(limit)}
	if q.ParameterId != "" {
		params["parameterId"] = q.ParameterId
	}
	if q.StationId != "" {
		params["stationId"] = q.StationId
	}
	if q.Datetime != "" {
		params["datetime"] = q.Datetime
	}
	return params
}

type Collection struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CollectionList struct {
	Collections []Collection `json:"collections"`
}

type Conformance struct {
	ConformsTo []string `json:"conformsTo"`
}

type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type StationProperties struct {
	Name        string   `json:"name"`
	StationId   string   `json:"stationId"`
	Country     string   `json:"country"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	ParameterId []string `json:"parameterId"`
}

type Station struct {
	Id         string            `json:"id"`
	Geometry   Geometry          `json:"geometry"`
	Properties StationProperties `json:"properties"`
}

type StationList struct {
	Features []Station `json:"features"`
}

type ObservationProperties struct {
	Observed    time.Time `json:"observed"`
	ParameterId string    `json:"parameterId"`
	StationId   string    `json:"stationId"`
	Value       float64   `json:"value"`
}

type Observation struct {
	Id         string                `json:"id"`
	Geometry   Geometry              `json:"geometry"`
	Properties ObservationProperties `json:"properties"`
}

type ObservationList struct {
	Features []Observation `json:"features"`
}
