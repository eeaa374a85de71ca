package provider

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/airbusgeo/goes-archiver/common"
)

// Satellite identifies a GOES spacecraft on the NESDIS CDN
type Satellite string

const (
	GOESEast Satellite = "GOES16"
	GOESWest Satellite = "GOES18"
)

// DefaultImageSize is the full-disk GEOCOLOR variant fetched by default
const DefaultImageSize = "1808x1808"

const cdnHost = "cdn.star.nesdis.noaa.gov"

// SatelliteFromString returns the satellite from the user input
func SatelliteFromString(input string) (Satellite, error) {
	switch strings.ToLower(input) {
	case "goes-east", "goeseast", "east", "goes16", "goes-16":
		return GOESEast, nil
	case "goes-west", "goeswest", "west", "goes18", "goes-18":
		return GOESWest, nil
	}
	return "", fmt.Errorf("unknown satellite %q (use goes-east or goes-west)", input)
}

// ErrInvalidURL is an error constructing a snapshot URL
type ErrInvalidURL struct {
	URL string
	Err error
}

func (e ErrInvalidURL) Error() string {
	return fmt.Sprintf("invalid url %s: %v", e.URL, e.Err)
}

func (e ErrInvalidURL) Unwrap() error { return e.Err }

// GOESProvider implements SnapshotProvider for the NOAA STAR CDN full-disk
// GEOCOLOR products, e.g.
// https://cdn.star.nesdis.noaa.gov/GOES16/ABI/FD/GEOCOLOR/20243350830_GOES16-ABI-FD-GEOCOLOR-1808x1808.jpg
type GOESProvider struct {
	sat  Satellite
	size string
}

// NewGOESProvider creates a SnapshotProvider for the given spacecraft.
// size selects the image variant published by the CDN (e.g. "1808x1808").
func NewGOESProvider(sat Satellite, size string) *GOESProvider {
	if size == "" {
		size = DefaultImageSize
	}
	return &GOESProvider{sat: sat, size: size}
}

// Name implements SnapshotProvider
func (p *GOESProvider) Name() string {
	return string(p.sat)
}

// SnapshotURL implements SnapshotProvider
func (p *GOESProvider) SnapshotURL(t time.Time) (string, error) {
	raw := fmt.Sprintf("https://%s/%s/ABI/FD/GEOCOLOR/%s_%s-ABI-FD-GEOCOLOR-%s.jpg",
		cdnHost, p.sat, common.FormatFrameID(t), p.sat, p.size)
	if _, err := url.Parse(raw); err != nil {
		return "", ErrInvalidURL{URL: raw, Err: err}
	}
	return raw, nil
}
