package models

import (
	"time"

	"github.com/piresc/locationd/services/location/platform"
)

// Heading is an immutable snapshot of one heading sample.
type Heading struct {
	MagneticHeading float64   `json:"magnetic_heading"`
	TrueHeading     float64   `json:"true_heading"`
	HeadingAccuracy float64   `json:"heading_accuracy"`
	X               float64   `json:"x"`
	Y               float64   `json:"y"`
	Z               float64   `json:"z"`
	Timestamp       time.Time `json:"timestamp"`

	// sample identifies the platform sample this was taken from; zero when
	// the heading was built by hand or decoded.
	sample uint64
}

// NewHeading snapshots a platform heading.
func NewHeading(h *platform.Heading) Heading {
	return Heading{
		MagneticHeading: h.MagneticHeading,
		TrueHeading:     h.TrueHeading,
		HeadingAccuracy: h.HeadingAccuracy,
		X:               h.X,
		Y:               h.Y,
		Z:               h.Z,
		Timestamp:       h.Timestamp,
		sample:          h.Sample,
	}
}

// Sample returns the identity of the wrapped platform sample, or zero.
func (h Heading) Sample() uint64 {
	return h.sample
}

// Equal compares sample identity when both headings wrap a platform sample
// and falls back to the recorded fields otherwise. The relation is not
// transitive: two distinct samples with identical fields are unequal, yet
// each equals a decoded copy, which carries no sample identity.
func (h Heading) Equal(o Heading) bool {
	if h.sample != 0 && o.sample != 0 {
		return h.sample == o.sample
	}
	return h.MagneticHeading == o.MagneticHeading &&
		h.TrueHeading == o.TrueHeading &&
		h.HeadingAccuracy == o.HeadingAccuracy &&
		h.X == o.X &&
		h.Y == o.Y &&
		h.Z == o.Z &&
		h.Timestamp.Equal(o.Timestamp)
}
