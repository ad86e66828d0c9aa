package models

import (
	"slices"
	"sort"

	"github.com/piresc/locationd/services/location/platform"
)

// RegionKind tells which platform region type a Region was taken from.
type RegionKind string

const (
	RegionCircular  RegionKind = "circular"
	RegionPolygonal RegionKind = "polygonal"
	RegionUnknown   RegionKind = "unknown"
)

// Region is a monitored region, used both for monitoring requests and as
// event payload. Center and Radius are set for circular regions, Vertices
// for polygonal ones.
type Region struct {
	Identifier    string       `json:"identifier"`
	Kind          RegionKind   `json:"kind"`
	Center        *Coordinate  `json:"center,omitempty"`
	Radius        *float64     `json:"radius,omitempty"`
	Vertices      []Coordinate `json:"vertices,omitempty"`
	NotifyOnEntry bool         `json:"notify_on_entry"`
	NotifyOnExit  bool         `json:"notify_on_exit"`
}

// NewCircularRegion builds a circular region notifying on entry and exit.
func NewCircularRegion(identifier string, center Coordinate, radius float64) Region {
	return Region{
		Identifier:    identifier,
		Kind:          RegionCircular,
		Center:        &center,
		Radius:        &radius,
		NotifyOnEntry: true,
		NotifyOnExit:  true,
	}
}

// NewRegion snapshots a platform region.
func NewRegion(r platform.Region) Region {
	region := Region{
		Identifier:    r.Identifier(),
		Kind:          RegionUnknown,
		NotifyOnEntry: r.NotifyOnEntry(),
		NotifyOnExit:  r.NotifyOnExit(),
	}
	switch v := r.(type) {
	case *platform.CircularRegion:
		center := NewCoordinate(v.Center)
		region.Kind = RegionCircular
		region.Center = &center
		region.Radius = Ptr(v.Radius)
	case *platform.PolygonRegion:
		region.Kind = RegionPolygonal
		region.Vertices = make([]Coordinate, len(v.Vertices))
		for i, c := range v.Vertices {
			region.Vertices[i] = NewCoordinate(c)
		}
	}
	return region
}

// Platform rebuilds the platform region. Only circular regions can be
// rebuilt; polygonal and unknown regions report false.
func (r Region) Platform() (platform.Region, bool) {
	if r.Kind != RegionCircular || r.Center == nil || r.Radius == nil {
		return nil, false
	}
	return &platform.CircularRegion{
		RegionBase: platform.RegionBase{
			ID:      r.Identifier,
			OnEntry: r.NotifyOnEntry,
			OnExit:  r.NotifyOnExit,
		},
		Center: r.Center.Platform(),
		Radius: *r.Radius,
	}, true
}

// Equal reports whether every field of r and o matches.
func (r Region) Equal(o Region) bool {
	return r.Identifier == o.Identifier &&
		r.Kind == o.Kind &&
		optionalEqual(r.Center, o.Center) &&
		optionalEqual(r.Radius, o.Radius) &&
		slices.Equal(r.Vertices, o.Vertices) &&
		r.NotifyOnEntry == o.NotifyOnEntry &&
		r.NotifyOnExit == o.NotifyOnExit
}

// RegionSet returns regions deduplicated by identifier, first occurrence
// wins, ordered by identifier.
func RegionSet(regions []Region) []Region {
	seen := make(map[string]struct{}, len(regions))
	out := make([]Region, 0, len(regions))
	for _, r := range regions {
		if _, ok := seen[r.Identifier]; ok {
			continue
		}
		seen[r.Identifier] = struct{}{}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identifier < out[j].Identifier })
	return out
}

// RegionState is the relation of the device to a region.
type RegionState int

const (
	RegionStateUnknown RegionState = iota
	RegionStateInside
	RegionStateOutside
)

var regionStateNames = map[RegionState]string{
	RegionStateUnknown: "unknown",
	RegionStateInside:  "inside",
	RegionStateOutside: "outside",
}

// RegionStateFromRaw converts a platform region state.
func RegionStateFromRaw(raw int) (RegionState, bool) {
	return enumFromRaw(regionStateNames, raw)
}

func (s RegionState) String() string { return enumName(regionStateNames, s) }

func (s RegionState) MarshalText() ([]byte, error) { return marshalEnum(regionStateNames, s) }

func (s *RegionState) UnmarshalText(text []byte) error {
	v, err := unmarshalEnum(regionStateNames, text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
