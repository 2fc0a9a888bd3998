package models

// Region is the six-way administrative zone of Thailand a billboard sits in.
type Region string

const (
	RegionNorth     Region = "north"
	RegionNortheast Region = "northeast"
	RegionCentral   Region = "central"
	RegionEast      Region = "east"
	RegionWest      Region = "west"
	RegionSouth     Region = "south"
)

// Size is a coarse bucket of a screen's width x height area.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeXLarge Size = "xlarge"
)

// Traffic is a coarse bucket of the estimated monthly viewer count.
type Traffic string

const (
	TrafficLow      Traffic = "low"
	TrafficMedium   Traffic = "medium"
	TrafficHigh     Traffic = "high"
	TrafficVeryHigh Traffic = "very_high"
)

// Regions lists every known region key.
var Regions = []Region{RegionNorth, RegionNortheast, RegionCentral, RegionEast, RegionWest, RegionSouth}

// Sizes lists every size category, smallest first.
var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge, SizeXLarge}

// TrafficLevels lists every traffic level, lowest first.
var TrafficLevels = []Traffic{TrafficLow, TrafficMedium, TrafficHigh, TrafficVeryHigh}

// Valid reports whether r is one of the known region keys.
func (r Region) Valid() bool {
	for _, v := range Regions {
		if r == v {
			return true
		}
	}
	return false
}

// Valid reports whether s is one of the known size categories.
func (s Size) Valid() bool {
	for _, v := range Sizes {
		if s == v {
			return true
		}
	}
	return false
}

// Valid reports whether t is one of the known traffic levels.
func (t Traffic) Valid() bool {
	for _, v := range TrafficLevels {
		if t == v {
			return true
		}
	}
	return false
}

// Location represents a single LED billboard site as displayed by the media-location map.
type Location struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Province      string  `json:"province"`
	Region        Region  `json:"region"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Size          Size    `json:"size"`
	Dimensions    string  `json:"dimensions"`
	ShowTimes     string  `json:"showTimes"`
	Timing        string  `json:"timing"`
	Address       string  `json:"address"`
	Description   string  `json:"description"`
	Traffic       Traffic `json:"traffic"`
	ViewersPerDay int64   `json:"viewersPerDay"`

	// HasLatitude and HasLongitude record whether the sheet supplied the
	// coordinate; an absent one is written as the integer 0.
	HasLatitude  bool `json:"-"`
	HasLongitude bool `json:"-"`
}

// Field is one key/value pair of a Location in emitted order.
type Field struct {
	Key   string
	Value any
}

// Fields returns the location's keys in the order downstream consumers expect.
// String-typed values are plain strings; numbers are int, int64 or float64.
func (l Location) Fields() []Field {
	return []Field{
		{"id", l.ID},
		{"name", l.Name},
		{"province", l.Province},
		{"region", string(l.Region)},
		{"latitude", coordinate(l.Latitude, l.HasLatitude)},
		{"longitude", coordinate(l.Longitude, l.HasLongitude)},
		{"size", string(l.Size)},
		{"dimensions", l.Dimensions},
		{"showTimes", l.ShowTimes},
		{"timing", l.Timing},
		{"address", l.Address},
		{"description", l.Description},
		{"traffic", string(l.Traffic)},
		{"viewersPerDay", l.ViewersPerDay},
	}
}

func coordinate(v float64, present bool) any {
	if !present && v == 0 {
		return 0
	}
	return v
}

// Filter narrows a location listing. Empty fields match everything.
type Filter struct {
	Region  Region
	Size    Size
	Traffic Traffic
}
