package almanac

import (
	"fmt"
	"strings"
)

// Category is one step of the fixed seed-to-location conversion chain.
// The declaration order is the chain order.
type Category int

const (
	Seed Category = iota
	Soil
	Fertilizer
	Water
	Light
	Temperature
	Humidity
	Location
)

// Categories lists every category in chain order.
func Categories() []Category {
	return []Category{Seed, Soil, Fertilizer, Water, Light, Temperature, Humidity, Location}
}

// Name is the lowercase form used in stage headers.
func (c Category) Name() string {
	switch c {
	case Seed:
		return "seed"
	case Soil:
		return "soil"
	case Fertilizer:
		return "fertilizer"
	case Water:
		return "water"
	case Light:
		return "light"
	case Temperature:
		return "temperature"
	case Humidity:
		return "humidity"
	case Location:
		return "location"
	}
	return fmt.Sprintf("category%d", int(c))
}

func (c Category) String() string {
	return strings.ToUpper(c.Name())
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= Seed && c <= Location
}

// Next returns the category that follows c in the chain.
// The second result is false for Location and for invalid categories.
func (c Category) Next() (Category, bool) {
	if !c.Valid() || c == Location {
		return c, false
	}
	return c + 1, true
}

// link is the (from, to) pair named by a stage header.
type link struct {
	from, to Category
}

// stageHeaders maps "<from>-to-<to> map:" to the adjacent pair it names.
var stageHeaders = buildStageHeaders()

func buildStageHeaders() map[string]link {
	headers := make(map[string]link)
	for _, from := range Categories() {
		to, ok := from.Next()
		if !ok {
			continue
		}
		headers[Header(from, to)] = link{from: from, to: to}
	}
	return headers
}

// Header renders the input header line for a stage from one category to another.
func Header(from, to Category) string {
	return from.Name() + "-to-" + to.Name() + " map:"
}
