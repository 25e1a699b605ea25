package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Geometries is a composite of intersectables scanned linearly for every ray
type Geometries struct {
	items []Intersectable
}

// NewGeometries creates a composite holding the given items
func NewGeometries(items ...Intersectable) *Geometries {
	g := &Geometries{}
	g.Add(items...)
	return g
}

// Add appends items to the composite
func (g *Geometries) Add(items ...Intersectable) {
	g.items = append(g.items, items...)
}

// Len returns the number of direct children
func (g *Geometries) Len() int {
	return len(g.items)
}

// FindIntersections collects the intersections of every child
func (g *Geometries) FindIntersections(ray core.Ray, maxDistance float64) []GeoPoint {
	var hits []GeoPoint
	for _, item := range g.items {
		hits = append(hits, item.FindIntersections(ray, maxDistance)...)
	}
	return hits
}
