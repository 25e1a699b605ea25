package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Emission     [3]float64             `json:"emission"`
	Material     map[string]interface{} `json:"material"`
	Properties   map[string]interface{} `json:"properties"`
}

// handleInspect reports what the camera sees through the center of one pixel
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	name := query.Get("scene")
	if name == "" {
		name = "default"
	}

	sceneObj, ok := s.createScene(w, name)
	if !ok {
		return
	}

	width, err := parseIntParam(query, "width", sceneObj.SamplingConfig.Width, 1, 2000)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	height, err := parseIntParam(query, "height", sceneObj.SamplingConfig.Height, 1, 2000)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	x, err := parseIntParam(query, "x", width/2, 0, width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(query, "y", height/2, 0, height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	response, err := inspectPixel(sceneObj, width, height, x, y)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// inspectPixel casts the center ray of a pixel and describes the closest hit
func inspectPixel(sceneObj *scene.Scene, width, height, pixelX, pixelY int) (InspectResponse, error) {
	camera, err := renderer.NewCamera(sceneObj.CameraConfig, width, height)
	if err != nil {
		return InspectResponse{}, err
	}
	ray := camera.GetRay(pixelX, pixelY, 0.5, 0.5)

	gp, ok := geometry.ClosestGeoPoint(ray.Origin, sceneObj.FindIntersections(ray))
	if !ok {
		return InspectResponse{Hit: false}, nil
	}

	response := InspectResponse{
		Hit:      true,
		Point:    [3]float64{gp.Point.X, gp.Point.Y, gp.Point.Z},
		Distance: ray.Origin.Distance(gp.Point),
		Emission: colorArray(gp.Geometry.GetEmission()),
		Material: extractMaterialInfo(gp.Geometry.GetMaterial()),
	}
	if n, err := gp.Geometry.NormalAt(gp.Point); err == nil {
		response.Normal = [3]float64{n.X, n.Y, n.Z}
	}
	response.GeometryType, response.Properties = extractGeometryInfo(gp.Geometry)
	return response, nil
}

// extractMaterialInfo lists the shading coefficients of a material
func extractMaterialInfo(mat material.Material) map[string]interface{} {
	return map[string]interface{}{
		"kd":          mat.KD,
		"ks":          mat.KS,
		"shininess":   mat.Shininess,
		"kt":          mat.KT,
		"kr":          mat.KR,
		"kdg":         mat.KDG,
		"kgs":         mat.KGS,
		"transparent": mat.IsTransparent(),
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(g geometry.Geometry) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := g.(type) {
	case *geometry.Sphere:
		properties["center"] = pointArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = pointArray(geom.Point)
		properties["normal"] = vectorArray(geom.Normal)
		return "plane", properties

	case *geometry.Triangle:
		properties["vertices"] = pointArrays(geom.Vertices)
		properties["plane_normal"] = vectorArray(geom.GetPlane().Normal)
		return "triangle", properties

	case *geometry.Polygon:
		properties["vertices"] = pointArrays(geom.Vertices)
		properties["plane_normal"] = vectorArray(geom.GetPlane().Normal)
		return "polygon", properties

	case *geometry.Cylinder:
		properties["origin"] = pointArray(geom.Axis.Origin)
		properties["axis"] = vectorArray(geom.Axis.Direction)
		properties["radius"] = geom.Radius
		properties["height"] = geom.Height
		return "cylinder", properties

	case *geometry.Tube:
		properties["origin"] = pointArray(geom.Axis.Origin)
		properties["axis"] = vectorArray(geom.Axis.Direction)
		properties["radius"] = geom.Radius
		return "tube", properties

	default:
		properties["type"] = fmt.Sprintf("%T", g)
		return "unknown", properties
	}
}

func pointArray(p core.Point3D) [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}

func vectorArray(v core.Vector) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func colorArray(c core.Color) [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

func pointArrays(points []core.Point3D) [][3]float64 {
	arrays := make([][3]float64, len(points))
	for i, p := range points {
		arrays[i] = pointArray(p)
	}
	return arrays
}
