package integrator

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Config contains the recursion and sampling limits of the Whitted integrator
type Config struct {
	MaxLevel int     // Recursion levels for reflection/refraction chains
	MinK     float64 // Attenuation below which a branch contributes nothing
	BeamSize int     // Rays per glossy reflection/refraction beam
	Seed     int64   // Base seed for beam jitter
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxLevel: 10,
		MinK:     0.001,
		BeamSize: 1,
		Seed:     42,
	}
}

// Validate checks the configuration limits
func (c Config) Validate() error {
	if c.MaxLevel < 1 {
		return fmt.Errorf("%w: max level must be at least 1, got %d", core.ErrInvalidArgument, c.MaxLevel)
	}
	if c.MinK <= 0 || c.MinK >= 1 {
		return fmt.Errorf("%w: min k must be in (0,1), got %g", core.ErrInvalidArgument, c.MinK)
	}
	if c.BeamSize < 1 {
		return fmt.Errorf("%w: beam size must be at least 1, got %d", core.ErrInvalidArgument, c.BeamSize)
	}
	return nil
}

// WhittedIntegrator implements recursive Whitted ray tracing: Phong local
// lighting with transmissive shadows plus reflected and refracted beams.
// It holds no mutable state and may be shared by any number of goroutines.
type WhittedIntegrator struct {
	scene  Scene
	config Config
}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator(scene Scene, config Config) (*WhittedIntegrator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &WhittedIntegrator{scene: scene, config: config}, nil
}

// Config returns the integrator configuration
func (w *WhittedIntegrator) Config() Config {
	return w.config
}

// TraceRay returns the color seen along the ray. Beam jitter is seeded from the
// configured seed and the ray itself, so equal rays always shade identically.
func (w *WhittedIntegrator) TraceRay(ray core.Ray) core.Color {
	return w.TraceRayWithSampler(ray, &lazySampler{seed: w.raySeed(ray)})
}

// TraceRayWithSampler is TraceRay with an explicit jitter source
func (w *WhittedIntegrator) TraceRayWithSampler(ray core.Ray, sampler core.Sampler) core.Color {
	closest, ok := w.findClosestIntersection(ray)
	if !ok {
		return w.scene.GetBackground()
	}
	t := &trace{WhittedIntegrator: w, sampler: sampler}
	// Ambient light is added once, at the top of the recursion
	return t.calcColor(closest, ray, w.config.MaxLevel, 1.0).Add(w.scene.GetAmbientIntensity())
}

// findClosestIntersection is the single point through which every primary,
// shadow-free, reflected and refracted ray resolves its visible surface
func (w *WhittedIntegrator) findClosestIntersection(ray core.Ray) (geometry.GeoPoint, bool) {
	return geometry.ClosestGeoPoint(ray.Origin, w.scene.FindIntersections(ray))
}

// transparency returns the fraction of the light that reaches the point: the
// product of kT over every occluder between the point and the light. It is
// exactly 1 with no occluder and exactly 0 once the product drops below MinK.
func (w *WhittedIntegrator) transparency(light lights.LightSource, l, n core.Vector, point core.Point3D) float64 {
	// l points from the light to the point; the shadow ray goes the other way
	shadowRay, err := core.NewOffsetRay(point, l.Negate(), n)
	if err != nil {
		return 0
	}

	occluders := w.scene.FindIntersectionsWithin(shadowRay, light.OcclusionDistance(shadowRay.Origin))
	if len(occluders) == 0 {
		return 1.0
	}

	ktr := 1.0
	for _, gp := range occluders {
		ktr *= gp.Geometry.GetMaterial().KT
		if ktr < w.config.MinK {
			return 0.0
		}
	}
	return ktr
}

// raySeed mixes the configured seed with the bits of the ray
func (w *WhittedIntegrator) raySeed(ray core.Ray) int64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, f := range [...]float64{
		ray.Origin.X, ray.Origin.Y, ray.Origin.Z,
		ray.Direction.X, ray.Direction.Y, ray.Direction.Z,
	} {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	}
	return int64(h.Sum64()) ^ w.config.Seed
}

// trace carries the jitter source through one TraceRay evaluation
type trace struct {
	*WhittedIntegrator
	sampler core.Sampler
}

// calcColor shades a visible point: its emission and local lighting, plus
// reflected and refracted light while recursion levels remain
func (t *trace) calcColor(gp geometry.GeoPoint, ray core.Ray, level int, k float64) core.Color {
	color := gp.Geometry.GetEmission()
	n, err := gp.Geometry.NormalAt(gp.Point)
	if err != nil {
		return color
	}

	color = color.Add(t.calcLocalEffects(gp, n, ray, k))
	if level == 1 {
		return color
	}
	return color.Add(t.calcGlobalEffects(gp, n, ray, level, k))
}

// calcLocalEffects sums the diffuse and specular contribution of every light
// on the same side of the surface as the viewer
func (t *trace) calcLocalEffects(gp geometry.GeoPoint, n core.Vector, ray core.Ray, k float64) core.Color {
	v := ray.Direction
	nv := core.AlignZero(n.Dot(v))
	if nv == 0 {
		return core.Black
	}

	mat := gp.Geometry.GetMaterial()
	color := core.Black
	for _, light := range t.scene.GetLights() {
		l, err := light.DirectionTo(gp.Point)
		if err != nil {
			continue
		}
		nl := core.AlignZero(n.Dot(l))
		if !core.SameSign(nl, nv) {
			continue
		}

		ktr := t.transparency(light, l, n, gp.Point)
		if ktr*k <= t.config.MinK {
			continue
		}

		intensity := light.Intensity(gp.Point).Scale(ktr)
		color = color.Add(
			calcDiffusive(mat.KD, nl, intensity),
			calcSpecular(mat.KS, n, l, nl, v, mat.Shininess, intensity),
		)
	}
	return color
}

// calcGlobalEffects adds the reflected and refracted beams whose attenuated
// weight is still above the cutoff
func (t *trace) calcGlobalEffects(gp geometry.GeoPoint, n core.Vector, ray core.Ray, level int, k float64) core.Color {
	mat := gp.Geometry.GetMaterial()
	v := ray.Direction
	nv := core.AlignZero(n.Dot(v))
	color := core.Black

	if kkr := k * mat.KR; kkr > t.config.MinK {
		// r = v - 2(n·v)n
		reflected, err := core.NewOffsetRay(gp.Point, v.Subtract(n.Scale(2*nv)), n)
		if err == nil {
			color = color.Add(t.calcGlobalEffect(reflected, n, level, mat.KR, kkr, mat.KGS))
		}
	}

	if kkt := k * mat.KT; kkt > t.config.MinK {
		refracted, err := core.NewOffsetRay(gp.Point, v, n)
		if err == nil {
			color = color.Add(t.calcGlobalEffect(refracted, n, level, mat.KT, kkt, mat.KDG))
		}
	}
	return color
}

// calcGlobalEffect averages a beam of rays around the ideal secondary ray.
// Samples that leave on the wrong side of the surface are dropped; the rest
// recurse one level deeper with the attenuated k.
func (t *trace) calcGlobalEffect(ideal core.Ray, n core.Vector, level int, kx, kkx, radius float64) core.Color {
	beam := ideal.Beam(t.config.BeamSize, radius, t.sampler)
	nIdeal := core.AlignZero(n.Dot(ideal.Direction))

	sum := core.Black
	for _, sample := range beam {
		if !core.SameSign(nIdeal, core.AlignZero(n.Dot(sample.Direction))) {
			continue
		}
		gp, ok := t.findClosestIntersection(sample)
		if !ok {
			sum = sum.Add(t.scene.GetBackground())
			continue
		}
		sum = sum.Add(t.calcColor(gp, sample, level-1, kkx))
	}
	return sum.Scale(kx).Reduce(float64(len(beam)))
}

// calcDiffusive returns the Lambertian term |n·l|·kD·I
func calcDiffusive(kd, nl float64, intensity core.Color) core.Color {
	return intensity.Scale(math.Abs(nl) * kd)
}

// calcSpecular returns the Phong term kS·max(0, -v·r)^shininess·I
func calcSpecular(ks float64, n, l core.Vector, nl float64, v core.Vector, shininess int, intensity core.Color) core.Color {
	r := l.Subtract(n.Scale(2 * nl))
	vr := core.AlignZero(v.Dot(r))
	if vr >= 0 {
		return core.Black
	}
	return intensity.Scale(ks * math.Pow(-vr, float64(shininess)))
}
