package integrator

import "github.com/df07/go-whitted-raytracer/pkg/core"

// lazySampler defers creating a random generator until a beam asks for one,
// so single-ray configurations never pay for it
type lazySampler struct {
	seed    int64
	sampler *core.RandomSampler
}

func (ls *lazySampler) get() *core.RandomSampler {
	if ls.sampler == nil {
		ls.sampler = core.NewSeededSampler(ls.seed)
	}
	return ls.sampler
}

// Get1D implements core.Sampler
func (ls *lazySampler) Get1D() float64 {
	return ls.get().Get1D()
}

// Get2D implements core.Sampler
func (ls *lazySampler) Get2D() (float64, float64) {
	return ls.get().Get2D()
}
