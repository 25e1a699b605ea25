package material

// NewPhong creates an opaque material with only local Phong shading
func NewPhong(kd, ks float64, shininess int) (Material, error) {
	return NewMaterial(kd, ks, shininess, 0, 0, 0, 0)
}

// NewLambertian creates a purely diffuse material
func NewLambertian(kd float64) (Material, error) {
	return NewPhong(kd, 0, 0)
}

// NewMetal creates a mirror of weight kr; fuzz > 0 spreads reflections into a glossy lobe
func NewMetal(kr, fuzz float64) (Material, error) {
	return NewMaterial(0, 0, 0, 0, kr, 0, fuzz)
}

// NewGlass creates a clear material of weight kt with a faint specular highlight;
// frost > 0 blurs what is seen through it
func NewGlass(kt, frost float64) (Material, error) {
	return NewMaterial(0, 0.2, 30, kt, 0, frost, 0)
}
