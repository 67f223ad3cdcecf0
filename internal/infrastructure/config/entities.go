package config

// EntitiesFile is the root config for entities.json
type EntitiesFile struct {
	Templates map[string]TemplateConfig `json:"templates"`
	Effects   EffectsConfig             `json:"effects"`
}

// TemplateConfig describes a named spawn template.
// Child is the node name a spawn looks up inside the template.
type TemplateConfig struct {
	Child    string    `json:"child"`
	Shape    string    `json:"shape"`
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	Color    string    `json:"color"`
	Velocity VecConfig `json:"velocity"`
}

type VecConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type EffectsConfig struct {
	Explosion EmitterConfig   `json:"explosion"`
	Starfield []EmitterConfig `json:"starfield"`
}

// EmitterConfig describes a particle emitter.
// Burst emitters spawn Particles at once; continuous ones use BirthRate.
type EmitterConfig struct {
	Name      string   `json:"name"`
	Template  string   `json:"template,omitempty"`
	Particles int      `json:"particles,omitempty"`
	BirthRate float64  `json:"birthRate,omitempty"`
	Lifetime  float64  `json:"lifetime"`
	Speed     float64  `json:"speed"`
	SpeedVar  float64  `json:"speedVar"`
	Size      float64  `json:"size"`
	Colors    []string `json:"colors"`
	Scale     float64  `json:"scale,omitempty"`
	Duration  float64  `json:"duration,omitempty"`
	Prewarm   float64  `json:"prewarm,omitempty"`
}
