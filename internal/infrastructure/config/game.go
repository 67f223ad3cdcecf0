package config

// GameFile is the root config for game.json
type GameFile struct {
	Display DisplayConfig `json:"display"`
	Rules   RulesConfig   `json:"rules"`
	Audio   AudioConfig   `json:"audio"`
}

type DisplayConfig struct {
	Title        string  `json:"title"`
	SceneWidth   int     `json:"sceneWidth"`
	SceneHeight  int     `json:"sceneHeight"`
	WindowScale  float64 `json:"windowScale"`
	Framerate    int     `json:"framerate"`
	Background   string  `json:"background"`
	LabelColor   string  `json:"labelColor"`
	WarningColor string  `json:"warningColor"`
}

// RulesConfig holds every gameplay constant.
// Times are in seconds, speeds in scene units per second.
type RulesConfig struct {
	PlayerStart       VecConfig         `json:"playerStart"`
	LaserFireInterval float64           `json:"laserFireInterval"`
	LaserHitScore     int               `json:"laserHitScore"`
	Enemy             EnemyRules        `json:"enemy"`
	PowerUp           PowerUpRules      `json:"powerUp"`
	Difficulty        DifficultyRules   `json:"difficulty"`
	Transitions       TransitionsConfig `json:"transitions"`
}

type EnemyRules struct {
	SpawnMargin int `json:"spawnMargin"`

	// Vertical speed is drawn from [FastSpeed*(1+score/WidenScore), SlowSpeed]
	SlowSpeed  int `json:"slowSpeed"`
	FastSpeed  int `json:"fastSpeed"`
	WidenScore int `json:"widenScore"`

	Dive DiveRules `json:"dive"`

	// Horizontal speed applies when a roll in [1, SideRollMax] is >= SideRollMin
	SideRollMax int `json:"sideRollMax"`
	SideRollMin int `json:"sideRollMin"`
}

// DiveRules configures the occasional very fast descent.
// A dive happens when score >= MinScore and a roll in [1, RollMax] equals
// RollTarget - score/RollDivisor, or unconditionally when score >= AlwaysScore.
type DiveRules struct {
	MinScore      int `json:"minScore"`
	RollMax       int `json:"rollMax"`
	RollTarget    int `json:"rollTarget"`
	RollDivisor   int `json:"rollDivisor"`
	AlwaysScore   int `json:"alwaysScore"`
	BaseSpeed     int `json:"baseSpeed"`
	SpeedPerScore int `json:"speedPerScore"`
}

type PowerUpRules struct {
	InitialInterval float64 `json:"initialInterval"`
	InitialElapsed  float64 `json:"initialElapsed"`
	MinInterval     float64 `json:"minInterval"`
	MaxInterval     float64 `json:"maxInterval"`
	Speed           float64 `json:"speed"`
	MinY            int     `json:"minY"`
	TopMargin       int     `json:"topMargin"`
	Bonus           int     `json:"bonus"`
}

type DifficultyRules struct {
	BaseEnemyInterval float64    `json:"baseEnemyInterval"`
	IntervalDecay     float64    `json:"intervalDecay"`
	DecayDivisor      float64    `json:"decayDivisor"`
	BaseSideSpeed     int        `json:"baseSideSpeed"`
	SideSpeedSteps    []StepRule `json:"sideSpeedSteps"`
	WarningScore      int        `json:"warningScore"`
}

type StepRule struct {
	MinScore int `json:"minScore"`
	Cap      int `json:"cap"`
}

type TransitionsConfig struct {
	Start float64 `json:"start"`
	Death float64 `json:"death"`
}

// AudioConfig configures synthesized sound cues
type AudioConfig struct {
	SampleRate int                  `json:"sampleRate"`
	Volume     float64              `json:"volume"`
	Cues       map[string]CueConfig `json:"cues"`
}

// CueConfig describes one synthesized cue.
// Durations are in milliseconds.
type CueConfig struct {
	Wave     string    `json:"wave"`
	Freqs    []float64 `json:"freqs"`
	Duration int       `json:"duration"`
	Attack   int       `json:"attack"`
	Release  int       `json:"release"`
	Volume   float64   `json:"volume"`
}
