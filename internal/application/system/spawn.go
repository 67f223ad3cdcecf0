package system

import (
	"github.com/younwookim/starfall/internal/domain/entity"
	"github.com/younwookim/starfall/internal/infrastructure/config"
)

// Rand is the subset of *math/rand.Rand the spawn policies draw from
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// randInt returns a uniform integer in [lo, hi]
func randInt(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// randFloat returns a uniform float in [lo, hi)
func randFloat(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// EnemySpawn picks the position and velocity of a new enemy.
// Draw order is fixed so a seeded run is reproducible:
// x, vertical speed, dive roll (only at dive scores), side speed, side roll.
func EnemySpawn(rules Rules, score, maxSideSpeed int, rng Rand) SpawnEnemyCommand {
	e := rules.Enemy
	halfW := int(rules.SceneW / 2)

	x := randInt(rng, -halfW+e.SpawnMargin, halfW-e.SpawnMargin)
	pos := entity.Vec{X: float64(x), Y: rules.SceneH / 2}

	fastest := e.FastSpeed
	if e.WidenScore > 0 {
		fastest = e.FastSpeed * (1 + score/e.WidenScore)
	}
	vy := randInt(rng, fastest, e.SlowSpeed)

	if dives(e.Dive, score, rng) {
		vy = e.Dive.BaseSpeed - e.Dive.SpeedPerScore*score
	}

	var vx int
	side := randInt(rng, -maxSideSpeed, maxSideSpeed)
	if randInt(rng, 1, e.SideRollMax) >= e.SideRollMin {
		vx = side
	}

	return SpawnEnemyCommand{
		Pos: pos,
		Vel: entity.Vec{X: float64(vx), Y: float64(vy)},
	}
}

func dives(d config.DiveRules, score int, rng Rand) bool {
	if score >= d.MinScore {
		target := d.RollTarget
		if d.RollDivisor > 0 {
			target -= score / d.RollDivisor
		}
		if randInt(rng, 1, d.RollMax) == target {
			return true
		}
	}
	return score >= d.AlwaysScore
}

// PowerUpSpawn picks the side and height of a new power-up.
// From the left it flies right at the configured speed; from the right it
// keeps its template velocity.
func PowerUpSpawn(rules Rules, rng Rand) SpawnPowerUpCommand {
	p := rules.PowerUp
	left := rng.Intn(2) == 0
	y := float64(randInt(rng, p.MinY, int(rules.SceneH/2)-p.TopMargin))

	if left {
		return SpawnPowerUpCommand{
			Pos: entity.Vec{X: -float64(int(rules.SceneW / 2)), Y: y},
			Vel: entity.Vec{X: p.Speed},
		}
	}
	return SpawnPowerUpCommand{
		Pos:              entity.Vec{X: float64(int(rules.SceneW / 2)), Y: y},
		TemplateVelocity: true,
	}
}

// NextPowerUpInterval draws the wait before the following power-up
func NextPowerUpInterval(rules Rules, rng Rand) float64 {
	return randFloat(rng, rules.PowerUp.MinInterval, rules.PowerUp.MaxInterval)
}
