package snake

import "github.com/vovakirdan/snake-ultra/internal/core"

// Particle is a cosmetic effect in pixel space.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Color  core.Color
	Size   float64
}

// burst spawns a particle ring centered on a grid cell.
func (e *Engine) burst(cell core.Point, color core.Color) {
	pc := e.cfg.Particles
	cellSize := float64(e.cfg.Grid.CellSize)
	cx := float64(cell.X)*cellSize + cellSize/2
	cy := float64(cell.Y)*cellSize + cellSize/2

	for range pc.Count {
		vx := (e.rng.Float64() - 0.5) * pc.Spread
		vy := (e.rng.Float64() - 0.5) * pc.Spread
		size := e.rng.Float64()*pc.SizeRange + pc.MinSize
		e.particles = append(e.particles, Particle{
			X: cx, Y: cy,
			VX: vx, VY: vy,
			Life:  pc.Life,
			Color: color,
			Size:  size,
		})
	}
}

// ageParticles integrates positions and drops expired particles.
func (e *Engine) ageParticles() {
	alive := e.particles[:0]
	for _, p := range e.particles {
		p.Life--
		p.X += p.VX
		p.Y += p.VY
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	e.particles = alive
}
