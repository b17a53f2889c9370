package actor

import "github.com/lixenwraith/sky-fighter/constants"

// BossState is the movement pattern and shield sub-state of the boss
type BossState struct {
	Pattern     []float64
	Index       int
	Consecutive int

	ShieldActive bool
	ShieldFrames int
}

func newBossState(rng Rand) *BossState {
	pattern := make([]float64, 0, constants.BossMovesPerCycle*3)
	for i := 0; i < constants.BossMovesPerCycle; i++ {
		pattern = append(pattern, constants.BossVerticalStep, -constants.BossVerticalStep, 0)
	}

	bs := &BossState{Pattern: pattern}
	bs.shuffle(rng)
	return bs
}

func (bs *BossState) shuffle(rng Rand) {
	if rng == nil {
		return
	}
	rng.Shuffle(len(bs.Pattern), func(i, j int) {
		bs.Pattern[i], bs.Pattern[j] = bs.Pattern[j], bs.Pattern[i]
	})
}

// NextMove returns this tick's vertical delta and advances the pattern cursor
// After BossMaxSameMove reads of one index the pattern is reshuffled and the index advances
func (bs *BossState) NextMove(rng Rand) float64 {
	move := bs.Pattern[bs.Index]
	bs.Consecutive++
	if bs.Consecutive == constants.BossMaxSameMove {
		bs.shuffle(rng)
		bs.Consecutive = 0
		bs.Index++
	}
	if bs.Index == len(bs.Pattern) {
		bs.Index = 0
	}
	return move
}

// updateShield runs one tick of the Down/Up shield machine
// Returns true when the shield was raised this tick
func (bs *BossState) updateShield(rng Rand) bool {
	raised := false
	if bs.ShieldActive {
		bs.ShieldFrames++
	} else if rng != nil && rng.Float64() < constants.BossShieldProbability {
		bs.ShieldActive = true
		bs.ShieldFrames = 0
		raised = true
	}

	if bs.ShieldFrames >= constants.BossShieldMaxFrames {
		bs.ShieldActive = false
		bs.ShieldFrames = 0
	}
	return raised
}

func (e *Entity) updateBoss(env *Env) {
	bs := e.Boss
	if bs == nil {
		return
	}

	var rng Rand
	if env != nil {
		rng = env.Rand
	}

	before := e.DY
	e.MoveVertically(bs.NextMove(rng))
	if y := e.Y + e.DY; y < constants.BossMinY || y > constants.BossMaxY {
		e.DY = before
	}

	if bs.updateShield(rng) && rng != nil && rng.Float64() < constants.BossLaughProbability {
		env.play(constants.SoundBossLaugh)
	}
}
