package sim

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chomp/maze"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestChooseDirectionGreedy(t *testing.T) {
	m, _ := maze.MustLoadClassic()
	r := testRand()

	tests := []struct {
		name   string
		pos    core.Point
		facing Direction
		target core.Point
		want   Direction
	}{
		// (4,4) is a crossroads: up, down, left and right are all open
		{"closest wins", core.Pt(4, 4), DirRight, core.Pt(4, 1), DirUp},
		{"reverse excluded even if closest", core.Pt(4, 4), DirDown, core.Pt(4, 1), DirDown},
		{"tie goes to up before left", core.Pt(4, 4), DirUp, core.Pt(3, 3), DirUp},
		{"tie goes to down before right", core.Pt(4, 4), DirRight, core.Pt(5, 5), DirDown},
		{"single corridor", core.Pt(4, 9), DirUp, core.Pt(4, 18), DirUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chooseDirection(&m, tt.pos, tt.facing, tt.target, r))
		})
	}
}

func TestChooseDirectionDeadEndReverses(t *testing.T) {
	m, _ := maze.MustLoadClassic()
	r := testRand()

	// (0,10) only opens to the right
	for range 20 {
		assert.Equal(t, DirRight, chooseDirection(&m, core.Pt(0, 10), DirLeft, core.Pt(0, 0), r))
	}
}

func TestChooseDirectionBoxedIn(t *testing.T) {
	var l maze.Layout
	for y := range l {
		for x := range l[y] {
			l[y][x] = 1
		}
	}
	l[5][5] = 0
	m, _, err := maze.Load(l, core.Pt(5, 5), nil)
	require.NoError(t, err)

	d := chooseDirection(&m, core.Pt(5, 5), DirUp, core.Pt(0, 0), testRand())
	assert.True(t, d.Valid())
}

// Exhaustive check over every open cell, facing and a spread of targets.
func TestNeverReversesUnlessForced(t *testing.T) {
	m, _ := maze.MustLoadClassic()
	m.ReleaseBarriers()
	r := testRand()

	targets := append([]core.Point{maze.PlayerStart}, maze.Corners...)
	for y := 0; y < maze.Size; y++ {
		for x := 0; x < maze.Size; x++ {
			pos := core.Pt(x, y)
			if !m.Passable(pos) {
				continue
			}
			for _, facing := range evalOrder {
				forced := true
				for _, d := range evalOrder {
					if d != facing.Reverse() && m.Passable(pos.Add(d.Delta())) {
						forced = false
					}
				}
				for _, target := range targets {
					got := chooseDirection(&m, pos, facing, target, r)
					if got == facing.Reverse() {
						assert.True(t, forced, "reversed at %v facing %v toward %v", pos, facing, target)
					}
					assert.True(t, m.Passable(pos.Add(got.Delta())), "chose blocked %v at %v", got, pos)
				}
			}
		}
	}
}

func TestAmbushTargetClamped(t *testing.T) {
	s := running(t, ModeNormal)
	a := &s.Adversaries[BehaviorAmbush]

	s.Player = Player{Pos: core.Pt(1, 1), Facing: DirUp}
	assert.Equal(t, core.Pt(1, 0), ambushTarget(&s, a))

	s.Player = Player{Pos: core.Pt(4, 4), Facing: DirRight}
	assert.Equal(t, core.Pt(8, 4), ambushTarget(&s, a))

	s.Player = Player{Pos: core.Pt(17, 16), Facing: DirRight}
	assert.Equal(t, core.Pt(maze.Size-1, 16), ambushTarget(&s, a))
}

func TestChaseTargetsPlayer(t *testing.T) {
	s := running(t, ModeNormal)
	s.Player.Pos = core.Pt(4, 14)
	assert.Equal(t, core.Pt(4, 14), chaseTarget(&s, &s.Adversaries[0]))
}

func TestPatrolAdvancesNearWaypoint(t *testing.T) {
	s := running(t, ModeNormal)
	a := &s.Adversaries[BehaviorPatrol]

	a.Pos = core.Pt(8, 8)
	assert.Equal(t, maze.Corners[0], patrolTarget(&s, a))
	assert.Equal(t, 0, a.PatrolIdx)

	a.Pos = core.Pt(2, 2)
	assert.Equal(t, maze.Corners[1], patrolTarget(&s, a))
	assert.Equal(t, 1, a.PatrolIdx)

	a.PatrolIdx = 3
	a.Pos = core.Pt(2, 17)
	assert.Equal(t, maze.Corners[0], patrolTarget(&s, a), "cycle wraps")
}

func TestScatterOverridesTarget(t *testing.T) {
	s := running(t, ModeNormal)
	for _, b := range []Behavior{BehaviorChase, BehaviorAmbush, BehaviorPatrol} {
		a := &s.Adversaries[b]
		a.Scatter = true
		behaviors[b](&s, a, testRand())
		assert.Equal(t, scatterCorner(b), a.Target, "behavior %v", b)
	}
	assert.Equal(t, core.Pt(1, 18), scatterCorner(BehaviorPatrol))
	assert.False(t, BehaviorRandom.scatters())
}

func TestEveryBehaviorHasSteering(t *testing.T) {
	for b := BehaviorChase; b <= BehaviorPatrol; b++ {
		assert.NotNil(t, behaviors[b], "behavior %v", b)
	}
}

func TestWanderHoldsOrPicksOpen(t *testing.T) {
	s := running(t, ModeNormal)
	a := &s.Adversaries[BehaviorRandom]
	a.Pos = core.Pt(4, 4)
	a.Facing = DirLeft
	r := testRand()

	changed := 0
	for range 500 {
		d := wander(&s, a, r)
		if d != DirLeft {
			changed++
		}
		assert.True(t, s.Maze.Passable(a.Pos.Add(d.Delta())) || d == DirLeft)
	}
	// 10% of draws switch, and a quarter of those land back on left
	assert.Greater(t, changed, 10)
	assert.Less(t, changed, 100)
}

func TestConfinementBeforeGate(t *testing.T) {
	l := maze.Classic
	l[9][9], l[9][10] = 2, 2
	m, items, err := maze.Load(l, maze.PlayerStart, maze.BonusCells)
	require.NoError(t, err)

	s := running(t, ModeNormal)
	s.Maze, s.Items = m, items
	s.Adversaries = s.Adversaries[:1]
	s.Adversaries[0].Pos = core.Pt(9, 9)
	s.Adversaries[0].Facing = DirUp
	s.Player.Facing = DirUp

	s, _ = Tick(s, Input{})
	assert.Equal(t, core.Pt(9, 9), s.Adversaries[0].Pos, "cannot leave the enclosure before the gate")

	s.Maze.ReleaseBarriers()
	s.Adversaries[0].Facing = DirUp
	s, _ = Tick(s, Input{})
	assert.Equal(t, core.Pt(9, 8), s.Adversaries[0].Pos)
}

func TestAdversariesMoveInsideEnclosure(t *testing.T) {
	s := running(t, ModeNormal)
	s.Adversaries = s.Adversaries[:1]
	s.Adversaries[0].Pos = core.Pt(8, 11)
	s.Adversaries[0].Facing = DirUp
	s.Player.Facing = DirUp

	// from (8,11) facing up only up to (8,10) and right to (9,11) are open
	s, _ = Tick(s, Input{})
	p := s.Adversaries[0].Pos
	assert.NotEqual(t, core.Pt(8, 11), p)
	assert.True(t, maze.Enclosure.Contains(p))
}
