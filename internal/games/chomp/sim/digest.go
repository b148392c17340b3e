package sim

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Digest is a stable fingerprint of the gameplay-relevant state: status,
// score, clock, actors, items, gate and power-up. Two runs with the same
// seed and inputs produce the same digest.
func (s *State) Digest() string {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}

	h.Write([]byte(s.Mode))
	h.Write([]byte(s.Status))
	put(int64(s.Score))
	put(int64(s.Ticks))
	put(int64(s.Clock))
	put(int64(s.Player.Pos.X))
	put(int64(s.Player.Pos.Y))
	put(int64(s.Player.Facing))
	for _, a := range s.Adversaries {
		put(int64(a.Pos.X))
		put(int64(a.Pos.Y))
		put(int64(a.Facing))
	}
	for y := range s.Items {
		for x := range s.Items[y] {
			buf[0] = byte(s.Items[y][x])
			h.Write(buf[:1])
		}
	}
	gate := int64(0)
	if s.Maze.Released() {
		gate = 1
	}
	put(gate)
	if s.PowerUp.Active {
		put(int64(s.PowerUp.ExpiresAt))
	} else {
		put(-1)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
