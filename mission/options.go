/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package mission

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Option adjusts one scheduling or team-building run. All state an
// option touches is scoped to that run; there are no process-wide
// counters or random sources.
type Option func(*runConfig)

type runConfig struct {
	seed   int64
	idGen  func() string
	teamNo int
}

// WithSeed fixes the pseudo-random source used for round-to-round
// shuffling so runs are reproducible. Without it each run seeds from
// the clock.
func WithSeed(seed int64) Option {
	return func(cfg *runConfig) {
		cfg.seed = seed
	}
}

// WithIDGenerator overrides the generator used for team and group ids.
// The default generates UUIDs.
func WithIDGenerator(gen func() string) Option {
	return func(cfg *runConfig) {
		cfg.idGen = gen
	}
}

func newRunConfig(opts []Option) *runConfig {
	cfg := &runConfig{
		seed:  time.Now().UnixNano(),
		idGen: uuid.NewString,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// bandRand derives a per-band random source so bands can be scheduled
// concurrently while staying reproducible under a fixed seed.
func (cfg *runConfig) bandRand(band AgeBand) *rand.Rand {
	return rand.New(rand.NewSource(cfg.seed + int64(band)))
}

// nextTeamName vends sequential display names within one run. The
// counter deliberately lives on the run config rather than in package
// state; team ids, not names, are the stable identifiers.
func (cfg *runConfig) nextTeamName() string {
	cfg.teamNo++
	return fmt.Sprintf("Team %d", cfg.teamNo)
}
