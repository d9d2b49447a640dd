// Package main is a headless exerciser for the geometry pipeline: it builds
// synthetic structures, drives the background processor with rebuilds and
// animation frames, and reports generation throughput.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/molmesh/internal/config"
	"github.com/Faultbox/molmesh/internal/engine/camera"
	"github.com/Faultbox/molmesh/internal/engine/picking"
	"github.com/Faultbox/molmesh/internal/engine/scene"
	"github.com/Faultbox/molmesh/internal/logger"
	"github.com/Faultbox/molmesh/internal/mol"
	"github.com/Faultbox/molmesh/pkg/math"
)

var (
	flagResidues = flag.Int("residues", 500, "Residues per synthetic entity")
	flagEntities = flag.Int("entities", 4, "Synthetic entity count")
	flagFrames   = flag.Int("frames", 300, "Animation frames to submit")
	flagFPS      = flag.Int("fps", 60, "Animation frame submission rate")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== molmesh benchmark ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	entities := make([]mol.Entity, *flagEntities)
	for i := range entities {
		entities[i] = mol.SyntheticEntity(uint64(i+1), 1, *flagResidues)
	}
	totalResidues := *flagEntities * *flagResidues
	opts := scene.OptionsFromConfig(cfg, totalResidues)
	logger.Info("synthetic scene ready",
		zap.Int("entities", *flagEntities),
		zap.Int("residues_per_entity", *flagResidues),
		zap.Int("segments", opts.SegmentsPerResidue),
		zap.Int("ring_vertices", opts.RingVertices))

	p := scene.NewProcessor()
	defer p.Shutdown()

	// Full rebuild first: cold cache, every entity generated
	start := time.Now()
	p.Submit(&scene.FullRebuild{Entities: entities, Options: opts})
	ps := waitScene(p)
	logger.Info("cold rebuild",
		zap.Duration("elapsed", time.Since(start)),
		zap.Uint64("revision", ps.Revision),
		zap.Int("vertices", ps.VertexCount),
		zap.Int("tube_indices", len(ps.TubeIndices)),
		zap.Int("ribbon_indices", len(ps.RibbonIndices)))

	// Frame the structure and pick through the center of the view
	if len(ps.ChainRanges) > 0 {
		cam := camera.NewOrbitCamera()
		cam.FitToSphere(ps.ChainRanges[0].Bounds)
		inv := cam.ViewProjection(16.0 / 9.0).Inverse()
		ray := picking.ScreenToRay(640, 360, 1280, 720, inv)
		hits := picking.PickChains(ray, ps.ChainRanges)
		logger.Info("center pick", zap.Int("chain_hits", len(hits)))
	}

	// Edit one entity and rebuild: the cache should regenerate only it
	entities[0].Version = 2
	start = time.Now()
	p.Submit(&scene.FullRebuild{Entities: entities, Options: opts})
	ps = waitScene(p)
	logger.Info("incremental rebuild",
		zap.Duration("elapsed", time.Since(start)),
		zap.Uint64("revision", ps.Revision))

	// Animation: rotate the first entity and submit at the target rate,
	// taking whatever frames the worker finishes
	interval := time.Second / time.Duration(*flagFPS)
	taken := 0
	start = time.Now()
	for frame := 0; frame < *flagFrames; frame++ {
		e := rotated(&entities[0], float32(frame)*0.02)
		p.Submit(&scene.AnimationFrame{Entities: []mol.Entity{e}, Options: opts})
		if _, ok := p.TryTakeAnimation(); ok {
			taken++
		}
		time.Sleep(interval)
	}
	// Collect the tail the worker is still finishing
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if _, ok := p.TryTakeAnimation(); ok {
			taken++
			continue
		}
		time.Sleep(time.Millisecond)
	}

	elapsed := time.Since(start)
	logger.Info("animation finished",
		zap.Int("submitted", *flagFrames),
		zap.Int("taken", taken),
		zap.Uint64("dropped", p.DroppedFrames()),
		zap.Duration("elapsed", elapsed),
		zap.Float64("frames_per_sec", float64(taken)/elapsed.Seconds()))
}

// waitScene blocks until the processor publishes a scene.
func waitScene(p *scene.Processor) *scene.PreparedScene {
	for {
		if ps, ok := p.TryTakeScene(); ok {
			return ps
		}
		time.Sleep(time.Millisecond)
	}
}

// rotated returns a copy of the entity with every position rotated around Y.
func rotated(e *mol.Entity, angle float32) mol.Entity {
	q := math.QuatFromAxisAngle(math.Vec3{Y: 1}, angle)
	out := *e
	out.Chains = make([]mol.BackboneChain, len(e.Chains))
	for ci := range e.Chains {
		src := &e.Chains[ci]
		residues := make([]mol.BackboneResidue, len(src.Residues))
		for ri, r := range src.Residues {
			residues[ri] = mol.BackboneResidue{
				N:  q.RotateVec3(r.N),
				CA: q.RotateVec3(r.CA),
				C:  q.RotateVec3(r.C),
			}
		}
		out.Chains[ci] = mol.BackboneChain{Kind: src.Kind, Residues: residues, SS: src.SS}
	}
	atoms := make([]mol.SidechainAtom, len(e.Sidechains))
	for i, a := range e.Sidechains {
		a.Position = q.RotateVec3(a.Position)
		atoms[i] = a
	}
	out.Sidechains = atoms
	return out
}
