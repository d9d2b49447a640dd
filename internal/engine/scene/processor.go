package scene

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Faultbox/molmesh/internal/logger"
	"github.com/Faultbox/molmesh/internal/mol"
)

// Request is a unit of work submitted to the processor.
type Request interface {
	isRequest()
}

// FullRebuild regenerates the whole scene from entity snapshots, reusing
// cached geometry for entities whose version is unchanged. Entities animate
// nothing here; a rebuild is the authoritative scene state.
type FullRebuild struct {
	Entities []mol.Entity
	Options  Options

	seq uint64
}

// AnimationFrame regenerates backbone and sidechain geometry for one frame
// of an animating structure, bypassing the cache. Frames are disposable:
// when the worker falls behind, stale frames are dropped in favor of the
// newest one.
type AnimationFrame struct {
	Entities []mol.Entity
	Options  Options

	seq uint64
}

func (*FullRebuild) isRequest()    {}
func (*AnimationFrame) isRequest() {}

// requestQueueSize bounds the submission channel. The coalescing drain keeps
// the queue short in practice; the bound only matters when the worker stalls
// inside one generation.
const requestQueueSize = 16

// Processor runs geometry generation on a dedicated goroutine. Requests go
// in through Submit without blocking the caller; finished scenes come out
// through the triple buffers via TryTakeScene and TryTakeAnimation. All
// generation state, including the mesh cache, is confined to the worker.
type Processor struct {
	requests chan Request
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	scenes *TripleBuffer[*PreparedScene]
	frames *TripleBuffer[*PreparedAnimationFrame]

	seq           atomic.Uint64
	droppedFrames atomic.Uint64

	log *zap.Logger

	// Worker-owned; never touched from other goroutines.
	cache       *meshCache
	lastOptions Options
	haveOptions bool
	sceneRev    uint64
	frameRev    uint64
}

// NewProcessor starts the worker goroutine. Call Shutdown to stop it.
func NewProcessor() *Processor {
	p := &Processor{
		requests: make(chan Request, requestQueueSize),
		done:     make(chan struct{}),
		scenes:   NewTripleBuffer[*PreparedScene](),
		frames:   NewTripleBuffer[*PreparedAnimationFrame](),
		log:      logger.Get().With(zap.String("component", "scene")),
		cache:    newMeshCache(),
	}
	p.wg.Add(1)
	go p.loop()
	return p
}

// Submit enqueues a request without ever blocking the caller. When the queue
// is full the oldest entry is displaced, except that a pending FullRebuild is
// never dropped in favor of an AnimationFrame: the displaced rebuild takes
// the animation frame's place instead.
func (p *Processor) Submit(req Request) {
	p.stamp(req)
	for {
		select {
		case <-p.done:
			return
		case p.requests <- req:
			return
		default:
		}

		select {
		case old := <-p.requests:
			if rebuild, ok := old.(*FullRebuild); ok {
				if _, isFrame := req.(*AnimationFrame); isFrame {
					p.droppedFrames.Add(1)
					req = rebuild
					continue
				}
			}
			if _, wasFrame := old.(*AnimationFrame); wasFrame {
				p.droppedFrames.Add(1)
			}
		default:
			// Worker drained the queue between our attempts; retry the send.
		}
	}
}

// stamp assigns a submission sequence number. A displaced request re-entering
// the queue keeps its original number, so coalescing orders requests by
// submission even when displacement has reordered the queue.
func (p *Processor) stamp(req Request) {
	switch v := req.(type) {
	case *FullRebuild:
		if v.seq == 0 {
			v.seq = p.seq.Add(1)
		}
	case *AnimationFrame:
		if v.seq == 0 {
			v.seq = p.seq.Add(1)
		}
	}
}

// TryTakeScene returns the newest finished scene, if one was produced since
// the last take. Render-thread side of the handoff.
func (p *Processor) TryTakeScene() (*PreparedScene, bool) {
	return p.scenes.TryRead()
}

// TryTakeAnimation returns the newest finished animation frame, if any.
func (p *Processor) TryTakeAnimation() (*PreparedAnimationFrame, bool) {
	return p.frames.TryRead()
}

// DroppedFrames reports how many animation frames were discarded, either
// displaced from a full queue or coalesced away by the drain.
func (p *Processor) DroppedFrames() uint64 {
	return p.droppedFrames.Load()
}

// Shutdown stops the worker and waits for it to exit. Requests already
// dequeued finish; queued ones are discarded. Safe to call more than once.
func (p *Processor) Shutdown() {
	p.stopOnce.Do(func() { close(p.done) })
	p.wg.Wait()
}

func (p *Processor) loop() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case req := <-p.requests:
			rebuild, frame := p.coalesce(req)
			if rebuild != nil {
				p.processRebuild(rebuild)
			}
			if frame != nil {
				p.processFrame(frame)
			}
		}
	}
}

// coalesce drains whatever queued up behind the first request and keeps only
// the latest of each class, by submission sequence rather than queue position:
// Submit's displacement can re-enqueue an older rebuild behind a newer one.
// Superseded animation frames are dropped; superseded rebuilds are safe to
// drop because a newer rebuild carries the complete scene state.
func (p *Processor) coalesce(first Request) (*FullRebuild, *AnimationFrame) {
	var rebuild *FullRebuild
	var frame *AnimationFrame

	classify := func(r Request) {
		switch v := r.(type) {
		case *FullRebuild:
			if rebuild == nil || v.seq > rebuild.seq {
				rebuild = v
			}
		case *AnimationFrame:
			switch {
			case frame == nil:
				frame = v
			case v.seq > frame.seq:
				p.droppedFrames.Add(1)
				frame = v
			default:
				p.droppedFrames.Add(1)
			}
		}
	}

	classify(first)
	for {
		select {
		case r := <-p.requests:
			classify(r)
		default:
			return rebuild, frame
		}
	}
}

func (p *Processor) processRebuild(req *FullRebuild) {
	if p.haveOptions && req.Options != p.lastOptions {
		p.log.Debug("generation options changed, flushing mesh cache",
			zap.Int("cached_entities", p.cache.len()))
		p.cache.flush()
	}
	p.lastOptions = req.Options
	p.haveOptions = true

	results := make([]entityResult, 0, len(req.Entities))
	present := make(map[uint64]struct{}, len(req.Entities))
	for i := range req.Entities {
		e := &req.Entities[i]
		results = append(results, entityResult{id: e.ID, mesh: p.cache.fetch(e, req.Options)})
		present[e.ID] = struct{}{}
	}
	p.cache.evictAbsent(present)

	ps := concatScene(results)
	p.sceneRev++
	ps.Revision = p.sceneRev
	p.scenes.Write(ps)

	p.log.Debug("scene rebuilt",
		zap.Uint64("revision", ps.Revision),
		zap.Int("entities", len(req.Entities)),
		zap.Int("vertices", ps.VertexCount))
}

func (p *Processor) processFrame(req *AnimationFrame) {
	meshes := make([]*entityMesh, 0, len(req.Entities))
	for i := range req.Entities {
		meshes = append(meshes, buildEntity(&req.Entities[i], req.Options, true))
	}

	pf := concatFrame(meshes)
	p.frameRev++
	pf.Revision = p.frameRev
	p.frames.Write(pf)
}
