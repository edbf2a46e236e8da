package lod

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"

	"github.com/vnykmshr/voxelflow/pkg/jobqueue"
)

// ChunkPair is one renderable entry of the active set.
type ChunkPair struct {
	Aabb  Aabb
	Chunk *Chunk
}

// Octmap walks an octree over a cubical volume, requesting chunk meshes for
// the level of detail each region needs at the current viewer position, and
// caching meshes that scroll out of view in an LRU.
//
// All Octmap state is owned by the goroutine that calls Update, expected to
// be the single simulation goroutine, so no locking happens here; the only
// concurrency is inside the job queue.
//
// Every Aabb is in at most one of three places at a time: resident (meshes),
// requested, or the LRU cache.
type Octmap struct {
	totalSize     uint32
	lodFactor     float32
	fixedLodLevel *uint32
	maxLodLevel   uint32

	transform Transform
	volume    Volume
	extractor Extractor

	queue *jobqueue.Queue[Aabb, DependencyKind, any, *Chunk]

	meshes    map[Aabb]*Chunk
	requested map[Aabb]struct{}
	cache     *lru.Cache[Aabb, *Chunk]

	// Adopted jobs this octmap removed from the queue itself; their removal
	// acknowledgements are consumed instead of treated as cancellations.
	reaped map[Aabb]struct{}

	// Transient per-frame sets, reused across frames.
	keep     map[Aabb]struct{}
	prevKeep map[Aabb]struct{}
	active   map[Aabb]struct{}
	pairs    []ChunkPair
	adopted  []Aabb

	om  *octmapMetrics
	log *log.Entry
}

// NewOctmap starts an octmap and its extraction queue.
func NewOctmap(settings Settings, transform Transform, volume Volume, extractor Extractor) (*Octmap, error) {
	if err := settings.Check(); err != nil {
		return nil, err
	}
	if volume == nil || extractor == nil {
		return nil, fmt.Errorf("volume and extractor cannot be nil")
	}

	o := &Octmap{
		totalSize:     settings.TotalSize,
		lodFactor:     settings.LodFactor,
		fixedLodLevel: settings.FixedLodLevel,
		maxLodLevel:   settings.MaxLodLevel(),
		transform:     transform,
		volume:        volume,
		extractor:     extractor,
		meshes:        make(map[Aabb]*Chunk),
		requested:     make(map[Aabb]struct{}),
		reaped:        make(map[Aabb]struct{}),
		keep:          make(map[Aabb]struct{}),
		prevKeep:      make(map[Aabb]struct{}),
		active:        make(map[Aabb]struct{}),
		log:           log.WithField("octmap", settings.Name),
	}
	if settings.Metrics.Enabled {
		registry := resolveRegistry(settings.Metrics)
		o.om = newOctmapMetrics(registry, settings.Name)
	}

	cache, err := lru.New[Aabb, *Chunk](settings.MeshCacheSize)
	if err != nil {
		return nil, err
	}
	o.cache = cache

	queue, err := jobqueue.New[Aabb, DependencyKind, any, *Chunk](
		jobqueue.Config{
			Name:     settings.Name,
			Workers:  settings.WorkerThreads,
			InFlight: settings.InFlight,
			Metrics:  settings.Metrics,
		},
		extractor.RunJob,
	)
	if err != nil {
		return nil, err
	}
	o.queue = queue
	return o, nil
}

// MaxLodLevel returns the deepest octree level.
func (o *Octmap) MaxLodLevel() uint32 { return o.maxLodLevel }

// LodFactor returns the current distance-rule factor.
func (o *Octmap) LodFactor() float32 { return o.lodFactor }

// SetLodFactor tunes the distance rule at runtime.
func (o *Octmap) SetLodFactor(factor float32) { o.lodFactor = factor }

// FixedLodLevel returns the fixed-level override, or nil when the distance
// rule is in effect.
func (o *Octmap) FixedLodLevel() *uint32 { return o.fixedLodLevel }

// SetFixedLodLevel sets or clears the fixed-level override.
func (o *Octmap) SetFixedLodLevel(level *uint32) { o.fixedLodLevel = level }

// Update recomputes the active set for a viewer at the given world position.
// Call it once per simulation frame. It never blocks on in-flight work:
// regions whose meshes are not ready yet stay represented by a coarser
// ancestor until they stream in.
//
// The returned slice is reused by the next Update call.
func (o *Octmap) Update(position Vec3) (Transform, []ChunkPair) {
	local := o.transform.ApplyInverse(position)

	o.drainCompletions()

	clear(o.active)
	o.keep, o.prevKeep = o.prevKeep, o.keep
	clear(o.keep)

	o.updateRootNode(local)

	// Anything resident last frame but untouched this frame moves to the
	// LRU cache rather than being dropped: a viewer turning back gets it
	// without a new extraction job.
	for aabb := range o.prevKeep {
		if _, kept := o.keep[aabb]; kept {
			continue
		}
		if mesh, ok := o.meshes[aabb]; ok {
			delete(o.meshes, aabb)
			if evicted := o.cache.Add(aabb, mesh); evicted {
				o.countEviction()
			}
		}
	}

	o.pairs = o.pairs[:0]
	for aabb := range o.active {
		if mesh, ok := o.meshes[aabb]; ok {
			o.pairs = append(o.pairs, ChunkPair{Aabb: aabb, Chunk: mesh})
		}
	}
	o.observeGauges()
	return o.transform, o.pairs
}

// Clear drops all resident and cached state and cancels outstanding
// extraction jobs.
func (o *Octmap) Clear() {
	for aabb := range o.requested {
		if err := o.queue.Remove(aabb); err != nil {
			break // Queue stopped; nothing left to cancel.
		}
	}
	clear(o.requested)
	clear(o.meshes)
	clear(o.keep)
	clear(o.prevKeep)
	clear(o.active)
	o.cache.Purge()
	o.observeGauges()
}

// Close shuts down the extraction queue and joins its goroutines.
func (o *Octmap) Close() {
	o.queue.StopAndJoin()
}

// drainCompletions applies queued job notifications without blocking. Jobs
// whose mesh was adopted are then removed from the queue, which also reaps
// their completed dependency jobs, so the scheduler graph stays proportional
// to the in-flight work instead of growing with every chunk ever extracted.
func (o *Octmap) drainCompletions() {
	o.adopted = o.adopted[:0]
	o.drainMessages()
	// Draining between removals keeps the message buffer from backing up
	// while the manager acknowledges them. The index loop picks up meshes
	// adopted along the way.
	for i := 0; i < len(o.adopted); i++ {
		if err := o.queue.Remove(o.adopted[i]); err != nil {
			return
		}
		o.reaped[o.adopted[i]] = struct{}{}
		o.drainMessages()
	}
}

func (o *Octmap) drainMessages() {
	for {
		select {
		case msg := <-o.queue.Messages():
			o.handleMessage(msg)
		default:
			return
		}
	}
}

func (o *Octmap) handleMessage(msg jobqueue.Message[Aabb, any, *Chunk]) {
	switch m := msg.(type) {
	case jobqueue.Completed[Aabb, any, *Chunk]:
		// Dependency jobs complete too; only adopt meshes we asked for.
		if _, ok := o.requested[m.Key]; ok {
			delete(o.requested, m.Key)
			o.meshes[m.Key] = m.Output
			o.adopted = append(o.adopted, m.Key)
		}
	case jobqueue.PendingRemoved[Aabb, any, *Chunk]:
		delete(o.requested, m.Key)
	case jobqueue.RunningRemoved[Aabb, any, *Chunk]:
		delete(o.requested, m.Key)
	case jobqueue.CompletedRemoved[Aabb, any, *Chunk]:
		// The acknowledgement of an adoption reap may straggle behind a
		// fresh request for the same aabb; it must not cancel it.
		if _, ok := o.reaped[m.Key]; ok {
			delete(o.reaped, m.Key)
			return
		}
		delete(o.requested, m.Key)
	case jobqueue.Empty[Aabb, any, *Chunk]:
		// Nothing to do; Update never waits for a drained queue.
	}
}

func (o *Octmap) updateRootNode(position Vec3) {
	root := AabbFromSize(o.totalSize)
	_, activated := o.updateNodes(root, 0, position)
	if !activated {
		// Fall back to the root so the active set always covers the whole
		// volume, even while the first mesh is still streaming in.
		o.active[root] = struct{}{}
	}
}

// updateNodes walks one node. It returns (filled, activated): filled means a
// mesh for this region is resident, activated means this node or its
// descendants were inserted into the active set.
//
// A node refines only once its own mesh is resident, so streaming descends
// one level at a time and a parent always stands in for missing children.
func (o *Octmap) updateNodes(aabb Aabb, level uint32, position Vec3) (bool, bool) {
	o.keep[aabb] = struct{}{}
	filled := o.updateChunk(aabb)
	if o.isTerminal(aabb, level, position) {
		return filled, false
	}
	if !filled {
		return false, false
	}
	subdivided := aabb.Subdivide()
	allFilled := true
	var activated [8]bool
	for i, sub := range subdivided {
		var subFilled bool
		subFilled, activated[i] = o.updateNodes(sub, level+1, position)
		allFilled = allFilled && subFilled
	}
	if allFilled {
		for i, sub := range subdivided {
			if !activated[i] {
				o.active[sub] = struct{}{}
			}
		}
		return true, true
	}
	// Some children are still streaming: render this node instead, keeping
	// the cover gap-free at a coarser detail.
	o.active[aabb] = struct{}{}
	return true, true
}

// isTerminal decides whether a node stops subdividing: at the maximum level,
// at the fixed override level, or when the viewer is too far away to warrant
// finer detail.
func (o *Octmap) isTerminal(aabb Aabb, level uint32, position Vec3) bool {
	if level >= o.maxLodLevel {
		return true
	}
	if o.fixedLodLevel != nil {
		return level >= *o.fixedLodLevel
	}
	return aabb.DistanceFrom(position) > o.lodFactor*float32(aabb.Size)
}

// updateChunk ensures a mesh exists or is on its way for aabb. It reports
// whether a mesh is resident right now.
func (o *Octmap) updateChunk(aabb Aabb) bool {
	if _, ok := o.meshes[aabb]; ok {
		return true
	}
	if _, ok := o.requested[aabb]; ok {
		return false // Already in flight; don't re-request.
	}
	if mesh, ok := o.cache.Get(aabb); ok {
		// Promote from the cache: the mesh lives in exactly one place.
		o.cache.Remove(aabb)
		o.meshes[aabb] = mesh
		o.countCacheHit()
		return true
	}
	o.requestChunk(aabb)
	return false
}

func (o *Octmap) requestChunk(aabb Aabb) {
	job := o.extractor.MakeJob(o.totalSize, aabb, o.volume)
	if err := o.queue.Add(job); err != nil {
		// Queue stopped: the region simply stays at its coarser level.
		o.log.WithField("aabb", aabb).Debug("chunk request dropped, queue stopped")
		return
	}
	o.requested[aabb] = struct{}{}
	o.countRequest()
}
