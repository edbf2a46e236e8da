package jobqueue

// depGraph is the mutable dependency DAG owned by the manager goroutine.
// Nodes are addressed by the application-level job key, never by internal
// indices, so removing a node mid-traversal cannot invalidate another node's
// address. Edges point from depender to dependee and carry the dependency
// kind.
type depGraph[K comparable, D comparable] struct {
	dependencies map[K]map[K]D        // depender -> dependee -> kind
	dependents   map[K]map[K]struct{} // dependee -> dependers
}

func newDepGraph[K comparable, D comparable]() *depGraph[K, D] {
	return &depGraph[K, D]{
		dependencies: make(map[K]map[K]D),
		dependents:   make(map[K]map[K]struct{}),
	}
}

func (g *depGraph[K, D]) addNode(key K) {
	if _, ok := g.dependencies[key]; !ok {
		g.dependencies[key] = nil
	}
	if _, ok := g.dependents[key]; !ok {
		g.dependents[key] = nil
	}
}

func (g *depGraph[K, D]) hasNode(key K) bool {
	_, ok := g.dependencies[key]
	return ok
}

// addEdge records that depender depends on dependee. Adding the same edge
// twice overwrites the kind, mirroring map semantics.
func (g *depGraph[K, D]) addEdge(depender, dependee K, kind D) {
	deps := g.dependencies[depender]
	if deps == nil {
		deps = make(map[K]D)
		g.dependencies[depender] = deps
	}
	deps[dependee] = kind

	rdeps := g.dependents[dependee]
	if rdeps == nil {
		rdeps = make(map[K]struct{})
		g.dependents[dependee] = rdeps
	}
	rdeps[depender] = struct{}{}
}

// removeNode removes a node together with all its incident edges.
func (g *depGraph[K, D]) removeNode(key K) {
	for dependee := range g.dependencies[key] {
		delete(g.dependents[dependee], key)
	}
	for depender := range g.dependents[key] {
		delete(g.dependencies[depender], key)
	}
	delete(g.dependencies, key)
	delete(g.dependents, key)
}

// dependenciesOf returns the outgoing edges of key: the jobs it depends on,
// with their kinds. The returned map is graph-owned; callers must not mutate
// it and must not hold it across graph mutations.
func (g *depGraph[K, D]) dependenciesOf(key K) map[K]D {
	return g.dependencies[key]
}

// dependentsOf returns the incoming edges of key: the jobs that depend on it.
// Same ownership rules as dependenciesOf.
func (g *depGraph[K, D]) dependentsOf(key K) map[K]struct{} {
	return g.dependents[key]
}

func (g *depGraph[K, D]) hasDependents(key K) bool {
	return len(g.dependents[key]) > 0
}

func (g *depGraph[K, D]) len() int {
	return len(g.dependencies)
}
