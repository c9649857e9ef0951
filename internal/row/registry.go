package row

// Handle is a non-owning reference to a row held by a Registry.
// A handle outlives its row safely: once the row is destroyed the handle
// resolves to nil, even if the slot has been reused by another row.
// The zero Handle never resolves.
type Handle struct {
	index int
	gen   uint64
}

// IsZero reports whether h was never assigned.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

type slot struct {
	gen uint64
	row *Row
}

// Registry owns the live rows of a list container.
// It is not safe for concurrent use; it belongs to the UI goroutine.
type Registry struct {
	slots  []slot
	free   []int
	live   int
	policy Policy

	clock    uint64            // Orders like commands
	lastSent map[uint64]uint64 // Song ID -> clock of its latest like command
	orphan   func(Orphan)
}

// Orphan is the settled flag of a like command whose row was destroyed
// before the command completed.
type Orphan struct {
	SongID uint64
	Liked  bool   // Value the row would have committed
	Sent   uint64 // When the command was sent; compare with LastSent
}

// NewRegistry creates an empty registry whose rows reconcile completions
// with the given policy.
func NewRegistry(policy Policy) *Registry {
	return &Registry{policy: policy, lastSent: make(map[uint64]uint64)}
}

// OnOrphan sets the function told about completions that found their row
// destroyed. The destroyed row itself is never touched.
func (r *Registry) OnOrphan(fn func(Orphan)) {
	r.orphan = fn
}

// LastSent returns when the latest like command for a song was sent,
// or 0 if there was none.
func (r *Registry) LastSent(songID uint64) uint64 {
	return r.lastSent[songID]
}

func (r *Registry) markSent(songID uint64) uint64 {
	r.clock++
	r.lastSent[songID] = r.clock
	return r.clock
}

// Create allocates a new, uninitialized row.
func (r *Registry) Create() *Row {
	var idx int
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		idx = len(r.slots)
		r.slots = append(r.slots, slot{})
	}

	s := &r.slots[idx]
	s.gen++
	row := &Row{reg: r, handle: Handle{index: idx, gen: s.gen}}
	s.row = row
	r.live++
	return row
}

// Resolve returns the row h refers to, or nil if it was destroyed.
func (r *Registry) Resolve(h Handle) *Row {
	if h.IsZero() || h.index < 0 || h.index >= len(r.slots) {
		return nil
	}
	s := r.slots[h.index]
	if s.gen != h.gen {
		return nil
	}
	return s.row
}

// Destroy releases the row h refers to. The registry drops its reference so
// the row can be collected; pending completions holding h become no-ops.
// Returns false if h was already stale.
func (r *Registry) Destroy(h Handle) bool {
	row := r.Resolve(h)
	if row == nil {
		return false
	}
	row.observers = nil

	s := &r.slots[h.index]
	s.row = nil
	// Bump now so the stale handle cannot match while the slot sits free.
	s.gen++
	r.free = append(r.free, h.index)
	r.live--
	return true
}

// Len returns the number of live rows.
func (r *Registry) Len() int {
	return r.live
}
