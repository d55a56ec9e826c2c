package recording

import (
	"slices"

	"github.com/gogpu/textblock/text"
)

// ResourcePool stores the runs referenced by recording commands.
// Each Add clones the run so that later layout changes do not alter the
// recording.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	runs []text.ShapedRun
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{runs: make([]text.ShapedRun, 0, 64)}
}

// AddRun adds a copy of run to the pool and returns its reference.
func (p *ResourcePool) AddRun(run *text.ShapedRun) RunRef {
	r := *run
	r.Glyphs = slices.Clone(run.Glyphs)
	p.runs = append(p.runs, r)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return RunRef(uint32(len(p.runs) - 1))
}

// GetRun returns the run for the given reference, or nil.
func (p *ResourcePool) GetRun(ref RunRef) *text.ShapedRun {
	if int(ref) >= len(p.runs) {
		return nil
	}
	return &p.runs[ref]
}

// RunCount returns the number of runs in the pool.
func (p *ResourcePool) RunCount() int {
	return len(p.runs)
}

// Clear removes all resources from the pool.
func (p *ResourcePool) Clear() {
	clear(p.runs)
	p.runs = p.runs[:0]
}

// Clone creates a deep copy of the resource pool.
func (p *ResourcePool) Clone() *ResourcePool {
	clone := &ResourcePool{runs: make([]text.ShapedRun, len(p.runs))}
	for i, r := range p.runs {
		r.Glyphs = slices.Clone(r.Glyphs)
		clone.runs[i] = r
	}
	return clone
}
