package puzzle

import (
	"go.uber.org/zap"

	"github.com/Faultbox/hypercube/internal/logger"
)

// Merge slides a face neighbour into the core. The neighbour's colour block
// lands in the core, the core's moves to the opposite slot, the opposite
// goes to the filler and the filler takes the neighbour's old place.
//
// The four clusters circling the merge axis turn a quarter so their faces
// stay consistent, and the filler gets a half turn when the axis changed
// since the previous merge. The core and the filler are not merge targets.
func (p *Puzzle) Merge(source ClusterID) {
	axis := source.Axis()
	if axis == AxisNone {
		logger.Debug("merge target has no axis", zap.Int("cluster", int(source)))
		return
	}

	t := Turn{Axis: axis, Reverse: !source.Positive()}
	for _, c := range turnTables[axis].clusters {
		p.rotateCluster(c, t)
	}

	p.compensateFiller(axis)

	// Backwards along [source, filler, opposite, core].
	p.cycleBlocks(flip(mergeCycle(source)))

	p.LastMergeAxis = axis
	logger.Debug("merged cluster",
		zap.Int("cluster", int(source)),
		zap.Stringer("axis", axis))
}

// compensateFiller half-turns the parked cluster about axis when the last
// merge went along a different axis.
func (p *Puzzle) compensateFiller(axis Axis) {
	if p.LastMergeAxis == AxisNone || p.LastMergeAxis == axis {
		return
	}
	t := Turn{Axis: axis}
	p.rotateCluster(ClusterFiller, t)
	p.rotateCluster(ClusterFiller, t)
}
