package puzzle

// turnTable describes a quarter turn about one axis. Colours flow from
// anchor i to anchor i+1 (wrapping) in the forward direction.
//
// clusters lists the four face neighbours that circle the axis; rings lists
// the four-position cycles inside a cluster: the corner and edge ring of the
// two outer slabs first, then the middle slab.
type turnTable struct {
	clusters [4]ClusterID
	rings    [6][4]LocalIndex
}

// Forward tables are right-handed +90° turns about +x, +y and +z.
var turnTables = [...]turnTable{
	AxisX: {
		clusters: [4]ClusterID{ClusterNegY, ClusterNegZ, ClusterPosY, ClusterPosZ},
		rings: [6][4]LocalIndex{
			{0, 6, 8, 2}, {1, 3, 7, 5},
			{18, 24, 26, 20}, {19, 21, 25, 23},
			{9, 15, 17, 11}, {10, 12, 16, 14},
		},
	},
	AxisY: {
		clusters: [4]ClusterID{ClusterPosZ, ClusterPosX, ClusterNegZ, ClusterNegX},
		rings: [6][4]LocalIndex{
			{0, 2, 20, 18}, {1, 11, 19, 9},
			{6, 8, 26, 24}, {7, 17, 25, 15},
			{3, 5, 23, 21}, {4, 14, 22, 12},
		},
	},
	AxisZ: {
		clusters: [4]ClusterID{ClusterNegY, ClusterPosX, ClusterPosY, ClusterNegX},
		rings: [6][4]LocalIndex{
			{0, 18, 24, 6}, {3, 9, 21, 15},
			{2, 20, 26, 8}, {5, 11, 23, 17},
			{1, 19, 25, 7}, {4, 10, 22, 16},
		},
	},
}

// Turn is a primitive quarter turn of the whole layer group about an axis.
type Turn struct {
	Axis    Axis
	Reverse bool
}

// The six primitives, named by the face centre that selects them.
var (
	TurnPosX = Turn{Axis: AxisX}
	TurnNegX = Turn{Axis: AxisX, Reverse: true}
	TurnPosY = Turn{Axis: AxisY}
	TurnNegY = Turn{Axis: AxisY, Reverse: true}
	TurnPosZ = Turn{Axis: AxisZ}
	TurnNegZ = Turn{Axis: AxisZ, Reverse: true}
)

// Inverse returns the turn that undoes t.
func (t Turn) Inverse() Turn {
	return Turn{Axis: t.Axis, Reverse: !t.Reverse}
}

// moveTable resolves every local selector to its primitive sequence. Face
// centres are single quarter turns, edges are half turns about the edge
// diagonal built from three quarter turns, corners are third turns about the
// body diagonal built from two. The cluster centre has no move.
var moveTable = [CubiesPerCluster][]Turn{
	0:  {TurnNegX, TurnNegY},
	1:  {TurnPosX, TurnPosX, TurnPosZ},
	2:  {TurnNegX, TurnPosZ},
	3:  {TurnPosX, TurnPosX, TurnNegY},
	4:  {TurnNegX},
	5:  {TurnPosX, TurnPosX, TurnPosY},
	6:  {TurnNegX, TurnNegZ},
	7:  {TurnPosX, TurnPosX, TurnNegZ},
	8:  {TurnNegX, TurnPosY},
	9:  {TurnPosY, TurnPosY, TurnPosX},
	10: {TurnNegY},
	11: {TurnPosY, TurnPosY, TurnNegX},
	12: {TurnNegZ},
	13: nil,
	14: {TurnPosZ},
	15: {TurnPosY, TurnPosY, TurnNegX},
	16: {TurnPosY},
	17: {TurnPosY, TurnPosY, TurnPosX},
	18: {TurnPosX, TurnNegZ},
	19: {TurnPosX, TurnPosX, TurnNegZ},
	20: {TurnPosX, TurnNegY},
	21: {TurnPosX, TurnPosX, TurnPosY},
	22: {TurnPosX},
	23: {TurnPosX, TurnPosX, TurnNegY},
	24: {TurnPosX, TurnPosY},
	25: {TurnPosX, TurnPosX, TurnPosZ},
	26: {TurnPosX, TurnPosZ},
}

// Sequence returns the primitive turns a local selector resolves to, or nil
// when it has no move. The returned slice must not be modified.
func Sequence(l LocalIndex) []Turn {
	if !l.Valid() {
		return nil
	}
	return moveTable[l]
}

// mergeCycle returns the four slots a merge of source rotates through:
// source, filler, opposite, core. Colours flow backwards along the cycle so
// the source's block lands in the core.
func mergeCycle(source ClusterID) [4]ClusterID {
	return [4]ClusterID{source, ClusterFiller, source.Opposite(), ClusterCore}
}
