package world

const (
	// BSP parameters
	minRoomSize = 3  // Minimum room dimension
	maxRoomSize = 10 // Maximum room dimension
	minLeafSize = 6  // Minimum BSP leaf size before stopping split
)

// RoomsGenerator carves rectangular rooms using binary space partitioning.
// Rooms are left unconnected; the Resolver joins them.
type RoomsGenerator struct {
	// Rooms carved by the most recent Generate call.
	Rooms []Room
}

// NewRoomsGenerator returns a rooms generator.
func NewRoomsGenerator() *RoomsGenerator {
	return &RoomsGenerator{}
}

// bspNode represents a node in the BSP tree.
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// Generate implements RegionGenerator.
func (g *RoomsGenerator) Generate(layer *Layer, rand RandFunc) []Region {
	g.Rooms = g.Rooms[:0]
	if layer.Width < 3 || layer.Height < 3 {
		return nil
	}

	// Start BSP with the interior as root
	root := &bspNode{
		x:      1,
		y:      1,
		width:  layer.Width - 2,
		height: layer.Height - 2,
	}
	g.splitNode(root, rand)
	g.createRooms(layer, root, rand)

	return FindRegions(layer)
}

// splitNode recursively splits a BSP node.
func (g *RoomsGenerator) splitNode(node *bspNode, rand RandFunc) {
	canSplitH := node.height >= minLeafSize*2
	canSplitV := node.width >= minLeafSize*2
	if !canSplitH && !canSplitV {
		return
	}

	// Split across the longer side when possible
	splitHorizontally := canSplitH && (!canSplitV || node.height >= node.width)

	size := node.width
	if splitHorizontally {
		size = node.height
	}
	splitPos := minLeafSize + rand.choose(size-2*minLeafSize+1)

	if splitHorizontally {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPos}
		node.right = &bspNode{x: node.x, y: node.y + splitPos, width: node.width, height: node.height - splitPos}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: splitPos, height: node.height}
		node.right = &bspNode{x: node.x + splitPos, y: node.y, width: node.width - splitPos, height: node.height}
	}

	g.splitNode(node.left, rand)
	g.splitNode(node.right, rand)
}

// createRooms creates one room in every leaf large enough to hold it.
func (g *RoomsGenerator) createRooms(layer *Layer, node *bspNode, rand RandFunc) {
	if node == nil {
		return
	}
	if !node.isLeaf() {
		g.createRooms(layer, node.left, rand)
		g.createRooms(layer, node.right, rand)
		return
	}

	// Leave a one-cell margin inside the leaf so rooms never touch
	maxW := min(maxRoomSize, node.width-2)
	maxH := min(maxRoomSize, node.height-2)
	if maxW < minRoomSize || maxH < minRoomSize {
		return
	}

	roomWidth := minRoomSize + rand.choose(maxW-minRoomSize+1)
	roomHeight := minRoomSize + rand.choose(maxH-minRoomSize+1)
	room := Room{
		X:      node.x + 1 + rand.choose(node.width-roomWidth-1),
		Y:      node.y + 1 + rand.choose(node.height-roomHeight-1),
		Width:  roomWidth,
		Height: roomHeight,
	}
	g.Rooms = append(g.Rooms, room)
	carveRoom(layer, room)
}

// carveRoom sets all tiles within the room to floor.
func carveRoom(layer *Layer, room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			layer.carve(x, y)
		}
	}
}
