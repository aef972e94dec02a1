// Package layout implements the binary tiling tree that records how a
// workspace's area is recursively subdivided between windows.
//
// A tree is made of exactly two node kinds: a Tile leaf referencing one
// window, and a Container holding a split orientation and two children. The
// only permitted exception is the empty Container that serves as the root of
// a tree with no windows. A Container observed with exactly one child is a
// bug in the mutation algorithms and the package fails fast when it sees one.
package layout

import (
	"fmt"

	"github.com/mondrian-wm/mondrian/internal/geometry"
)

// Node is one node of a tiling tree. The only implementations are *Tile and
// *Container.
type Node interface {
	node()
}

// Tile is a leaf node referencing exactly one window. It never has children.
type Tile struct {
	Window string
}

// Container is an internal node describing how its area splits into two
// children.
type Container struct {
	Orientation geometry.Orientation

	// Size is the fixed extent in pixels of the left child along the split
	// axis. Zero means an even split.
	Size int

	Left  Node
	Right Node
}

func (*Tile) node()      {}
func (*Container) node() {}

// children validates the container invariant and reports whether c has any
// children at all. An empty container is only valid as a tree root.
func (c *Container) children() bool {
	if (c.Left == nil) != (c.Right == nil) {
		panic("layout: container with a single child")
	}
	return c.Left != nil
}

// Tree is the tiling tree for one workspace/monitor pair. A tree always has
// a root; the empty state is a childless Container.
type Tree struct {
	Root Node
}

// NewEmptyTree returns a tree with no windows.
func NewEmptyTree() *Tree {
	return &Tree{Root: &Container{}}
}

// NewTree builds a tree from an already visible window list. There is no
// pointer position to anchor placement yet, so windows are chained: each
// subsequent window splits the previous insertion point, alternating the
// orientation by index parity. The result is a right-leaning chain rather
// than a balanced tree, which is fine since initial order carries no layout
// preference.
func NewTree(windows []string, workArea geometry.Rect) *Tree {
	if len(windows) == 0 {
		return NewEmptyTree()
	}

	t := &Tree{Root: &Tile{Window: windows[0]}}
	slot := &t.Root
	wide := workArea.Width > workArea.Height

	for i, id := range windows[1:] {
		c := &Container{
			Orientation: chainOrientation(i+1, wide),
			Left:        *slot,
			Right:       &Tile{Window: id},
		}
		*slot = c
		slot = &c.Right
	}

	return t
}

// chainOrientation picks the split orientation for the i-th chained window,
// alternating by parity and starting with the orientation that matches the
// work area's longer dimension.
func chainOrientation(i int, wide bool) geometry.Orientation {
	if (i%2 == 1) == wide {
		return geometry.Vertical
	}
	return geometry.Horizontal
}

// Insert places tile into the tree, descending guided by the pointer
// position (px, py). The pointer decides which half of a split leaf receives
// the new window. If the pointer lies outside the target area the insertion
// is skipped silently and the tree is left untouched.
func (t *Tree) Insert(tile *Tile, area geometry.Rect, px, py int) {
	t.Root = insert(t.Root, tile, area, px, py)
}

func insert(n Node, tile *Tile, area geometry.Rect, px, py int) Node {
	if !area.Contains(px, py) {
		return n
	}

	switch n := n.(type) {
	case *Container:
		if !n.children() {
			// Empty root placeholder: the new tile becomes the tree.
			return tile
		}
		primary, secondary := geometry.Split(area, n.Orientation, n.Size)
		// Only the branch whose area contains the pointer mutates; the
		// other recursion is a no-op through the guard above.
		n.Left = insert(n.Left, tile, primary, px, py)
		n.Right = insert(n.Right, tile, secondary, px, py)
		return n
	case *Tile:
		o := geometry.Vertical
		if area.Height > area.Width {
			o = geometry.Horizontal
		}
		primary, _ := geometry.Split(area, o, 0)
		c := &Container{Orientation: o}
		if primary.Contains(px, py) {
			c.Left, c.Right = tile, n
		} else {
			c.Left, c.Right = n, tile
		}
		return c
	}
	panic(fmt.Sprintf("layout: unknown node type %T", n))
}

// Remove deletes the tile holding id. The removed tile's parent collapses
// and the sibling subtree takes its place. Removing the sole remaining tile
// restores the empty-Container placeholder.
func (t *Tree) Remove(id string) {
	t.Root = remove(t.Root, id)
}

func remove(n Node, id string) Node {
	c, ok := n.(*Container)
	if !ok {
		if tile, ok := n.(*Tile); ok && tile.Window == id {
			// Sole node of the tree.
			return &Container{}
		}
		return n
	}
	if !c.children() {
		return c
	}

	// Clean the subtrees first, then promote a matching direct child's
	// sibling over this container.
	if _, ok := c.Left.(*Container); ok {
		c.Left = remove(c.Left, id)
	}
	if _, ok := c.Right.(*Container); ok {
		c.Right = remove(c.Right, id)
	}
	if tile, ok := c.Left.(*Tile); ok && tile.Window == id {
		return c.Right
	}
	if tile, ok := c.Right.(*Tile); ok && tile.Window == id {
		return c.Left
	}
	return c
}

// Exists reports whether the tree holds a tile for id.
func (t *Tree) Exists(id string) bool {
	return exists(t.Root, id)
}

func exists(n Node, id string) bool {
	switch n := n.(type) {
	case *Tile:
		return n.Window == id
	case *Container:
		if !n.children() {
			return false
		}
		return exists(n.Left, id) || exists(n.Right, id)
	}
	panic(fmt.Sprintf("layout: unknown node type %T", n))
}

// IsEmpty reports whether the tree holds no windows.
func (t *Tree) IsEmpty() bool {
	c, ok := t.Root.(*Container)
	return ok && !c.children()
}

// Tiles returns the number of tile leaves in the tree.
func (t *Tree) Tiles() int {
	tiles, _ := count(t.Root)
	return tiles
}

// Containers returns the number of container nodes in the tree, counting the
// empty root placeholder.
func (t *Tree) Containers() int {
	_, containers := count(t.Root)
	return containers
}

func count(n Node) (tiles, containers int) {
	switch n := n.(type) {
	case *Tile:
		return 1, 0
	case *Container:
		if !n.children() {
			return 0, 1
		}
		lt, lc := count(n.Left)
		rt, rc := count(n.Right)
		return lt + rt, lc + rc + 1
	}
	panic(fmt.Sprintf("layout: unknown node type %T", n))
}
