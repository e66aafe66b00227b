// Package atlas packs rectangles into a fixed size page using a skyline.
package atlas

import "errors"

var ErrNoSpace = errors.New("atlas: can't find space")

type node struct {
	x, y, width int
}

// Atlas is a skyline packer. The skyline is the list of nodes, each one a
// horizontal segment at height y.
type Atlas struct {
	width, height int
	nodes         []node
}

func New(width, height int) *Atlas {
	a := &Atlas{nodes: make([]node, 1, 256)}
	a.Reset(width, height)
	return a
}

func (a *Atlas) Width() int  { return a.width }
func (a *Atlas) Height() int { return a.height }

// Reset empties the atlas and changes its size.
func (a *Atlas) Reset(width, height int) {
	a.width = width
	a.height = height
	a.nodes = append(a.nodes[:0], node{width: width})
}

// Add reserves a w x h rectangle and returns its bottom-left corner.
// The lowest fitting position wins, ties go to the narrower segment.
func (a *Atlas) Add(w, h int) (x, y int, err error) {
	if w < 0 || h < 0 {
		return -1, -1, ErrNoSpace
	}
	bestH, bestW, bestI := 0, 0, -1
	x, y = -1, -1
	for i, n := range a.nodes {
		fy := a.fits(i, w, h)
		if fy < 0 {
			continue
		}
		if bestI < 0 || fy+h < bestH || (fy+h == bestH && n.width < bestW) {
			bestI = i
			bestW = n.width
			bestH = fy + h
			x, y = n.x, fy
		}
	}
	if bestI < 0 {
		return -1, -1, ErrNoSpace
	}
	a.addLevel(bestI, x, y, w, h)
	return x, y, nil
}

func (a *Atlas) fits(i, w, h int) int {
	x := a.nodes[i].x
	y := a.nodes[i].y
	if x+w > a.width {
		return -1
	}
	for spaceLeft := w; spaceLeft > 0; i++ {
		if i == len(a.nodes) {
			return -1
		}
		y = max(y, a.nodes[i].y)
		if y+h > a.height {
			return -1
		}
		spaceLeft -= a.nodes[i].width
	}
	return y
}

func (a *Atlas) addLevel(idx, x, y, w, h int) {
	a.insert(idx, node{x: x, y: y + h, width: w})

	// Cut the segments now covered by the new one.
	for i := idx + 1; i < len(a.nodes); i++ {
		prev := a.nodes[i-1]
		if a.nodes[i].x >= prev.x+prev.width {
			break
		}
		shrink := prev.x + prev.width - a.nodes[i].x
		a.nodes[i].x += shrink
		a.nodes[i].width -= shrink
		if a.nodes[i].width > 0 {
			break
		}
		a.remove(i)
		i--
	}

	// Merge neighbours at the same height.
	for i := 0; i < len(a.nodes)-1; i++ {
		if a.nodes[i].y == a.nodes[i+1].y {
			a.nodes[i].width += a.nodes[i+1].width
			a.remove(i + 1)
			i--
		}
	}
}

func (a *Atlas) insert(idx int, n node) {
	a.nodes = append(a.nodes, node{})
	copy(a.nodes[idx+1:], a.nodes[idx:])
	a.nodes[idx] = n
}

func (a *Atlas) remove(idx int) {
	a.nodes = append(a.nodes[:idx], a.nodes[idx+1:]...)
}
