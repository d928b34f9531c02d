package service

import "github.com/MKhiriev/remote-mirror/models"

// worklist holds remote folders waiting to be listed. As a stack it yields
// depth-first order, as a queue breadth-first order. The order of visits
// changes, the set of visited folders does not.
type worklist struct {
	items []string
	fifo  bool
}

func newWorklist(order models.Traversal, start string) *worklist {
	return &worklist{
		items: []string{start},
		fifo:  order == models.TraversalBreadthFirst,
	}
}

func (w *worklist) push(path string) {
	w.items = append(w.items, path)
}

// pop removes the next folder. ok is false when the worklist is empty.
func (w *worklist) pop() (path string, ok bool) {
	if len(w.items) == 0 {
		return "", false
	}

	if w.fifo {
		path = w.items[0]
		w.items[0] = ""
		w.items = w.items[1:]
		return path, true
	}

	last := len(w.items) - 1
	path = w.items[last]
	w.items = w.items[:last]
	return path, true
}

func (w *worklist) len() int {
	return len(w.items)
}
