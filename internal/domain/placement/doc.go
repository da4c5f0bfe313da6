// Package placement implements the anchored-positioning math: where a
// floating element goes relative to its anchor, whether the requested side
// collides with the viewport, and how the arrow is drawn.
//
// Every function in this package is pure. Callers measure rectangles, pass
// them in, and apply the returned styles; nothing here caches a Rect.
package placement
