// Package scene provides an in-process layout tree: a window with a viewport
// and scroll position plus nested rectangular elements. It implements the
// host ports used by the placement engine so the engine can run inside the
// terminal playground, the simulator, and tests.
package scene
