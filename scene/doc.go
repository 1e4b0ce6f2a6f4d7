// Package scene holds the data model shared by every renderer: entities
// grouped in a World, the Viewport a renderer draws through, and the
// Overlay text drawn on top of it.
//
// Ownership is strictly one way. A World owns its entities and floating
// texts by value; a Viewport borrows a World and a list of Overlays; the
// camera borrows Viewports. Renderers only read from this model.
//
// The model is not synchronized. It is built and mutated on the frame
// goroutine between draws.
package scene
