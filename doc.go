// Package fancyscroll implements a virtualized-scrolling engine: a bounded
// pool of reusable visual cells represents an arbitrarily large ordered list
// by continuously remapping cell positions as the user scrolls.
//
// The package is purely mathematical state management. It converts between
// two position spaces:
//
//   - scroll space: the continuous position owned by an external drag/inertia
//     component, ranging roughly over [0, itemCount-1] and extending past
//     those bounds during elastic overscroll;
//   - virtualization space: the compressed unit used to interpolate cell
//     placement, compensating for the reuse margin and head padding.
//
// Physics (drag capture, inertia, bounce-back) and cell pooling/rendering are
// external collaborators, reached through the Scroller and CellSink
// interfaces. A reference GLFW/OpenGL host lives under example/ with its
// renderer in backend/opengl.
package fancyscroll
