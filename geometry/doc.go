// Package geometry provides the planar value types used by the quadtree:
// points, axis-aligned boxes and circles, together with the containment and
// intersection predicates the tree relies on.
//
// All predicates are closed: a point lying exactly on an edge of a box or on
// the circumference of a circle is contained by it.
package geometry
