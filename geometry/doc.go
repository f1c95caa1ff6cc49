// Package geometry produces playback traces of planar convex hull
// construction with Andrew's monotone chain, a sorted left-to-right sweep.
//
// TraceHull sorts the points by (x, y), builds the lower chain left to right
// and the upper chain right to left, popping any point that would not make a
// strict left turn. Snapshots carry both chains, the point being processed
// and, at the end, the joined hull in counter-clockwise order. Coordinates
// are int64, so orientation tests are exact.
package geometry
