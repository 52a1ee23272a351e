// Package graph6 decodes and encodes the graph6 and sparse6 text formats
// (as produced by nauty/networkx) plus an internal whitespace-separated
// directed edge-list format ("nv ne u0 v0 u1 v1 ..."), mirroring
// graphwrapper.py's GraphWrapper.from_g6str.
package graph6
