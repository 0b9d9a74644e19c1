// Package autotile applies a wang.WangSet to a grid: the cell model, the
// paint-cascade-reresolve terrain painter, and flood fill. Desired
// patterns are derived from neighbor colors according to the wang-set's
// type (corner, edge, or mixed); a neighbor past the map edge takes the
// cell's own color rather than 0.
package autotile
