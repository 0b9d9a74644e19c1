// Package wang implements the Wang-set model: colors, an 8-slot pattern
// type with symmetry transforms, tile-to-pattern mappings, variant
// expansion under a configurable symmetry group, an all-pairs color
// distance engine, and the best-match tile resolver.
//
// The five pieces live in one package because the resolver needs direct
// access to a WangSet's variant and distance tables, and because the
// reference engine this is modeled on treats them as a single tightly
// coupled subsystem.
package wang
