// Package procgen generates deterministic color grids for an
// autotile.AutotileMap: a seeded PRNG, multi-octave simplex noise, a
// voronoi generator, a zone-based generator, border smoothing, and a
// sprinkle pass for visual variety. Every generator takes its randomness
// from the same seeded source, so two runs with the same seed and
// parameters always produce byte-identical output.
package procgen
