// Package bake turns a resolved autotile.AutotileMap (plus any prefab
// stamps) into a deployable asset: a deduplicated tile registry, one or
// more packed atlas images, little-endian binary layer data, and a JSON
// manifest tying it all together.
package bake
