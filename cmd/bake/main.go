// Command bake turns a project's wang sets, saved maps, and prefabs into
// baked binary layers, packed atlas pages, and a JSON manifest.
package main

import (
	"encoding/json"
	"fmt"
	"image"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/autoterrain/pkg/autotile"
	"github.com/phanxgames/autoterrain/pkg/bake"
	"github.com/phanxgames/autoterrain/pkg/prefab"
	"github.com/phanxgames/autoterrain/pkg/schema"
	"github.com/phanxgames/autoterrain/pkg/wang"
)

type flags struct {
	projectPath string
	tilesetsDir string
	mapsDir     string
	prefabsDir  string
	outputDir   string
	tileSize    int
	maxAtlasPx  int
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	f := &flags{}

	root := &cobra.Command{
		Use:   "bake",
		Short: "Bake a project's wang sets, maps, and prefabs into runtime assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(logger, f)
		},
	}

	root.Flags().StringVar(&f.projectPath, "project", "", "path to project metadata JSON (required)")
	root.Flags().StringVar(&f.tilesetsDir, "tilesets-dir", "", "directory containing tileset images (required)")
	root.Flags().StringVar(&f.mapsDir, "maps-dir", "", "directory containing saved map JSON files (required)")
	root.Flags().StringVar(&f.prefabsDir, "prefabs-dir", "", "directory containing saved prefab JSON files")
	root.Flags().StringVar(&f.outputDir, "output-dir", "", "directory to write baked output into (required)")
	root.Flags().IntVar(&f.tileSize, "tile-size", bake.DefaultTileSize, "tile edge length in pixels")
	root.Flags().IntVar(&f.maxAtlasPx, "max-atlas-px", bake.MaxAtlasPx, "maximum atlas page edge length in pixels")
	for _, name := range []string{"project", "tilesets-dir", "maps-dir", "output-dir"} {
		_ = root.MarkFlagRequired(name)
	}

	if err := root.Execute(); err != nil {
		logger.Error("bake failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, f *flags) error {
	projectData, err := os.ReadFile(f.projectPath)
	if err != nil {
		return fmt.Errorf("reading project metadata: %w", err)
	}
	meta, err := schema.ParseProjectMetadata(projectData)
	if err != nil {
		return fmt.Errorf("parsing project metadata: %w", err)
	}

	images, columns, err := loadTilesetImages(f.tilesetsDir, meta)
	if err != nil {
		return err
	}

	prefabs, err := loadPrefabs(f.prefabsDir)
	if err != nil {
		return err
	}
	knownPrefabs := make(map[string]bool, len(prefabs))
	for name := range prefabs {
		knownPrefabs[name] = true
	}
	knownWangSets := make(map[string]bool, len(meta.WangSets))
	for _, ws := range meta.WangSets {
		knownWangSets[ws.Name] = true
	}

	wangSets := make(map[string]*wang.WangSet)

	mapFiles, err := filepath.Glob(filepath.Join(f.mapsDir, "*.json"))
	if err != nil {
		return fmt.Errorf("listing maps directory: %w", err)
	}
	if len(mapFiles) == 0 {
		logger.Warn("no map files found", "dir", f.mapsDir)
	}

	if err := os.MkdirAll(f.outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, path := range mapFiles {
		if err := bakeOneMap(logger, f, path, meta, wangSets, knownWangSets, knownPrefabs, prefabs, images, columns); err != nil {
			return fmt.Errorf("baking %s: %w", path, err)
		}
	}
	return nil
}

func bakeOneMap(
	logger *slog.Logger,
	f *flags,
	path string,
	meta *schema.ProjectMetadata,
	wangSets map[string]*wang.WangSet,
	knownWangSets, knownPrefabs map[string]bool,
	prefabs map[string]*prefab.Prefab,
	images map[int]image.Image,
	columns map[int]int,
) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	savedMap, err := schema.ParseMap(data)
	if err != nil {
		return err
	}
	// Only an unknown wangset is fatal here; placements of unknown prefabs
	// are logged and skipped by bake.BakeMapLayers.
	if err := schema.ValidateMapReferences(savedMap, knownWangSets, knownPrefabs); err != nil && !knownWangSets[savedMap.WangSetName] {
		return err
	}

	set, ok := wangSets[savedMap.WangSetName]
	if !ok {
		set, err = schema.BuildWangSet(meta, savedMap.WangSetName)
		if err != nil {
			return err
		}
		wangSets[savedMap.WangSetName] = set
	}

	var layers []bake.LayerSource
	placements := make([]prefab.PlacedPrefab, len(savedMap.PlacedPrefabs))
	for i, pp := range savedMap.PlacedPrefabs {
		placements[i] = prefab.PlacedPrefab{PrefabName: pp.PrefabName, X: pp.X, Y: pp.Y, Layer: pp.Layer}
	}

	for i, colors := range savedMap.Layers {
		if colors == nil {
			continue
		}
		m := autotile.NewAutotileMap(savedMap.Width, savedMap.Height, set)
		if err := autotile.LoadColors(m, colors); err != nil {
			return fmt.Errorf("resolving layer %d: %w", i, err)
		}
		layers = append(layers, bake.LayerSource{Layer: i, Map: m})
	}
	if len(layers) == 0 {
		logger.Warn("map has no non-empty layers, skipping", "map", savedMap.Name)
		return nil
	}

	result, err := bake.BakeMapLayers(
		logger, layers, prefabs, placements, schema.MapLayerCount,
		images, columns, f.tileSize, f.maxAtlasPx,
	)
	if err != nil {
		return err
	}

	return writeBakeResult(f.outputDir, bake.SanitizeSlug(savedMap.Name), result)
}

func loadTilesetImages(dir string, meta *schema.ProjectMetadata) (map[int]image.Image, map[int]int, error) {
	images := make(map[int]image.Image, len(meta.Tilesets))
	columns := make(map[int]int, len(meta.Tilesets))
	for i, ts := range meta.Tilesets {
		path := filepath.Join(dir, ts.Image)
		fh, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening tileset image %s: %w", path, err)
		}
		img, _, err := image.Decode(fh)
		fh.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("decoding tileset image %s: %w", path, err)
		}
		images[i] = img
		columns[i] = ts.Columns
	}
	return images, columns, nil
}

func loadPrefabs(dir string) (map[string]*prefab.Prefab, error) {
	prefabs := make(map[string]*prefab.Prefab)
	if dir == "" {
		return prefabs, nil
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("listing prefabs directory: %w", err)
	}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sp, err := schema.ParsePrefab(data)
		if err != nil {
			return nil, fmt.Errorf("parsing prefab %s: %w", path, err)
		}
		prefabs[sp.Name] = schema.ToPrefab(sp)
	}
	return prefabs, nil
}

func writeBakeResult(outputDir, slug string, result *bake.Result) error {
	var layerFiles []string
	for layerIdx, flat := range result.LayerData {
		name := fmt.Sprintf("%s_layer%d.bin", slug, layerIdx)
		fh, err := os.Create(filepath.Join(outputDir, name))
		if err != nil {
			return err
		}
		err = bake.WriteLayerBinary(fh, flat)
		fh.Close()
		if err != nil {
			return err
		}
		layerFiles = append(layerFiles, name)
	}

	var atlasNames []string
	for i, page := range result.AtlasPages {
		name := fmt.Sprintf("%s_atlas%d.png", slug, i)
		if err := writePNG(filepath.Join(outputDir, name), page); err != nil {
			return err
		}
		atlasNames = append(atlasNames, name)
	}

	manifest := bake.BuildManifest(result.Width, result.Height, result.Layout, layerFiles, atlasNames, result.TileCount)
	manifestData, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outputDir, strings.TrimSuffix(slug, ".json")+"_manifest.json"), manifestData, 0o644)
}
