package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"path"

	"github.com/automoto/tovra/config"
	"github.com/automoto/tovra/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

//go:embed all:levels
var assetFS embed.FS

// LevelFS exposes the embedded level files.
func LevelFS() fs.FS {
	return assetFS
}

// LoadLevels parses every embedded level in play order and logs the
// problems each one will be played around.
func LoadLevels() ([]*leveldata.Level, error) {
	levels, err := leveldata.LoadAllLevels(assetFS, config.Levels.Dir)
	if err != nil {
		return nil, fmt.Errorf("load embedded levels: %w", err)
	}
	for _, level := range levels {
		for _, warning := range leveldata.Validate(level) {
			log.Printf("Warning: %v", warning)
		}
	}
	return levels, nil
}

var backgrounds = map[string]*ebiten.Image{}

// Background renders the decorative layers of a level: image layers and
// tile layers with the custom property render=true. The result is cached.
// A level without decoration returns nil.
func Background(level *leveldata.Level) (*ebiten.Image, error) {
	if img, ok := backgrounds[level.Name]; ok {
		return img, nil
	}

	tmxPath := path.Join(config.Levels.Dir, level.Name+".tmx")
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var bg *ebiten.Image
	ensure := func() *ebiten.Image {
		if bg == nil {
			bg = ebiten.NewImage(level.Width, level.Height)
		}
		return bg
	}

	for _, imgLayer := range levelMap.ImageLayers {
		if !imgLayer.Properties.GetBool("render") || imgLayer.Image == nil || imgLayer.Opacity <= 0 {
			continue
		}

		imgPath := path.Join(config.Levels.Dir, imgLayer.Image.Source)
		imgBytes, err := assetFS.ReadFile(imgPath)
		if err != nil {
			log.Printf("Warning: Failed to load image layer %s: %v", imgLayer.Name, err)
			continue
		}
		img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
		if err != nil {
			log.Printf("Warning: Failed to decode image layer %s: %v", imgLayer.Name, err)
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(imgLayer.OffsetX), float64(imgLayer.OffsetY))
		op.ColorScale.ScaleAlpha(float32(imgLayer.Opacity))
		ensure().DrawImage(img, op)
		img.Deallocate()
	}

	var renderer *render.Renderer
	for i, layer := range levelMap.Layers {
		if !layer.Properties.GetBool("render") || layer.Opacity <= 0 {
			continue
		}
		if renderer == nil {
			renderer, err = render.NewRendererWithFileSystem(levelMap, assetFS)
			if err != nil {
				return nil, fmt.Errorf("create renderer for %s: %w", level.Name, err)
			}
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: Failed to render layer %s: %v", layer.Name, err)
			continue
		}

		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		ensure().DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}

	backgrounds[level.Name] = bg
	return bg, nil
}
