package sdlhost

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"strings"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// svgRasterSize is the square size SVG icons are rasterised at before scaling into a row.
const svgRasterSize = 96

// iconCache keeps one texture per icon source. Failed loads are remembered as nil.
type iconCache struct {
	renderer *sdl.Renderer
	textures map[string]*sdl.Texture
}

func newIconCache(renderer *sdl.Renderer) *iconCache {
	return &iconCache{renderer: renderer, textures: make(map[string]*sdl.Texture)}
}

func (c *iconCache) get(filename string, data []byte) *sdl.Texture {
	key := iconKey(filename, data)
	if key == "" {
		return nil
	}
	if texture, ok := c.textures[key]; ok {
		return texture
	}

	var texture *sdl.Texture
	var err error
	if len(data) > 0 {
		texture, err = loadImageTexture(c.renderer, data, svgRasterSize, svgRasterSize)
	} else {
		texture, err = loadImageFile(c.renderer, filename)
	}
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to load menu icon", "icon", filename, "bytes", len(data), "error", err)
	}

	c.textures[key] = texture
	return texture
}

func (c *iconCache) destroy() {
	for key, texture := range c.textures {
		if texture != nil {
			texture.Destroy()
		}
		delete(c.textures, key)
	}
}

func iconKey(filename string, data []byte) string {
	if len(data) > 0 {
		return fmt.Sprintf("bytes:%08x:%d", crc32.ChecksumIEEE(data), len(data))
	}
	if filename != "" {
		return "file:" + filename
	}
	return ""
}

func isSVG(data []byte) bool {
	head := data[:min(len(data), 512)]
	return bytes.Contains(head, []byte("<svg"))
}

func loadImageFile(renderer *sdl.Renderer, filename string) (*sdl.Texture, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".svg") {
		icon, err := oksvg.ReadIcon(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to parse SVG: %w", err)
		}
		return rasterizeSVG(renderer, icon, svgRasterSize, svgRasterSize)
	}
	return img.LoadTexture(renderer, filename)
}

func loadImageTexture(renderer *sdl.Renderer, imageData []byte, width, height int32) (*sdl.Texture, error) {
	if isSVG(imageData) {
		icon, err := oksvg.ReadIconStream(bytes.NewReader(imageData))
		if err != nil {
			return nil, fmt.Errorf("failed to parse SVG: %w", err)
		}
		return rasterizeSVG(renderer, icon, width, height)
	}
	return loadRasterTexture(renderer, imageData)
}

func loadRasterTexture(renderer *sdl.Renderer, imageData []byte) (*sdl.Texture, error) {
	rw, err := sdl.RWFromMem(imageData)
	if err != nil {
		return nil, fmt.Errorf("failed to create RWops from image data: %w", err)
	}
	texture, err := img.LoadTextureRW(renderer, rw, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture from image data: %w", err)
	}
	return texture, nil
}

func rasterizeSVG(renderer *sdl.Renderer, icon *oksvg.SvgIcon, width, height int32) (*sdl.Texture, error) {
	if width == 0 || height == 0 {
		width = int32(icon.ViewBox.W)
		height = int32(icon.ViewBox.H)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	scanner := rasterx.NewScannerGV(int(width), int(height), rgba, rgba.Bounds())
	raster := rasterx.NewDasher(int(width), int(height), scanner)

	icon.SetTarget(0, 0, float64(width), float64(height))
	icon.Draw(raster, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, fmt.Errorf("failed to encode SVG as PNG: %w", err)
	}
	return loadRasterTexture(renderer, buf.Bytes())
}
