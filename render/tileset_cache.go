package render

import (
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	tiled "github.com/Tsukumogami-Software/go-tiled-editor"
	"github.com/disintegration/imaging"
)

// TileImageSource resolves the images painters draw.
type TileImageSource interface {
	TileImage(tile *tiled.Tile) (image.Image, error)
	LayerImage(img *tiled.Image) (image.Image, error)
}

// TilesetCache loads tileset images once and slices them into tiles.
type TilesetCache struct {
	cache  map[*tiled.Tileset]map[uint32]image.Image
	images map[string]image.Image
	fs     fs.FS
}

// NewTilesetCache returns a cache reading from fs, or from the operating
// system when fs is nil.
func NewTilesetCache(fs fs.FS) *TilesetCache {
	return &TilesetCache{
		cache:  map[*tiled.Tileset]map[uint32]image.Image{},
		images: map[string]image.Image{},
		fs:     fs,
	}
}

func (t *TilesetCache) open(f string) (io.ReadCloser, error) {
	if t.fs == nil {
		return os.Open(filepath.FromSlash(f))
	}
	return t.fs.Open(filepath.ToSlash(f))
}

func (t *TilesetCache) decode(path string) (image.Image, error) {
	if img, ok := t.images[path]; ok {
		return img, nil
	}

	sf, err := t.open(path)
	if err != nil {
		return nil, fmt.Errorf("tiled/render: open %s: %w", path, err)
	}
	defer sf.Close()

	img, err := imaging.Decode(sf)
	if err != nil {
		return nil, fmt.Errorf("tiled/render: decode %s: %w", path, err)
	}

	t.images[path] = img
	return img, nil
}

// AddImage registers an already decoded image under source, so that
// generated maps need no files.
func (t *TilesetCache) AddImage(source string, img image.Image) {
	t.images[source] = img
}

// AddTilesetImage slices img into the tiles of tileset.
func (t *TilesetCache) AddTilesetImage(tileset *tiled.Tileset, img image.Image) {
	origin := img.Bounds().Min

	cache := make(map[uint32]image.Image, tileset.TileCount)
	for i := uint32(0); i < uint32(tileset.TileCount); i++ {
		rect := tileset.GetTileRect(i).Add(origin)
		if !rect.In(img.Bounds()) {
			continue
		}
		cache[i] = imaging.Crop(img, rect)
	}

	t.cache[tileset] = cache
}

func (t *TilesetCache) cacheTileset(tileset *tiled.Tileset) error {
	img, err := t.decode(tileset.GetFileFullPath(tileset.Image.Source))
	if err != nil {
		return err
	}
	t.AddTilesetImage(tileset, img)
	return nil
}

// TileImage returns the unflipped image of tile.
func (t *TilesetCache) TileImage(tile *tiled.Tile) (image.Image, error) {
	if tile == nil || tile.Tileset == nil {
		return nil, ErrTileImageNotFound
	}
	tileset := tile.Tileset

	if tile.Image != nil {
		return t.decode(tileset.GetFileFullPath(tile.Image.Source))
	}

	cached, ok := t.cache[tileset]
	if !ok {
		if tileset.Image == nil {
			return nil, fmt.Errorf("%w: %s has no image", ErrTileImageNotFound, tileset.Name)
		}
		if err := t.cacheTileset(tileset); err != nil {
			return nil, err
		}
		cached = t.cache[tileset]
	}

	img, ok := cached[tile.ID]
	if !ok {
		return nil, fmt.Errorf("%w: %s tile %d", ErrTileImageNotFound, tileset.Name, tile.ID)
	}
	return img, nil
}

// LayerImage returns the image of an image layer.
func (t *TilesetCache) LayerImage(img *tiled.Image) (image.Image, error) {
	if img == nil {
		return nil, ErrTileImageNotFound
	}
	return t.decode(img.Source)
}
