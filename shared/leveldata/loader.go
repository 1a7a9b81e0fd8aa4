package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

// Load parses one TMX file. It takes an fs.FS so callers can pass an embed.FS
// or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	p := &parser{
		path:      tmxPath,
		mapHeight: float64(levelMap.Height * levelMap.TileHeight),
	}
	level := &Level{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath)),
		Width:    float64(levelMap.Width * levelMap.TileWidth),
		Height:   p.mapHeight,
		TileSize: float64(levelMap.TileWidth),
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != LayerWalls {
			continue
		}
		if len(layer.Tiles) != levelMap.Width*levelMap.Height {
			return nil, fmt.Errorf("%s: layer %s: %w: tile count %d", tmxPath, layer.Name, ErrInvalidField, len(layer.Tiles))
		}
		g := grid{w: levelMap.Width, h: levelMap.Height, cells: make([]bool, len(layer.Tiles))}
		for i, tile := range layer.Tiles {
			g.cells[i] = !tile.IsNil()
		}
		level.Walls = mergeWalls(g, float64(levelMap.TileHeight), p.mapHeight)
		break
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		p.group = og.Name
		for _, o := range og.Objects {
			if og.Name == GroupSpawn {
				level.Spawn = p.point(o)
				spawnFound = true
				continue
			}
			if _, known := DefaultHalfExtents[og.Name]; !known {
				continue
			}
			r, err := p.rect(o)
			if err != nil {
				return nil, err
			}
			if err := p.object(level, o, r); err != nil {
				return nil, err
			}
		}
	}
	if !spawnFound {
		return nil, fmt.Errorf("%s: group %s: %w", tmxPath, GroupSpawn, ErrMissingField)
	}

	return level, nil
}

// LoadAll loads every .tmx file in dir, sorted by name.
func LoadAll(fsys fs.FS, dir string) ([]*Level, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}

type parser struct {
	path      string
	group     string
	mapHeight float64
}

func (p *parser) object(level *Level, o *tiled.Object, r Rect) error {
	switch p.group {
	case GroupCheckpoints:
		active, err := p.boolProp(o, "active")
		if err != nil {
			return err
		}
		level.Checkpoints = append(level.Checkpoints, Checkpoint{Rect: r, ID: int(o.ID), Active: active})
	case GroupSpikes:
		level.Spikes = append(level.Spikes, r)
	case GroupPins:
		level.Pins = append(level.Pins, Pin{Rect: r, ID: int(o.ID)})
	case GroupExits:
		required, err := p.intProp(o, "required_pins")
		if err != nil {
			return err
		}
		if required < 0 {
			return p.errorf(o, "required_pins", ErrInvalidField)
		}
		level.Exits = append(level.Exits, Exit{Rect: r, RequiredPins: required})
	case GroupElevators:
		span, err := p.intProp(o, "span")
		if err != nil {
			return err
		}
		if span <= 0 {
			return p.errorf(o, "span", ErrInvalidField)
		}
		var horizontal bool
		switch axis, _ := prop(o, "axis"); axis {
		case "", "vertical":
		case "horizontal":
			horizontal = true
		default:
			return p.errorf(o, "axis", ErrInvalidField)
		}
		level.Elevators = append(level.Elevators, Elevator{
			Rect:       r,
			Span:       float64(span) * level.TileSize,
			Horizontal: horizontal,
		})
	case GroupPlatforms:
		level.Platforms = append(level.Platforms, r)
	case GroupSharpeners:
		raw, ok := prop(o, "point_to_x")
		if !ok {
			return p.errorf(o, "point_to_x", ErrMissingField)
		}
		x, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return p.errorf(o, "point_to_x", fmt.Errorf("%w: %v", ErrInvalidField, err))
		}
		level.Sharpeners = append(level.Sharpeners, Sharpener{Rect: r, PointToX: x})
	}
	return nil
}

// point converts a Tiled point (y-down) into world space.
func (p *parser) point(o *tiled.Object) math.Vec2 {
	return math.Vec2{X: o.X, Y: p.mapHeight - o.Y}
}

// rect converts a rectangle object, or a point object using the group's
// default size.
func (p *parser) rect(o *tiled.Object) (Rect, error) {
	if len(o.Polygons) > 0 || len(o.PolyLines) > 0 {
		return Rect{}, p.errorf(o, "shape", ErrInvalidField)
	}
	if o.Width == 0 && o.Height == 0 {
		return Rect{Center: p.point(o), Half: DefaultHalfExtents[p.group]}, nil
	}
	if o.Width <= 0 || o.Height <= 0 {
		return Rect{}, p.errorf(o, "size", ErrInvalidField)
	}
	return Rect{
		Center: math.Vec2{X: o.X + o.Width/2, Y: p.mapHeight - (o.Y + o.Height/2)},
		Half:   math.Vec2{X: o.Width / 2, Y: o.Height / 2},
	}, nil
}

func (p *parser) errorf(o *tiled.Object, field string, err error) error {
	return fmt.Errorf("%s: group %s: object %d: %s: %w", p.path, p.group, o.ID, field, err)
}

// intProp reads a required integer property.
func (p *parser) intProp(o *tiled.Object, name string) (int, error) {
	raw, ok := prop(o, name)
	if !ok {
		return 0, p.errorf(o, name, ErrMissingField)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, p.errorf(o, name, fmt.Errorf("%w: %v", ErrInvalidField, err))
	}
	return v, nil
}

func (p *parser) boolProp(o *tiled.Object, name string) (bool, error) {
	raw, ok := prop(o, name)
	if !ok {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, p.errorf(o, name, fmt.Errorf("%w: %v", ErrInvalidField, err))
	}
	return v, nil
}

func prop(o *tiled.Object, name string) (string, bool) {
	for _, pr := range o.Properties {
		if pr.Name == name {
			return pr.Value, true
		}
	}
	return "", false
}
