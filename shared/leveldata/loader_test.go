package leveldata

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/yohamta/donburi/features/math"
)

const testWalls = `
0,0,0,0,0,0,
1,0,0,0,0,1,
1,1,1,1,1,1,
1,1,1,1,1,1
`

const testSpawn = `
 <objectgroup id="2" name="SpawnPoint">
  <object id="1" x="36" y="48"><point/></object>
 </objectgroup>`

const testObjects = `
 <objectgroup id="3" name="Checkpoints">
  <object id="2" x="60" y="40">
   <properties><property name="active" type="bool" value="true"/></properties>
   <point/>
  </object>
  <object id="3" x="96" y="30" width="16" height="18"/>
 </objectgroup>
 <objectgroup id="4" name="Spikes">
  <object id="4" x="84" y="44"><point/></object>
 </objectgroup>
 <objectgroup id="5" name="Pins">
  <object id="5" x="50" y="20"><point/></object>
 </objectgroup>
 <objectgroup id="6" name="Exits">
  <object id="6" x="120" y="24">
   <properties><property name="required_pins" type="int" value="1"/></properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="7" name="Elevators">
  <object id="7" x="72" y="10">
   <properties>
    <property name="span" type="int" value="2"/>
    <property name="axis" value="horizontal"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="8" name="Platforms">
  <object id="8" x="24" y="30"><point/></object>
 </objectgroup>
 <objectgroup id="9" name="Sharpeners">
  <object id="9" x="40" y="60">
   <properties><property name="point_to_x" type="float" value="100"/></properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="10" name="Decoration">
  <object id="10" x="1" y="1"><polygon points="0,0 4,0 4,4"/></object>
 </objectgroup>`

// tmx builds a 6x4 map with 24px tiles and an inline tileset.
func tmx(walls, groups string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="6" height="4" tilewidth="24" tileheight="24" infinite="0" nextlayerid="11" nextobjectid="20">
 <tileset firstgid="1" name="walls" tilewidth="24" tileheight="24" tilecount="1" columns="1">
  <image source="walls.png" width="24" height="24"/>
 </tileset>
 <layer id="1" name="walls" width="6" height="4">
  <data encoding="csv">%s</data>
 </layer>%s
</map>
`, walls, groups)
}

func loadString(t *testing.T, src string) (*Level, error) {
	t.Helper()
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(src)}}
	return Load(fsys, "levels/test.tmx")
}

func TestLoadLevel(t *testing.T) {
	level, err := loadString(t, tmx(testWalls, testSpawn+testObjects))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if level.Name != "test" || level.Width != 144 || level.Height != 96 || level.TileSize != 24 {
		t.Fatalf("level header = %q %vx%v tile %v", level.Name, level.Width, level.Height, level.TileSize)
	}
	if level.Spawn != (math.Vec2{X: 36, Y: 48}) {
		t.Errorf("spawn = %+v, want (36, 48)", level.Spawn)
	}

	wantWalls := []Rect{
		{Center: math.Vec2{X: 12, Y: 60}, Half: math.Vec2{X: 12, Y: 12}},
		{Center: math.Vec2{X: 132, Y: 60}, Half: math.Vec2{X: 12, Y: 12}},
		{Center: math.Vec2{X: 72, Y: 36}, Half: math.Vec2{X: 72, Y: 12}},
	}
	if len(level.Walls) != len(wantWalls) {
		t.Fatalf("walls = %+v, want %+v", level.Walls, wantWalls)
	}
	for i, w := range wantWalls {
		if level.Walls[i] != w {
			t.Errorf("wall %d = %+v, want %+v", i, level.Walls[i], w)
		}
	}

	if len(level.Checkpoints) != 2 {
		t.Fatalf("checkpoints = %d, want 2", len(level.Checkpoints))
	}
	if cp := level.Checkpoints[0]; !cp.Active || cp.ID != 2 || cp.Center != (math.Vec2{X: 60, Y: 56}) || cp.Half != (math.Vec2{X: 8, Y: 8}) {
		t.Errorf("checkpoint 0 = %+v", cp)
	}
	if cp := level.Checkpoints[1]; cp.Active || cp.Center != (math.Vec2{X: 104, Y: 57}) || cp.Half != (math.Vec2{X: 8, Y: 9}) {
		t.Errorf("checkpoint 1 = %+v", cp)
	}

	if len(level.Spikes) != 1 || level.Spikes[0].Center != (math.Vec2{X: 84, Y: 52}) {
		t.Errorf("spikes = %+v", level.Spikes)
	}
	if len(level.Pins) != 1 || level.Pins[0].ID != 5 {
		t.Errorf("pins = %+v", level.Pins)
	}
	if len(level.Exits) != 1 || level.Exits[0].RequiredPins != 1 || level.RequiredPins() != 1 {
		t.Errorf("exits = %+v", level.Exits)
	}
	if len(level.Elevators) != 1 || level.Elevators[0].Span != 48 || !level.Elevators[0].Horizontal {
		t.Errorf("elevators = %+v", level.Elevators)
	}
	if len(level.Platforms) != 1 || level.Platforms[0].Half != DefaultHalfExtents[GroupPlatforms] {
		t.Errorf("platforms = %+v", level.Platforms)
	}
	if len(level.Sharpeners) != 1 || level.Sharpeners[0].PointToX != 100 {
		t.Errorf("sharpeners = %+v", level.Sharpeners)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name    string
		groups  string
		want    error
		context string
	}{
		{
			name: "missing spawn",
			want: ErrMissingField, context: "SpawnPoint",
		},
		{
			name: "exit without requirement",
			groups: testSpawn + `
 <objectgroup id="6" name="Exits">
  <object id="6" x="120" y="24"><point/></object>
 </objectgroup>`,
			want: ErrMissingField, context: "group Exits: object 6: required_pins",
		},
		{
			name: "bad point_to_x",
			groups: testSpawn + `
 <objectgroup id="9" name="Sharpeners">
  <object id="9" x="40" y="60">
   <properties><property name="point_to_x" value="far"/></properties>
   <point/>
  </object>
 </objectgroup>`,
			want: ErrInvalidField, context: "point_to_x",
		},
		{
			name: "unknown elevator axis",
			groups: testSpawn + `
 <objectgroup id="7" name="Elevators">
  <object id="7" x="72" y="10">
   <properties>
    <property name="span" type="int" value="2"/>
    <property name="axis" value="diagonal"/>
   </properties>
   <point/>
  </object>
 </objectgroup>`,
			want: ErrInvalidField, context: "axis",
		},
		{
			name: "zero elevator span",
			groups: testSpawn + `
 <objectgroup id="7" name="Elevators">
  <object id="7" x="72" y="10">
   <properties><property name="span" type="int" value="0"/></properties>
   <point/>
  </object>
 </objectgroup>`,
			want: ErrInvalidField, context: "span",
		},
		{
			name: "polygon spike",
			groups: testSpawn + `
 <objectgroup id="4" name="Spikes">
  <object id="4" x="84" y="44"><polygon points="0,0 4,0 4,4"/></object>
 </objectgroup>`,
			want: ErrInvalidField, context: "shape",
		},
		{
			name: "checkpoint active flag",
			groups: testSpawn + `
 <objectgroup id="3" name="Checkpoints">
  <object id="2" x="60" y="40">
   <properties><property name="active" value="maybe"/></properties>
   <point/>
  </object>
 </objectgroup>`,
			want: ErrInvalidField, context: "active",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := loadString(t, tmx(testWalls, c.groups))
			if !errors.Is(err, c.want) {
				t.Fatalf("err = %v, want %v", err, c.want)
			}
			if !strings.Contains(err.Error(), "levels/test.tmx") || !strings.Contains(err.Error(), c.context) {
				t.Fatalf("err %q lacks file or %q", err, c.context)
			}
		})
	}
}

func TestLoadAllSorted(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx":    {Data: []byte(tmx(testWalls, testSpawn))},
		"levels/a.tmx":    {Data: []byte(tmx(testWalls, testSpawn))},
		"levels/notes.md": {Data: []byte("ignored")},
	}
	levels, err := LoadAll(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(levels) != 2 || levels[0].Name != "a" || levels[1].Name != "b" {
		t.Fatalf("levels = %v", levels)
	}

	if _, err := LoadAll(fstest.MapFS{}, "levels"); err == nil {
		t.Fatal("expected an error for an empty directory")
	}
}
