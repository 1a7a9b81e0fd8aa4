// Package assets embeds the game's levels.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/scaaale/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// LevelsDir is the directory of TMX files inside FS.
const LevelsDir = "levels"

// FS exposes the embedded files, for tools that load levels themselves.
func FS() fs.FS {
	return assetFS
}

// MustLoadLevels parses every embedded level, in file name order. A broken
// level is a build defect, so it panics.
func MustLoadLevels() []*leveldata.Level {
	levels, err := leveldata.LoadAll(assetFS, LevelsDir)
	if err != nil {
		panic(fmt.Sprintf("failed to load levels: %v", err))
	}
	return levels
}
