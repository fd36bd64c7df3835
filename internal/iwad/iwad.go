// Package iwad knows the commercial and shareware IWAD files by name and
// builds the ordered list of files handed to the lump catalog at startup.
package iwad

import "path/filepath"

// GameType is the game a primary archive belongs to
type GameType int

const (
	DoomIShareware GameType = iota
	DoomIRegistered
	UltimateDoom
	DoomII
)

// Language of the text baked into an IWAD
type Language int

const (
	English Language = iota
	French
)

// Info classifies one known IWAD file name
type Info struct {
	Name     string
	GameType GameType
	Language Language
}

// Known lists the recognized IWADs in search order
var Known = [...]Info{
	{Name: "doom2f.wad", GameType: DoomII, Language: French},
	{Name: "doom2.wad", GameType: DoomII, Language: English},
	{Name: "plutonia.wad", GameType: DoomII, Language: English},
	{Name: "tnt.wad", GameType: DoomII, Language: English},
	{Name: "doomu.wad", GameType: UltimateDoom, Language: English},
	{Name: "doom.wad", GameType: DoomIRegistered, Language: English},
	{Name: "doom1.wad", GameType: DoomIShareware, Language: English},
}

// Lookup classifies a path by its base file name
func Lookup(path string) (Info, bool) {
	name := filepath.Base(path)
	for _, info := range Known {
		if info.Name == name {
			return info, true
		}
	}
	return Info{}, false
}

func (g GameType) String() string {
	switch g {
	case DoomIShareware:
		return "Doom I (shareware)"
	case DoomIRegistered:
		return "Doom I (registered)"
	case UltimateDoom:
		return "The Ultimate Doom"
	case DoomII:
		return "Doom II"
	default:
		return "unknown"
	}
}

func (l Language) String() string {
	switch l {
	case English:
		return "English"
	case French:
		return "French"
	default:
		return "unknown"
	}
}
