package wad

// Kind identifies what an ingested file contributes to the catalog
type Kind int

const (
	// KindIWAD is a primary archive holding a complete resource set
	KindIWAD Kind = iota
	// KindPWAD is a patch archive whose lumps override earlier ones
	KindPWAD
	// KindLump is a standalone file holding exactly one lump
	KindLump
)

const (
	// HeaderSize is the size in bytes of the archive header
	HeaderSize = 12
	// DirEntrySize is the size in bytes of one directory record
	DirEntrySize = 16
	// MaxNameLength is the width of the on-disk lump name field
	MaxNameLength = 8

	// ReloadPrefix marks a path whose lumps are re-read from disk on every read
	ReloadPrefix = "~"

	archiveExt = ".wad"
	lumpExt    = ".lmp"
)

var (
	identIWAD = [4]byte{'I', 'W', 'A', 'D'}
	identPWAD = [4]byte{'P', 'W', 'A', 'D'}
)

func (k Kind) String() string {
	switch k {
	case KindIWAD:
		return "IWAD"
	case KindPWAD:
		return "PWAD"
	case KindLump:
		return "LUMP"
	default:
		return "UNKNOWN"
	}
}

// Header is the decoded 12 byte archive header
type Header struct {
	Kind      Kind
	NumLumps  uint32
	DirOffset uint32
}

// DirEntry is one decoded 16 byte directory record
type DirEntry struct {
	FilePos uint32
	Size    uint32
	Name    [MaxNameLength]byte
}

// Lump is a named byte range inside an ingested file
type Lump struct {
	// Name with trailing null padding removed
	Name string
	// Path is the real file path, without the reload prefix
	Path   string
	Offset int64
	Size   int64
	Reload bool

	archive *Archive
}

// Archive returns the ingested file the lump belongs to
func (l *Lump) Archive() *Archive {
	return l.archive
}

// LumpData is a lump to be written into a new archive
type LumpData struct {
	Name string
	Data []byte
}
