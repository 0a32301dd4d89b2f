package buildinfo

// Ces variables sont typiquement injectées à la compilation via -ldflags.
// Exemple :
//
//	-X github.com/jukebox-go/jukebox/internal/buildinfo.Version=v0.1.0
//	-X github.com/jukebox-go/jukebox/internal/buildinfo.Commit=abcdef
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
	Date    string `json:"date,omitempty"`
}

func Current() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// String : "dev", "v0.1.0 (abcdef)" ou "v0.1.0 (abcdef, 2026-10-15)".
func (i Info) String() string {
	switch {
	case i.Commit == "":
		return i.Version
	case i.Date == "":
		return i.Version + " (" + i.Commit + ")"
	default:
		return i.Version + " (" + i.Commit + ", " + i.Date + ")"
	}
}
