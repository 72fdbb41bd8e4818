package options

// Mode is one of the mutually exclusive terminal paths of a run
type Mode int

const (
	ModeBuild Mode = iota
	ModeList
	ModeGenerate
	ModeQuick
	ModeFetch
)

// Modes lists every mode; a dispatcher switch should cover all of them
var Modes = []Mode{ModeList, ModeGenerate, ModeQuick, ModeFetch, ModeBuild}

func (m Mode) String() string {
	switch m {
	case ModeBuild:
		return "build"
	case ModeList:
		return "list"
	case ModeGenerate:
		return "generate"
	case ModeQuick:
		return "quick"
	case ModeFetch:
		return "fetch"
	default:
		return "unknown"
	}
}
