package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single script.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// ScriptLine is one line of a script. It is created once while the line
// model is built and never mutated afterwards.
type ScriptLine struct {
	Number  uint32 // 1-based
	Content string // verbatim, without the line terminator
	Trimmed string // Content without leading/trailing whitespace
}

// IsComment reports whether the line is a whole-line comment.
func (l ScriptLine) IsComment() bool {
	return len(l.Trimmed) > 0 && l.Trimmed[0] == '#'
}

// IsBlank reports whether the line has no visible content.
func (l ScriptLine) IsBlank() bool {
	return l.Trimmed == ""
}
