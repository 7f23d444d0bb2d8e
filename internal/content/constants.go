package content

// ============================================================================
// Content Files
// ============================================================================

const (
	DataDir        = "data"
	FileMonsters   = "monsters.json"
	FileAttributes = "attributes.json"
	FileItems      = "items.json"
	FileSets       = "sets.json"
	FilePets       = "pets.json"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrContextOpenContent    = "failed to open content"
	ErrContextReadContent    = "failed to read content file"
	ErrContextParseContent   = "failed to parse content file"
	ErrContextInvalidContent = "invalid content"

	ErrMsgNoMonsters       = "no monsters defined"
	ErrMsgMissingMaterials = "no materials for rarity"
	ErrMsgMissingNouns     = "no equipment nouns for slot"
)
