package modules

import "strings"

// ID identifies a feature module that can be enabled or disabled site-wide.
type ID string

const (
	// ModuleBlog gates blog listing blocks and post content.
	ModuleBlog ID = "blog"
	// ModuleChat gates the chat widget block.
	ModuleChat ID = "chat"
	// ModuleProducts gates product and product grid blocks.
	ModuleProducts ID = "products"
	// ModuleKnowledgeBase gates knowledge-base article blocks.
	ModuleKnowledgeBase ID = "knowledgeBase"
	// ModuleBookings gates booking blocks.
	ModuleBookings ID = "bookings"
	// ModuleNewsletter gates newsletter signup blocks.
	ModuleNewsletter ID = "newsletter"
)

// Known lists every module identifier in stable order.
func Known() []ID {
	return []ID{
		ModuleBlog,
		ModuleChat,
		ModuleProducts,
		ModuleKnowledgeBase,
		ModuleBookings,
		ModuleNewsletter,
	}
}

// ParseID normalizes a raw module identifier.
func ParseID(value string) ID {
	return ID(strings.TrimSpace(value))
}

// Valid reports whether the identifier belongs to the known module set.
func (id ID) Valid() bool {
	for _, known := range Known() {
		if id == known {
			return true
		}
	}
	return false
}

// Setting captures the configured state for a single module.
type Setting struct {
	Enabled bool   `json:"enabled"`
	Name    string `json:"name,omitempty"`
}

// Config maps module identifiers to their configured state.
type Config map[ID]Setting

// Clone returns a deep copy of the configuration.
func (c Config) Clone() Config {
	if c == nil {
		return nil
	}
	out := make(Config, len(c))
	for id, setting := range c {
		out[id] = setting
	}
	return out
}

// DefaultConfig returns a configuration with every known module enabled.
func DefaultConfig() Config {
	out := make(Config, len(Known()))
	for _, id := range Known() {
		out[id] = Setting{Enabled: true, Name: displayName(id)}
	}
	return out
}

func displayName(id ID) string {
	switch id {
	case ModuleBlog:
		return "Blog"
	case ModuleChat:
		return "Chat"
	case ModuleProducts:
		return "Products"
	case ModuleKnowledgeBase:
		return "Knowledge Base"
	case ModuleBookings:
		return "Bookings"
	case ModuleNewsletter:
		return "Newsletter"
	default:
		return string(id)
	}
}

// Gate is an immutable snapshot of module configuration taken for the
// duration of one render or edit pass. Blocks consulting the same gate never
// observe two different values for the same module.
type Gate struct {
	settings Config
}

// NewGate builds a gate snapshot from the supplied configuration.
func NewGate(cfg Config) Gate {
	return Gate{settings: cfg.Clone()}
}

// IsEnabled reports whether the module is enabled. Module identifiers without
// a configured entry report enabled: only blocks with a declared module
// dependency are ever gated, and those dependencies are seeded into the
// configuration up front.
func (g Gate) IsEnabled(id ID) bool {
	if g.settings == nil {
		return true
	}
	setting, ok := g.settings[id]
	if !ok {
		return true
	}
	return setting.Enabled
}

// Settings returns a copy of the underlying configuration.
func (g Gate) Settings() Config {
	return g.settings.Clone()
}
