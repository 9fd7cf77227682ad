package lumina

// Marker is the character reserved metadata property names begin with.
// A property whose name starts with it is document metadata unless it
// appears inside the state container.
const Marker = '@'

const (
	MetaLink           = "@link"
	MetaState          = "@state"
	MetaRelations      = "@relations"
	MetaType           = "@type"
	MetaOptional       = "@optional"
	MetaOptions        = "@options"
	MetaDescription    = "@description"
	MetaDeprecated     = "@deprecated"
	MetaAuthentication = "@authentication"
)

// Metadata returns the reserved property names. Only MetaLink, MetaState
// and MetaRelations are interpreted by this package; the rest are stored
// and passed through untouched.
func Metadata() []string {
	return []string{
		MetaLink,
		MetaState,
		MetaRelations,
		MetaType,
		MetaOptional,
		MetaOptions,
		MetaDescription,
		MetaDeprecated,
		MetaAuthentication,
	}
}
