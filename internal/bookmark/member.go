package bookmark

import "fmt"

// MemberRef identifies the program element a bookmark refers to.
// Bookmarks hold the reference; they never copy or inspect the element.
type MemberRef interface {
	fmt.Stringer
}

// MemberToken is a MemberRef for a metadata member of a loaded module.
type MemberToken struct {
	// Module is the name of the module that defines the member.
	Module string

	// Token is the metadata token of the member.
	Token uint32

	// Name is the member's display name.
	Name string
}

// String returns "Module!Name (0xTOKEN)".
func (m MemberToken) String() string {
	return fmt.Sprintf("%s!%s (0x%08X)", m.Module, m.Name, m.Token)
}
