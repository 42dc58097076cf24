package dto

import "strings"

// SchoolDTO is the wire shape of a school.
type SchoolDTO struct {
	ID         *int64  `json:"id"`
	SchoolName *string `json:"schoolName" validate:"omitempty,max=255"`
	Address    *string `json:"address" validate:"omitempty,max=255"`
	Phone      *string `json:"phone" validate:"omitempty,max=32"`
}

// Identifier returns the school identifier.
func (d *SchoolDTO) Identifier() *int64 {
	if d == nil {
		return nil
	}
	return d.ID
}

// Equal compares identifiers only.
func (d *SchoolDTO) Equal(o *SchoolDTO) bool {
	if d == nil || o == nil {
		return false
	}
	return sameIdentity(d.ID, o.ID)
}

// Hash derives from the identifier alone.
func (d *SchoolDTO) Hash() uint64 {
	return identityHash(d.Identifier())
}

func (d *SchoolDTO) String() string {
	var b strings.Builder
	b.WriteString("SchoolDTO{id=")
	b.WriteString(fmtID(d.ID))
	b.WriteString(", schoolName=")
	b.WriteString(fmtText(d.SchoolName))
	b.WriteString(", address=")
	b.WriteString(fmtText(d.Address))
	b.WriteString(", phone=")
	b.WriteString(fmtText(d.Phone))
	b.WriteString("}")
	return b.String()
}
