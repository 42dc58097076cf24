package dto

import "fmt"

// ClassSchoolDTO is the wire shape of a class.
type ClassSchoolDTO struct {
	ID          *int64  `json:"id"`
	ClassName   *string `json:"className" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1024"`
}

// Identifier returns the class identifier.
func (d *ClassSchoolDTO) Identifier() *int64 {
	if d == nil {
		return nil
	}
	return d.ID
}

// Equal compares identifiers only.
func (d *ClassSchoolDTO) Equal(o *ClassSchoolDTO) bool {
	if d == nil || o == nil {
		return false
	}
	return sameIdentity(d.ID, o.ID)
}

func (d *ClassSchoolDTO) Hash() uint64 {
	return identityHash(d.Identifier())
}

func (d *ClassSchoolDTO) String() string {
	return fmt.Sprintf("ClassSchoolDTO{id=%s, className=%s, description=%s}",
		fmtID(d.ID), fmtText(d.ClassName), fmtText(d.Description))
}
