// Package entity contains the core business objects of the project.
package entity

// ProductType identifies the fabrication product family of a line item.
type ProductType string

const (
	// ProductTypePegboard is a pegboard cut from a shared board.
	ProductTypePegboard ProductType = "PEGBOARD"
	// ProductTypeProfile is a custom aluminum profile.
	ProductTypeProfile ProductType = "PROFILE"
	// ProductTypeCabinetDoor is a cabinet door cut from a shared board.
	ProductTypeCabinetDoor ProductType = "CABINET_DOOR"
	// ProductTypeFrame is a picture frame.
	ProductTypeFrame ProductType = "FRAME"
)

// String returns the string representation of the ProductType.
func (p ProductType) String() string {
	return string(p)
}

// SupportsSharedBoard reports whether items of this type are cut from a
// shared board and participate in board reservations.
func (p ProductType) SupportsSharedBoard() bool {
	switch p {
	case ProductTypePegboard, ProductTypeCabinetDoor:
		return true
	default:
		return false
	}
}
