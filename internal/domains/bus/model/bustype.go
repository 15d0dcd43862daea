package model

const (
	BusTypeTableName  = "bus_types"
	BusTypeEntityName = "bus_type"

	BusTypeFieldID          = "id"
	BusTypeFieldTypeName    = "type_name"
	BusTypeFieldCapacity    = "capacity"
	BusTypeFieldDescription = "description"
)

type BusType struct {
	ID          int64   `db:"id"`
	TypeName    string  `db:"type_name"`
	Capacity    int     `db:"capacity"`
	Description *string `db:"description"`
}
