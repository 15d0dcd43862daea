package model

const (
	TableName  = "buses"
	EntityName = "bus"

	FieldID                 = "id"
	FieldBusTypeID          = "bus_type_id"
	FieldRegistrationNumber = "registration_number"
	FieldModel              = "model"
	FieldStatus             = "status"
)

type Bus struct {
	ID                 int64  `db:"id"`
	BusTypeID          int64  `db:"bus_type_id"`
	RegistrationNumber string `db:"registration_number"`
	Model              string `db:"model"`
	Status             string `db:"status"`

	TypeName string `db:"type_name" table:"bus_types"`
	Capacity int    `db:"capacity"  table:"bus_types"`
}

func (Bus) GetJoinQuery() string {
	return "LEFT JOIN bus_types ON bus_types.id = buses.bus_type_id"
}
