package entity

type Service struct {
	Base
	ServiceName string  `db:"service_name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
}
