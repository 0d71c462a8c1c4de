package request

// ServiceRequest covers both create and full-overwrite update; a PUT
// replaces every field, there is no partial patch.
type ServiceRequest struct {
	ServiceName string  `json:"service_name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}
