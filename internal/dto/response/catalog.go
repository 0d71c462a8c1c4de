package response

import (
	"time"

	"github.com/monnybrand/the-shots-system/internal/data/entity"
)

type ServiceResponse struct {
	ID          int64     `json:"id"`
	ServiceName string    `json:"service_name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

func ServiceToResponse(service *entity.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:          service.ID,
		ServiceName: service.ServiceName,
		Description: service.Description,
		Price:       service.Price,
		CreatedAt:   service.CreatedAt,
	}
}

func ServicesToResponse(services []*entity.Service) []*ServiceResponse {
	out := make([]*ServiceResponse, 0, len(services))
	for _, service := range services {
		out = append(out, ServiceToResponse(service))
	}
	return out
}
