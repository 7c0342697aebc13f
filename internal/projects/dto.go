package projects

import "time"

type CreateProjectRequest struct {
	Name         string     `json:"name" validate:"required,max=200"`
	Description  string     `json:"description"`
	CustomerID   int64      `json:"customerId" validate:"required,gt=0"`
	Status       string     `json:"status" validate:"omitempty,oneof=Gepland 'In uitvoering' Voltooid Gepauzeerd"`
	Progress     int        `json:"progress" validate:"gte=0,lte=100"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	WorkOrderIDs []int64    `json:"workOrderIds,omitempty"`
}

type UpdateProjectRequest struct {
	Name         *string    `json:"name,omitempty" validate:"omitempty,max=200"`
	Description  *string    `json:"description,omitempty"`
	CustomerID   *int64     `json:"customerId,omitempty" validate:"omitempty,gt=0"`
	Status       *string    `json:"status,omitempty" validate:"omitempty,oneof=Gepland 'In uitvoering' Voltooid Gepauzeerd"`
	Progress     *int       `json:"progress,omitempty" validate:"omitempty,gte=0,lte=100"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	WorkOrderIDs []int64    `json:"workOrderIds,omitempty"`
}
