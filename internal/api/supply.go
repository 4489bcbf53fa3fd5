package api

import "time"

type UpdateSupplyRequest struct {
	Items []string `json:"items" validate:"required"`
}

type SupplyResponse struct {
	Id            int64     `json:"id"`
	StorageRoom   string    `json:"storageRoom"`
	Items         []string  `json:"items"`
	LastUpdatedBy *UserCard `json:"lastUpdatedBy"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type SupplyMutationResponse struct {
	Message string         `json:"message"`
	Supply  SupplyResponse `json:"supply"`
}
