package models

import "time"

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`

	// 计算字段
	LinkCount int `json:"link_count,omitempty"`
}

type Subcategory struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CategoryID string    `json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`

	// 计算字段
	LinkCount int `json:"link_count,omitempty"`
}

type CategoryCreateRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type SubcategoryCreateRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}
