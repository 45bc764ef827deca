package models

import "time"

type Link struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	URL           string    `json:"url"`
	Description   string    `json:"description"`
	CategoryID    string    `json:"categoryId"`
	SubcategoryID *string   `json:"subcategoryId,omitempty"`
	Tags          []string  `json:"tags"`
	Clicks        int       `json:"clicks"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Icon          *string   `json:"icon,omitempty"`
}

type LinkCreateRequest struct {
	Name          string   `json:"name" validate:"required,max=255"`
	URL           string   `json:"url" validate:"required,linkurl"`
	Description   string   `json:"description"`
	CategoryID    string   `json:"category_id"`
	SubcategoryID *string  `json:"subcategory_id"`
	Tags          []string `json:"tags"`
	Icon          *string  `json:"icon"`
}

type LinkUpdateRequest struct {
	Name          string   `json:"name" validate:"required,max=255"`
	URL           string   `json:"url" validate:"required,linkurl"`
	Description   string   `json:"description"`
	CategoryID    string   `json:"category_id"`
	SubcategoryID *string  `json:"subcategory_id"`
	Tags          []string `json:"tags"`
	Icon          *string  `json:"icon"`
}

type LinkListRequest struct {
	Page          int    `form:"page" validate:"min=1"`
	Limit         int    `form:"limit" validate:"min=1,max=100"`
	CategoryID    string `form:"category_id"`
	SubcategoryID string `form:"subcategory_id"`
	Tag           string `form:"tag"`
	Search        string `form:"search"`
	Sort          string `form:"sort" validate:"oneof=created_at updated_at name clicks"`
	Order         string `form:"order" validate:"oneof=asc desc"`
}
