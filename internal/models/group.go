package models

import "time"

type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LinkIDs   []string  `json:"linkIds"`
	Hidden    bool      `json:"hidden"`
	CreatedAt time.Time `json:"createdAt"`

	// 关联（读取时填充，悬空的链接ID会被过滤掉）
	Links []Link `json:"links,omitempty"`
}

type GroupCreateRequest struct {
	Name    string   `json:"name" validate:"required,max=100"`
	LinkIDs []string `json:"link_ids"`
}

type GroupUpdateRequest struct {
	Name    string   `json:"name" validate:"required,max=100"`
	LinkIDs []string `json:"link_ids"`
}
