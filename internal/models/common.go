package models

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// AppData 是完整的数据快照，持久化和备份都以它为单位
type AppData struct {
	Links         []Link        `json:"links"`
	Categories    []Category    `json:"categories"`
	Subcategories []Subcategory `json:"subcategories"`
	Groups        []Group       `json:"groups"`
	ClickRecords  []ClickRecord `json:"clickRecords"`
}

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type SuggestRequest struct {
	URL  string `json:"url" validate:"required,linkurl"`
	Name string `json:"name"`
}

type AISuggestion struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Icon        string   `json:"icon,omitempty"`
}
