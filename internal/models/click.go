package models

import "time"

type ClickRecord struct {
	ID        string    `json:"id"`
	LinkID    string    `json:"linkId"`
	ClickedAt time.Time `json:"clickedAt"`
}

type TopLink struct {
	Link   Link `json:"link"`
	Clicks int  `json:"clicks"`
}

type DayClicks struct {
	Date   string `json:"date"`
	Clicks int    `json:"clicks"`
}

type Stats struct {
	TotalClicks     int         `json:"total_clicks"`
	ClicksToday     int         `json:"clicks_today"`
	ClicksThisWeek  int         `json:"clicks_this_week"`
	ClicksThisMonth int         `json:"clicks_this_month"`
	TopLinks        []TopLink   `json:"top_links"`
	ClicksByDay     []DayClicks `json:"clicks_by_day"`
}
