package services

import (
	"sort"
	"time"

	"links-backend/internal/models"
	"links-backend/internal/store"
)

type StatsService struct {
	container *store.Container
}

func NewStatsService(container *store.Container) *StatsService {
	return &StatsService{container: container}
}

// GetStats 汇总点击数据：总量、今日/本周/本月、
// 点击最多的 10 个链接和最近 30 天的按日曲线
func (s *StatsService) GetStats() *models.Stats {
	snapshot := s.container.Snapshot()

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := today.AddDate(0, 0, -7)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := &models.Stats{
		TotalClicks: len(snapshot.ClickRecords),
		TopLinks:    []models.TopLink{},
		ClicksByDay: []models.DayClicks{},
	}

	byDay := make(map[string]int)
	for _, record := range snapshot.ClickRecords {
		if !record.ClickedAt.Before(today) {
			stats.ClicksToday++
		}
		if !record.ClickedAt.Before(weekStart) {
			stats.ClicksThisWeek++
		}
		if !record.ClickedAt.Before(monthStart) {
			stats.ClicksThisMonth++
		}
		byDay[record.ClickedAt.Format("2006-01-02")]++
	}

	top := make([]models.TopLink, 0, len(snapshot.Links))
	for _, link := range snapshot.Links {
		top = append(top, models.TopLink{Link: link, Clicks: link.Clicks})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Clicks > top[j].Clicks })
	if len(top) > 10 {
		top = top[:10]
	}
	stats.TopLinks = top

	// 最近 30 天，从最早到今天
	for i := 29; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		date := day.Format("2006-01-02")
		stats.ClicksByDay = append(stats.ClicksByDay, models.DayClicks{
			Date:   date,
			Clicks: byDay[date],
		})
	}

	return stats
}
