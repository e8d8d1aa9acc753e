package referral

import (
	"fmt"
	"time"
)

// Словарь статусов выплат бэкенда → статусы витрины.
// failed и cancelled намеренно схлопнуты в rejected — UI их не различает.
var payoutStatusMap = map[string]string{
	"pending":    "requested",
	"processing": "under_review",
	"completed":  "paid",
	"failed":     "rejected",
	"cancelled":  "rejected",
}

func mapPayoutStatus(backend string) string {
	if mapped, ok := payoutStatusMap[backend]; ok {
		return mapped
	}
	return "requested"
}

// normalizeLevel приводит уровень к диапазону 1..3 (вне диапазона — 1)
func normalizeLevel(level int) int {
	if level < 1 || level > 3 {
		return 1
	}
	return level
}

// payoutNumber — бэкенд не ведёт номера выплат, выводим из id
func payoutNumber(id int64) string {
	return fmt.Sprintf("PAYOUT-%d", id)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// taxPeriod выводит налоговый год и квартал из даты заявки.
// Кварталы календарные: 1-3 → 1, 4-6 → 2, 7-9 → 3, 10-12 → 4.
func taxPeriod(requestedAt string) (year, quarter int) {
	t, ok := parseTimestamp(requestedAt)
	if !ok {
		return 0, 0
	}
	return t.Year(), (int(t.Month())-1)/3 + 1
}
