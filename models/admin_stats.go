package models

// AdminStats — сводка для админ-панели
type AdminStats struct {
	TotalUsers     int    `json:"total_users"`
	ActiveUsers    int    `json:"active_users"`
	TotalServers   int    `json:"total_servers"`
	RunningServers int    `json:"running_servers"`
	OpenTickets    int    `json:"open_tickets"`
	PendingOrders  int    `json:"pending_orders"`
	MonthlyRevenue Amount `json:"monthly_revenue"`
	TotalRevenue   Amount `json:"total_revenue"`
	PendingPayouts Amount `json:"pending_payouts"`
}
