package models

// Plan — тариф VPS/хостинга
type Plan struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	Description  string `json:"description,omitempty"`
	CPUCores     int    `json:"cpu_cores"`
	RAMMb        int    `json:"ram_mb"`
	DiskGb       int    `json:"disk_gb"`
	BandwidthGb  int    `json:"bandwidth_gb"`
	PriceMonthly Amount `json:"price_monthly"`
	PriceYearly  Amount `json:"price_yearly"`
	ProductType  string `json:"product_type"` // vps, dedicated, hosting
	IsActive     bool   `json:"is_active"`
}

// Server — сервер клиента
type Server struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	PlanID    int64  `json:"plan_id"`
	Name      string `json:"name"`
	Hostname  string `json:"hostname,omitempty"`
	Status    string `json:"status"` // provisioning, running, stopped, suspended
	IPAddress string `json:"ip_address,omitempty"`
	Region    string `json:"region,omitempty"`
	OS        string `json:"os,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	ExpiresAt string `json:"expires_at,omitempty"`
}
