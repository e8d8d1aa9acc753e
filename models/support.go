package models

// Ticket — обращение в поддержку
type Ticket struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Subject   string `json:"subject"`
	Status    string `json:"status"` // open, answered, closed
	Priority  string `json:"priority,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// TicketMessage — сообщение в тикете
type TicketMessage struct {
	ID        int64  `json:"id"`
	TicketID  int64  `json:"ticket_id"`
	UserID    int64  `json:"user_id"`
	IsStaff   bool   `json:"is_staff"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at,omitempty"`
}
