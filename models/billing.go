package models

// Order — заказ тарифа
type Order struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	PlanID      int64  `json:"plan_id"`
	Amount      Amount `json:"amount"`
	Currency    string `json:"currency,omitempty"`
	Status      string `json:"status"` // pending, paid, cancelled
	BillingTerm string `json:"billing_term,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Payment — платёж по заказу
type Payment struct {
	ID        int64  `json:"id"`
	OrderID   int64  `json:"order_id"`
	Amount    Amount `json:"amount"`
	Method    string `json:"method,omitempty"`
	Status    string `json:"status"`
	Reference string `json:"reference,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Invoice — счёт
type Invoice struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	OrderID       int64  `json:"order_id,omitempty"`
	InvoiceNumber string `json:"invoice_number"`
	Amount        Amount `json:"amount"`
	TaxAmount     Amount `json:"tax_amount"`
	TotalAmount   Amount `json:"total_amount"`
	Status        string `json:"status"`
	DueDate       string `json:"due_date,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// BillingSettings — платёжные настройки пользователя
type BillingSettings struct {
	CompanyName string `json:"company_name,omitempty"`
	TaxID       string `json:"tax_id,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
}

// PaymentMethod — доступный способ оплаты
type PaymentMethod struct {
	ID        int64  `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	IsEnabled bool   `json:"is_enabled"`
}
