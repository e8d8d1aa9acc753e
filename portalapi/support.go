package portalapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/obidua/BIDUA-Hosting-sub003/models"
)

func (c *Client) Tickets(ctx context.Context) ([]models.Ticket, error) {
	var tickets []models.Ticket
	if err := c.request(ctx, "/api/tickets", requestOptions{}, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

type CreateTicketRequest struct {
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Priority string `json:"priority,omitempty"`
}

func (c *Client) CreateTicket(ctx context.Context, req CreateTicketRequest) (*models.Ticket, error) {
	var ticket models.Ticket
	err := c.request(ctx, "/api/tickets", requestOptions{
		method: http.MethodPost,
		body:   req,
	}, &ticket)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (c *Client) TicketMessages(ctx context.Context, ticketID int64) ([]models.TicketMessage, error) {
	var messages []models.TicketMessage
	endpoint := fmt.Sprintf("/api/tickets/%d/messages", ticketID)
	if err := c.request(ctx, endpoint, requestOptions{}, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Client) AddTicketMessage(ctx context.Context, ticketID int64, message string) (*models.TicketMessage, error) {
	var msg models.TicketMessage
	err := c.request(ctx, fmt.Sprintf("/api/tickets/%d/messages", ticketID), requestOptions{
		method: http.MethodPost,
		body:   map[string]string{"message": message},
	}, &msg)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// UpdateTicketStatus переводит тикет в новый статус (open/answered/closed)
func (c *Client) UpdateTicketStatus(ctx context.Context, ticketID int64, status string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := c.request(ctx, fmt.Sprintf("/api/tickets/%d/status", ticketID), requestOptions{
		method: http.MethodPatch,
		body:   map[string]string{"status": status},
	}, &ticket)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}
