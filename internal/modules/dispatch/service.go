// Package dispatch aggregates the suggestion queue into a vendor order and
// hands it to the mail transport.
package dispatch

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/rmehra-dev/medstock-backend/internal/modules/reorder"
	"github.com/rmehra-dev/medstock-backend/pkg/mailer"
	"github.com/rmehra-dev/medstock-backend/pkg/spreadsheet"
)

const (
	mailSubject    = "New Order Request"
	mailBody       = "Please find attached the new order list."
	attachmentName = "new_order.xlsx"
)

// SendResult acknowledges a send request. Scheduled is false when there was
// nothing to send.
type SendResult struct {
	Message   string `json:"message"`
	Scheduled bool   `json:"-"`
}

// Service defines order dispatch.
type Service interface {
	// Send aggregates the suggestion queue, serializes it to a spreadsheet,
	// and schedules mail to the vendor. The queue is left untouched, so a
	// later Send resends the accumulated backlog. An empty queue is a no-op.
	Send(ctx context.Context, vendorEmail string) (*SendResult, error)
}

type service struct {
	orders     reorder.Service
	dispatcher *Dispatcher
}

// NewService creates a new dispatch service.
func NewService(orders reorder.Service, dispatcher *Dispatcher) Service {
	return &service{orders: orders, dispatcher: dispatcher}
}

func (s *service) Send(ctx context.Context, vendorEmail string) (*SendResult, error) {
	items, err := s.orders.BuildOrder(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return &SendResult{Message: "No orders to send"}, nil
	}

	lines := make([]spreadsheet.OrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, spreadsheet.OrderLine{Medicine: it.Name, Quantity: it.Quantity})
	}

	var buf bytes.Buffer
	if err := spreadsheet.WriteOrder(&buf, lines); err != nil {
		return nil, fmt.Errorf("building order sheet: %w", err)
	}

	scheduled := s.dispatcher.Enqueue(mailer.Message{
		To:             vendorEmail,
		Subject:        mailSubject,
		Body:           mailBody,
		AttachmentName: attachmentName,
		Attachment:     buf.Bytes(),
	})
	if !scheduled {
		log.Printf("mail queue full, order mail to %s dropped", vendorEmail)
	}

	return &SendResult{Message: "Order email sent", Scheduled: scheduled}, nil
}
