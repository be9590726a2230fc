// Package notifier sends the marketplace's transactional emails. Dispatch is
// best-effort: a failed send is logged and reported through Result, never as
// an error the triggering workflow operation could see.
package notifier

import (
	"bytes"
	"context"
	"fmt"

	"github.com/fatemaDiba/BiteShare-backend/internal/adapter/email"
	"github.com/fatemaDiba/BiteShare-backend/internal/platform/logger"
	"github.com/google/uuid"
)

// Result reports the outcome of a single dispatch. It is inspected only for
// logging; no caller branches on it.
type Result struct {
	Success   bool
	MessageID string
	Err       error
}

type FoodRequestedDetails struct {
	OwnerEmail     string
	OwnerName      string
	FoodName       string
	RequesterEmail string
	Note           string
	RequestedAt    string
}

type BulkOrderDetails struct {
	OwnerEmail      string
	OwnerName       string
	FoodName        string
	CustomerName    string
	CustomerEmail   string
	Quantity        int
	TotalPrice      string
	DeliveryDate    string
	DeliveryAddress string
	Notes           string
}

type Dispatcher interface {
	NotifyFoodRequested(ctx context.Context, details FoodRequestedDetails) Result
	NotifyBulkOrder(ctx context.Context, details BulkOrderDetails) Result
}

type emailDispatcher struct {
	sender email.EmailSender
	log    logger.Logger
}

func NewEmailDispatcher(sender email.EmailSender, log logger.Logger) Dispatcher {
	return &emailDispatcher{
		sender: sender,
		log:    log,
	}
}

func (d *emailDispatcher) NotifyFoodRequested(ctx context.Context, details FoodRequestedDetails) Result {
	messageID := uuid.NewString()
	subject := fmt.Sprintf("New request for your listing: %s", details.FoodName)

	var htmlBody, textBody bytes.Buffer
	if err := foodRequestedHTMLTmpl.Execute(&htmlBody, details); err != nil {
		return d.failed(messageID, subject, fmt.Errorf("failed to render food requested HTML body: %w", err))
	}
	if err := foodRequestedTextTmpl.Execute(&textBody, details); err != nil {
		return d.failed(messageID, subject, fmt.Errorf("failed to render food requested text body: %w", err))
	}

	if err := d.sender.Send(ctx, []string{details.OwnerEmail}, subject, htmlBody.String(), textBody.String()); err != nil {
		return d.failed(messageID, subject, err)
	}

	d.log.Infof("Food request notification %s dispatched to %s", messageID, details.OwnerEmail)
	return Result{Success: true, MessageID: messageID}
}

func (d *emailDispatcher) NotifyBulkOrder(ctx context.Context, details BulkOrderDetails) Result {
	messageID := uuid.NewString()
	subject := fmt.Sprintf("New bulk order for your listing: %s", details.FoodName)

	var htmlBody, textBody bytes.Buffer
	if err := bulkOrderHTMLTmpl.Execute(&htmlBody, details); err != nil {
		return d.failed(messageID, subject, fmt.Errorf("failed to render bulk order HTML body: %w", err))
	}
	if err := bulkOrderTextTmpl.Execute(&textBody, details); err != nil {
		return d.failed(messageID, subject, fmt.Errorf("failed to render bulk order text body: %w", err))
	}

	if err := d.sender.Send(ctx, []string{details.OwnerEmail}, subject, htmlBody.String(), textBody.String()); err != nil {
		return d.failed(messageID, subject, err)
	}

	d.log.Infof("Bulk order notification %s dispatched to %s", messageID, details.OwnerEmail)
	return Result{Success: true, MessageID: messageID}
}

func (d *emailDispatcher) failed(messageID, subject string, err error) Result {
	d.log.Errorf("Notification %s (subject: %s) failed to dispatch: %v", messageID, subject, err)
	return Result{Success: false, MessageID: messageID, Err: err}
}
