// Package notifier sends customer-facing SMS through a Twilio-style
// messaging API.
package notifier

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"tavola/entity"
)

type SMSConfig struct {
	BaseURL    string // e.g. https://api.twilio.com/2010-04-01
	AccountSID string
	AuthToken  string
	From       string
}

type SMSNotifier struct {
	client *resty.Client
	cfg    SMSConfig
	log    *logrus.Logger
}

func NewSMSNotifier(cfg SMSConfig, log *logrus.Logger) *SMSNotifier {
	if log == nil {
		log = logrus.StandardLogger()
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetBasicAuth(cfg.AccountSID, cfg.AuthToken)
	return &SMSNotifier{client: client, cfg: cfg, log: log}
}

type smsResponse struct {
	SID     string `json:"sid"`
	Status  string `json:"status"`
	Message string `json:"message"` // error detail on failure
}

// Send posts one message. Errors are returned to the caller as-is;
// there is no retry here.
func (n *SMSNotifier) Send(to, body string) error {
	var out smsResponse
	res, err := n.client.R().
		SetFormData(map[string]string{
			"To":   to,
			"From": n.cfg.From,
			"Body": body,
		}).
		SetResult(&out).
		SetError(&out).
		Post(fmt.Sprintf("/Accounts/%s/Messages.json", n.cfg.AccountSID))
	if err != nil {
		return fmt.Errorf("sms send to %s: %w", to, err)
	}
	if res.IsError() {
		return fmt.Errorf("sms api status %d: %s", res.StatusCode(), out.Message)
	}
	n.log.WithFields(logrus.Fields{"to": to, "sid": out.SID}).Debug("sms sent")
	return nil
}

// SendOrderUpdate composes the status text for an order and delegates
// to Send. estimatedMinutes is included only when positive.
func (n *SMSNotifier) SendOrderUpdate(phone, orderNumber string, status entity.OrderStatus, estimatedMinutes int) error {
	return n.Send(phone, ComposeOrderUpdate(orderNumber, status, estimatedMinutes))
}

// ComposeOrderUpdate builds the customer-facing message body.
func ComposeOrderUpdate(orderNumber string, status entity.OrderStatus, estimatedMinutes int) string {
	ref := shortRef(orderNumber)
	var msg string
	switch status {
	case entity.StatusPreparing:
		msg = fmt.Sprintf("Your order %s is now being prepared.", ref)
	case entity.StatusReady:
		msg = fmt.Sprintf("Your order %s is ready for pickup!", ref)
	case entity.StatusServed:
		msg = fmt.Sprintf("Your order %s has been served. Enjoy!", ref)
	case entity.StatusCompleted:
		msg = fmt.Sprintf("Your order %s is complete. Thank you!", ref)
	case entity.StatusDelayed:
		msg = fmt.Sprintf("Sorry, your order %s is running late.", ref)
	case entity.StatusCancelled:
		msg = fmt.Sprintf("Your order %s has been cancelled.", ref)
	default:
		msg = fmt.Sprintf("Your order %s was received.", ref)
	}
	if estimatedMinutes > 0 {
		msg += fmt.Sprintf(" Estimated time: %d minutes.", estimatedMinutes)
	}
	return msg
}

// shortRef trims a uuid order number to the first block for readability.
func shortRef(orderNumber string) string {
	if len(orderNumber) > 8 {
		return "#" + orderNumber[:8]
	}
	return "#" + orderNumber
}
