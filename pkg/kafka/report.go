package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Goden-Gun/mt4-retcode/pkg/codes"
)

// Report is the event published for an MT4 manager call that did not succeed.
type Report struct {
	ID         string    `json:"id"`
	Operation  string    `json:"operation"`
	Login      int       `json:"login,omitempty"`
	Code       int       `json:"ret_code"`
	Symbol     string    `json:"ret_symbol"`
	Message    string    `json:"ret_msg"`
	Locale     string    `json:"locale"`
	Reserved   bool      `json:"reserved,omitempty"`
	Pending    bool      `json:"pending,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Reporter publishes non-success return codes to Kafka.
type Reporter struct {
	manager  *Manager
	topic    string
	resolver *codes.Resolver
	now      func() time.Time
}

// NewReporter returns a reporter writing to topic (empty uses the manager's
// default topic). A nil resolver uses the default locale.
func NewReporter(m *Manager, topic string, r *codes.Resolver) *Reporter {
	if r == nil {
		r = codes.Default()
	}
	return &Reporter{manager: m, topic: topic, resolver: r, now: time.Now}
}

// NewReport builds the event for code without publishing it.
func (r *Reporter) NewReport(operation string, login, code int) Report {
	return Report{
		ID:         uuid.NewString(),
		Operation:  operation,
		Login:      login,
		Code:       code,
		Symbol:     codes.Code(code).String(),
		Message:    r.resolver.Resolve(code),
		Locale:     string(r.resolver.Locale()),
		Reserved:   codes.IsReserved(code),
		Pending:    codes.IsPending(code),
		OccurredAt: r.now().UTC(),
	}
}

// Report publishes a Report for code. Success codes are skipped and return
// (false, nil). Messages are keyed by login so one account stays ordered.
func (r *Reporter) Report(ctx context.Context, operation string, login, code int) (bool, error) {
	if r == nil || r.manager == nil {
		return false, errors.New("kafka reporter not configured")
	}
	if codes.IsSuccess(code) {
		return false, nil
	}
	ev := r.NewReport(operation, login, code)
	value, err := json.Marshal(ev)
	if err != nil {
		return false, fmt.Errorf("marshal report: %w", err)
	}
	var key []byte
	if login != 0 {
		key = []byte(strconv.Itoa(login))
	}
	if err := r.manager.Publish(ctx, r.topic, key, value); err != nil {
		return false, fmt.Errorf("publish %s report: %w", ev.Symbol, err)
	}
	return true, nil
}
