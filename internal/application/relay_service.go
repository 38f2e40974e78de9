package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rentwise/rentwise/internal/domain/entity"
	repo "github.com/rentwise/rentwise/internal/domain/repository"
)

// MailSender delivers a notification email. The relay treats it as optional
// and best-effort.
type MailSender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// RelayService fans a lifecycle event out to observers: every event is
// rebroadcast unmodified on the observer channel, and approved/rejected
// requests email the prospective tenant when a sender is configured. Both
// hops are best-effort; a failure is logged and never surfaced, so the
// consumer can ack the message regardless and redelivery never duplicates
// user-visible writes.
type RelayService struct {
	Bus    repo.Broadcaster
	Mail   MailSender
	Logger *logrus.Logger
}

func NewRelayService(bus repo.Broadcaster, mail MailSender, logger *logrus.Logger) *RelayService {
	return &RelayService{Bus: bus, Mail: mail, Logger: logger}
}

// Handle processes one event: log per status, rebroadcast, maybe email.
func (s *RelayService) Handle(ctx context.Context, ev *entity.TenantRequestEvent) {
	fields := logrus.Fields{"request_id": ev.RequestID, "email": ev.Email}
	if s.Logger != nil {
		switch ev.Status {
		case entity.EventCreated:
			s.Logger.WithFields(fields).Info("tenant request received")
		case entity.EventApproved:
			s.Logger.WithFields(fields).Info("tenant request approved")
		case entity.EventRejected:
			s.Logger.WithFields(fields).Info("tenant request rejected")
		default:
			s.Logger.WithFields(fields).WithField("status", ev.Status).Warn("unknown event status")
		}
	}

	if s.Bus != nil {
		bctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := s.Bus.Broadcast(bctx, ev); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithFields(fields).Warn("broadcast failed")
		}
		cancel()
	}

	if s.Mail == nil || ev.Status == entity.EventCreated {
		return
	}
	subject, text := composeRequestEmail(ev)
	mctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := s.Mail.Send(mctx, ev.Email, subject, text, ""); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithFields(fields).Warn("email send failed")
	}
}

func composeRequestEmail(ev *entity.TenantRequestEvent) (subject, text string) {
	name := ev.FirstName
	if name == "" {
		name = "there"
	}
	if ev.Status == entity.EventApproved {
		return "Your tenancy request was approved",
			fmt.Sprintf("Hi %s,\n\nYour tenancy request has been approved. Welcome aboard!\n", name)
	}
	return "Your tenancy request was declined",
		fmt.Sprintf("Hi %s,\n\nUnfortunately your tenancy request has been declined.\n", name)
}
