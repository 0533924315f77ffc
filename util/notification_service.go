// api/util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/aqari-dev/aqari/api/logging"
	"github.com/aqari-dev/aqari/api/model"
)

type NotificationService struct {
	// You might want to add dependencies here, such as a message queue client
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyPlanChange(ctx context.Context, changeType string, plans []model.Plan) error {
	// In a real implementation, you might send this to a message queue or external notification service
	switch changeType {
	case "replaced":
		logger.Info("NOTIFICATION: Plan list replaced",
			zap.Int("planCount", len(plans)))
	case "features_updated":
		logger.Info("NOTIFICATION: Plan features updated",
			zap.Int("planCount", len(plans)))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}

	return nil
}

func (n *NotificationService) NotifySubscriptionChange(ctx context.Context, changeType string, sub model.Subscription) error {
	switch changeType {
	case "created":
		logger.Info("NOTIFICATION: New subscription created",
			zap.String("subscriptionID", sub.ID),
			zap.String("userID", sub.UserID),
			zap.String("planID", sub.PlanID))
	case "cancelled":
		logger.Info("NOTIFICATION: Subscription cancelled",
			zap.String("subscriptionID", sub.ID),
			zap.String("userID", sub.UserID))
	case "expired":
		logger.Info("NOTIFICATION: Subscription expired",
			zap.String("subscriptionID", sub.ID),
			zap.String("userID", sub.UserID))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}

	return nil
}

func (n *NotificationService) SendEmail(ctx context.Context, recipient, subject, body string) error {
	// Mock email sending
	logger.Info("Sending email",
		zap.String("recipient", recipient),
		zap.String("subject", subject))

	return nil
}

func (n *NotificationService) NotifyAdmins(ctx context.Context, message string) error {
	// Logic to notify all system administrators
	logger.Info("Notifying admins", zap.String("message", message))
	return nil
}
