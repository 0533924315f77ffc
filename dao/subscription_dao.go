// api/dao/subscription_dao.go
package dao

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/aqari-dev/aqari/api/audit"
	aqari_errors "github.com/aqari-dev/aqari/api/errors"
	logger "github.com/aqari-dev/aqari/api/logging"
	"github.com/aqari-dev/aqari/api/model"
	aqari_neo4j "github.com/aqari-dev/aqari/api/model/neo4j"
	helper_util "github.com/aqari-dev/aqari/api/util/helper"
)

// ISubscriptionDAO defines the persistence operations for subscription
// assignments.
type ISubscriptionDAO interface {
	CreateSubscription(ctx context.Context, sub model.Subscription) (string, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*model.Subscription, error)
	ListUserSubscriptions(ctx context.Context, userID string, limit, offset int) ([]*model.Subscription, error)
	UpdateSubscriptionStatus(ctx context.Context, subscriptionID string, status model.SubscriptionStatus) error
}

type SubscriptionDAO struct {
	Driver       neo4j.Driver
	AuditService audit.Service
}

var _ ISubscriptionDAO = &SubscriptionDAO{}

func NewSubscriptionDAO(driver neo4j.Driver, auditService audit.Service) *SubscriptionDAO {
	dao := &SubscriptionDAO{Driver: driver, AuditService: auditService}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Subscription", zap.Error(err))
	}
	return dao
}

func (dao *SubscriptionDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraint on Subscription ID")
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_subscription_id IF NOT EXISTS
        FOR (s:` + aqari_neo4j.LabelSubscription + `) REQUIRE s.id IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		return nil, err
	})

	if err != nil {
		logger.Error("Failed to ensure unique constraint on Subscription ID", zap.Error(err))
		return err
	}

	return nil
}

func (dao *SubscriptionDAO) CreateSubscription(ctx context.Context, sub model.Subscription) (string, error) {
	start := time.Now()
	logger.Info("Creating new subscription",
		zap.String("userID", sub.UserID),
		zap.String("planID", sub.PlanID))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}

	limitsJSON, err := json.Marshal(sub.Limits)
	if err != nil {
		return "", fmt.Errorf("failed to marshal ceiling snapshot: %w", err)
	}

	_, err = session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
			MERGE (u:` + aqari_neo4j.LabelUser + ` {id: $userID})
			CREATE (s:` + aqari_neo4j.LabelSubscription + ` {
				id: $id,
				userID: $userID,
				planID: $planID,
				status: $status,
				startDate: $startDate,
				endDate: $endDate,
				paymentStatus: $paymentStatus,
				paymentRef: $paymentRef,
				limits: $limits,
				createdAt: $createdAt,
				updatedAt: $updatedAt
			})
			CREATE (u)-[:` + aqari_neo4j.RelSubscribedTo + `]->(s)
		`
		params := map[string]interface{}{
			"id":            sub.ID,
			"userID":        sub.UserID,
			"planID":        sub.PlanID,
			"status":        string(sub.Status),
			"startDate":     sub.StartDate.Format(time.RFC3339),
			"endDate":       sub.EndDate.Format(time.RFC3339),
			"paymentStatus": sub.PaymentStatus,
			"paymentRef":    sub.PaymentRef,
			"limits":        string(limitsJSON),
			"createdAt":     sub.CreatedAt.Format(time.RFC3339),
			"updatedAt":     sub.UpdatedAt.Format(time.RFC3339),
		}
		_, err := transaction.Run(query, params)
		return nil, err
	})

	if err != nil {
		logger.Error("Failed to create subscription",
			zap.Error(err),
			zap.String("userID", sub.UserID),
			zap.Duration("duration", time.Since(start)))
		return "", fmt.Errorf("failed to create subscription: %w", err)
	}

	details, _ := json.Marshal(sub)
	if err := dao.AuditService.LogAction(ctx, audit.AuditLog{
		Timestamp:     time.Now(),
		ActorID:       sub.UserID,
		Action:        "subscription.create",
		TargetID:      sub.ID,
		ChangeDetails: details,
	}); err != nil {
		logger.Warn("Failed to audit subscription creation", zap.Error(err), zap.String("subscriptionID", sub.ID))
	}

	logger.Info("Subscription created successfully",
		zap.String("subscriptionID", sub.ID),
		zap.Duration("duration", time.Since(start)))
	return sub.ID, nil
}

func (dao *SubscriptionDAO) GetSubscription(ctx context.Context, subscriptionID string) (*model.Subscription, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
			MATCH (s:` + aqari_neo4j.LabelSubscription + ` {id: $id})
			RETURN s
		`
		records, err := transaction.Run(query, map[string]interface{}{"id": subscriptionID})
		if err != nil {
			return nil, err
		}
		record, err := records.Single()
		if err != nil {
			return nil, aqari_errors.ErrSubscriptionNotFound
		}
		node, _ := record.Get("s")
		return parseSubscriptionNode(node.(neo4j.Node))
	})

	if err != nil {
		if err == aqari_errors.ErrSubscriptionNotFound {
			return nil, err
		}
		logger.Error("Failed to get subscription", zap.Error(err), zap.String("subscriptionID", subscriptionID))
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return result.(*model.Subscription), nil
}

func (dao *SubscriptionDAO) ListUserSubscriptions(ctx context.Context, userID string, limit, offset int) ([]*model.Subscription, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
			MATCH (u:` + aqari_neo4j.LabelUser + ` {id: $userID})-[:` + aqari_neo4j.RelSubscribedTo + `]->(s:` + aqari_neo4j.LabelSubscription + `)
			RETURN s
			ORDER BY s.createdAt DESC
			SKIP $offset LIMIT $limit
		`
		records, err := transaction.Run(query, map[string]interface{}{
			"userID": userID,
			"offset": offset,
			"limit":  limit,
		})
		if err != nil {
			return nil, err
		}

		var subs []*model.Subscription
		for records.Next() {
			node, _ := records.Record().Get("s")
			sub, err := parseSubscriptionNode(node.(neo4j.Node))
			if err != nil {
				return nil, err
			}
			subs = append(subs, sub)
		}
		return subs, records.Err()
	})

	if err != nil {
		logger.Error("Failed to list user subscriptions", zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("failed to list user subscriptions: %w", err)
	}

	return result.([]*model.Subscription), nil
}

func (dao *SubscriptionDAO) UpdateSubscriptionStatus(ctx context.Context, subscriptionID string, status model.SubscriptionStatus) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
			MATCH (s:` + aqari_neo4j.LabelSubscription + ` {id: $id})
			SET s.status = $status, s.updatedAt = $updatedAt
			RETURN s.id
		`
		records, err := transaction.Run(query, map[string]interface{}{
			"id":        subscriptionID,
			"status":    string(status),
			"updatedAt": time.Now().Format(time.RFC3339),
		})
		if err != nil {
			return nil, err
		}
		if _, err := records.Single(); err != nil {
			return nil, aqari_errors.ErrSubscriptionNotFound
		}
		return nil, nil
	})

	if err != nil {
		if err == aqari_errors.ErrSubscriptionNotFound {
			return err
		}
		logger.Error("Failed to update subscription status",
			zap.Error(err),
			zap.String("subscriptionID", subscriptionID),
			zap.String("status", string(status)))
		return fmt.Errorf("failed to update subscription status: %w", err)
	}

	if err := dao.AuditService.LogAction(ctx, audit.AuditLog{
		Timestamp: time.Now(),
		Action:    "subscription.status." + string(status),
		TargetID:  subscriptionID,
	}); err != nil {
		logger.Warn("Failed to audit subscription status change", zap.Error(err), zap.String("subscriptionID", subscriptionID))
	}

	return nil
}

func parseSubscriptionNode(node neo4j.Node) (*model.Subscription, error) {
	props := node.Props

	sub := &model.Subscription{
		ID:            props[aqari_neo4j.AttrID].(string),
		UserID:        props[aqari_neo4j.AttrUserID].(string),
		PlanID:        props[aqari_neo4j.AttrPlanID].(string),
		Status:        model.SubscriptionStatus(props[aqari_neo4j.AttrStatus].(string)),
		PaymentStatus: props[aqari_neo4j.AttrPaymentStatus].(string),
	}

	if ref, ok := props[aqari_neo4j.AttrPaymentRef].(string); ok {
		sub.PaymentRef = ref
	}

	var err error
	if sub.StartDate, err = helper_util.ParseTime(props[aqari_neo4j.AttrStartDate].(string)); err != nil {
		return nil, fmt.Errorf("failed to parse start date: %w", err)
	}
	if sub.EndDate, err = helper_util.ParseTime(props[aqari_neo4j.AttrEndDate].(string)); err != nil {
		return nil, fmt.Errorf("failed to parse end date: %w", err)
	}
	if sub.CreatedAt, err = helper_util.ParseTime(props[aqari_neo4j.AttrCreatedAt].(string)); err != nil {
		return nil, fmt.Errorf("failed to parse created at: %w", err)
	}
	if sub.UpdatedAt, err = helper_util.ParseTime(props[aqari_neo4j.AttrUpdatedAt].(string)); err != nil {
		return nil, fmt.Errorf("failed to parse updated at: %w", err)
	}

	if limitsJSON, ok := props[aqari_neo4j.AttrLimits].(string); ok {
		if err := json.Unmarshal([]byte(limitsJSON), &sub.Limits); err != nil {
			return nil, fmt.Errorf("failed to parse ceiling snapshot: %w", err)
		}
	}

	return sub, nil
}
