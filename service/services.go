// api/service/services.go
package service

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/aqari-dev/aqari/api/audit"
	"github.com/aqari-dev/aqari/api/dao"
	"github.com/aqari-dev/aqari/api/policy"
	"github.com/aqari-dev/aqari/api/util"
)

type Services struct {
	Role         IRoleService
	Plan         IPlanService
	Subscription ISubscriptionService
}

func InitializeServices(
	driver neo4j.Driver,
	store *policy.Store,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService util.ICacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	subscriptionDAO := dao.NewSubscriptionDAO(driver, auditService)

	services := &Services{
		Role:         NewRoleService(),
		Plan:         NewPlanService(store, validationUtil, notificationSvc, auditService, eventBus),
		Subscription: NewSubscriptionService(subscriptionDAO, store, validationUtil, cacheService, notificationSvc, eventBus),
	}

	return services, nil
}
