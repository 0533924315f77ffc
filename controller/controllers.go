// api/controller/controllers.go
package controller

import "github.com/aqari-dev/aqari/api/service"

type Controllers struct {
	Role         *RoleController
	Plan         *PlanController
	Subscription *SubscriptionController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Role:         NewRoleController(services.Role),
		Plan:         NewPlanController(services.Plan),
		Subscription: NewSubscriptionController(services.Subscription),
	}
}
