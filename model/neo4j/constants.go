// api/model/neo4j/constants.go
package aqari_neo4j

// Node Labels
const (
	// LabelUser represents a platform user node
	LabelUser = "User"

	// LabelPlan represents a subscription plan node
	LabelPlan = "Plan"

	// LabelSubscription represents a subscription assignment node
	LabelSubscription = "Subscription"
)

// Relationship Types
const (
	// RelSubscribedTo links a user to a subscription assignment
	RelSubscribedTo = "SUBSCRIBED_TO"

	// RelForPlan links a subscription assignment to the plan it was created from
	RelForPlan = "FOR_PLAN"
)

// Attribute Keys
const (
	// AttrID represents the unique identifier of a node
	AttrID = "id"

	// AttrUserID represents the owning user of a subscription
	AttrUserID = "userID"

	// AttrPlanID represents the plan a subscription was created from
	AttrPlanID = "planID"

	// AttrStatus represents the subscription status
	AttrStatus = "status"

	// AttrStartDate represents the start of the validity window
	AttrStartDate = "startDate"

	// AttrEndDate represents the end of the validity window
	AttrEndDate = "endDate"

	// AttrPaymentStatus represents the payment-tracking stub
	AttrPaymentStatus = "paymentStatus"

	// AttrPaymentRef represents the external payment reference
	AttrPaymentRef = "paymentRef"

	// AttrLimits represents the JSON-encoded ceiling snapshot
	AttrLimits = "limits"

	// AttrCreatedAt represents the creation timestamp of a node
	AttrCreatedAt = "createdAt"

	// AttrUpdatedAt represents the last update timestamp of a node
	AttrUpdatedAt = "updatedAt"
)
