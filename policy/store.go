// api/policy/store.go
package policy

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	logger "github.com/aqari-dev/aqari/api/logging"
	"github.com/aqari-dev/aqari/api/model"
	"github.com/aqari-dev/aqari/api/util"
)

// EventPolicyChanged is published on the event bus after every successful
// mutation. The payload is a Change carrying full state, not a diff;
// consumers re-read rather than merge.
const EventPolicyChanged = "policy.changed"

// Change is the payload of EventPolicyChanged.
type Change struct {
	Plans    []model.Plan        `json:"plans"`
	Features model.FeatureMatrix `json:"features"`
}

// Store holds the mutable plan registry and plan-feature matrix. It is
// constructed once at application start with an injected Storage port and
// event bus; all mutation goes through its methods.
//
// A single mutex serializes every operation, so the store acts as a
// single-writer queue even when driven by concurrent HTTP handlers. Mutations
// apply in memory first, then flush to storage, then broadcast; a failed
// flush keeps the in-memory mutation, returns the error, and skips the
// broadcast, leaving memory and storage divergent until the next reload.
type Store struct {
	mu      sync.Mutex
	storage Storage
	bus     *util.EventBus

	loaded   bool
	plans    []model.Plan
	features map[string]map[string]bool
}

func NewStore(storage Storage, bus *util.EventBus) *Store {
	s := &Store{
		storage:  storage,
		bus:      bus,
		features: make(map[string]map[string]bool),
	}
	storage.OnExternalChange(StorageKeyPlans, s.invalidate)
	storage.OnExternalChange(StorageKeyFeatures, s.invalidate)
	return s
}

// invalidate drops the in-memory mirror so the next operation reloads from
// storage. Called when another writer changes the persisted state.
func (s *Store) invalidate() {
	s.mu.Lock()
	s.loaded = false
	s.mu.Unlock()
}

// ensureLoaded seeds the in-memory state from storage, falling back to the
// compiled-in defaults when a key is absent or cannot be decoded. Defaults
// are persisted back on that first load. Must be called with the lock held.
func (s *Store) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}

	plans, seedPlans := s.loadPlans(ctx)
	matrix, seedMatrix := s.loadMatrix(ctx)

	s.plans = plans
	s.features = matrix
	s.loaded = true

	if seedPlans {
		if err := s.flushPlans(ctx); err != nil {
			logger.Warn("Failed to persist seeded default plans", zap.Error(err))
		}
	}
	if seedMatrix {
		if err := s.flushMatrix(ctx); err != nil {
			logger.Warn("Failed to persist seeded default feature matrix", zap.Error(err))
		}
	}
}

func (s *Store) loadPlans(ctx context.Context) (plans []model.Plan, seed bool) {
	raw, err := s.storage.Get(ctx, StorageKeyPlans)
	if err != nil {
		logger.Error("Failed to read persisted plans, using defaults", zap.Error(err))
		return defaultPlans(), false
	}
	if raw == nil {
		return defaultPlans(), true
	}
	if err := json.Unmarshal(raw, &plans); err != nil {
		logger.Warn("Persisted plan list is malformed, reseeding defaults", zap.Error(err))
		return defaultPlans(), true
	}
	return plans, false
}

func (s *Store) loadMatrix(ctx context.Context) (matrix map[string]map[string]bool, seed bool) {
	raw, err := s.storage.Get(ctx, StorageKeyFeatures)
	if err != nil {
		logger.Error("Failed to read persisted feature matrix, using defaults", zap.Error(err))
		return toFeatureSets(defaultFeatureMatrix()), false
	}
	if raw == nil {
		return toFeatureSets(defaultFeatureMatrix()), true
	}
	var persisted model.FeatureMatrix
	if err := json.Unmarshal(raw, &persisted); err != nil {
		logger.Warn("Persisted feature matrix is malformed, reseeding defaults", zap.Error(err))
		return toFeatureSets(defaultFeatureMatrix()), true
	}
	return toFeatureSets(persisted), false
}

// toFeatureSets converts the wire matrix into sets, discarding feature IDs
// that are no longer in the catalogue.
func toFeatureSets(matrix model.FeatureMatrix) map[string]map[string]bool {
	sets := make(map[string]map[string]bool, len(matrix))
	for planID, ids := range matrix {
		set := make(map[string]bool, len(ids))
		for _, id := range ids {
			if !KnownFeature(id) {
				logger.Warn("Dropping unknown feature ID from persisted matrix",
					zap.String("planID", planID),
					zap.String("featureID", id))
				continue
			}
			set[id] = true
		}
		sets[planID] = set
	}
	return sets
}

// matrixSnapshot renders the wire form of the matrix with sorted feature IDs.
// Must be called with the lock held.
func (s *Store) matrixSnapshot() model.FeatureMatrix {
	matrix := make(model.FeatureMatrix, len(s.features))
	for planID, set := range s.features {
		ids := make([]string, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		matrix[planID] = ids
	}
	return matrix
}

// plansSnapshot must be called with the lock held.
func (s *Store) plansSnapshot() []model.Plan {
	out := make([]model.Plan, len(s.plans))
	copy(out, s.plans)
	return out
}

func (s *Store) flushPlans(ctx context.Context) error {
	data, err := json.Marshal(s.plans)
	if err != nil {
		return fmt.Errorf("failed to marshal plans: %w", err)
	}
	if err := s.storage.Set(ctx, StorageKeyPlans, data); err != nil {
		return fmt.Errorf("failed to persist plans: %w", err)
	}
	return nil
}

func (s *Store) flushMatrix(ctx context.Context) error {
	data, err := json.Marshal(s.matrixSnapshot())
	if err != nil {
		return fmt.Errorf("failed to marshal feature matrix: %w", err)
	}
	if err := s.storage.Set(ctx, StorageKeyFeatures, data); err != nil {
		return fmt.Errorf("failed to persist feature matrix: %w", err)
	}
	return nil
}

// broadcast must be called with the lock held.
func (s *Store) broadcast(ctx context.Context) {
	s.bus.Publish(ctx, EventPolicyChanged, Change{
		Plans:    s.plansSnapshot(),
		Features: s.matrixSnapshot(),
	})
}

// ListPlans returns the current plan list in stored order.
func (s *Store) ListPlans(ctx context.Context) []model.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.plansSnapshot()
}

// LookupPlan returns the plan with the given ID. The second return is false
// for unknown plan IDs.
func (s *Store) LookupPlan(ctx context.Context, planID string) (model.Plan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	for _, p := range s.plans {
		if p.ID == planID {
			return p, true
		}
	}
	return model.Plan{}, false
}

// ReplacePlans replaces the plan list wholesale, in the submitted order.
// There is no per-field patch at this layer; callers submit the full edited
// list.
func (s *Store) ReplacePlans(ctx context.Context, plans []model.Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	s.plans = make([]model.Plan, len(plans))
	copy(s.plans, plans)

	if err := s.flushPlans(ctx); err != nil {
		logger.Error("Plan list diverged: in-memory updated but persistence failed", zap.Error(err))
		return err
	}
	s.broadcast(ctx)
	return nil
}

// FeaturesEnabled returns the sorted feature IDs enabled for the plan. An
// unknown plan ID yields an empty set, never an error.
func (s *Store) FeaturesEnabled(ctx context.Context, planID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	set := s.features[planID]
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FeatureMatrix returns a copy of the full plan-feature matrix.
func (s *Store) FeatureMatrix(ctx context.Context) model.FeatureMatrix {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.matrixSnapshot()
}

// ToggleFeature flips one feature for one plan: enabled if it was disabled,
// disabled if it was enabled. Toggling twice restores the original set.
func (s *Store) ToggleFeature(ctx context.Context, planID, featureID string) error {
	return s.mutateFeatures(ctx, planID, featureID, func(set map[string]bool) {
		if set[featureID] {
			delete(set, featureID)
		} else {
			set[featureID] = true
		}
	})
}

// EnableFeature turns one feature on for one plan. Idempotent.
func (s *Store) EnableFeature(ctx context.Context, planID, featureID string) error {
	return s.mutateFeatures(ctx, planID, featureID, func(set map[string]bool) {
		set[featureID] = true
	})
}

// DisableFeature turns one feature off for one plan. Idempotent.
func (s *Store) DisableFeature(ctx context.Context, planID, featureID string) error {
	return s.mutateFeatures(ctx, planID, featureID, func(set map[string]bool) {
		delete(set, featureID)
	})
}

// mutateFeatures applies fn to the plan's feature set, then persists and
// broadcasts. Unknown plan or feature IDs are a safe no-op.
func (s *Store) mutateFeatures(ctx context.Context, planID, featureID string, fn func(set map[string]bool)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	if !s.knownPlan(planID) {
		logger.Warn("Ignoring feature mutation for unknown plan", zap.String("planID", planID))
		return nil
	}
	if !KnownFeature(featureID) {
		logger.Warn("Ignoring mutation for unknown feature",
			zap.String("planID", planID),
			zap.String("featureID", featureID))
		return nil
	}

	set := s.features[planID]
	if set == nil {
		set = make(map[string]bool)
		s.features[planID] = set
	}
	fn(set)

	if err := s.flushMatrix(ctx); err != nil {
		logger.Error("Feature matrix diverged: in-memory updated but persistence failed", zap.Error(err))
		return err
	}
	s.broadcast(ctx)
	return nil
}

// SetAllFeatures sets the plan's feature set to the full catalogue or to the
// empty set. This is a direct set replacement, not a sequence of toggles, so
// the result is order-independent.
func (s *Store) SetAllFeatures(ctx context.Context, planID string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	if !s.knownPlan(planID) {
		logger.Warn("Ignoring bulk feature mutation for unknown plan", zap.String("planID", planID))
		return nil
	}

	set := make(map[string]bool)
	if enabled {
		for _, id := range FeatureIDs() {
			set[id] = true
		}
	}
	s.features[planID] = set

	if err := s.flushMatrix(ctx); err != nil {
		logger.Error("Feature matrix diverged: in-memory updated but persistence failed", zap.Error(err))
		return err
	}
	s.broadcast(ctx)
	return nil
}

// knownPlan must be called with the lock held.
func (s *Store) knownPlan(planID string) bool {
	for _, p := range s.plans {
		if p.ID == planID {
			return true
		}
	}
	return false
}
