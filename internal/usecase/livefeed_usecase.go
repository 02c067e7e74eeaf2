package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"jaybesin/internal/domain/entity"
	"jaybesin/internal/domain/repository"
	"jaybesin/internal/infrastructure/metrics"
	"jaybesin/pkg/logger"
)

// LiveFeedUseCase owns the five standing collection subscriptions and the
// in-memory replica of each collection. Every remote change replaces the
// matching replica wholesale and is broadcast to connected clients; the
// replicas are never mutated in place.
type LiveFeedUseCase struct {
	vehicleRepo repository.VehicleRepository
	chargerRepo repository.ChargerRepository
	partRepo    repository.PartRepository
	orderRepo   repository.OrderRepository
	inquiryRepo repository.InquiryRepository
	hub         Broadcaster

	mu        sync.RWMutex
	vehicles  []*entity.Vehicle
	chargers  []*entity.Charger
	parts     []*entity.Part
	orders    []*entity.Order
	inquiries []*entity.Inquiry

	stops    []func()
	stopOnce sync.Once
}

// FeedEvent is one message on the live feed: the collection name and its
// complete current contents (a snapshot, not a diff).
type FeedEvent struct {
	Collection string      `json:"collection"`
	Items      interface{} `json:"items"`
}

func NewLiveFeedUseCase(
	vehicleRepo repository.VehicleRepository,
	chargerRepo repository.ChargerRepository,
	partRepo repository.PartRepository,
	orderRepo repository.OrderRepository,
	inquiryRepo repository.InquiryRepository,
	hub Broadcaster,
) *LiveFeedUseCase {
	return &LiveFeedUseCase{
		vehicleRepo: vehicleRepo,
		chargerRepo: chargerRepo,
		partRepo:    partRepo,
		orderRepo:   orderRepo,
		inquiryRepo: inquiryRepo,
		hub:         hub,
	}
}

// Start establishes the five subscriptions. Each delivers its initial
// snapshot shortly after establishment, priming the replicas.
func (uc *LiveFeedUseCase) Start(ctx context.Context) {
	uc.stops = []func(){
		uc.vehicleRepo.Watch(ctx, func(list []*entity.Vehicle) {
			uc.mu.Lock()
			uc.vehicles = list
			uc.mu.Unlock()
			uc.publish("vehicles", list)
		}),
		uc.chargerRepo.Watch(ctx, func(list []*entity.Charger) {
			uc.mu.Lock()
			uc.chargers = list
			uc.mu.Unlock()
			uc.publish("charging", list)
		}),
		uc.partRepo.Watch(ctx, func(list []*entity.Part) {
			uc.mu.Lock()
			uc.parts = list
			uc.mu.Unlock()
			uc.publish("parts", list)
		}),
		uc.orderRepo.Watch(ctx, func(list []*entity.Order) {
			uc.mu.Lock()
			uc.orders = list
			uc.mu.Unlock()
			uc.publish("orders", list)
		}),
		uc.inquiryRepo.Watch(ctx, func(list []*entity.Inquiry) {
			uc.mu.Lock()
			uc.inquiries = list
			uc.mu.Unlock()
			uc.publish("inquiries", list)
		}),
	}
}

// Stop tears down every subscription; safe to call more than once, each
// unsubscribe handle fires exactly once.
func (uc *LiveFeedUseCase) Stop() {
	uc.stopOnce.Do(func() {
		for _, stop := range uc.stops {
			stop()
		}
	})
}

func (uc *LiveFeedUseCase) publish(collection string, items interface{}) {
	metrics.SnapshotTotal.WithLabelValues(collection).Inc()
	metrics.LiveClients.Set(float64(uc.hub.ClientCount()))

	payload, err := json.Marshal(FeedEvent{Collection: collection, Items: items})
	if err != nil {
		logger.Error("Failed to marshal %s snapshot: %v", collection, err)
		return
	}
	uc.hub.Broadcast(payload)
}

// Events returns the current snapshot of every collection as marshaled
// feed events, used to prime a freshly connected client.
func (uc *LiveFeedUseCase) Events() [][]byte {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	events := []FeedEvent{
		{Collection: "vehicles", Items: uc.vehicles},
		{Collection: "charging", Items: uc.chargers},
		{Collection: "parts", Items: uc.parts},
		{Collection: "orders", Items: uc.orders},
		{Collection: "inquiries", Items: uc.inquiries},
	}

	out := make([][]byte, 0, len(events))
	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			logger.Error("Failed to marshal %s snapshot: %v", ev.Collection, err)
			continue
		}
		out = append(out, payload)
	}
	return out
}

func (uc *LiveFeedUseCase) Vehicles() []*entity.Vehicle {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]*entity.Vehicle, len(uc.vehicles))
	copy(out, uc.vehicles)
	return out
}

func (uc *LiveFeedUseCase) Chargers() []*entity.Charger {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]*entity.Charger, len(uc.chargers))
	copy(out, uc.chargers)
	return out
}

func (uc *LiveFeedUseCase) Parts() []*entity.Part {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]*entity.Part, len(uc.parts))
	copy(out, uc.parts)
	return out
}

func (uc *LiveFeedUseCase) Orders() []*entity.Order {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]*entity.Order, len(uc.orders))
	copy(out, uc.orders)
	return out
}

func (uc *LiveFeedUseCase) Inquiries() []*entity.Inquiry {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]*entity.Inquiry, len(uc.inquiries))
	copy(out, uc.inquiries)
	return out
}
