// Package bridge turns platform delegate callbacks into Action streams.
//
// A Bridge is installed as the delegate of one platform manager. Each
// callback is converted to an Action and fanned out to every open
// subscription. Subscriptions can be opened and cancelled from any
// goroutine while callbacks are being delivered.
package bridge

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/piresc/locationd/internal/pkg/logger"
	"github.com/piresc/locationd/services/location/models"
	"github.com/piresc/locationd/services/location/platform"
)

// Bridge is a platform.Delegate that broadcasts Actions.
type Bridge struct {
	mu     sync.Mutex
	subs   map[uuid.UUID]*subscription
	closed bool
}

var _ platform.Delegate = (*Bridge)(nil)

// New creates a bridge with no subscriptions.
func New() *Bridge {
	return &Bridge{
		subs: make(map[uuid.UUID]*subscription),
	}
}

// Subscribe opens a subscription that receives every action delivered
// after it returns, in delivery order. The channel is closed when ctx is
// done or the bridge is closed.
func (b *Bridge) Subscribe(ctx context.Context) <-chan models.Action {
	ctx, cancel := context.WithCancel(ctx)
	id := uuid.New()
	sub := newSubscription(cancel)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		cancel()
		close(sub.out)
		return sub.out
	}
	b.subs[id] = sub
	active := len(b.subs)
	b.mu.Unlock()

	logger.Debug("Location subscription opened",
		logger.String("subscription_id", id.String()),
		logger.Int("active", active))

	go sub.pump(ctx, func() {
		cancel()
		b.remove(id)
	})

	return sub.out
}

// remove drops a subscription. Removing an unknown id is a no-op.
func (b *Bridge) remove(id uuid.UUID) {
	b.mu.Lock()
	_, ok := b.subs[id]
	delete(b.subs, id)
	active := len(b.subs)
	b.mu.Unlock()

	if ok {
		logger.Debug("Location subscription closed",
			logger.String("subscription_id", id.String()),
			logger.Int("active", active))
	}
}

// Len returns the number of open subscriptions.
func (b *Bridge) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Deliver sends a to every open subscription. It never blocks on a
// consumer.
func (b *Bridge) Deliver(a models.Action) {
	b.mu.Lock()
	sinks := make([]*subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		sinks = append(sinks, sub)
	}
	b.mu.Unlock()

	for _, sub := range sinks {
		sub.enqueue(a)
	}
}

// Close ends every subscription. Later subscriptions are closed at once.
func (b *Bridge) Close() {
	b.mu.Lock()
	b.closed = true
	subs := make([]*subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		subs = append(subs, sub)
	}
	b.mu.Unlock()

	for _, sub := range subs {
		sub.cancel()
	}
}

// DidChangeAuthorization delivers the new status; unknown raw values are dropped.
func (b *Bridge) DidChangeAuthorization(raw int) {
	status, ok := models.AuthorizationStatusFromRaw(raw)
	if !ok {
		logger.Warn("Dropping unknown authorization status", logger.Int("raw", raw))
		return
	}
	b.Deliver(models.DidChangeAuthorization{Status: status})
}

// DidUpdateLocations delivers a batch of fixes, oldest first.
func (b *Bridge) DidUpdateLocations(locations []*platform.Location) {
	b.Deliver(models.DidUpdateLocations{Locations: models.NewLocations(locations)})
}

// DidUpdateHeading delivers a heading sample.
func (b *Bridge) DidUpdateHeading(heading *platform.Heading) {
	if heading == nil {
		return
	}
	b.Deliver(models.DidUpdateHeading{Heading: models.NewHeading(heading)})
}

// DidFailWithError delivers a location service failure.
func (b *Bridge) DidFailWithError(err error) {
	b.Deliver(models.DidFailWithError{Error: models.NewError(err)})
}

// DidEnterRegion delivers a region entry.
func (b *Bridge) DidEnterRegion(region platform.Region) {
	if region == nil {
		return
	}
	b.Deliver(models.DidEnterRegion{Region: models.NewRegion(region)})
}

// DidExitRegion delivers a region exit.
func (b *Bridge) DidExitRegion(region platform.Region) {
	if region == nil {
		return
	}
	b.Deliver(models.DidExitRegion{Region: models.NewRegion(region)})
}

// DidDetermineState delivers the state of a region; unknown raw states become RegionStateUnknown.
func (b *Bridge) DidDetermineState(raw int, region platform.Region) {
	if region == nil {
		return
	}
	state, ok := models.RegionStateFromRaw(raw)
	if !ok {
		state = models.RegionStateUnknown
	}
	b.Deliver(models.DidDetermineState{State: state, Region: models.NewRegion(region)})
}

// DidStartMonitoring delivers a region that is now monitored.
func (b *Bridge) DidStartMonitoring(region platform.Region) {
	if region == nil {
		return
	}
	b.Deliver(models.DidStartMonitoring{Region: models.NewRegion(region)})
}

// MonitoringDidFail delivers a monitoring failure, with the region when the platform names one.
func (b *Bridge) MonitoringDidFail(region platform.Region, err error) {
	action := models.MonitoringDidFail{Error: models.NewError(err)}
	if region != nil {
		r := models.NewRegion(region)
		action.Region = &r
	}
	b.Deliver(action)
}

// DidFinishDeferredUpdates delivers the end of deferred updates and its error, if any.
func (b *Bridge) DidFinishDeferredUpdates(err error) {
	b.Deliver(models.DidFinishDeferredUpdates{Error: models.NewOptionalError(err)})
}

// DidPauseLocationUpdates delivers an automatic pause.
func (b *Bridge) DidPauseLocationUpdates() {
	b.Deliver(models.DidPauseLocationUpdates{})
}

// DidResumeLocationUpdates delivers a resume after a pause.
func (b *Bridge) DidResumeLocationUpdates() {
	b.Deliver(models.DidResumeLocationUpdates{})
}

// DidVisit delivers a visit record.
func (b *Bridge) DidVisit(visit *platform.Visit) {
	if visit == nil {
		return
	}
	b.Deliver(models.DidVisit{Visit: models.NewVisit(visit)})
}
