package live

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/locationd/services/location/models"
	"github.com/piresc/locationd/services/location/platform"
	"github.com/piresc/locationd/services/location/simulator"
)

func newClient(t *testing.T, opts ...simulator.Option) (*Client, *simulator.Simulator) {
	t.Helper()
	sim := simulator.New(opts...)
	t.Cleanup(sim.Close)
	c := New(func() (platform.Manager, error) { return sim, nil })
	t.Cleanup(c.Close)
	return c, sim
}

func next(t *testing.T, events <-chan models.Action) models.Action {
	t.Helper()
	select {
	case a, ok := <-events:
		require.True(t, ok, "events closed")
		return a
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for action")
		return nil
	}
}

func TestClient_ConstructsManagerOnce(t *testing.T) {
	var built int32
	sim := simulator.New()
	defer sim.Close()
	c := New(func() (platform.Manager, error) {
		atomic.AddInt32(&built, 1)
		time.Sleep(10 * time.Millisecond)
		return sim, nil
	})
	defer c.Close()

	assert.Equal(t, int32(0), atomic.LoadInt32(&built), "construction is lazy")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.LocationServicesEnabled(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&built))
}

func TestClient_FactoryFailure(t *testing.T) {
	var built int32
	boom := errors.New("no hardware")
	c := New(func() (platform.Manager, error) {
		atomic.AddInt32(&built, 1)
		return nil, boom
	})
	defer c.Close()

	_, err := c.AuthorizationStatus(context.Background())
	assert.ErrorIs(t, err, boom)

	err = c.StartUpdatingLocation(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), atomic.LoadInt32(&built), "construction is not retried")
}

func TestClient_Queries(t *testing.T) {
	fix := &platform.Location{
		Coordinate: platform.Coordinate2D{Latitude: -6.2, Longitude: 106.8},
		Speed:      2,
		Timestamp:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	c, _ := newClient(t,
		simulator.WithAuthorization(models.AuthorizationAuthorizedAlways),
		simulator.WithAccuracyAuthorization(models.AccuracyReduced),
		simulator.WithLocation(fix),
		simulator.WithHeadingAvailable(false))
	ctx := context.Background()

	status, err := c.AuthorizationStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AuthorizationAuthorizedAlways, status)

	accuracy, err := c.AccuracyAuthorization(ctx)
	require.NoError(t, err)
	require.NotNil(t, accuracy)
	assert.Equal(t, models.AccuracyReduced, *accuracy)

	available, err := c.HeadingAvailable(ctx)
	require.NoError(t, err)
	assert.False(t, available)

	heading, err := c.Heading(ctx)
	require.NoError(t, err)
	assert.Nil(t, heading)

	loc, err := c.Location(ctx)
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.True(t, loc.Equal(models.NewLocation(fix)))
	assert.Nil(t, loc.SpeedAccuracy)
}

func TestClient_AccuracyAuthorizationUnavailable(t *testing.T) {
	c, _ := newClient(t)

	accuracy, err := c.AccuracyAuthorization(context.Background())
	require.NoError(t, err)
	assert.Nil(t, accuracy)
}

func TestClient_SetAppliesOnlyPresentFields(t *testing.T) {
	c, sim := newClient(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, models.ServiceConfiguration{DesiredAccuracy: models.Ptr(models.AccuracyKilometer)}))
	require.NoError(t, c.Set(ctx, models.ServiceConfiguration{DistanceFilter: models.Ptr(50.0)}))

	settings := sim.Settings()
	assert.Equal(t, models.AccuracyKilometer, settings.DesiredAccuracy)
	assert.Equal(t, 50.0, settings.DistanceFilter)
	assert.True(t, settings.PausesLocationUpdatesAutomatically)

	require.NoError(t, c.Set(ctx, models.ServiceConfiguration{
		ActivityType:                     models.Ptr(models.ActivityAutomotiveNavigation),
		ShowsBackgroundLocationIndicator: models.Ptr(true),
	}))
	settings = sim.Settings()
	assert.Equal(t, models.ActivityAutomotiveNavigation.Raw(), settings.ActivityType)
	assert.True(t, settings.ShowsBackgroundLocationIndicator)
	assert.Equal(t, 50.0, settings.DistanceFilter)
}

func TestClient_Events(t *testing.T) {
	c, sim := newClient(t, simulator.WithGrant(models.AuthorizationAuthorizedAlways))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := c.Events(ctx)
	require.NoError(t, err)

	require.NoError(t, c.RequestAlwaysAuthorization(ctx))
	assert.Equal(t,
		models.DidChangeAuthorization{Status: models.AuthorizationAuthorizedAlways},
		next(t, events))

	require.NoError(t, c.StartUpdatingLocation(ctx))
	sim.EmitLocations(&platform.Location{Coordinate: platform.Coordinate2D{Latitude: 1, Longitude: 2}})

	got, ok := next(t, events).(models.DidUpdateLocations)
	require.True(t, ok)
	require.Len(t, got.Locations, 1)
	assert.Equal(t, models.Coordinate{Latitude: 1, Longitude: 2}, got.Locations[0].Coordinate)
}

func TestClient_EventsCancellation(t *testing.T) {
	c, sim := newClient(t)

	keepCtx, keepCancel := context.WithCancel(context.Background())
	defer keepCancel()
	dropCtx, dropCancel := context.WithCancel(context.Background())

	keep, err := c.Events(keepCtx)
	require.NoError(t, err)
	drop, err := c.Events(dropCtx)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Subscribers())

	dropCancel()
	assert.Eventually(t, func() bool { return c.Subscribers() == 1 }, time.Second, 5*time.Millisecond)
	for range drop {
	}

	sim.EmitPause()
	assert.Equal(t, models.DidPauseLocationUpdates{}, next(t, keep))

	// the manager is still usable after a subscription ends
	_, err = c.LocationServicesEnabled(context.Background())
	assert.NoError(t, err)
}

func TestClient_MonitoredRegionsIsASet(t *testing.T) {
	c, sim := newClient(t)
	ctx := context.Background()

	home := models.NewCircularRegion("home", models.Coordinate{Latitude: 1, Longitude: 1}, 100)
	work := models.NewCircularRegion("work", models.Coordinate{Latitude: 2, Longitude: 2}, 200)
	require.NoError(t, c.StartMonitoringForRegion(ctx, work))
	require.NoError(t, c.StartMonitoringForRegion(ctx, home))
	require.NoError(t, c.StartMonitoringForRegion(ctx, home))
	sim.Flush()

	regions, err := c.MonitoredRegions(ctx)
	require.NoError(t, err)
	require.Len(t, regions, 2)
	assert.Equal(t, "home", regions[0].Identifier)
	assert.Equal(t, "work", regions[1].Identifier)

	require.NoError(t, c.StopMonitoringForRegion(ctx, home))
	regions, err = c.MonitoredRegions(ctx)
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.True(t, regions[0].Equal(work))
}

func TestClient_PolygonalRegionIsRejected(t *testing.T) {
	c, _ := newClient(t)
	polygon := models.Region{
		Identifier: "block",
		Kind:       models.RegionPolygonal,
		Vertices:   []models.Coordinate{{Latitude: 0, Longitude: 0}, {Latitude: 0, Longitude: 1}, {Latitude: 1, Longitude: 1}},
	}

	err := c.StartMonitoringForRegion(context.Background(), polygon)
	assert.ErrorIs(t, err, ErrRegionNotReconstructable)
	err = c.RequestState(context.Background(), polygon)
	assert.ErrorIs(t, err, ErrRegionNotReconstructable)
}

func TestClient_RequestStateRaisesEvent(t *testing.T) {
	c, sim := newClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	home := models.NewCircularRegion("home", models.Coordinate{Latitude: 1, Longitude: 1}, 100)
	sim.SetRegionState("home", models.RegionStateInside)

	events, err := c.Events(ctx)
	require.NoError(t, err)
	require.NoError(t, c.RequestState(ctx, home))

	got, ok := next(t, events).(models.DidDetermineState)
	require.True(t, ok)
	assert.Equal(t, models.RegionStateInside, got.State)
	assert.True(t, got.Region.Equal(home))
}

func TestClient_TemporaryFullAccuracy(t *testing.T) {
	t.Run("granted", func(t *testing.T) {
		c, _ := newClient(t, simulator.WithAccuracyAuthorization(models.AccuracyReduced))
		require.NoError(t, c.RequestTemporaryFullAccuracyAuthorization(context.Background(), "Navigation"))

		accuracy, err := c.AccuracyAuthorization(context.Background())
		require.NoError(t, err)
		assert.Equal(t, models.AccuracyFull, *accuracy)
	})

	t.Run("declined", func(t *testing.T) {
		c, _ := newClient(t)
		err := c.RequestTemporaryFullAccuracyAuthorization(context.Background(), "Navigation")

		var locErr models.Error
		require.ErrorAs(t, err, &locErr)
		require.NotNil(t, locErr.Code)
		assert.Equal(t, models.ErrorPromptDeclined, *locErr.Code)
	})
}

func TestClient_Close(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()

	events, err := c.Events(ctx)
	require.NoError(t, err)

	c.Close()
	c.Close()

	_, open := <-events
	assert.False(t, open)

	_, err = c.LocationServicesEnabled(ctx)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = c.Events(ctx)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestClient_ContextCancelled(t *testing.T) {
	block := make(chan struct{})
	sim := simulator.New()
	defer sim.Close()
	c := New(func() (platform.Manager, error) {
		<-block
		return sim, nil
	})
	defer c.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Location(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// slowManager blocks in Location to keep a job running on the executor
type slowManager struct {
	*simulator.Simulator
	delay time.Duration
}

func (m slowManager) Location() *platform.Location {
	time.Sleep(m.delay)
	return m.Simulator.Location()
}

func TestClient_ContextCancelledDuringJob(t *testing.T) {
	sim := simulator.New(simulator.WithLocation(&platform.Location{
		Coordinate: platform.Coordinate2D{Latitude: 1, Longitude: 2},
		Timestamp:  time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}))
	defer sim.Close()
	c := New(func() (platform.Manager, error) { return slowManager{Simulator: sim, delay: 50 * time.Millisecond}, nil })
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	loc, err := c.Location(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, loc)

	// the abandoned job finishes on the executor and later calls still work
	loc, err = c.Location(context.Background())
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, 1.0, loc.Coordinate.Latitude)
}
