package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	natspkg "github.com/piresc/locationd/internal/pkg/nats"
	"github.com/piresc/locationd/internal/utils"
	"github.com/piresc/locationd/services/location/models"
)

// MockPublisher is a mock implementation of Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(subject string, data []byte) error {
	args := m.Called(subject, data)
	return args.Error(0)
}

func jakarta() models.Location {
	return models.Location{
		Coordinate: models.Coordinate{Latitude: -6.175392, Longitude: 106.827153},
		Speed:      3.5,
		Timestamp:  time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestPublishAction_Authorization(t *testing.T) {
	pub := new(MockPublisher)
	gw := NewActionGW(pub, 6)
	action := models.DidChangeAuthorization{Status: models.AuthorizationDenied}

	pub.On("Publish", "location.action.phone-1.didChangeAuthorization", mock.MatchedBy(func(data []byte) bool {
		decoded, err := models.UnmarshalAction(data)
		return err == nil && decoded == models.Action(action)
	})).Return(nil).Once()

	err := gw.PublishAction(context.Background(), "phone-1", action)
	assert.NoError(t, err)
	pub.AssertExpectations(t)
}

func TestPublishAction_LocationsFanOutByGeohash(t *testing.T) {
	pub := new(MockPublisher)
	gw := NewActionGW(pub, 5)
	loc := jakarta()
	hash := utils.EncodeCoordinate(loc.Coordinate, 5)

	pub.On("Publish", "location.action.phone-1.didUpdateLocations", mock.Anything).Return(nil).Once()
	pub.On("Publish", "location.updated.phone-1."+hash, mock.Anything).Return(nil).Once()

	err := gw.PublishAction(context.Background(), "phone-1", models.DidUpdateLocations{Locations: []models.Location{loc}})
	assert.NoError(t, err)
	pub.AssertExpectations(t)
	assert.Len(t, hash, 5)
}

func TestPublishAction_Errors(t *testing.T) {
	t.Run("publish failure", func(t *testing.T) {
		pub := new(MockPublisher)
		pub.On("Publish", mock.Anything, mock.Anything).Return(errors.New("connection closed"))

		err := NewActionGW(pub, 6).PublishAction(context.Background(), "phone-1", models.DidPauseLocationUpdates{})
		assert.ErrorContains(t, err, "connection closed")
	})

	t.Run("invalid device id", func(t *testing.T) {
		pub := new(MockPublisher)
		err := NewActionGW(pub, 6).PublishAction(context.Background(), "phone.1", models.DidPauseLocationUpdates{})
		assert.Error(t, err)
		pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("cancelled context", func(t *testing.T) {
		pub := new(MockPublisher)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := NewActionGW(pub, 6).PublishAction(ctx, "phone-1", models.DidPauseLocationUpdates{})
		assert.ErrorIs(t, err, context.Canceled)
		pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestPublishAction_NATS(t *testing.T) {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	srv := natsserver.RunServer(&opts)
	defer srv.Shutdown()

	client, err := natspkg.NewClient(srv.ClientURL(), "gateway-test")
	require.NoError(t, err)
	defer client.Close()

	msgCh := make(chan *nats.Msg, 4)
	_, err = client.Subscribe("location.>", func(msg *nats.Msg) { msgCh <- msg })
	require.NoError(t, err)
	require.NoError(t, client.GetConn().Flush())

	loc := jakarta()
	gw := NewActionGW(client, 6)
	err = gw.PublishAction(context.Background(), "phone-1", models.DidUpdateLocations{Locations: []models.Location{loc}})
	require.NoError(t, err)

	received := map[string][]byte{}
	for len(received) < 2 {
		select {
		case msg := <-msgCh:
			received[msg.Subject] = msg.Data
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out, received %d messages", len(received))
		}
	}

	envelope, ok := received["location.action.phone-1.didUpdateLocations"]
	require.True(t, ok)
	action, err := models.UnmarshalAction(envelope)
	require.NoError(t, err)
	update, ok := action.(models.DidUpdateLocations)
	require.True(t, ok)
	require.Len(t, update.Locations, 1)
	assert.True(t, update.Locations[0].Equal(loc))

	fix, ok := received[LocationSubject("phone-1", utils.EncodeCoordinate(loc.Coordinate, 6))]
	require.True(t, ok)
	var decoded models.Location
	require.NoError(t, json.Unmarshal(fix, &decoded))
	assert.True(t, decoded.Equal(loc))
}
