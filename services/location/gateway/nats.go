package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/piresc/locationd/internal/pkg/constants"
	"github.com/piresc/locationd/internal/utils"
	"github.com/piresc/locationd/services/location"
	"github.com/piresc/locationd/services/location/models"
)

// Publisher is the part of the NATS client the gateway needs
type Publisher interface {
	Publish(subject string, data []byte) error
}

type actionGW struct {
	pub       Publisher
	precision uint
}

// NewActionGW creates a gateway that relays actions to NATS. Location fixes
// are also published on a geohash subject of the given precision.
func NewActionGW(pub Publisher, precision uint) location.ActionGW {
	return &actionGW{
		pub:       pub,
		precision: precision,
	}
}

// ActionSubject returns the subject an action of type t is published on
func ActionSubject(deviceID string, t models.ActionType) string {
	return fmt.Sprintf("%s.%s.%s", constants.SubjectActionPrefix, deviceID, t)
}

// LocationSubject returns the per-area subject a fix is published on
func LocationSubject(deviceID, geohash string) string {
	return fmt.Sprintf("%s.%s.%s", constants.SubjectLocationUpdated, deviceID, geohash)
}

func validDeviceID(deviceID string) error {
	if deviceID == "" {
		return fmt.Errorf("device id is required")
	}
	if strings.ContainsAny(deviceID, ".*> \t\r\n") {
		return fmt.Errorf("device id %q is not a valid subject token", deviceID)
	}
	return nil
}

// PublishAction publishes the action envelope, then each reported fix
func (g *actionGW) PublishAction(ctx context.Context, deviceID string, action models.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validDeviceID(deviceID); err != nil {
		return err
	}

	data, err := models.MarshalAction(action)
	if err != nil {
		return err
	}
	if err := g.pub.Publish(ActionSubject(deviceID, action.ActionType()), data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", action.ActionType(), err)
	}

	update, ok := action.(models.DidUpdateLocations)
	if !ok {
		return nil
	}
	for _, loc := range update.Locations {
		data, err := json.Marshal(loc)
		if err != nil {
			return fmt.Errorf("failed to marshal location: %w", err)
		}
		hash := utils.EncodeCoordinate(loc.Coordinate, g.precision)
		if err := g.pub.Publish(LocationSubject(deviceID, hash), data); err != nil {
			return fmt.Errorf("failed to publish location update: %w", err)
		}
	}
	return nil
}
