package models

import (
	"encoding/json"
	"fmt"
)

// ActionType names an Action variant.
type ActionType string

const (
	ActionDidChangeAuthorization   ActionType = "didChangeAuthorization"
	ActionDidUpdateLocations       ActionType = "didUpdateLocations"
	ActionDidUpdateHeading         ActionType = "didUpdateHeading"
	ActionDidEnterRegion           ActionType = "didEnterRegion"
	ActionDidExitRegion            ActionType = "didExitRegion"
	ActionDidDetermineState        ActionType = "didDetermineState"
	ActionDidStartMonitoring       ActionType = "didStartMonitoring"
	ActionMonitoringDidFail        ActionType = "monitoringDidFail"
	ActionDidFinishDeferredUpdates ActionType = "didFinishDeferredUpdates"
	ActionDidVisit                 ActionType = "didVisit"
	ActionDidPauseLocationUpdates  ActionType = "didPauseLocationUpdates"
	ActionDidResumeLocationUpdates ActionType = "didResumeLocationUpdates"
	ActionDidFailWithError         ActionType = "didFailWithError"
)

// Action is one event raised by the location service. The set of variants
// is closed; switch on the concrete type.
type Action interface {
	ActionType() ActionType
	isAction()
}

type DidChangeAuthorization struct {
	Status AuthorizationStatus `json:"status"`
}

type DidUpdateLocations struct {
	Locations []Location `json:"locations"`
}

type DidUpdateHeading struct {
	Heading Heading `json:"heading"`
}

type DidEnterRegion struct {
	Region Region `json:"region"`
}

type DidExitRegion struct {
	Region Region `json:"region"`
}

type DidDetermineState struct {
	State  RegionState `json:"state"`
	Region Region      `json:"region"`
}

type DidStartMonitoring struct {
	Region Region `json:"region"`
}

// MonitoringDidFail carries a nil Region when the platform did not say
// which region failed.
type MonitoringDidFail struct {
	Region *Region `json:"region"`
	Error  Error   `json:"error"`
}

// DidFinishDeferredUpdates carries a nil Error on success.
type DidFinishDeferredUpdates struct {
	Error *Error `json:"error"`
}

type DidVisit struct {
	Visit Visit `json:"visit"`
}

type DidPauseLocationUpdates struct{}

type DidResumeLocationUpdates struct{}

type DidFailWithError struct {
	Error Error `json:"error"`
}

func (DidChangeAuthorization) ActionType() ActionType   { return ActionDidChangeAuthorization }
func (DidUpdateLocations) ActionType() ActionType       { return ActionDidUpdateLocations }
func (DidUpdateHeading) ActionType() ActionType         { return ActionDidUpdateHeading }
func (DidEnterRegion) ActionType() ActionType           { return ActionDidEnterRegion }
func (DidExitRegion) ActionType() ActionType            { return ActionDidExitRegion }
func (DidDetermineState) ActionType() ActionType        { return ActionDidDetermineState }
func (DidStartMonitoring) ActionType() ActionType       { return ActionDidStartMonitoring }
func (MonitoringDidFail) ActionType() ActionType        { return ActionMonitoringDidFail }
func (DidFinishDeferredUpdates) ActionType() ActionType { return ActionDidFinishDeferredUpdates }
func (DidVisit) ActionType() ActionType                 { return ActionDidVisit }
func (DidPauseLocationUpdates) ActionType() ActionType  { return ActionDidPauseLocationUpdates }
func (DidResumeLocationUpdates) ActionType() ActionType { return ActionDidResumeLocationUpdates }
func (DidFailWithError) ActionType() ActionType         { return ActionDidFailWithError }

func (DidChangeAuthorization) isAction()   {}
func (DidUpdateLocations) isAction()       {}
func (DidUpdateHeading) isAction()         {}
func (DidEnterRegion) isAction()           {}
func (DidExitRegion) isAction()            {}
func (DidDetermineState) isAction()        {}
func (DidStartMonitoring) isAction()       {}
func (MonitoringDidFail) isAction()        {}
func (DidFinishDeferredUpdates) isAction() {}
func (DidVisit) isAction()                 {}
func (DidPauseLocationUpdates) isAction()  {}
func (DidResumeLocationUpdates) isAction() {}
func (DidFailWithError) isAction()         {}

type actionEnvelope struct {
	Type    ActionType      `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MarshalAction encodes a as a {"type", "payload"} envelope.
func MarshalAction(a Action) ([]byte, error) {
	payload, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", a.ActionType(), err)
	}
	return json.Marshal(actionEnvelope{Type: a.ActionType(), Payload: payload})
}

// UnmarshalAction decodes an envelope written by MarshalAction.
func UnmarshalAction(data []byte) (Action, error) {
	var env actionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal action envelope: %w", err)
	}

	switch env.Type {
	case ActionDidChangeAuthorization:
		return decodeAction[DidChangeAuthorization](env)
	case ActionDidUpdateLocations:
		return decodeAction[DidUpdateLocations](env)
	case ActionDidUpdateHeading:
		return decodeAction[DidUpdateHeading](env)
	case ActionDidEnterRegion:
		return decodeAction[DidEnterRegion](env)
	case ActionDidExitRegion:
		return decodeAction[DidExitRegion](env)
	case ActionDidDetermineState:
		return decodeAction[DidDetermineState](env)
	case ActionDidStartMonitoring:
		return decodeAction[DidStartMonitoring](env)
	case ActionMonitoringDidFail:
		return decodeAction[MonitoringDidFail](env)
	case ActionDidFinishDeferredUpdates:
		return decodeAction[DidFinishDeferredUpdates](env)
	case ActionDidVisit:
		return decodeAction[DidVisit](env)
	case ActionDidPauseLocationUpdates:
		return DidPauseLocationUpdates{}, nil
	case ActionDidResumeLocationUpdates:
		return DidResumeLocationUpdates{}, nil
	case ActionDidFailWithError:
		return decodeAction[DidFailWithError](env)
	default:
		return nil, fmt.Errorf("unknown action type %q", env.Type)
	}
}

func decodeAction[T Action](env actionEnvelope) (Action, error) {
	var v T
	if len(env.Payload) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(env.Payload, &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Type, err)
	}
	return v, nil
}
