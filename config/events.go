package config

import (
	"errors"
	"github.com/bassbeaver/glistener/helper"
)

// EventListenerConfig describes one listener registration:
//
//	event_listeners:
//	  - event: kernelEvent.ApplicationLaunched
//	    listener: audit_listener:OnLaunch
//	    priority: monitor
type EventListenerConfig struct {
	EventName string `mapstructure:"event"`
	Listener  string `mapstructure:"listener"`
	Priority  string `mapstructure:"priority"`
}

func (c *EventListenerConfig) ListenerAlias() string {
	return helper.GetStringPart(c.Listener, ":", 0)
}

func (c *EventListenerConfig) ListenerMethod() string {
	return helper.GetStringPart(c.Listener, ":", 1)
}

func (c *EventListenerConfig) Validate() error {
	if "" == c.EventName {
		return errors.New("event name is not set")
	}

	if "" == c.ListenerAlias() || "" == c.ListenerMethod() {
		return errors.New("listener " + c.Listener + " should be set as service_alias:Method")
	}

	return nil
}
