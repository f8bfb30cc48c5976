package core

import "sync"

type EventCode uint16

// System internal event codes up to 0xFF, drill events from 0x100.
const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01

	// Keyboard key pressed.
	/* Context usage:
	 * ke := data.(*KeyEvent)
	 */
	EVENT_CODE_KEY_PRESSED EventCode = 0x02

	// Keyboard key released.
	/* Context usage:
	 * ke := data.(*KeyEvent)
	 */
	EVENT_CODE_KEY_RELEASED EventCode = 0x03

	// The watched configuration file changed on disk.
	/* Context usage:
	 * cfg := data.(*config.DrillConfig)
	 */
	EVENT_CODE_CONFIG_CHANGED EventCode = 0x09

	// A containment test flipped between inside and outside.
	EVENT_CODE_CONTAINMENT_CHANGED EventCode = 0x100

	// A ray cast hit something it did not hit on the previous frame.
	EVENT_CODE_RAY_HIT EventCode = 0x101
)

type EventContext struct {
	Type EventCode
	// Payload, see the code's context usage.
	Data interface{}
}

type KeyEvent struct {
	KeyCode KeyCode
}

// Should return true if handled.
type FnOnEvent func(context EventContext) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

// State structure.
type eventSystemState struct {
	// Lookup table for event codes.
	registered map[EventCode][]*registeredEvent
}

/**
 * Event system internal state.
 */
var eventMutex sync.Mutex
var eventState *eventSystemState = nil

func EventSystemInitialize() bool {
	eventMutex.Lock()
	defer eventMutex.Unlock()
	if eventState != nil {
		return false
	}
	eventState = &eventSystemState{
		registered: make(map[EventCode][]*registeredEvent),
	}
	return true
}

func EventSystemShutdown() error {
	eventMutex.Lock()
	defer eventMutex.Unlock()
	// Any objects still registered should be released by their owners.
	eventState = nil
	return nil
}

/**
 * Register to listen for when events are sent with the provided code. A listener
 * can only be registered once per code; a duplicate causes this to return false.
 * @param code The event code to listen for.
 * @param listener The listener instance, used as the registration key. Can be nil once per code.
 * @param onEvent The callback to invoke when the event code is fired.
 * @returns true if the event is successfully registered; otherwise false.
 */
func EventRegister(code EventCode, listener interface{}, onEvent FnOnEvent) bool {
	eventMutex.Lock()
	defer eventMutex.Unlock()
	if eventState == nil || onEvent == nil {
		return false
	}
	for _, e := range eventState.registered[code] {
		if e.listener == listener {
			LogWarn("listener already registered for event code %d", code)
			return false
		}
	}
	eventState.registered[code] = append(eventState.registered[code], &registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

/**
 * Unregister from listening for when events are sent with the provided code. If no matching
 * registration is found, this function returns false.
 */
func EventUnregister(code EventCode, listener interface{}) bool {
	eventMutex.Lock()
	defer eventMutex.Unlock()
	if eventState == nil {
		return false
	}
	events := eventState.registered[code]
	for i, e := range events {
		if e.listener == listener {
			eventState.registered[code] = append(events[:i:i], events[i+1:]...)
			return true
		}
	}
	return false
}

/**
 * Fires an event to listeners of the given code, synchronously and in registration
 * order. If an event handler returns true, the event is considered handled and is not
 * passed on to any more listeners.
 * @returns true if handled, otherwise false.
 */
func EventFire(context EventContext) bool {
	eventMutex.Lock()
	if eventState == nil {
		eventMutex.Unlock()
		return false
	}
	// Copy so handlers may register or unregister while we iterate.
	events := append([]*registeredEvent(nil), eventState.registered[context.Type]...)
	eventMutex.Unlock()

	for _, e := range events {
		if e.callback(context) {
			return true
		}
	}
	return false
}
