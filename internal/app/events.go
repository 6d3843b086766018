package app

import (
	"sync"

	"sidenav-tui/internal/nav"
)

// Типы событий
const (
	EventNavToggled    = "nav.toggled"
	EventStyleReloaded = "style.reloaded"
)

// Event представляет событие в системе
type Event interface {
	Type() string
	Data() interface{}
}

// EventHandler обработчик события
type EventHandler func(Event)

// EventBus шина событий для связи между компонентами
type EventBus struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
	wg       sync.WaitGroup
}

// NewEventBus создает новую шину событий
func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]EventHandler),
	}
}

// Subscribe подписывается на событие
func (eb *EventBus) Subscribe(eventType string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.handlers[eventType] = append(eb.handlers[eventType], handler)
}

// Publish публикует событие
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	handlers := eb.handlers[event.Type()]
	eb.mu.RUnlock()

	// Запускаем обработчики в отдельных горутинах
	for _, handler := range handlers {
		eb.wg.Add(1)
		go func(h EventHandler) {
			defer eb.wg.Done()
			h(event)
		}(handler)
	}
}

// Wait блокируется до завершения запущенных обработчиков
func (eb *EventBus) Wait() {
	eb.wg.Wait()
}

// Unsubscribe отписывается от всех обработчиков события
func (eb *EventBus) Unsubscribe(eventType string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	delete(eb.handlers, eventType)
}

// BaseEvent базовая реализация события
type BaseEvent struct {
	EventType string
	EventData interface{}
}

func (e BaseEvent) Type() string      { return e.EventType }
func (e BaseEvent) Data() interface{} { return e.EventData }

// NavToggledEvent навигация переключена
type NavToggledEvent struct {
	BaseEvent
	State   nav.State
	Offset  string
	Toggles int
}

// NewNavToggledEvent создает событие переключения навигации
func NewNavToggledEvent(state nav.State, offset string, toggles int) *NavToggledEvent {
	return &NavToggledEvent{
		BaseEvent: BaseEvent{
			EventType: EventNavToggled,
			EventData: map[string]interface{}{
				"state":   state.String(),
				"offset":  offset,
				"toggles": toggles,
			},
		},
		State:   state,
		Offset:  offset,
		Toggles: toggles,
	}
}

// StyleReloadedEvent ширины навигации перечитаны из конфигурации
type StyleReloadedEvent struct {
	BaseEvent
	FullNavWidth string
	MiniNavWidth string
}

// NewStyleReloadedEvent создает событие перезагрузки стиля
func NewStyleReloadedEvent(full, mini string) *StyleReloadedEvent {
	return &StyleReloadedEvent{
		BaseEvent: BaseEvent{
			EventType: EventStyleReloaded,
			EventData: map[string]string{"full": full, "mini": mini},
		},
		FullNavWidth: full,
		MiniNavWidth: mini,
	}
}

// subscribeEvents пишет события приложения в лог
func (a *App) subscribeEvents() {
	logEvent := func(e Event) {
		a.logger.Info("event", "type", e.Type(), "data", e.Data())
	}
	a.eventBus.Subscribe(EventNavToggled, logEvent)
	a.eventBus.Subscribe(EventStyleReloaded, logEvent)
}
