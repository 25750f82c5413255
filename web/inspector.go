package web

import (
	"fmt"
	"github.com/bassbeaver/glistener/event_bus"
	"github.com/bassbeaver/glistener/response"
	"github.com/husobee/vestigo"
	"github.com/rs/zerolog"
	"net/http"
)

// RegistryView is the inspector representation of a ListenerRegistry.
type RegistryView struct {
	Name      string `json:"name"`
	Listeners int    `json:"listeners"`
	Baked     bool   `json:"baked"`
}

// EntryView is one snapshot entry, in dispatch order.
type EntryView struct {
	Listener string `json:"listener"`
	Priority string `json:"priority"`
}

// EventView maps an event name accepted by configuration to the registry holding its listeners.
type EventView struct {
	Name     string `json:"name"`
	Registry string `json:"registry"`
}

// Inspector exposes the registries of a Directory over HTTP:
//
//	GET  /registries        - every registry with its size and bake state
//	GET  /registries/:name  - snapshot of one registry
//	GET  /events            - event names usable in event_listeners config
//	POST /bake              - bake every registry
//
// Reading a snapshot bakes the registry, like a dispatch would.
type Inspector struct {
	directory      *event_bus.Directory
	eventsRegistry *event_bus.EventsRegistry
	router         *vestigo.Router
	logger         zerolog.Logger
}

func (i *Inspector) ServeHTTP(responseWriter http.ResponseWriter, requestObj *http.Request) {
	i.router.ServeHTTP(responseWriter, requestObj)
}

func (i *Inspector) listRegistries(requestObj *http.Request) response.Response {
	registries := i.directory.Registries()

	views := make([]RegistryView, 0, len(registries))
	for _, registry := range registries {
		views = append(views, RegistryView{
			Name:      registry.Name(),
			Listeners: registry.Len(),
			Baked:     registry.IsBaked(),
		})
	}

	return response.NewJsonResponse(http.StatusOK, views)
}

func (i *Inspector) showRegistry(requestObj *http.Request) response.Response {
	name := vestigo.Param(requestObj, "name")

	registry, registryExists := i.directory.Lookup(name)
	if !registryExists {
		return response.NewJsonErrorResponse(http.StatusNotFound, "registry "+name+" not found")
	}

	snapshot := registry.Snapshot()
	views := make([]EntryView, 0, len(snapshot))
	for _, entry := range snapshot {
		views = append(views, EntryView{
			Listener: describeListener(entry.Listener()),
			Priority: entry.Priority().String(),
		})
	}

	return response.NewJsonResponse(http.StatusOK, views)
}

func (i *Inspector) listEvents(requestObj *http.Request) response.Response {
	names := i.eventsRegistry.Names()

	views := make([]EventView, 0, len(names))
	for _, name := range names {
		eventObj, eventError := i.eventsRegistry.GetEventByName(name)
		if nil != eventError {
			continue
		}
		views = append(views, EventView{Name: name, Registry: fmt.Sprintf("%T", eventObj)})
	}

	return response.NewJsonResponse(http.StatusOK, views)
}

func (i *Inspector) bakeAll(requestObj *http.Request) response.Response {
	i.directory.BakeAll()

	return response.NewJsonResponse(http.StatusNoContent, nil)
}

func (i *Inspector) handle(controller func(*http.Request) response.Response) http.HandlerFunc {
	return func(responseWriter http.ResponseWriter, requestObj *http.Request) {
		if sendError := response.Send(responseWriter, controller(requestObj)); nil != sendError {
			i.logger.Error().Err(sendError).Str("path", requestObj.URL.Path).Msg("Failed to send inspector response")
		}
	}
}

func describeListener(listenerObj interface{}) string {
	if stringer, isStringer := listenerObj.(fmt.Stringer); isStringer {
		return fmt.Sprintf("%T(%s)", listenerObj, stringer.String())
	}

	return fmt.Sprintf("%T", listenerObj)
}

//--------------------

// NewInspector serves directory. A nil eventsRegistry stands for the kernel events of NewDefaultRegistry.
func NewInspector(directory *event_bus.Directory, eventsRegistry *event_bus.EventsRegistry, logger zerolog.Logger) *Inspector {
	if nil == eventsRegistry {
		eventsRegistry = event_bus.NewDefaultRegistry()
	}

	i := &Inspector{
		directory:      directory,
		eventsRegistry: eventsRegistry,
		router:         vestigo.NewRouter(),
		logger:         logger,
	}

	i.router.Get("/registries", i.handle(i.listRegistries))
	i.router.Get("/registries/:name", i.handle(i.showRegistry))
	i.router.Get("/events", i.handle(i.listEvents))
	i.router.Post("/bake", i.handle(i.bakeAll))

	return i
}
