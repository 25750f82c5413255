package glistener

import (
	"context"
	"errors"
	"fmt"
	"github.com/bassbeaver/gioc"
	"github.com/bassbeaver/glistener/config"
	"github.com/bassbeaver/glistener/event_bus"
	"github.com/bassbeaver/glistener/event_bus/event"
	"github.com/bassbeaver/glistener/event_bus/listener"
	"github.com/bassbeaver/glistener/logging"
	"github.com/bassbeaver/glistener/web"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"syscall"
	"time"
)

const (
	configDefaultShutdownTimeoutMs = 500
)

// Kernel wires listeners declared in configuration to event registries and drives the application
// lifecycle: Launch, Reload and Terminate.
type Kernel struct {
	config              *viper.Viper
	container           *gioc.Container
	eventsRegistry      *event_bus.EventsRegistry
	directory           *event_bus.Directory
	applicationEventBus *event_bus.EventBus // Event bus for application level events
	logger              zerolog.Logger
	inspectorServer     *http.Server
}

func (k *Kernel) GetContainer() *gioc.Container {
	return k.container
}

func (k *Kernel) GetEventsRegistry() *event_bus.EventsRegistry {
	return k.eventsRegistry
}

func (k *Kernel) GetDirectory() *event_bus.Directory {
	return k.directory
}

func (k *Kernel) GetEventBus() *event_bus.EventBus {
	return k.applicationEventBus
}

func (k *Kernel) RegisterService(alias string, factoryMethod interface{}, enableCaching bool) error {
	configServicePath := config.KeyServices + "." + alias
	configServiceArgumentsPath := configServicePath + ".arguments"
	if !k.config.IsSet(configServicePath) {
		return errors.New(alias + " service configuration not found")
	}

	var arguments []string
	if k.config.IsSet(configServiceArgumentsPath) {
		arguments = k.config.GetStringSlice(configServiceArgumentsPath)
	} else {
		arguments = make([]string, 0)
	}

	k.container.RegisterServiceFactoryByAlias(
		alias,
		gioc.Factory{
			Create:    factoryMethod,
			Arguments: arguments,
		},
		enableCaching,
	)

	return nil
}

func (k *Kernel) RegisterListener(eventObj event.Event, listenerObj listener.Listener, listenerFunc interface{}, priority event_bus.Priority) error {
	return k.applicationEventBus.AppendListener(eventObj, listenerObj, listenerFunc, priority)
}

// UnregisterListener removes listenerObj from every registry of the kernel directory, returns the number of
// registries it was removed from. Used when the owner of the listener is torn down.
func (k *Kernel) UnregisterListener(listenerObj listener.Listener) int {
	return k.directory.UnregisterAllFor(listenerObj)
}

// Launch registers configured listeners, bakes every registry and dispatches ApplicationLaunched.
func (k *Kernel) Launch() error {
	defer logging.LogOperationStart(k.logger, "launch")()

	if noCycles, cycledService := k.container.CheckCycles(); !noCycles {
		return errors.New("failed to launch application, errors in DI container: service " + cycledService + " has circular dependencies")
	}

	if registerError := k.registerConfiguredListeners(); nil != registerError {
		return registerError
	}

	k.directory.BakeAll()

	listenersCount := k.applicationEventBus.ListenersCount()
	k.logger.Info().Int("listeners", listenersCount).Int("registries", k.directory.Len()).Msg("Application launched")
	k.applicationEventBus.Dispatch(event.NewApplicationLaunched(k, listenersCount))

	return nil
}

// Reload drops every registration of the kernel directory, registers configured listeners again and
// dispatches ApplicationReloaded. Listeners registered from code have to be registered again by an
// ApplicationReloaded listener.
func (k *Kernel) Reload() error {
	defer logging.LogOperationStart(k.logger, "reload")()

	k.directory.UnregisterAll()

	if registerError := k.registerConfiguredListeners(); nil != registerError {
		return registerError
	}

	k.directory.BakeAll()

	listenersCount := k.applicationEventBus.ListenersCount()
	k.logger.Info().Int("listeners", listenersCount).Msg("Application reloaded")
	k.applicationEventBus.Dispatch(event.NewApplicationReloaded(k, listenersCount))

	return nil
}

// Terminate dispatches ApplicationTermination, shuts the directory down and drops the registries of the
// application event bus. Returns errors collected by termination listeners.
func (k *Kernel) Terminate() []error {
	terminationErrors := make([]error, 0)
	k.applicationEventBus.Dispatch(event.NewApplicationTermination(k, &terminationErrors))

	k.directory.Shutdown()
	k.applicationEventBus.Clear()

	for _, terminationError := range terminationErrors {
		k.logger.Warn().Err(terminationError).Msg("Termination listener reported error")
	}
	k.logger.Info().Msg("Application terminated")

	return terminationErrors
}

func (k *Kernel) InspectorHandler() http.Handler {
	return web.NewInspector(k.directory, k.eventsRegistry, logging.GetLogger("inspector"))
}

// Run launches the application, serves the inspector if inspector.port is configured and blocks until
// SIGINT or SIGTERM.
func (k *Kernel) Run() error {
	if launchError := k.Launch(); nil != launchError {
		return launchError
	}

	signalsChannel := make(chan os.Signal, 1)
	signal.Notify(signalsChannel, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signalsChannel)

	runErrors := make([]error, 0)
	serveErrors := k.startInspector()

	select {
	case <-signalsChannel:
	case serveError := <-serveErrors:
		runErrors = append(runErrors, serveError)
	}

	if shutdownError := k.stopInspector(); nil != shutdownError {
		runErrors = append(runErrors, shutdownError)
	}

	runErrors = append(runErrors, k.Terminate()...)

	return errors.Join(runErrors...)
}

// startInspector returns a channel receiving the error of a failed ListenAndServe. The channel never
// receives if the inspector is not configured.
func (k *Kernel) startInspector() <-chan error {
	serveErrors := make(chan error, 1)
	if !k.config.IsSet(config.KeyInspectorPort) {
		return serveErrors
	}

	k.inspectorServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", k.config.GetInt(config.KeyInspectorPort)),
		Handler: k.InspectorHandler(),
	}

	go func() {
		k.logger.Info().Str("addr", k.inspectorServer.Addr).Msg("Inspector listening")

		listenError := k.inspectorServer.ListenAndServe()
		if nil != listenError && http.ErrServerClosed != listenError {
			k.logger.Error().Err(listenError).Msg("Inspector stopped")
			serveErrors <- listenError
		}
	}()

	return serveErrors
}

func (k *Kernel) stopInspector() error {
	if nil == k.inspectorServer {
		return nil
	}

	shutdownTimeout := k.config.GetDuration(config.KeyInspectorTimeout)
	if 0 >= shutdownTimeout {
		shutdownTimeout = configDefaultShutdownTimeoutMs
	}
	shutdownTimeout = shutdownTimeout * time.Millisecond

	shutdownContext, shutdownContextCancelFunc := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownContextCancelFunc()

	shutdownError := k.inspectorServer.Shutdown(shutdownContext)
	if context.DeadlineExceeded == shutdownError {
		return errors.New(fmt.Sprintf("glistener: inspector graceful shutdown timeout of %s expired", shutdownTimeout))
	}

	return shutdownError
}

func (k *Kernel) registerConfiguredListeners() error {
	listenersConfig, readError := config.ReadEventListeners(k.config)
	if nil != readError {
		return readError
	}

	for _, listenerConfig := range listenersConfig {
		if registerError := k.registerConfiguredListener(listenerConfig); nil != registerError {
			return fmt.Errorf(
				"failed to register event listener %s, event: %s, error: %w",
				listenerConfig.Listener,
				listenerConfig.EventName,
				registerError,
			)
		}
	}

	return nil
}

func (k *Kernel) registerConfiguredListener(listenerConfig config.EventListenerConfig) error {
	eventObj, eventRegistryError := k.eventsRegistry.GetEventByName(listenerConfig.EventName)
	if nil != eventRegistryError {
		return eventRegistryError
	}

	priority, priorityError := event_bus.ParsePriority(listenerConfig.Priority)
	if nil != priorityError {
		return priorityError
	}

	listenerObj := k.container.GetByAlias(listenerConfig.ListenerAlias())
	if nil == listenerObj {
		return errors.New("service " + listenerConfig.ListenerAlias() + " not found")
	}

	listenerMethodValue := reflect.ValueOf(listenerObj).MethodByName(listenerConfig.ListenerMethod())
	if !listenerMethodValue.IsValid() {
		return fmt.Errorf("method %s not found in listener object %s", listenerConfig.ListenerMethod(), listenerConfig.ListenerAlias())
	}

	return k.RegisterListener(eventObj, listenerObj, listenerMethodValue.Interface(), priority)
}

//--------------------

// NewKernel reads configs from configPath (a directory or a file in it). Known sections are copied to
// the kernel's own viper object.
func NewKernel(configPath string) (*Kernel, error) {
	configObj, configBuildError := config.BuildFromDir(configPath)
	if nil != configBuildError {
		return nil, configBuildError
	}

	priorityOrder, priorityOrderError := event_bus.ParsePriorityOrder(configObj.GetString(config.KeyPriorityOrder))
	if nil != priorityOrderError {
		return nil, errors.New("failed to read configs: " + priorityOrderError.Error())
	}

	if configObj.IsSet(config.KeyLogLevel) {
		logging.SetupLogger(configObj.GetString(config.KeyLogLevel), nil)
	}

	directory := event_bus.NewDirectory(
		event_bus.WithPriorityOrder(priorityOrder),
		event_bus.WithLogger(logging.GetLogger("directory")),
	)

	kernel := &Kernel{
		config:              viper.New(),
		container:           gioc.NewContainer(),
		eventsRegistry:      event_bus.NewDefaultRegistry(),
		directory:           directory,
		applicationEventBus: event_bus.NewEventBus(directory),
		logger:              logging.GetLogger("kernel"),
	}

	// Copy known config parts to kernel's viper object
	func(params []string, source, target *viper.Viper) {
		for _, param := range params {
			if source.IsSet(param) {
				target.Set(param, source.Get(param))
			}
		}
	}(
		[]string{config.KeyServices, config.KeyEventListeners, config.KeyInspectorPort, config.KeyInspectorTimeout},
		configObj,
		kernel.config,
	)

	// Setting parameters to container
	if configObj.IsSet(config.KeyParameters) {
		kernel.container.SetParameters(configObj.GetStringMapString(config.KeyParameters))
	}

	return kernel, nil
}
