// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"strconv"
	"sync/atomic"

	"github.com/MKhiriev/hyperdrive/internal/adapter"
	"github.com/MKhiriev/hyperdrive/internal/config"
	handler "github.com/MKhiriev/hyperdrive/internal/handler/http"
	"github.com/MKhiriev/hyperdrive/internal/logger"
	"github.com/MKhiriev/hyperdrive/internal/server"
	"github.com/MKhiriev/hyperdrive/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Hyperdrive is one configured server instance.
type Hyperdrive struct {
	opts      Options
	values    config.Values
	env       config.Env
	runtime   config.Runtime
	serverURL *url.URL
	adapters  *adapter.Adapters
	out       io.Writer

	started atomic.Bool
	logger  *logger.Logger
}

// New resolves the configuration of a server instance. It fails on a
// malformed override file or an option value rejected by its parser.
func New(opts Options) (*Hyperdrive, error) {
	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}
	env := config.NewEnv(environ)

	runtime, err := config.ParseRuntime(env)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log, err = logger.NewLogger("hyperdrive", logger.Options{
			Level:  runtime.LogLevel,
			Pretty: runtime.IsDevelopment(),
		})
		if err != nil {
			return nil, err
		}
	}

	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = runtime.ConfigFile
	}

	overrides, err := config.NewOverridesBuilder().
		WithFile(configFile).
		WithValues(opts.Overrides).
		WithDatabase(opts.Database).
		Build()
	if err != nil {
		return nil, err
	}

	defs := config.DefaultDefinitions()
	if unknown := config.UnknownKeys(defs, overrides); len(unknown) > 0 {
		log.Warn().Strs("keys", unknown).Msg("ignoring unknown configuration keys")
	}

	values, err := config.Resolve(defs, overrides, env)
	if err != nil {
		return nil, err
	}

	serverURL, err := config.Derive(values)
	if err != nil {
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	log.Debug().Str("server_url", serverURL.String()).Msg("configuration resolved")

	return &Hyperdrive{
		opts:      opts,
		values:    values,
		env:       env,
		runtime:   runtime,
		serverURL: serverURL,
		out:       out,
		logger:    log,
	}, nil
}

// Config returns the resolved configuration. Callers may adjust it before
// Start.
func (h *Hyperdrive) Config() config.Values {
	return h.values
}

// ServerURL returns the derived public server URL.
func (h *Hyperdrive) ServerURL() *url.URL {
	return h.serverURL
}

// Runtime returns the process settings read from the environment.
func (h *Hyperdrive) Runtime() config.Runtime {
	return h.runtime
}

// Adapters returns the adapters configured by Router or Start, or nil.
func (h *Hyperdrive) Adapters() *adapter.Adapters {
	return h.adapters
}

// Router validates the configuration, configures the adapters and builds
// the router without binding a port.
func (h *Hyperdrive) Router(ctx context.Context) (chi.Router, error) {
	if err := h.validate(); err != nil {
		return nil, err
	}
	return h.buildRouter(ctx)
}

func (h *Hyperdrive) validate() error {
	if err := config.ValidateStartup(h.values); err != nil {
		h.logger.Error().Err(err).Msg("invalid configuration, server not started")
		return err
	}
	return nil
}

func (h *Hyperdrive) buildRouter(ctx context.Context) (chi.Router, error) {
	adapters, err := adapter.Configure(ctx, h.values, h.serverURL, h.logger)
	if err != nil {
		return nil, err
	}
	h.adapters = adapters
	h.inspectDatabase()

	deps := handler.Dependencies{
		Values:    h.values,
		Env:       h.env,
		Runtime:   h.runtime,
		BuildInfo: h.opts.BuildInfo,
		Registry:  newRegistry(),
	}

	if h.values.String(config.KeyIncomingMount) != "" {
		deps.Runner, err = adapter.NewCloudFunctionRunner(adapter.CloudRunnerConfig{
			ServerURL: h.values.String(config.KeyServerURL),
			AppID:     h.values.String(config.KeyAppID),
			MasterKey: h.values.String(config.KeyMasterKey),
		}, h.logger)
		if err != nil {
			return nil, err
		}
	}

	if h.values.String(config.KeyParseMount) != "" && h.opts.API != nil {
		deps.API, err = h.opts.API(h.values, adapters)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingAPI, err)
		}
	}

	if h.values.String(config.KeyDashboardMount) != "" && h.opts.Dashboard != nil {
		deps.Dashboard, err = h.opts.Dashboard(handler.NewDashboardOptions(h.values, h.runtime))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingDashboard, err)
		}
	}

	return handler.NewHandler(deps, h.logger).Init(), nil
}

// Start configures the instance and serves until ctx is cancelled or a stop
// signal arrives. A call on a running instance logs a warning and returns
// [ErrAlreadyStarted]. An instance that failed before listening may be
// started again.
func (h *Hyperdrive) Start(ctx context.Context) (err error) {
	if !h.started.CompareAndSwap(false, true) {
		h.logger.Warn().Msg("This instance has already been configured!")
		return ErrAlreadyStarted
	}
	listening := false
	defer func() {
		if err != nil && !listening {
			h.started.Store(false)
		}
	}()

	if err = h.validate(); err != nil {
		return err
	}

	procs := applyCluster(h.values)
	h.logger.Debug().Int("gomaxprocs", procs).Msg("cluster setting applied")

	router, err := h.buildRouter(ctx)
	if err != nil {
		return err
	}

	if h.opts.BeforeBoot != nil {
		h.opts.BeforeBoot(router)
	}

	h.printStartupLog()

	port, _ := h.values.Int(config.KeyPort)
	srv := server.NewServer(router, server.Config{
		Address:         ":" + strconv.Itoa(port),
		ShutdownTimeout: h.runtime.ShutdownTimeout,
		OnListen: func(addr net.Addr) {
			listening = true
			if h.values.Bool(config.KeyStartLiveQueryServer) {
				h.logger.Info().Int("pid", os.Getpid()).Msg("live query server started")
			}
			h.logger.Info().Int("pid", os.Getpid()).Str("addr", addr.String()).
				Msgf("started %s", h.values.String(config.KeyServerURL))

			if h.opts.AfterBoot != nil {
				h.opts.AfterBoot(router)
			}
		},
	}, h.logger)

	return srv.RunServer(ctx)
}

func (h *Hyperdrive) inspectDatabase() {
	uri := h.values.String(config.KeyDatabaseURI)
	if uri == "" {
		return
	}

	info, err := store.Inspect(uri)
	if err != nil {
		h.logger.Warn().Err(err).Msg("database uri not recognised")
		return
	}
	h.logger.Debug().
		Str("kind", string(info.Kind)).
		Strs("hosts", info.Hosts).
		Str("database", info.Database).
		Msg("database configured")
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
