package registryctl

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/config"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/errs"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/helpers"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/services"
	log "github.com/sirupsen/logrus"
)

const serviceName = "registryctl"

// App holds what the commands share. Nil fields are filled in before the first
// command runs.
type App struct {
	Config *config.RegistryToolConfig
	Codec  services.RegistryCodecService
	In     io.Reader
	Out    io.Writer

	configPath      string
	output          string
	cloudEvent      bool
	cloudEventInput bool
}

func (app *App) init() error {
	if app.In == nil {
		app.In = os.Stdin
	}

	if app.Out == nil {
		app.Out = os.Stdout
	}

	if app.Config == nil {
		conf, err := loadConfig(app.configPath)
		if err != nil {
			return err
		}
		app.Config = conf
	}

	if app.output != "" {
		app.Config.Output.Format = config.OutputFormat(app.output)
	}

	if app.cloudEvent {
		app.Config.CloudEvents.Enabled = true
	}

	configureGlobalLogger(app.Config.Logs.Level)

	if err := app.Config.Validate(); err != nil {
		return err
	}

	if app.Codec == nil {
		app.Codec = services.NewRegistryCodecService(services.RegistryCodecBuilder{
			Logger: helpers.SetupLogger(app.Config.Logs.Level, serviceName, "Codec"),
		})
	}

	return nil
}

func configureGlobalLogger(level config.LogLevel) {
	log.SetFormatter(helpers.LogFormatter)

	if level == config.None {
		log.SetOutput(io.Discard)
		return
	}

	globalLogLevel, err := log.ParseLevel(string(level))
	if err != nil {
		log.Warnf("unknown log level '%s'. defaulting to 'info' log level", level)
		globalLogLevel = log.InfoLevel
	}
	log.SetLevel(globalLogLevel)
	log.Debugf("global log level set to '%s'", globalLogLevel)
}

func loadConfig(path string) (*config.RegistryToolConfig, error) {
	defaults := config.RegistryToolDefaults

	if path != "" {
		return config.LoadConfigFile[config.RegistryToolConfig](path, &defaults)
	}

	if os.Getenv(config.ConfigFileEnvVar) != "" {
		return config.LoadConfig[config.RegistryToolConfig](&defaults)
	}

	log.Debugf("no config file given, using defaults")
	return &defaults, nil
}

// readInput reads the file named by the first argument, or the command input when
// there is none or it is "-". With --cloudevent-input the document is the data of
// the CloudEvent read.
func (app *App) readInput(args []string) ([]byte, error) {
	var (
		payload []byte
		err     error
	)
	if len(args) == 0 || args[0] == "-" {
		payload, err = io.ReadAll(app.In)
	} else {
		payload, err = os.ReadFile(args[0])
	}
	if err != nil || !app.cloudEventInput {
		return payload, err
	}

	return unwrapCloudEvent(payload)
}

func unwrapCloudEvent(payload []byte) ([]byte, error) {
	event, err := helpers.ParseCloudEvent(payload)
	if err != nil {
		return nil, errs.MalformedPayload(fmt.Errorf("cloud event: %w", err))
	}

	body, err := helpers.GetEventBody[json.RawMessage](event)
	if err != nil {
		return nil, errs.MalformedPayload(fmt.Errorf("cloud event data: %w", err))
	}
	if body == nil {
		return nil, errs.MalformedPayload(fmt.Errorf("cloud event data is null"))
	}

	log.Debugf("read %s event '%s' from %s", event.Type(), event.ID(), event.Source())
	return *body, nil
}

// openInput streams bulk files, which are never wrapped in a single CloudEvent.
func (app *App) openInput(args []string) (io.ReadCloser, error) {
	if app.cloudEventInput {
		return nil, errs.InvalidArgument(fmt.Errorf("--cloudevent-input does not apply to bulk files"))
	}

	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(app.In), nil
	}

	return os.Open(args[0])
}
