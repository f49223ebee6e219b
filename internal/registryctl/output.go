package registryctl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/config"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/helpers"
	"gopkg.in/yaml.v3"
)

func (app *App) context(eventType, subject string) context.Context {
	ctx := helpers.InitContext(app.Config.CloudEvents.Source)
	return helpers.WithEventContext(ctx, eventType, subject)
}

// render writes a JSON document in the configured format, wrapped in a CloudEvent
// when enabled.
func (app *App) render(ctx context.Context, document []byte) error {
	if app.Config.CloudEvents.Enabled {
		event, err := helpers.BuildCloudEvent(ctx, json.RawMessage(document))
		if err != nil {
			return err
		}

		document, err = json.Marshal(event)
		if err != nil {
			return fmt.Errorf("could not encode cloud event: %w", err)
		}
	}

	var out []byte
	switch app.Config.Output.Format {
	case config.YAMLOutput:
		// JSON is valid YAML, decoding it this way keeps integers intact.
		var generic interface{}
		if err := yaml.Unmarshal(document, &generic); err != nil {
			return fmt.Errorf("could not convert document to yaml: %w", err)
		}

		yamlBytes, err := yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("could not convert document to yaml: %w", err)
		}
		out = yamlBytes
	default:
		if app.Config.Output.Indent {
			var buf bytes.Buffer
			if err := json.Indent(&buf, document, "", "  "); err != nil {
				return err
			}
			out = buf.Bytes()
		} else {
			out = document
		}
		out = append(out, '\n')
	}

	_, err := app.Out.Write(out)
	return err
}
