package events

import "github.com/atomicstack/tmux-tab-picker/internal/logging"

type AppTracer struct{}

type ConfigTracer struct{}

type BackendTracer struct{}

var (
	App     = AppTracer{}
	Config  = ConfigTracer{}
	Backend = BackendTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(reason string) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason})
}

func (ConfigTracer) Options(payload map[string]interface{}) {
	logging.Trace("config.options", payload)
}

func (ConfigTracer) Unrecognized(key, value, suggestion string) {
	logging.Trace("config.unrecognized", map[string]interface{}{
		"key":        key,
		"value":      value,
		"suggestion": suggestion,
	})
}

func (BackendTracer) Poll(session string, tabs int, err error) {
	payload := map[string]interface{}{"session": session, "tabs": tabs}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("backend.poll", payload)
}
