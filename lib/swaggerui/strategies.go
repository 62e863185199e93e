package swaggerui

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// lookup is one conventional location where a swagger ui build may expose
// the assembled spec object.
type lookup struct {
	name string
	expr string
}

// specLookups are tried in order, first hit wins.
var specLookups = []lookup{
	{
		name: "ui.specSelectors.specJson()",
		expr: `window.ui && window.ui.specSelectors && window.ui.specSelectors.specJson ? window.ui.specSelectors.specJson() : null`,
	},
	{
		name: "ui.spec()",
		expr: `window.ui && window.ui.spec ? window.ui.spec() : null`,
	},
	{
		name: "window.swaggerSpec",
		expr: `window.swaggerSpec ? window.swaggerSpec : null`,
	},
	{
		// The redux store, for builds that expose none of the accessors.
		name: "ui.getState().spec.json",
		expr: `(() => {
	const state = window.ui && window.ui.getState && window.ui.getState();
	return state && state.spec && state.spec.json ? state.spec.json : null;
})()`,
	},
}

// specUrlProbe recovers where the page loads its spec from, for diagnostics
// when none of the lookups produce the document itself.
const specUrlProbe = `(() => {
	try {
		const config = window.ui && window.ui.getConfigs && window.ui.getConfigs();
		return (config && config.url) || "";
	} catch (e) {
		return "";
	}
})()`

// stringified wraps a lookup expression so it always evaluates to a string:
// the serialized document on a hit, "" on a miss or in-page error.
func stringified(expr string) string {
	return fmt.Sprintf(`(() => {
	try {
		const spec = %s;
		return spec ? JSON.stringify(spec) : "";
	} catch (e) {
		return "";
	}
})()`, expr)
}

func lookupSpec(s session) (json.RawMessage, string) {
	for _, l := range specLookups {
		var raw string
		err := s.evaluate(stringified(l.expr), &raw)
		if err != nil {
			slog.Warn("spec lookup failed", "strategy", l.name, "err", err)
			continue
		}
		if raw == "" {
			slog.Debug("spec lookup came up empty", "strategy", l.name)
			continue
		}
		return json.RawMessage(raw), l.name
	}
	return nil, ""
}

func lookupSpecUrl(s session) string {
	var specUrl string
	err := s.evaluate(specUrlProbe, &specUrl)
	if err != nil {
		slog.Warn("spec url probe failed", "err", err)
		return ""
	}
	return specUrl
}
