// Package upstream talks to the read-only REST data source the gateway
// fronts (JSONPlaceholder by default). It fetches collections and nested
// relationship paths, decodes them with a case-insensitive field mapping,
// and mirrors gateway writes back on a best-effort basis.
//
// Every failure to obtain data (transport error, timeout, non-2xx status,
// undecodable body) wraps domain.ErrUpstreamUnavailable.
package upstream
