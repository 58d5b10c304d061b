// Package api implements the web API client of
// github.com/katalvlaran/qryddev.
//
// The Backend posts jobs to the QRyd cloud and addresses them afterwards by
// the location URL the server assigns on acceptance:
//
//	b, err := api.New(api.Config{BaseURL: root, DeviceName: dev.QRydBackend()})
//	jobURL, err := b.PostJob(ctx, api.NewRunData(dev, program))
//	status, err := b.GetJobStatus(ctx, jobURL)
//	result, err := b.GetJobResult(ctx, jobURL)
//	err = b.DeleteJob(ctx, jobURL)
//
// The access token resolves from Config.Token first and the QRYD_API_TOKEN
// environment variable second; requests carry it in the X-API-KEY header
// together with a fresh X-Request-Id UUID. Request and response metadata is
// logged at debug level through the configured zap logger.
//
// The client is deliberately thin: one HTTP round trip per call, no retry,
// no backoff, no polling loop. Callers own the waiting strategy.
//
// Errors:
//
//	ErrConfig       - invalid configuration field.
//	ErrMissingToken - no access token in the config or the environment.
//	ErrStatus       - unexpected HTTP status; the wrap carries the status
//	                  line and a body excerpt.
//	ErrNoLocation   - job accepted without a Location header.
//	ErrCounts       - measurement outcome key is not a hex bitstring.
package api
