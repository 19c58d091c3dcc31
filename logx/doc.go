// Package logx provides leveled logging with environment variable configuration
// and three output formats: colored console, single-line CloudWatch and JSON.
//
// Environment Variables:
//   - LOG_LEVEL: minimum level (TRACE, DEBUG, INFO, WARN, ERROR, OFF)
//   - LOG_FORMAT: console, cloudwatch or json
//   - LOG_COLOR: colored level names on the console (default true)
//   - LOG_CALLER: file:line of the caller (default true)
//
// Basic Usage:
//
//	logx.Info("Listening on %s", addr)
//	logx.Debug("Cache hit for %s/%s", resource, operation)
//
// Fields:
//
//	log := logx.With("instanceId", instanceID).With("eventType", "message")
//	log.Info("Webhook event emitted")
//
//	Console:    [2025-06-08 18:57:52] [INFO] webhook.go:88: Webhook event emitted instanceId=abc eventType=message
//	CloudWatch: [2025-06-08T18:57:52.000Z] [INFO] webhook.go:88: Webhook event emitted instanceId=abc eventType=message
//	JSON:       {"caller":"webhook.go:88","eventType":"message","instanceId":"abc","level":"INFO","message":"Webhook event emitted","timestamp":"2025-06-08T18:57:52Z"}
package logx
