package telemetry

type TelemetryEvent string

const (
	EventImage   TelemetryEvent = "IMG-CLI::IMAGE"
	EventChannel TelemetryEvent = "IMG-CLI::CHANNEL"
	EventPing    TelemetryEvent = "IMG-CLI::PING"
)

type TelemetryEventMode string

const (
	ModeList     TelemetryEventMode = "LIST"
	ModeGet      TelemetryEventMode = "GET"
	ModeDownload TelemetryEventMode = "DOWNLOAD"
)
