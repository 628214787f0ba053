package telemetry

import (
	"context"
	"fmt"

	"github.com/amplitude/analytics-go/amplitude"
	"github.com/amplitude/analytics-go/amplitude/types"
	"github.com/sirupsen/logrus"
)

type TelemetryService struct {
	ctx             context.Context
	client          amplitude.Client
	EnableTelemetry bool
}

func (t *TelemetryService) TrackEvent(item TelemetryItem) {
	if !t.EnableTelemetry {
		logrus.Debug("[Telemetry] Telemetry is disabled, ignoring event track")
		return
	}

	logrus.Debugf("[Telemetry] Sending Amplitude Tracking event %s", item.Type)

	// Create a new event
	if len(item.UserID) < 5 {
		if item.DeviceId != "" {
			item.UserID = fmt.Sprintf("%s@%s", item.UserID, item.DeviceId)
		} else {
			item.UserID = fmt.Sprintf("%s@service", item.UserID)
		}
	}
	if len(item.DeviceId) < 5 {
		item.DeviceId = "service"
	}

	ev := amplitude.Event{
		UserID:          item.UserID,
		DeviceID:        item.DeviceId,
		EventType:       item.Type,
		EventProperties: item.Properties,
	}

	// Log the event
	t.client.Track(ev)
}

func (t *TelemetryService) Callback(result types.ExecuteResult) {
	if result.Code < 200 || result.Code >= 300 {
		logrus.Debugf("[Telemetry] Failed to send event to Amplitude: %v", result.Message)
		if result.Code == 401 || result.Code == 403 || result.Message == "Invalid API key" {
			logrus.Debug("[Telemetry] Disabling telemetry as received invalid key")
			t.EnableTelemetry = false
		}
	} else {
		logrus.Debug("[Telemetry] Event sent to Amplitude")
	}
}

func (t *TelemetryService) Flush() {
	if t.client == nil {
		return
	}
	t.client.Flush()
}

func (t *TelemetryService) Close() {
	if t.client == nil {
		return
	}
	t.client.Shutdown()
}
