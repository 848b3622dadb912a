/*-
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package alerts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mfreeman451/socradar/pkg/models"
	"github.com/rs/zerolog"
)

const (
	defaultDeliveryTimeout = 15 * time.Second
	sourceName             = "socradar"
)

// Notifier turns alert transitions into webhook alerts. Delivery runs in
// the background and failures are only logged.
type Notifier struct {
	services []AlertService
	logger   zerolog.Logger
	timeout  time.Duration
	wg       sync.WaitGroup
}

// NewNotifier fans alerts out to every enabled service.
func NewNotifier(services []AlertService, logger zerolog.Logger) *Notifier {
	enabled := make([]AlertService, 0, len(services))

	for _, s := range services {
		if s.IsEnabled() {
			enabled = append(enabled, s)
		}
	}

	return &Notifier{
		services: enabled,
		logger:   logger,
		timeout:  defaultDeliveryTimeout,
	}
}

// SensorAlertsChanged sends one alert per sensor that started or stopped
// alerting.
func (n *Notifier) SensorAlertsChanged(_ context.Context, raised, cleared []models.SensorAlert) {
	for i := range raised {
		n.dispatch(sensorRaised(&raised[i]))
	}

	for i := range cleared {
		n.dispatch(sensorCleared(&cleared[i]))
	}
}

// SessionAlertsChanged sends one alert per principal that started or
// stopped showing concurrent sessions.
func (n *Notifier) SessionAlertsChanged(_ context.Context, raised, cleared []models.MultiSessionAlert) {
	for i := range raised {
		n.dispatch(sessionRaised(&raised[i]))
	}

	for i := range cleared {
		n.dispatch(sessionCleared(&cleared[i]))
	}
}

// Len is the number of enabled services.
func (n *Notifier) Len() int {
	return len(n.services)
}

// Wait blocks until queued deliveries have finished.
func (n *Notifier) Wait() {
	n.wg.Wait()
}

func (n *Notifier) dispatch(alert *WebhookAlert) {
	for _, svc := range n.services {
		n.wg.Add(1)

		// Alert sets the timestamp, so each service gets a copy.
		a := *alert

		go func(svc AlertService) {
			defer n.wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
			defer cancel()

			err := svc.Alert(ctx, &a)

			switch {
			case err == nil:
				n.logger.Debug().Str("title", a.Title).Msg("Alert delivered")
			case errors.Is(err, ErrWebhookCooldown):
			default:
				n.logger.Error().Err(err).Str("title", a.Title).Msg("Failed to deliver alert")
			}
		}(svc)
	}
}

func levelFor(s models.Status) AlertLevel {
	if s == models.StatusDown {
		return Error
	}

	return Warning
}

func sensorRaised(a *models.SensorAlert) *WebhookAlert {
	return &WebhookAlert{
		Level:   levelFor(a.Status),
		Title:   fmt.Sprintf("Sensor %s: %s", a.Status, a.EntityKey),
		Message: fmt.Sprintf("Sensor %s on device %s is %s", a.Sensor, a.Device, a.Status),
		Source:  sourceName,
		Details: map[string]any{
			"device":     a.Device,
			"sensor":     a.Sensor,
			"status":     a.Status.String(),
			"last_value": a.LastValue,
			"observed":   a.Timestamp.Format(time.RFC3339),
		},
	}
}

func sensorCleared(a *models.SensorAlert) *WebhookAlert {
	return &WebhookAlert{
		Level:   Info,
		Title:   "Sensor Recovered: " + a.EntityKey,
		Message: fmt.Sprintf("Sensor %s on device %s is no longer alerting", a.Sensor, a.Device),
		Source:  sourceName,
		Details: map[string]any{
			"device":          a.Device,
			"sensor":          a.Sensor,
			"previous_status": a.Status.String(),
		},
	}
}

func sessionRaised(a *models.MultiSessionAlert) *WebhookAlert {
	return &WebhookAlert{
		Level:   Warning,
		Title:   "Concurrent Sessions: " + a.Principal,
		Message: fmt.Sprintf("%s is logged in from %d origins", a.Principal, len(a.DistinctOrigins)),
		Source:  sourceName,
		Details: map[string]any{
			"principal":       a.Principal,
			"origins":         strings.Join(a.DistinctOrigins, ", "),
			"last_event_time": a.LastEventTime.Format(time.RFC3339),
		},
	}
}

func sessionCleared(a *models.MultiSessionAlert) *WebhookAlert {
	return &WebhookAlert{
		Level:   Info,
		Title:   "Concurrent Sessions Cleared: " + a.Principal,
		Message: a.Principal + " is no longer logged in from multiple origins",
		Source:  sourceName,
		Details: map[string]any{"principal": a.Principal},
	}
}
