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

package snmp

import (
	"fmt"
	"time"

	"github.com/mfreeman451/socradar/pkg/config"
)

// SNMPVersion is a supported protocol version.
type SNMPVersion string

const (
	Version1  SNMPVersion = "v1"
	Version2c SNMPVersion = "v2c"

	defaultPort    = 161
	defaultTimeout = 2 * time.Second
	defaultRetries = 1
)

// Config lists the devices polled by the feed.
type Config struct {
	Targets []Target `json:"targets" yaml:"targets"`
}

// Target is one SNMP agent. Its Name is used as the device name.
type Target struct {
	Name      string          `json:"name" yaml:"name"`
	Host      string          `json:"host" yaml:"host"`
	Port      uint16          `json:"port,omitempty" yaml:"port,omitempty"`
	Community string          `json:"community" yaml:"community"`
	Version   SNMPVersion     `json:"version,omitempty" yaml:"version,omitempty"`
	Timeout   config.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	Retries   int             `json:"retries,omitempty" yaml:"retries,omitempty"`
	OIDs      []OIDConfig     `json:"oids" yaml:"oids"`
}

// OIDConfig maps one OID to a sensor. A numeric value above DownAbove is
// Down, above WarningAbove is Warning, otherwise Up.
type OIDConfig struct {
	OID          string   `json:"oid" yaml:"oid"`
	Name         string   `json:"name" yaml:"name"`
	WarningAbove *float64 `json:"warning_above,omitempty" yaml:"warning_above,omitempty"`
	DownAbove    *float64 `json:"down_above,omitempty" yaml:"down_above,omitempty"`
}

// PollBudget is the longest a GET against the target can take: one
// timeout per attempt.
func (t *Target) PollBudget() time.Duration {
	return t.Timeout.Std() * time.Duration(t.Retries+1)
}

// SensorName is the configured name or, lacking one, the OID.
func (o *OIDConfig) SensorName() string {
	if o.Name != "" {
		return o.Name
	}

	return o.OID
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return fmt.Errorf("%w: at least one target is required", errInvalidConfig)
	}

	seen := make(map[string]struct{}, len(c.Targets))

	for i := range c.Targets {
		t := &c.Targets[i]

		if err := t.validate(); err != nil {
			return err
		}

		if _, dup := seen[t.Name]; dup {
			return fmt.Errorf("%w: duplicate target name %q", errInvalidConfig, t.Name)
		}

		seen[t.Name] = struct{}{}
	}

	return nil
}

func (t *Target) validate() error {
	if t.Host == "" {
		return fmt.Errorf("%w: target host is required", errInvalidConfig)
	}

	if t.Name == "" {
		t.Name = t.Host
	}

	if len(t.OIDs) == 0 {
		return fmt.Errorf("%w: target %s has no oids", errInvalidConfig, t.Name)
	}

	for _, o := range t.OIDs {
		if o.OID == "" {
			return fmt.Errorf("%w: target %s has an empty oid", errInvalidConfig, t.Name)
		}
	}

	switch t.Version {
	case "":
		t.Version = Version2c
	case Version1, Version2c:
	default:
		return fmt.Errorf("%w: %s", errUnsupportedVersion, t.Version)
	}

	if t.Port == 0 {
		t.Port = defaultPort
	}

	if t.Community == "" {
		t.Community = "public"
	}

	if t.Timeout <= 0 {
		t.Timeout = config.Duration(defaultTimeout)
	}

	if t.Retries <= 0 {
		t.Retries = defaultRetries
	}

	return nil
}
