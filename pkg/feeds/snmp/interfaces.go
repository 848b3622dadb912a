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

import "context"

//go:generate mockgen -destination=mock_snmp.go -package=snmp github.com/mfreeman451/socradar/pkg/feeds/snmp SNMPClient

// SNMPClient reads OID values from one agent.
type SNMPClient interface {
	Get(oids []string) (map[string]interface{}, error)
	Close() error
}

// ClientFactory opens a client for a target, bound to ctx.
type ClientFactory func(ctx context.Context, target *Target) (SNMPClient, error)
