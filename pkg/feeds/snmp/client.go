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
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gosnmp/gosnmp"
)

type snmpClient struct {
	client *gosnmp.GoSNMP
	target *Target
}

// NewClient connects to target. It is the default ClientFactory.
func NewClient(ctx context.Context, target *Target) (SNMPClient, error) {
	client := &gosnmp.GoSNMP{
		Context:            ctx,
		Target:             target.Host,
		Port:               target.Port,
		Community:          target.Community,
		Timeout:            target.Timeout.Std(),
		Retries:            target.Retries,
		// Target.PollBudget assumes a fixed per-attempt timeout.
		ExponentialTimeout: false,
		MaxOids:            gosnmp.MaxOids,
	}

	switch target.Version {
	case Version1:
		client.Version = gosnmp.Version1
	case Version2c, "":
		client.Version = gosnmp.Version2c
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedVersion, target.Version)
	}

	if err := client.Connect(); err != nil {
		return nil, &SNMPError{Op: "connect", Target: target.Host, Wrapped: err}
	}

	return &snmpClient{client: client, target: target}, nil
}

// Get reads oids in chunks of gosnmp.MaxOids. Keys of the result are the
// OIDs as configured, without a leading dot.
func (s *snmpClient) Get(oids []string) (map[string]interface{}, error) {
	results := make(map[string]interface{}, len(oids))

	for i := 0; i < len(oids); i += gosnmp.MaxOids {
		end := i + gosnmp.MaxOids
		if end > len(oids) {
			end = len(oids)
		}

		packet, err := s.client.Get(oids[i:end])
		if err != nil {
			return nil, &SNMPError{Op: "get", Target: s.target.Host, Wrapped: err}
		}

		for _, variable := range packet.Variables {
			value, err := convertVariable(variable)
			if err != nil {
				continue
			}

			results[strings.TrimPrefix(variable.Name, ".")] = value
		}
	}

	return results, nil
}

func (s *snmpClient) Close() error {
	if s.client.Conn == nil {
		return nil
	}

	return s.client.Conn.Close()
}

func convertVariable(variable gosnmp.SnmpPDU) (interface{}, error) {
	switch variable.Type {
	case gosnmp.OctetString:
		return string(variable.Value.([]byte)), nil
	case gosnmp.Integer:
		return variable.Value.(int), nil
	case gosnmp.Counter32, gosnmp.Gauge32:
		return uint64(variable.Value.(uint)), nil
	case gosnmp.Counter64:
		return variable.Value.(uint64), nil
	case gosnmp.IPAddress, gosnmp.ObjectIdentifier:
		return variable.Value.(string), nil
	case gosnmp.TimeTicks:
		return time.Duration(variable.Value.(uint32)) * time.Second / 100, nil
	case gosnmp.NoSuchObject, gosnmp.NoSuchInstance, gosnmp.EndOfMibView, gosnmp.Null:
		return nil, errNoValue
	default:
		return nil, fmt.Errorf("%w: %v", errUnsupportedType, variable.Type)
	}
}
