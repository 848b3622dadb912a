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


// Package main cmd/socradar/main.go
package main

import (
	"context"
	"flag"
	"log"

	"github.com/mfreeman451/socradar/pkg/config"
	"github.com/mfreeman451/socradar/pkg/core"
	"github.com/mfreeman451/socradar/pkg/lifecycle"
	"github.com/mfreeman451/socradar/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/socradar/socradar.yaml", "Path to config file")
	flag.Parse()

	var cfg core.Config
	if err := config.LoadAndValidate(*configPath, &cfg); err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging); err != nil {
		return err
	}

	server, err := core.NewServer(&cfg)
	if err != nil {
		return err
	}

	return lifecycle.RunServer(context.Background(), &lifecycle.ServerOptions{
		GRPCAddr:    cfg.GRPCAddr,
		ServiceName: "socradar",
		Service:     server,
		Logger:      logger.WithComponent("lifecycle"),
	})
}
