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


// Package lifecycle runs a service next to its gRPC health server and
// handles shutdown on signals.
package lifecycle

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/mfreeman451/socradar/pkg/grpc"
)

const (
	MaxRecvSize     = 4 * 1024 * 1024 // 4MB
	MaxSendSize     = 4 * 1024 * 1024 // 4MB
	ShutdownTimeout = 10 * time.Second
)

//go:generate mockgen -destination=mock_lifecycle.go -package=lifecycle github.com/mfreeman451/socradar/pkg/lifecycle Service

// Service defines the interface that all services must implement.
type Service interface {
	Start(context.Context) error
	Stop(context.Context) error
}

// ServerOptions holds configuration for creating a server.
type ServerOptions struct {
	// GRPCAddr is the health endpoint address; empty disables it.
	GRPCAddr    string
	ServiceName string
	Service     Service
	Logger      zerolog.Logger
	// Signals defaults to SIGINT and SIGTERM.
	Signals []os.Signal
}

// RunServer starts a service with the provided options and handles lifecycle.
// It returns after the service has been stopped.
func RunServer(ctx context.Context, opts *ServerOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := opts.Logger

	logger.Info().Str("service", opts.ServiceName).Msg("Starting service")

	errChan := make(chan error, 2)

	var grpcServer *grpc.Server

	if opts.GRPCAddr != "" {
		grpcServer = grpc.NewServer(opts.GRPCAddr,
			grpc.WithLogger(logger),
			grpc.WithMaxRecvSize(MaxRecvSize),
			grpc.WithMaxSendSize(MaxSendSize),
		)

		grpcServer.SetServing("", true)
		grpcServer.SetServing(opts.ServiceName, true)

		go func() {
			if err := grpcServer.Start(); err != nil {
				errChan <- fmt.Errorf("gRPC server: %w", err)
			}
		}()
	}

	go func() {
		if err := opts.Service.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	return handleShutdown(ctx, cancel, opts, grpcServer, errChan)
}

func handleShutdown(
	ctx context.Context, cancel context.CancelFunc, opts *ServerOptions, grpcServer *grpc.Server, errChan chan error) error {
	signals := opts.Signals
	if len(signals) == 0 {
		signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, signals...)

	defer signal.Stop(sigChan)

	var runErr error

	select {
	case sig := <-sigChan:
		opts.Logger.Info().Str("signal", sig.String()).Msg("Received signal, initiating shutdown")
	case err := <-errChan:
		opts.Logger.Error().Err(err).Msg("Service error, initiating shutdown")

		runErr = fmt.Errorf("service error: %w", err)
	case <-ctx.Done():
		opts.Logger.Info().Msg("Context canceled, initiating shutdown")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer shutdownCancel()

	cancel()

	if grpcServer != nil {
		grpcServer.Stop(shutdownCtx)
	}

	if err := opts.Service.Stop(shutdownCtx); err != nil {
		opts.Logger.Error().Err(err).Msg("Error during service shutdown")

		if runErr == nil {
			runErr = fmt.Errorf("shutdown error: %w", err)
		}
	}

	return runErr
}
