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


package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// serveWS answers each text frame naming a view part with that part as JSON.
// The connection is closed when the server context ends.
func (s *APIServer) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket upgrade failed")

		return
	}
	defer conn.Close()

	conn.SetReadLimit(wsReadLimit)

	go func() {
		<-r.Context().Done()
		_ = conn.Close()
	}()

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug().Err(err).Msg("websocket closed")
			}

			return
		}

		if msgType != websocket.TextMessage {
			continue
		}

		var reply interface{}

		part, err := s.viewPart(strings.TrimSpace(string(msg)))
		if err != nil {
			reply = errorResponse{Error: err.Error()}
		} else {
			reply = part
		}

		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))

		if err := conn.WriteJSON(reply); err != nil {
			s.logger.Debug().Err(err).Msg("websocket write failed")

			return
		}
	}
}
