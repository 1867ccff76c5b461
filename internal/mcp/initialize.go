package mcp

import (
	"encoding/json"
	"fmt"
)

// initializeParams represents the initialize request parameters
type initializeParams struct {
	ProtocolVersion string                 `json:"protocolVersion"`
	Capabilities    map[string]interface{} `json:"capabilities"`
	ClientInfo      map[string]interface{} `json:"clientInfo,omitempty"`
}

// handleInitialize handles the initialize request
func handleInitialize(s *Server, params json.RawMessage) (interface{}, error) {
	if s.getState() != stateNotInitialized {
		return nil, fmt.Errorf("already initialized")
	}

	var p initializeParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, fmt.Errorf("invalid initialize params: %w", err)
		}
	}

	// Version negotiation: a single supported version. A client on a
	// different version gets ours back and may disconnect.
	protocolVersion := "2025-11-25"

	s.mu.Lock()
	s.protocolVersion = protocolVersion
	s.clientCapabilities = p.Capabilities
	s.mu.Unlock()

	s.setState(stateInitializing)

	result := map[string]interface{}{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{
				"listChanged": false,
			},
		},
		"serverInfo": map[string]interface{}{
			"name":        "cybuddy",
			"version":     "0.1.0",
			"description": "CyBuddy - cybersecurity study companion answering from a curated knowledge base",
		},
	}

	return result, nil
}
