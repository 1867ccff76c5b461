package mcp

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/mark-chris/cybuddy/internal/intent"
	"github.com/mark-chris/cybuddy/internal/knowledge"
)

// serverState represents the server lifecycle state
type serverState int

const (
	stateNotInitialized serverState = iota
	stateInitializing
	stateInitialized
)

// Server implements the Model Context Protocol for CyBuddy
type Server struct {
	responder          *knowledge.Responder
	state              serverState
	protocolVersion    string
	clientCapabilities map[string]interface{}
	mu                 sync.RWMutex
}

// NewServer creates a new MCP server over a knowledge responder
func NewServer(responder *knowledge.Responder) *Server {
	return &Server{
		responder: responder,
		state:     stateNotInitialized,
	}
}

// setState sets the server state (thread-safe)
func (s *Server) setState(state serverState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// getState gets the server state (thread-safe)
func (s *Server) getState() serverState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ToolDefinition returns the MCP tool definition for cybuddy_ask
func (s *Server) ToolDefinition() map[string]interface{} {
	return map[string]interface{}{
		"name":        "cybuddy_ask",
		"description": "Ask the CyBuddy cybersecurity study companion a question. Free text is classified onto one of six study commands (explain, tip, assist, report, quiz, plan) and answered from a curated knowledge base.",
		"inputSchema": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Free-text question (e.g. 'what is burp suite?', 'I found an open port 8080')",
				},
				"command": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"explain", "tip", "assist", "report", "quiz", "plan"},
					"description": "Optional: skip intent classification and answer with this command",
				},
			},
			"required": []string{"question"},
		},
	}
}

// HandleRequest answers a tool call. When no command is given the
// question is classified first.
func (s *Server) HandleRequest(input map[string]interface{}) (string, error) {
	question, _ := input["question"].(string)
	commandName, _ := input["command"].(string)

	var cmd knowledge.Command
	var topic string
	if commandName != "" {
		cmd = knowledge.Command(commandName)
		topic = question
	} else {
		cmd, topic = intent.Classify(question, nil)
	}

	answer := s.responder.Respond(cmd, topic)

	result := map[string]interface{}{
		"command": string(cmd),
		"topic":   topic,
		"answer":  answer,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	return string(data), nil
}

// ServeStdio runs the MCP server over line-delimited JSON-RPC on the
// given reader and writer until EOF.
func (s *Server) ServeStdio(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		response := s.handleMessage(line)
		if response == nil {
			continue // notification, nothing to send back
		}

		data, err := json.Marshal(response)
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}

	return scanner.Err()
}

// handleMessage processes one JSON-RPC message and returns the
// response to send, or nil for notifications.
func (s *Server) handleMessage(data []byte) interface{} {
	req, err := parseRequest(data)
	if err != nil {
		resp := createErrorResponse(ErrCodeParseError, ErrMsgParseError, err.Error(), nil)
		return resp
	}

	// Requests without an ID are notifications.
	if req.ID == nil {
		if req.Method == "notifications/initialized" {
			s.setState(stateInitialized)
		}
		return nil
	}

	var result interface{}
	switch req.Method {
	case "initialize":
		result, err = handleInitialize(s, req.Params)
	case "tools/list":
		result, err = handleToolsList(s, req.Params)
	case "tools/call":
		result, err = handleToolsCall(s, req.Params)
	default:
		return createErrorResponse(ErrCodeMethodNotFound, ErrMsgMethodNotFound, req.Method, req.ID)
	}

	if err != nil {
		return createErrorResponse(ErrCodeInvalidParams, ErrMsgInvalidParams, err.Error(), req.ID)
	}

	return createResponse(result, req.ID)
}
