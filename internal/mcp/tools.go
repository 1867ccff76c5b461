package mcp

import (
	"encoding/json"
	"fmt"
)

// toolsCallParams represents the tools/call request parameters
type toolsCallParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

// handleToolsList handles the tools/list request
func handleToolsList(s *Server, params json.RawMessage) (interface{}, error) {
	if s.getState() != stateInitialized {
		return nil, fmt.Errorf("server not initialized")
	}

	tool := s.ToolDefinition()

	// Tighten the advertised schema.
	inputSchema := tool["inputSchema"].(map[string]interface{})
	properties := inputSchema["properties"].(map[string]interface{})
	question := properties["question"].(map[string]interface{})
	question["minLength"] = 1
	inputSchema["additionalProperties"] = false

	result := map[string]interface{}{
		"tools": []interface{}{tool},
	}

	return result, nil
}

// handleToolsCall handles the tools/call request
func handleToolsCall(s *Server, params json.RawMessage) (interface{}, error) {
	if s.getState() != stateInitialized {
		return nil, fmt.Errorf("server not initialized")
	}

	var p toolsCallParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid tools/call params: %w", err)
	}

	// Unknown tool is a protocol error; bad arguments are tool
	// execution errors reported in-band.
	if err := validateToolName(p.Name); err != nil {
		return nil, err
	}

	question, _ := p.Arguments["question"].(string)
	command, _ := p.Arguments["command"].(string)

	if err := validateQuestion(question); err != nil {
		return createToolExecutionErrorResult(err.Error()), nil
	}

	if err := validateCommand(command); err != nil {
		return createToolExecutionErrorResult(err.Error()), nil
	}

	allowed := []string{"question", "command"}
	if err := validateNoUnknownParams(p.Arguments, allowed); err != nil {
		return createToolExecutionErrorResult(err.Error()), nil
	}

	answer, err := s.HandleRequest(p.Arguments)
	if err != nil {
		return createToolExecutionErrorResult(fmt.Sprintf("Query failed: %v", err)), nil
	}

	result := map[string]interface{}{
		"content": []interface{}{
			map[string]interface{}{
				"type": "text",
				"text": answer,
			},
		},
		"isError": false,
	}

	return result, nil
}

// createToolExecutionErrorResult creates a tool execution error result
func createToolExecutionErrorResult(message string) interface{} {
	return map[string]interface{}{
		"content": []interface{}{
			map[string]interface{}{
				"type": "text",
				"text": message,
			},
		},
		"isError": true,
	}
}
