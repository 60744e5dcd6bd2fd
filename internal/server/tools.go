package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and whether it is already grayscale.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Junction Detection
		{
			Name: "image_count_intersections",
			Description: "Count the intersections of a line drawing: points where more than two strokes meet. " +
				"Pixels with intensity 0 are background; every other intensity is treated as stroke. " +
				"Returns the count and the (row, col) seed of each intersection.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": withTuningProperties(map[string]interface{}{}),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_annotate_intersections",
			Description: "Count intersections like image_count_intersections and return the source image as base64 PNG with a square marker around each one.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withTuningProperties(map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Marker color as hex (#RGB or #RRGGBB). Default #FF0000",
						"default":     "#FF0000",
					},
					"radius": map[string]interface{}{
						"type":        "integer",
						"description": "Half-size of the square marker in pixels. Default 6",
						"default":     6,
					},
				}),
				"required": []string{"path"},
			},
		},
	}
}

// withTuningProperties adds the path and the optional detector overrides
// shared by the junction tools.
func withTuningProperties(props map[string]interface{}) map[string]interface{} {
	props["path"] = map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
	props["stride"] = map[string]interface{}{
		"type":        "integer",
		"description": "Sweep step in pixels along rows and columns. Default 5",
		"default":     5,
	}
	props["closeness"] = map[string]interface{}{
		"type":        "integer",
		"description": "Per-axis distance below which two pixels count as the same place. Default 5",
		"default":     5,
	}
	props["row_skip"] = map[string]interface{}{
		"type":        "integer",
		"description": "Extra rows skipped after each detection. Default 20",
		"default":     20,
	}
	props["min_iterations"] = map[string]interface{}{
		"type":        "integer",
		"description": "Pixels a region growth counts before it may stop on balance. Default 200",
		"default":     200,
	}
	props["max_iterations"] = map[string]interface{}{
		"type":        "integer",
		"description": "Hard cap on pixels counted by one region growth. Default 400",
		"default":     400,
	}
	return props
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
