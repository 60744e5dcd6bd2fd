package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/junction-count/internal/imaging"
	"github.com/ironsheep/junction-count/internal/junction"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_count_intersections").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Warn().Str("tool", params.Name).Err(err).Msg("tool execution failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": s.resultText(params.Name, result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Junction Detection
	case "image_count_intersections":
		return s.handleCountIntersections(args)
	case "image_annotate_intersections":
		return s.handleAnnotateIntersections(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// resultText renders a tool result as pretty-printed JSON. A result that
// cannot be marshalled is logged and rendered as an empty string.
func (s *Server) resultText(tool string, v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.log.Error().Str("tool", tool).Err(err).Msg("failed to marshal tool result")
		return ""
	}
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Junction Detection Handlers ===

// tuningArgs carries the optional detector overrides; nil keeps the default.
type tuningArgs struct {
	Path          string `json:"path"`
	Stride        *int   `json:"stride,omitempty"`
	Closeness     *int   `json:"closeness,omitempty"`
	RowSkip       *int   `json:"row_skip,omitempty"`
	MinIterations *int   `json:"min_iterations,omitempty"`
	MaxIterations *int   `json:"max_iterations,omitempty"`
}

func (a tuningArgs) params() (junction.Params, error) {
	p := junction.DefaultParams()
	override := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	override(&p.Stride, a.Stride)
	override(&p.Closeness, a.Closeness)
	override(&p.RowSkip, a.RowSkip)
	override(&p.MinIterations, a.MinIterations)
	override(&p.MaxIterations, a.MaxIterations)

	if err := p.Validate(); err != nil {
		return junction.Params{}, fmt.Errorf("invalid detector parameters: %w", err)
	}
	return p, nil
}

// CountResult is the payload of image_count_intersections.
type CountResult struct {
	Count         int              `json:"count"`
	Intersections []junction.Pixel `json:"intersections"`
	Candidates    int              `json:"candidates"`
	Width         int              `json:"width"`
	Height        int              `json:"height"`
	Params        junction.Params  `json:"params"`
}

// AnnotatedCountResult is the payload of image_annotate_intersections.
type AnnotatedCountResult struct {
	CountResult
	Annotation *imaging.AnnotateResult `json:"annotation"`
}

func (s *Server) countIntersections(a tuningArgs) (*CountResult, error) {
	params, err := a.params()
	if err != nil {
		return nil, err
	}

	gray, err := s.cache.LoadGray(a.Path)
	if err != nil {
		return nil, err
	}
	grid, err := junction.NewBinaryGrid(gray)
	if err != nil {
		return nil, fmt.Errorf("cannot scan %s: %w", a.Path, err)
	}

	scanner := junction.NewScanner(grid,
		junction.WithParams(params),
		junction.WithLogger(s.log),
	)
	result := scanner.Scan()

	s.log.Info().
		Str("path", a.Path).
		Int("count", result.Count).
		Int("candidates", len(result.Candidates)).
		Msg("counted intersections")

	return &CountResult{
		Count:         result.Count,
		Intersections: result.Intersections(),
		Candidates:    len(result.Candidates),
		Width:         grid.Columns(),
		Height:        grid.Rows(),
		Params:        params,
	}, nil
}

func (s *Server) handleCountIntersections(args json.RawMessage) (interface{}, error) {
	var a tuningArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.countIntersections(a)
}

type annotateArgs struct {
	tuningArgs
	Color  string `json:"color"`
	Radius int    `json:"radius"`
}

func (s *Server) handleAnnotateIntersections(args json.RawMessage) (interface{}, error) {
	var a annotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	counted, err := s.countIntersections(a.tuningArgs)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := junction.ImagePoints(counted.Intersections, img.Bounds().Min)
	annotation, err := imaging.EncodeAnnotation(img, points, imaging.AnnotateOptions{
		Color:  a.Color,
		Radius: a.Radius,
	})
	if err != nil {
		return nil, err
	}

	return &AnnotatedCountResult{
		CountResult: *counted,
		Annotation:  annotation,
	}, nil
}
