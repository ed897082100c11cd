package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/template-match-mcp/internal/imaging"
	"github.com/ironsheep/template-match-mcp/internal/match"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "template_find").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified
// tool.
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
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
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

	// Template Preparation
	case "template_extract":
		return s.handleTemplateExtract(args)
	case "template_simplify":
		return s.handleTemplateSimplify(args)

	// Matching
	case "template_find":
		return s.handleTemplateFind(args)
	case "template_find_all":
		return s.handleTemplateFindAll(args)
	case "template_find_named":
		return s.handleTemplateFindNamed(args)
	case "match_annotate":
		return s.handleMatchAnnotate(args)

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

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Template Preparation Handlers ===

type templateExtractArgs struct {
	Path     string  `json:"path"`
	X1       int     `json:"x1"`
	Y1       int     `json:"y1"`
	X2       int     `json:"x2"`
	Y2       int     `json:"y2"`
	Scale    float64 `json:"scale"`
	SavePath string  `json:"save_path"`
}

func (s *Server) handleTemplateExtract(args json.RawMessage) (interface{}, error) {
	var a templateExtractArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.ExtractTemplate(img, a.X1, a.Y1, a.X2, a.Y2, a.Scale, a.SavePath)
}

type templateSimplifyArgs struct {
	Path   string `json:"path"`
	Level  *int   `json:"level"`
	Invert bool   `json:"invert"`
}

func (s *Server) handleTemplateSimplify(args json.RawMessage) (interface{}, error) {
	var a templateSimplifyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	opts := imaging.DefaultSimplifyOptions()
	if a.Level != nil {
		opts.Level = *a.Level
	}
	opts.Invert = a.Invert
	return imaging.Simplify(img, opts)
}

// === Matching Handlers ===

// FindResponse is the JSON shape of a matching result: parallel arrays of
// match positions and their correlation metrics.
type FindResponse struct {
	MatchPositions []match.BoundingBox `json:"match_positions"`
	MatchMetrics   []float64           `json:"match_metrics"`
	Count          int                 `json:"count"`
}

// runMatch loads both images as grayscale planes, optionally simplifies the
// template, and runs the detector.
func (s *Server) runMatch(parentPath, templatePath string, simplify bool, policy match.SelectionPolicy) (*match.Result, error) {
	parentGray, err := s.cache.LoadGray(parentPath)
	if err != nil {
		return nil, fmt.Errorf("parent image: %w", err)
	}
	templateGray, err := s.cache.LoadGray(templatePath)
	if err != nil {
		return nil, fmt.Errorf("template image: %w", err)
	}

	if simplify {
		templateGray, _ = imaging.SimplifyGray(templateGray, imaging.DefaultSimplifyOptions())
	}

	return match.Find(
		match.PlaneFromGray(templateGray),
		match.PlaneFromGray(parentGray),
		match.Config{Policy: policy},
	)
}

func findResponse(res *match.Result) *FindResponse {
	return &FindResponse{
		MatchPositions: res.Boxes,
		MatchMetrics:   res.Scores,
		Count:          len(res.Boxes),
	}
}

type templateFindArgs struct {
	ParentPath   string `json:"parent_path"`
	TemplatePath string `json:"template_path"`
	Simplify     bool   `json:"simplify"`
}

func (s *Server) handleTemplateFind(args json.RawMessage) (interface{}, error) {
	var a templateFindArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	res, err := s.runMatch(a.ParentPath, a.TemplatePath, a.Simplify, match.BestMatch())
	if err != nil {
		return nil, err
	}
	return findResponse(res), nil
}

type templateFindAllArgs struct {
	ParentPath   string  `json:"parent_path"`
	TemplatePath string  `json:"template_path"`
	Threshold    float64 `json:"threshold"`
	Simplify     bool    `json:"simplify"`
}

func (s *Server) handleTemplateFindAll(args json.RawMessage) (interface{}, error) {
	var a templateFindAllArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	res, err := s.runMatch(a.ParentPath, a.TemplatePath, a.Simplify, match.ThresholdFiltered(a.Threshold))
	if err != nil {
		return nil, err
	}
	return findResponse(res), nil
}

type templateFindNamedArgs struct {
	ParentPath string `json:"parent_path"`
	Name       string `json:"name"`
}

func (s *Server) handleTemplateFindNamed(args json.RawMessage) (interface{}, error) {
	var a templateFindNamedArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if s.registry == nil {
		return nil, fmt.Errorf("no template registry loaded (set TEMPLATE_MCP_REGISTRY)")
	}

	def, templatePath, err := s.registry.Resolve(a.Name)
	if err != nil {
		return nil, err
	}

	policy := match.BestMatch()
	if def.Threshold > 0 {
		policy = match.ThresholdFiltered(def.Threshold)
	}

	res, err := s.runMatch(a.ParentPath, templatePath, def.Simplify, policy)
	if err != nil {
		return nil, err
	}
	return findResponse(res), nil
}

type matchAnnotateArgs struct {
	ParentPath   string   `json:"parent_path"`
	TemplatePath string   `json:"template_path"`
	Threshold    *float64 `json:"threshold"`
	Simplify     bool     `json:"simplify"`
	Color        string   `json:"color"`
	LineWidth    int      `json:"line_width"`
}

func (s *Server) handleMatchAnnotate(args json.RawMessage) (interface{}, error) {
	var a matchAnnotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Color == "" {
		a.Color = "#ff0000"
	}
	if a.LineWidth == 0 {
		a.LineWidth = 2
	}

	policy := match.BestMatch()
	if a.Threshold != nil {
		policy = match.ThresholdFiltered(*a.Threshold)
	}

	res, err := s.runMatch(a.ParentPath, a.TemplatePath, a.Simplify, policy)
	if err != nil {
		return nil, err
	}

	parent, err := s.cache.Load(a.ParentPath)
	if err != nil {
		return nil, err
	}
	return imaging.Annotate(parent, res.Boxes, a.Color, a.LineWidth)
}
