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
			Description: "Load an image file and return its dimensions, format, and color depth.",
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

		// Template Preparation
		{
			Name:        "template_extract",
			Description: "Cut a rectangular template out of a parent image for later matching. Returns the template as base64 PNG and optionally saves it to disk.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the parent image",
					},
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based, inclusive)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based, inclusive)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor applied to the template. Default 1.0",
						"default":     1.0,
					},
					"save_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to save the template as PNG",
					},
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "template_simplify",
			Description: "Mask the background out of a template image so only foreground structure takes part in matching. Returns the simplified template as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the template image",
					},
					"level": map[string]interface{}{
						"type":        "integer",
						"description": "Binarization threshold 0-255; pixels at or above it are foreground. Omit for automatic (Otsu) selection",
					},
					"invert": map[string]interface{}{
						"type":        "boolean",
						"description": "Treat dark pixels as foreground instead of bright ones. Default false",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},

		// Matching
		{
			Name:        "template_find",
			Description: "Locate the single best occurrence of a template inside a parent image using normalized cross-correlation. Always returns exactly one match with its confidence metric.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"parent_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the parent image to search in",
					},
					"template_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the template image to search for",
					},
					"simplify": map[string]interface{}{
						"type":        "boolean",
						"description": "Foreground-mask the template before matching. Default false",
						"default":     false,
					},
				},
				"required": []string{"parent_path", "template_path"},
			},
		},
		{
			Name:        "template_find_all",
			Description: "Locate every occurrence of a template whose correlation is at or above a threshold. Returns zero or more matches; an empty result is not an error. Thresholds between 0.5 and 1.0 are sensible; 0.95+ finds near-exact copies.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"parent_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the parent image to search in",
					},
					"template_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the template image to search for",
					},
					"threshold": map[string]interface{}{
						"type":        "number",
						"description": "Minimum correlation for a match (expected range 0.5-1.0)",
					},
					"simplify": map[string]interface{}{
						"type":        "boolean",
						"description": "Foreground-mask the template before matching. Default false",
						"default":     false,
					},
				},
				"required": []string{"parent_path", "template_path", "threshold"},
			},
		},
		{
			Name:        "template_find_named",
			Description: "Match a template from the server's registry by name. The registry entry decides the mode: entries with a threshold return all matches above it, entries without return the single best match.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"parent_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the parent image to search in",
					},
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Registered template name",
					},
				},
				"required": []string{"parent_path", "name"},
			},
		},
		{
			Name:        "match_annotate",
			Description: "Run a template match and return the parent image with the match bounding boxes drawn on it, as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"parent_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the parent image to search in",
					},
					"template_path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the template image to search for",
					},
					"threshold": map[string]interface{}{
						"type":        "number",
						"description": "Optional: return all matches at or above this correlation instead of the single best",
					},
					"simplify": map[string]interface{}{
						"type":        "boolean",
						"description": "Foreground-mask the template before matching. Default false",
						"default":     false,
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Box color as hex, e.g. #00ff00. Default #ff0000",
						"default":     "#ff0000",
					},
					"line_width": map[string]interface{}{
						"type":        "integer",
						"description": "Box outline width in pixels. Default 2",
						"default":     2,
					},
				},
				"required": []string{"parent_path", "template_path"},
			},
		},
	}
}
