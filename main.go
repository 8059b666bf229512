package main

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tidytable/pdftidy/config"
	"github.com/tidytable/pdftidy/document"
	"github.com/tidytable/pdftidy/export"
	"github.com/tidytable/pdftidy/table"
)

// Server identity constants.
const (
	serverName    = "pdftidy"
	serverVersion = "0.1.0"
)

// MCP tool parameter key constants — shared between schema definitions and
// argument extraction so a typo in one place is caught by the other.
const (
	argPath         = "path"
	argPage         = "page"
	argFirstLine    = "first_line"
	argLastLine     = "last_line"
	argLabels       = "labels"
	argDelimiter    = "delimiter"
	argIDColumns    = "id_columns"
	argValuePattern = "value_pattern"
	argVariableName = "variable_name"
	argValueName    = "value_name"
	argColumnTypes  = "column_types"
	argFormat       = "format"
)

func main() {
	s := server.NewMCPServer(serverName, serverVersion)
	registerTools(s, document.NewLoader())

	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("server error: %v\n", err)
	}
}

// registerTools binds MCP tool definitions to their handlers.
func registerTools(s *server.MCPServer, loader *document.Loader) {
	// extract_text — per-page text of a PDF
	s.AddTool(
		mcp.NewTool("extract_text",
			mcp.WithDescription("Extract the text layer of a PDF, one section per page. "+
				"Pass an absolute file path."),
			mcp.WithString(argPath,
				mcp.Required(),
				mcp.Description("Absolute path of the PDF file"),
			),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			path, ok := stringArg(req, argPath)
			if !ok {
				return mcp.NewToolResultError(argPath + " is required"), nil
			}
			doc, err := loader.LoadFile(path)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(renderPages(doc)), nil
		},
	)

	// extract_lines — numbered (page, line) listing
	s.AddTool(
		mcp.NewTool("extract_lines",
			mcp.WithDescription("List the lines of a PDF as 'page:line: text' records, "+
				"the coordinates used by extract_table. Optionally restrict to one page."),
			mcp.WithString(argPath,
				mcp.Required(),
				mcp.Description("Absolute path of the PDF file"),
			),
			mcp.WithNumber(argPage,
				mcp.Description("Only list lines of this 1-based page"),
			),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			path, ok := stringArg(req, argPath)
			if !ok {
				return mcp.NewToolResultError(argPath + " is required"), nil
			}
			doc, err := loader.LoadFile(path)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			page, _ := intArg(req, argPage)
			return mcp.NewToolResultText(renderLines(doc, page)), nil
		},
	)

	// extract_table — fixed-region table extraction, optionally tidied
	s.AddTool(
		mcp.NewTool("extract_table",
			mcp.WithDescription("Extract a fixed region of a PDF page as a table. "+
				"Lines in the inclusive range are split on whitespace (or a custom pattern) and "+
				"zipped with the given column labels. Optionally pivot value columns into a "+
				"long (tidy) table and coerce column types."),
			mcp.WithString(argPath,
				mcp.Required(),
				mcp.Description("Absolute path of the PDF file"),
			),
			mcp.WithNumber(argPage,
				mcp.Required(),
				mcp.Description("1-based page number containing the table"),
			),
			mcp.WithNumber(argFirstLine,
				mcp.Required(),
				mcp.Description("First line of the region (1-based, inclusive)"),
			),
			mcp.WithNumber(argLastLine,
				mcp.Required(),
				mcp.Description("Last line of the region (inclusive)"),
			),
			mcp.WithString(argLabels,
				mcp.Required(),
				mcp.Description("Comma-separated column labels, one per column"),
			),
			mcp.WithString(argDelimiter,
				mcp.Description("Column delimiter as a Go regular expression (default: runs of whitespace)"),
			),
			mcp.WithString(argIDColumns,
				mcp.Description("Comma-separated labels carried over verbatim when pivoting"),
			),
			mcp.WithString(argValuePattern,
				mcp.Description("Regular expression selecting the columns to pivot into (variable, value) "+
					"rows; a capture group supplies the variable identifier. Omit to keep the table wide."),
			),
			mcp.WithString(argVariableName,
				mcp.Description("Name of the pivoted variable column (default \"variable\")"),
			),
			mcp.WithString(argValueName,
				mcp.Description("Name of the pivoted value column (default \"value\")"),
			),
			mcp.WithString(argColumnTypes,
				mcp.Description("Per-column types as name=type pairs, e.g. \"year=int,value=int\" "+
					"(types: string, int, float)"),
			),
			mcp.WithString(argFormat,
				mcp.Description("Output format: markdown (default) or csv"),
			),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			out, err := handleExtractTable(loader, req)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(out), nil
		},
	)

	// get_extraction_info — formats and configuration
	s.AddTool(
		mcp.NewTool("get_extraction_info",
			mcp.WithDescription("Return supported output formats and active configuration."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText(extractionInfo()), nil
		},
	)
}

// handleExtractTable parses tool arguments into a table.Request, runs the
// pipeline, and renders the result.
func handleExtractTable(loader *document.Loader, req mcp.CallToolRequest) (string, error) {
	path, ok := stringArg(req, argPath)
	if !ok {
		return "", fmt.Errorf("%s is required", argPath)
	}
	page, ok := intArg(req, argPage)
	if !ok {
		return "", fmt.Errorf("%s is required", argPage)
	}
	first, ok := intArg(req, argFirstLine)
	if !ok {
		return "", fmt.Errorf("%s is required", argFirstLine)
	}
	last, ok := intArg(req, argLastLine)
	if !ok {
		return "", fmt.Errorf("%s is required", argLastLine)
	}
	rawLabels, ok := stringArg(req, argLabels)
	if !ok {
		return "", fmt.Errorf("%s is required", argLabels)
	}

	treq := table.Request{
		Page:      page,
		FirstLine: first,
		LastLine:  last,
		Labels:    splitList(rawLabels),
	}

	if v, ok := stringArg(req, argDelimiter); ok {
		re, err := regexp.Compile(v)
		if err != nil {
			return "", fmt.Errorf("invalid %s: %w", argDelimiter, err)
		}
		treq.Delimiter = re
	}
	if v, ok := stringArg(req, argValuePattern); ok {
		re, err := regexp.Compile(v)
		if err != nil {
			return "", fmt.Errorf("invalid %s: %w", argValuePattern, err)
		}
		treq.ValuePattern = re
	}
	if v, ok := stringArg(req, argIDColumns); ok {
		treq.IDColumns = splitList(v)
	}
	treq.VariableName, _ = stringArg(req, argVariableName)
	treq.ValueName, _ = stringArg(req, argValueName)

	if v, ok := stringArg(req, argColumnTypes); ok {
		types, err := parseColumnTypes(v)
		if err != nil {
			return "", err
		}
		treq.Types = types
	}

	format := export.FormatMarkdown
	if v, ok := stringArg(req, argFormat); ok {
		format = v
	}
	if format == export.FormatXLSX {
		return "", fmt.Errorf("xlsx output is binary and not available over this transport (use markdown or csv)")
	}

	doc, err := loader.LoadFile(path)
	if err != nil {
		return "", err
	}
	typed, err := table.Extract(doc, treq)
	if err != nil {
		return "", err
	}
	rendered, err := export.Render(typed.Grid(), format)
	if err != nil {
		return "", err
	}
	return string(rendered), nil
}

// ---- rendering ---------------------------------------------------------------

func renderPages(doc *document.Document) string {
	var parts []string
	for _, p := range doc.Pages() {
		parts = append(parts, fmt.Sprintf("--- page %d ---\n%s", p.Number, p.Text))
	}
	return strings.Join(parts, "\n\n")
}

func renderLines(doc *document.Document, page int) string {
	var sb strings.Builder
	for _, ln := range doc.Lines() {
		if page > 0 && ln.Page != page {
			continue
		}
		fmt.Fprintf(&sb, "%d:%d: %s\n", ln.Page, ln.Line, ln.Text)
	}
	return sb.String()
}

func extractionInfo() string {
	cfg := config.Load()
	password := "not set"
	if cfg.PDFPassword != "" {
		password = "set"
	}
	return fmt.Sprintf(`# pdftidy Extraction Info

## Output Formats
- %s

## Configuration
- Max file size: %d MB
- PDF password: %s`,
		strings.Join(export.Supported(), "\n- "),
		cfg.MaxFileSizeMB(),
		password,
	)
}

// ---- argument helpers ---------------------------------------------------------

func stringArg(req mcp.CallToolRequest, key string) (string, bool) {
	v, ok := req.Params.Arguments[key].(string)
	return v, ok && v != ""
}

func intArg(req mcp.CallToolRequest, key string) (int, bool) {
	// JSON numbers arrive as float64.
	v, ok := req.Params.Arguments[key].(float64)
	return int(v), ok
}

// splitList splits a comma-separated argument, trimming whitespace and
// dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseColumnTypes parses "name=int,other=float" into a type map.
func parseColumnTypes(s string) (map[string]table.Type, error) {
	types := make(map[string]table.Type)
	for _, pair := range splitList(s) {
		name, typeName, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid %s entry %q (expected name=type)", argColumnTypes, pair)
		}
		ty, err := table.ParseType(strings.TrimSpace(typeName))
		if err != nil {
			return nil, err
		}
		types[strings.TrimSpace(name)] = ty
	}
	return types, nil
}
