// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes the conversion engine as tools for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/jera/internal/api"
	"github.com/starford/jera/internal/calendar"
	"github.com/starford/jera/internal/verify"
)

// Server wraps the MCP server with Jera tools.
type Server struct {
	mcp *server.MCPServer
	svc *api.Service
}

// New creates a new MCP server with all Jera tools registered.
func New(svc *api.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Jera",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("convert_date",
		mcp.WithDescription("Convert a calendar date between two calendar systems. "+
			"Dates use the strict [-]YYYY-MM-DD form described by the "+
			"jera://calendar-catalog resource or the get_date_contract tool."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Canonical date, e.g. 2024-02-10 or -0043-03-15")),
		mcp.WithString("from", mcp.Required(), mcp.Description("Source calendar tag (e.g. gregorian, islamic, hebrew)")),
		mcp.WithString("to", mcp.Required(), mcp.Description("Target calendar tag")),
	), s.convertDate)

	s.mcp.AddTool(mcp.NewTool("list_calendars",
		mcp.WithDescription("List every calendar system in the catalog with its epoch JDN, "+
			"month names, and era label."),
	), s.listCalendars)

	s.mcp.AddTool(mcp.NewTool("cycle_positions",
		mcp.WithDescription("Compute long-period cycle positions for a date: Chinese sexagenary "+
			"year, Mayan Long Count and Calendar Round, Metonic cycle, Saros cycle, Hindu Yuga."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Canonical date in the given calendar")),
		mcp.WithString("calendar", mcp.Description("Calendar tag of the date (default gregorian)")),
	), s.cyclePositions)

	s.mcp.AddTool(mcp.NewTool("get_date_contract",
		mcp.WithDescription("Returns the canonical date format contract and the calendar tag list. "+
			"Call this before passing dates to the other tools."),
	), s.getDateContract)

	s.mcp.AddTool(mcp.NewTool("verify_epochs",
		mcp.WithDescription("Run the documented-epoch verification harness and report per-fact results."),
	), s.verifyEpochs)

	// Resource: catalog and date format contract.
	s.mcp.AddResource(
		mcp.NewResource("jera://calendar-catalog", "Calendar Catalog",
			mcp.WithResourceDescription("The fixed calendar catalog and the canonical date format."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readCatalogResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) convertDate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	from, err := req.RequireString("from")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	to, err := req.RequireString("to")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := s.svc.Convert(date, from, to)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(resp, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listCalendars(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, _ := json.MarshalIndent(s.svc.Calendars(), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) cyclePositions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tag := calendar.Gregorian.String()
	if t, tagErr := req.RequireString("calendar"); tagErr == nil && t != "" {
		tag = t
	}

	resp, err := s.svc.Cycles(date, tag)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(resp, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getDateContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(DateFormatContract), nil
}

func (s *Server) verifyEpochs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rep := verify.Run()
	var b strings.Builder
	fmt.Fprintf(&b, "passed: %d, failed: %d\n", rep.Passed, rep.Failed)
	for _, res := range rep.Results {
		status := "ok"
		if !res.Pass {
			status = fmt.Sprintf("FAIL (got %d, want %d)", res.Got, res.Want)
		}
		fmt.Fprintf(&b, "%-40s %s\n", res.Name, status)
	}
	if !rep.OK() {
		return mcp.NewToolResultError(b.String()), nil
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) readCatalogResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "jera://calendar-catalog",
			MIMEType: "text/markdown",
			Text:     DateFormatContract,
		},
	}, nil
}
