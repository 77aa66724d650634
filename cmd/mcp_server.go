package cmd

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/winmirror/winmirror/internal/launch"
	"github.com/winmirror/winmirror/internal/model"
	"github.com/winmirror/winmirror/internal/platform"
	"github.com/winmirror/winmirror/internal/session"
	"github.com/winmirror/winmirror/internal/store"
	"github.com/winmirror/winmirror/internal/version"
)

// mcpServer wraps the MCP server with the platform provider.
type mcpServer struct {
	provider   *platform.Provider
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with all winmirror tools.
func newMCPServer() (*mcpServer, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{provider: provider}
	s.mcp = mcpserver.NewMCPServer("winmirror", version.Version)
	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// list_windows
	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List open windows with their handle, title, class, visibility, and bounds. The handle is what open_viewer's windowId takes."),
			mcp.WithString("title", mcp.Description("Filter windows whose title contains this text")),
			mcp.WithString("class", mcp.Description("Filter windows whose class contains this text")),
			mcp.WithBoolean("visible", mcp.Description("Only list visible windows")),
		),
		s.handleListWindows,
	)

	// open_viewer
	s.mcp.AddTool(
		mcp.NewTool("open_viewer",
			mcp.WithDescription("Open an always-on-top viewer mirroring a window, as a new independent process. Returns the equivalent 'winmirror view' command line."),
			mcp.WithNumber("windowId", mcp.Description("Target window handle (from list_windows)")),
			mcp.WithString("windowTitle", mcp.Description("Target window by exact title (used when windowId is absent)")),
			mcp.WithString("windowClass", mcp.Description("Target window by exact class (used when windowId and windowTitle are absent)")),
			mcp.WithBoolean("visible", mcp.Description("Only match visible windows when resolving by title or class")),
			mcp.WithString("region", mcp.Description("Mirror only this sub-rectangle of the window, as 'x,y,w,h'")),
			mcp.WithString("padding", mcp.Description("Mirror the window minus these border insets, as 'left,top,right,bottom'")),
			mcp.WithNumber("opacity", mcp.Description("Viewer opacity 0-255 (default 255)")),
			mcp.WithString("screenPosition", mcp.Description("Anchor the viewer to a screen position: TopLeft, TopRight, Center, BottomLeft, BottomRight")),
			mcp.WithString("position", mcp.Description("Explicit viewer location as 'x,y' (ignored when screenPosition is set)")),
			mcp.WithString("size", mcp.Description("Explicit viewer size as 'w,h'")),
			mcp.WithNumber("width", mcp.Description("Viewer width; height is derived from the mirrored content's aspect ratio")),
			mcp.WithNumber("height", mcp.Description("Viewer height; width is derived from the mirrored content's aspect ratio")),
			mcp.WithBoolean("chromeOff", mcp.Description("Hide the viewer's window chrome")),
			mcp.WithBoolean("clickForwarding", mcp.Description("Forward clicks on the viewer to the mirrored window")),
			mcp.WithBoolean("clickThrough", mcp.Description("Let clicks pass through the viewer")),
			mcp.WithBoolean("fullscreen", mcp.Description("Open the viewer fullscreen")),
		),
		s.handleOpenViewer,
	)

	// recent_sessions
	s.mcp.AddTool(
		mcp.NewTool("recent_sessions",
			mcp.WithDescription("List recently launched mirroring sessions, newest first. Each record's args field is a complete 'winmirror view' argument list."),
			mcp.WithNumber("limit", mcp.Description("Maximum number of sessions to return (default 10)")),
		),
		s.handleRecentSessions,
	)
}

func (s *mcpServer) handleListWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.providerMu.Lock()
	windows, err := s.provider.Enumerator.ListWindows()
	s.providerMu.Unlock()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	windows = model.FilterWindows(windows, model.WindowFilter{
		Title:       stringParam(params, "title", ""),
		Class:       stringParam(params, "class", ""),
		VisibleOnly: boolParam(params, "visible", false),
	})
	if windows == nil {
		windows = []model.Window{}
	}

	b, _ := yaml.Marshal(windows)
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleOpenViewer(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := session.DecodeArgs(protocolTokens(request.GetArguments()))

	if err := launch.Spawn(cfg); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText("winmirror " + strings.Join(launch.Args(cfg), " ")), nil
}

func (s *mcpServer) handleRecentSessions(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := intParam(request.GetArguments(), "limit", 10)

	path, err := store.DefaultPath()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	history, err := store.Open(path, log)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer history.Close()

	records, err := history.Recent(limit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if records == nil {
		records = []store.Record{}
	}

	b, _ := yaml.Marshal(records)
	return mcp.NewToolResultText(string(b)), nil
}

// protocolTokens converts the structured tool parameters into session
// protocol tokens, so open_viewer goes through the exact decode path a
// command line does.
func protocolTokens(params map[string]interface{}) []string {
	var tokens []string

	appendValue := func(key string) {
		if v := stringParam(params, key, ""); v != "" {
			tokens = append(tokens, fmt.Sprintf("--%s=%s", key, v))
		}
	}
	appendInt := func(key string) {
		if v := intParam(params, key, 0); v != 0 {
			tokens = append(tokens, fmt.Sprintf("--%s=%d", key, v))
		}
	}
	appendFlag := func(key string) {
		if boolParam(params, key, false) {
			tokens = append(tokens, "--"+key)
		}
	}

	appendInt("windowId")
	appendValue("windowTitle")
	appendValue("windowClass")
	appendValue("padding")
	appendValue("region")
	// Opacity zero is meaningful (fully transparent), so presence decides.
	if _, ok := params["opacity"]; ok {
		tokens = append(tokens, fmt.Sprintf("--opacity=%d", intParam(params, "opacity", 255)))
	}
	appendFlag("chromeOff")
	appendFlag("clickForwarding")
	appendFlag("clickThrough")
	appendFlag("fullscreen")
	appendFlag("visible")
	appendValue("screenPosition")
	appendValue("position")
	appendValue("size")
	appendInt("width")
	appendInt("height")

	return tokens
}

// stringParam extracts a string parameter with a default value.
func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		// Handle numeric values that JSON may parse as int/float
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

// intParam extracts an int parameter with a default value.
func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		}
	}
	return defaultVal
}

// boolParam extracts a bool parameter with a default value.
func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}
