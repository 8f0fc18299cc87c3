package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/foomo/workspace-sidebar/service"
	"github.com/foomo/workspace-sidebar/service/vo"
)

const Version = "0.0.1"

type GetSidebarRequest struct{}

type GetSidebarResponse struct {
	Sidebar *vo.Sidebar `json:"sidebar"` // The assembled sidebar tree
}

type ToggleItemRequest struct {
	Title string `json:"title"` // The sidebar item title to toggle
}

type ToggleItemResponse struct {
	Result *vo.ToggleResult `json:"result"` // The new expansion state
}

type RenderSidebarRequest struct {
	Format string `json:"format"` // Output format: "html" or "markdown"
}

type RenderSidebarResponse struct {
	Format  string `json:"format"`
	Content string `json:"content"` // The rendered sidebar
}

// NewServer creates a new MCP server with the sidebar tools.
func NewServer(serviceInstance service.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"Workspace Sidebar MCP",
		Version,
		server.WithToolCapabilities(false),
	)

	getSidebarTool := mcp.NewTool("getSidebar",
		mcp.WithDescription("Get the workspace sidebar as a nested tree with the persisted expansion state applied"),
	)
	s.AddTool(getSidebarTool, mcp.NewTypedToolHandler(getSidebarHandler(serviceInstance)))

	toggleItemTool := mcp.NewTool("toggleItem",
		mcp.WithDescription("Toggle the expansion state of a sidebar item and persist the result"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The title of the sidebar item to toggle"),
		),
	)
	s.AddTool(toggleItemTool, mcp.NewTypedToolHandler(getToggleItemHandler(serviceInstance)))

	renderSidebarTool := mcp.NewTool("renderSidebar",
		mcp.WithDescription("Render the workspace sidebar as an HTML fragment or a markdown outline"),
		mcp.WithString("format",
			mcp.Required(),
			mcp.Description("Output format: 'html' or 'markdown'"),
		),
	)
	s.AddTool(renderSidebarTool, mcp.NewTypedToolHandler(getRenderSidebarHandler(serviceInstance)))

	return s
}

func getSidebarHandler(serviceInstance service.Service) func(ctx context.Context, request mcp.CallToolRequest, args GetSidebarRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args GetSidebarRequest) (*mcp.CallToolResult, error) {
		sidebar, err := serviceInstance.GetSidebar(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to get sidebar: %v", err)), nil
		}

		response := GetSidebarResponse{
			Sidebar: sidebar,
		}

		responseBytes, err := json.Marshal(response)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
		}

		return mcp.NewToolResultText(string(responseBytes)), nil
	}
}

func getToggleItemHandler(serviceInstance service.Service) func(ctx context.Context, request mcp.CallToolRequest, args ToggleItemRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args ToggleItemRequest) (*mcp.CallToolResult, error) {
		if args.Title == "" {
			return mcp.NewToolResultError("title is required"), nil
		}

		result, err := serviceInstance.ToggleItem(ctx, args.Title)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to toggle item: %v", err)), nil
		}

		response := ToggleItemResponse{
			Result: result,
		}

		responseBytes, err := json.Marshal(response)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
		}

		return mcp.NewToolResultText(string(responseBytes)), nil
	}
}

func getRenderSidebarHandler(serviceInstance service.Service) func(ctx context.Context, request mcp.CallToolRequest, args RenderSidebarRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args RenderSidebarRequest) (*mcp.CallToolResult, error) {
		var content string
		switch args.Format {
		case "html":
			html, err := serviceInstance.RenderHTML(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to render sidebar: %v", err)), nil
			}
			content = html
		case "markdown":
			markdown, err := serviceInstance.RenderMarkdown(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to render sidebar: %v", err)), nil
			}
			content = string(markdown)
		default:
			return mcp.NewToolResultError("format must be 'html' or 'markdown'"), nil
		}

		response := RenderSidebarResponse{
			Format:  args.Format,
			Content: content,
		}

		responseBytes, err := json.Marshal(response)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
		}

		return mcp.NewToolResultText(string(responseBytes)), nil
	}
}
