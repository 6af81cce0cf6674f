package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/daybook/pkg/glyph"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListNotesTool(srv, svc)
	registerCreateNoteTool(srv, svc)
	registerUpdateNoteTool(srv, svc)
	registerSetTagTool(srv, svc)
	registerGetNoteTool(srv, svc)
	registerListIconsTool(srv, svc)
}

func selectionOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("date",
			mcp.Description("Day in YYYY-MM-DD form; defaults to today."),
		),
		mcp.WithString("project",
			mcp.Description("Project tag; empty selects notes without a project."),
		),
	}
}

func registerListNotesTool(srv *server.MCPServer, svc *Service) {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("List the notes of a day for a user and project."),
		mcp.WithString("user",
			mcp.Description("User id; without it every note of the day is returned."),
		),
	}, selectionOptions()...)
	tool := mcp.NewTool("list_notes", opts...)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args SelectionArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		notes, err := svc.ListNotes(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"date":  args.Date,
			"notes": notes,
			"count": len(notes),
		})
	})
}

func registerCreateNoteTool(srv *server.MCPServer, svc *Service) {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Create a note on a day for a user."),
		mcp.WithString("user",
			mcp.Required(),
			mcp.Description("User id that owns the note."),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Note text."),
		),
		mcp.WithString("bullet",
			mcp.Description("Bullet icon id or name such as task, completed, note or event."),
		),
		mcp.WithString("context",
			mcp.Description("Context icon id or name such as priority, inspiration or investigation."),
		),
	}, selectionOptions()...)
	tool := mcp.NewTool("create_note", opts...)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			SelectionArgs
			Text    string `json:"text"`
			Bullet  string `json:"bullet"`
			Context string `json:"context"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dto, err := svc.CreateNote(ctx, args.SelectionArgs, args.Text, args.Bullet, args.Context)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerUpdateNoteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_note",
		mcp.WithDescription("Replace the text of a note."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Note identifier to modify."),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("New note text."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.UpdateNote(ctx, id, text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSetTagTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_tag",
		mcp.WithDescription("Set the bullet or context icon of a note. An empty context icon clears it."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Note identifier to modify."),
		),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Icon category."),
			mcp.Enum("bullet", "context"),
		),
		mcp.WithString("icon",
			mcp.Description("Icon id or name from the category catalog."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		category, err := glyph.ParseCategory(request.GetString("category", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.SetTag(ctx, id, category, request.GetString("icon", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerGetNoteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_note",
		mcp.WithDescription("Fetch a single note by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Note identifier to fetch."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.NoteByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListIconsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_icons",
		mcp.WithDescription("List the bullet and context icon catalogs."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(map[string]any{
			"bullets":  svc.Icons(glyph.Bullet),
			"contexts": svc.Icons(glyph.Context),
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
