package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/daybook/pkg/glyph"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerIconsResource(srv, svc)
	registerDayTemplate(srv, svc)
	registerNoteTemplate(srv, svc)
}

func registerIconsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"daybook://icons",
		"Icons",
		mcp.WithResourceDescription("Bullet and context icon catalogs."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"bullets":  svc.Icons(glyph.Bullet),
			"contexts": svc.Icons(glyph.Context),
		})
	})
}

func registerDayTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"daybook://days/{date}",
		"Day Notes",
		mcp.WithTemplateDescription("Every note recorded on a day."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		date := argument(request, "date")
		if date == "" {
			return nil, fmt.Errorf("date is required")
		}
		notes, err := svc.ListNotes(ctx, SelectionArgs{Date: date})
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"date":  date,
			"count": len(notes),
			"notes": notes,
		})
	})
}

func registerNoteTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"daybook://notes/{id}",
		"Note Details",
		mcp.WithTemplateDescription("Detailed information about a single note."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := argument(request, "id")
		if id == "" {
			return nil, fmt.Errorf("note id is required")
		}
		dto, err := svc.NoteByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"note": dto})
	})
}

// argument reads a template variable, which the server may deliver as a
// string or a single-element slice.
func argument(request mcp.ReadResourceRequest, name string) string {
	switch v := request.Params.Arguments[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
