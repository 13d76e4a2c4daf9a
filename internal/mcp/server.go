// Package mcp exposes the interpreter's operations as MCP tools over stdio.
// The dialogue agent on the other end decides when to call which tool; this
// layer only translates tool calls into interpreter operations and results
// into JSON payloads.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ldi/tasktalk/internal/interpreter"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

// NewServer creates the MCP server wired to one interpreter. The log output
// must not be stdout: stdout carries the MCP wire.
func NewServer(interp *interpreter.Interpreter, log *logrus.Logger) *server.MCPServer {
	s := server.NewMCPServer("tasktalk", "0.1.0")

	s.AddTool(mcp.NewTool("create_task",
		mcp.WithDescription("Create a new task from a natural-language instruction, or break meeting content down into task suggestions. Ambiguous assignee names come back as a confirmation request."),
		mcp.WithString("instruction", mcp.Description("The instruction or meeting content"), mcp.Required()),
		mcp.WithString("context_id", mcp.Description("Conversation context id for suggestion buffering (defaults to 'default')")),
	), createTaskHandler(interp, log))

	s.AddTool(mcp.NewTool("read_tasks",
		mcp.WithDescription("List tasks, optionally filtered by a natural-language query (assignee, status, priority)."),
		mcp.WithString("query", mcp.Description("Filter query, e.g. 'pending tasks for Ravi'; empty lists everything")),
	), readTasksHandler(interp, log))

	s.AddTool(mcp.NewTool("update_task",
		mcp.WithDescription("Update a task's status or assignee from a natural-language instruction. Supports bulk operations phrased with 'all tasks'."),
		mcp.WithString("instruction", mcp.Description("The update instruction, e.g. 'mark task 2 as done' or 'assign all tasks to Sam'"), mcp.Required()),
	), updateTaskHandler(interp, log))

	s.AddTool(mcp.NewTool("create_suggested_tasks",
		mcp.WithDescription("Create tasks from a previous meeting breakdown. Selection can be 'all', 'none'/'cancel', numbers like '1,3,5' or ranges like '1-3'."),
		mcp.WithString("selection", mcp.Description("Which suggestions to create"), mcp.Required()),
		mcp.WithString("context_id", mcp.Description("Conversation context id (defaults to 'default')")),
	), selectHandler(interp, log))

	s.AddTool(mcp.NewTool("list_suggestions",
		mcp.WithDescription("List the pending task suggestions for a conversation context."),
		mcp.WithString("context_id", mcp.Description("Conversation context id (defaults to 'default')")),
	), listSuggestionsHandler(interp))

	s.AddTool(mcp.NewTool("get_task",
		mcp.WithDescription("Get a single task by id."),
		mcp.WithNumber("task_id", mcp.Description("The task id"), mcp.Required()),
	), getTaskHandler(interp))

	s.AddTool(mcp.NewTool("delete_task",
		mcp.WithDescription("Delete a task by id."),
		mcp.WithNumber("task_id", mcp.Description("The task id"), mcp.Required()),
	), deleteTaskHandler(interp, log))

	s.AddTool(mcp.NewTool("match_name",
		mcp.WithDescription("Resolve a possibly misspelled name against the team roster."),
		mcp.WithString("name", mcp.Description("The name to resolve"), mcp.Required()),
	), matchNameHandler(interp))

	return s
}

// Serve starts the MCP server on stdio.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func createTaskHandler(interp *interpreter.Interpreter, log *logrus.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		instruction := mcp.ParseString(request, "instruction", "")
		contextID := mcp.ParseString(request, "context_id", "default")

		log.WithField("context_id", contextID).Debug("create_task")

		result, err := interp.Create(ctx, contextID, instruction)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(result)
	}
}

func readTasksHandler(interp *interpreter.Interpreter, log *logrus.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := mcp.ParseString(request, "query", "")

		log.WithField("query", query).Debug("read_tasks")

		tasks, err := interp.Read(ctx, query)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(map[string]any{"tasks": tasks})
	}
}

func updateTaskHandler(interp *interpreter.Interpreter, log *logrus.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		instruction := mcp.ParseString(request, "instruction", "")

		log.Debug("update_task")

		result, err := interp.Update(ctx, instruction)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(result)
	}
}

func selectHandler(interp *interpreter.Interpreter, log *logrus.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		selection := mcp.ParseString(request, "selection", "")
		contextID := mcp.ParseString(request, "context_id", "default")

		log.WithField("context_id", contextID).Debug("create_suggested_tasks")

		result, err := interp.Select(ctx, contextID, selection)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(result)
	}
}

func listSuggestionsHandler(interp *interpreter.Interpreter) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		contextID := mcp.ParseString(request, "context_id", "default")
		return jsonResult(map[string]any{"suggestions": interp.Suggestions(contextID)})
	}
}

func getTaskHandler(interp *interpreter.Interpreter) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := int64(mcp.ParseInt(request, "task_id", 0))

		task, err := interp.Get(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(task)
	}
}

func deleteTaskHandler(interp *interpreter.Interpreter, log *logrus.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := int64(mcp.ParseInt(request, "task_id", 0))

		log.WithField("task_id", id).Debug("delete_task")

		if err := interp.Delete(ctx, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("task %d deleted", id)), nil
	}
}

func matchNameHandler(interp *interpreter.Interpreter) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input := mcp.ParseString(request, "name", "")

		name, confidence, ok := interp.MatchName(input)
		return jsonResult(map[string]any{
			"matched":    ok,
			"name":       name,
			"confidence": confidence,
		})
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
