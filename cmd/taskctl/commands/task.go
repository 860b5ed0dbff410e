package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"organizer/cmd/taskctl/client"
	"organizer/cmd/taskctl/config"
	"organizer/cmd/taskctl/output"

	"github.com/urfave/cli/v3"
)

// TaskCommand returns the task command with subcommands
func TaskCommand() *cli.Command {
	return &cli.Command{
		Name:  "task",
		Usage: "Manage tasks",
		Commands: []*cli.Command{
			createTaskCommand(),
			listTaskCommand(),
			getTaskCommand(),
			searchTaskCommand(),
			updateTaskCommand(),
			deleteTaskCommand(),
		},
	}
}

func createTaskCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a new task",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "title",
				Usage:    "Task title",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "Task description",
			},
			&cli.StringFlag{
				Name:     "due",
				Usage:    "Due date (2006-01-02 or RFC 3339)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "status",
				Usage: "Initial status (Pending, InProgress, Done)",
			},
		},
		Action: createTaskAction,
	}
}

func createTaskAction(ctx context.Context, c *cli.Command) error {
	httpClient, err := newClient(c)
	if err != nil {
		return err
	}

	task, err := httpClient.CreateTask(ctx, &client.TaskRequest{
		Title:       c.String("title"),
		Description: c.String("description"),
		DueDate:     c.String("due"),
		Status:      c.String("status"),
	})
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return printResult(c, task)
}

func listTaskCommand() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "List all tasks",
		Action: listTaskAction,
	}
}

func listTaskAction(ctx context.Context, c *cli.Command) error {
	httpClient, err := newClient(c)
	if err != nil {
		return err
	}

	tasks, err := httpClient.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	return printResult(c, tasks)
}

func getTaskCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Get task details",
		ArgsUsage: "<task-id>",
		Action:    getTaskAction,
	}
}

func getTaskAction(ctx context.Context, c *cli.Command) error {
	id, err := taskIDArg(c)
	if err != nil {
		return err
	}

	httpClient, err := newClient(c)
	if err != nil {
		return err
	}

	task, err := httpClient.GetTask(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	return printResult(c, task)
}

func searchTaskCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search tasks by title, due date or status",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "title",
				Usage: "Case-insensitive title fragment",
			},
			&cli.StringFlag{
				Name:  "date",
				Usage: "Due date (2006-01-02)",
			},
			&cli.StringFlag{
				Name:  "status",
				Usage: "Status (Pending, InProgress, Done)",
			},
		},
		Action: searchTaskAction,
	}
}

func searchTaskAction(ctx context.Context, c *cli.Command) error {
	if err := validateSearchFlags(c); err != nil {
		return err
	}

	httpClient, err := newClient(c)
	if err != nil {
		return err
	}

	tasks, err := httpClient.SearchTasks(ctx, &client.SearchRequest{
		Title:  c.String("title"),
		Date:   c.String("date"),
		Status: c.String("status"),
	})
	if err != nil {
		return fmt.Errorf("failed to search tasks: %w", err)
	}

	return printResult(c, tasks)
}

func validateSearchFlags(c *cli.Command) error {
	set := 0
	for _, name := range []string{"title", "date", "status"} {
		if c.IsSet(name) {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("exactly one of --title, --date or --status is required")
	}
	return nil
}

func updateTaskCommand() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update a task; unset flags keep their current values",
		ArgsUsage: "<task-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "title",
				Usage: "Task title",
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "Task description",
			},
			&cli.StringFlag{
				Name:  "due",
				Usage: "Due date (2006-01-02 or RFC 3339)",
			},
			&cli.StringFlag{
				Name:  "status",
				Usage: "Status (Pending, InProgress, Done)",
			},
		},
		Action: updateTaskAction,
	}
}

func updateTaskAction(ctx context.Context, c *cli.Command) error {
	id, err := taskIDArg(c)
	if err != nil {
		return err
	}

	httpClient, err := newClient(c)
	if err != nil {
		return err
	}

	current, err := httpClient.GetTask(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	task, err := httpClient.UpdateTask(ctx, id, mergeUpdate(c, current))
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return printResult(c, task)
}

// mergeUpdate overlays the flags that were set on the current task.
func mergeUpdate(c *cli.Command, current *client.Task) *client.TaskRequest {
	req := &client.TaskRequest{
		Title:       current.Title,
		Description: current.Description,
		DueDate:     current.DueDate.UTC().Format(time.RFC3339Nano),
		Status:      current.Status,
	}
	if c.IsSet("title") {
		req.Title = c.String("title")
	}
	if c.IsSet("description") {
		req.Description = c.String("description")
	}
	if c.IsSet("due") {
		req.DueDate = c.String("due")
	}
	if c.IsSet("status") {
		req.Status = c.String("status")
	}
	return req
}

func deleteTaskCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a task",
		ArgsUsage: "<task-id>",
		Action:    deleteTaskAction,
	}
}

func deleteTaskAction(ctx context.Context, c *cli.Command) error {
	id, err := taskIDArg(c)
	if err != nil {
		return err
	}

	httpClient, err := newClient(c)
	if err != nil {
		return err
	}

	if err := httpClient.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "task %d deleted\n", id)
	return nil
}

func taskIDArg(c *cli.Command) (uint, error) {
	if c.Args().Len() != 1 {
		return 0, fmt.Errorf("task ID is required")
	}

	id, err := strconv.ParseUint(c.Args().Get(0), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid task ID %q", c.Args().Get(0))
	}
	return uint(id), nil
}

// newClient resolves the server URL with priority: --server > env > config file > default
func newClient(c *cli.Command) (client.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	serverURL := cfg.GetServerURL()
	if c.IsSet("server") {
		serverURL = c.String("server")
	}

	return client.NewHTTPClient(serverURL), nil
}

func printResult(c *cli.Command, data any) error {
	formatter, err := output.New(c.String("output"))
	if err != nil {
		return err
	}

	jsonOutput, err := formatter.Format(data)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Fprintln(c.Root().Writer, jsonOutput)
	return nil
}
