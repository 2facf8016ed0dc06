package handlers

import (
	"errors"
	"time"

	"github.com/biosecret/go-tasks/database"
	"github.com/biosecret/go-tasks/events"
	"github.com/biosecret/go-tasks/models"
	"github.com/biosecret/go-tasks/tasks"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TaskEnvelope bọc một task trong field data
type TaskEnvelope struct {
	Data models.Task `json:"data"`
}

var taskService = tasks.NewService(database.GetTasks)

// HandleAllTasks godoc
// @Summary      List tasks
// @Description  Filter, sort and paginate the mock task set
// @Tags         tasks
// @Produce      json
// @Param        filter[is_completed]  query  string  false  "1/true or 0/false"
// @Param        sort_by               query  string  false  "Field to sort by"  default(id)
// @Param        sort_order            query  string  false  "asc or desc"       default(asc)
// @Param        page                  query  int     false  "Page number"       default(1)
// @Param        per_page              query  int     false  "Page size"         default(10)
// @Success      200  {object}  tasks.Page
// @Failure      400  {object}  Message
// @Failure      401  {object}  Message
// @Security     BearerAuth
// @Router       /tasks [get]
func HandleAllTasks(c *fiber.Ctx) error {
	params, err := listParamsFromArgs(c.Context().QueryArgs())
	if err != nil {
		return respondBadBody(c, err)
	}

	page, err := taskService.List(params)
	if err != nil {
		return respondBadBody(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(page)
}

// HandleCreateTask godoc
// @Summary  Create a task
// @Tags     tasks
// @Accept   json
// @Produce  json
// @Param    task  body      models.TaskRequest  true  "Task"
// @Success  201   {object}  TaskEnvelope
// @Failure  401   {object}  Message
// @Failure  422   {object}  ValidationError
// @Security BearerAuth
// @Router   /tasks [post]
func HandleCreateTask(c *fiber.Ctx) error {
	req := new(models.TaskRequest)
	if err := parseBody(c, req); err != nil {
		return respondBadBody(c, err)
	}
	if verr := validateRequest(req); verr != nil {
		return respondValidation(c, verr)
	}

	dueDate, isCompleted := taskFields(req)
	task := taskService.Create(tasks.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		IsCompleted: isCompleted,
	})

	events.Publish(events.NewTaskEvent(events.TaskCreated, task.ID, &task))
	return c.Status(fiber.StatusCreated).JSON(TaskEnvelope{Data: task})
}

// HandleGetOneTask godoc
// @Summary  Get a task
// @Tags     tasks
// @Produce  json
// @Param    id   path      int  true  "Task ID"
// @Success  200  {object}  TaskEnvelope
// @Failure  401  {object}  Message
// @Failure  404  {object}  Message
// @Security BearerAuth
// @Router   /tasks/{id} [get]
func HandleGetOneTask(c *fiber.Ctx) error {
	task, err := taskService.Get(c.Params("id"))
	if err != nil {
		return respondTaskError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(TaskEnvelope{Data: task})
}

// HandleUpdateTask godoc
// @Summary  Replace a task
// @Tags     tasks
// @Accept   json
// @Produce  json
// @Param    id    path      int                 true  "Task ID"
// @Param    task  body      models.TaskRequest  true  "Task"
// @Success  200   {object}  TaskEnvelope
// @Failure  401   {object}  Message
// @Failure  404   {object}  Message
// @Failure  422   {object}  ValidationError
// @Security BearerAuth
// @Router   /tasks/{id} [put]
func HandleUpdateTask(c *fiber.Ctx) error {
	req := new(models.TaskRequest)
	if err := parseBody(c, req); err != nil {
		return respondBadBody(c, err)
	}
	if verr := validateRequest(req); verr != nil {
		return respondValidation(c, verr)
	}

	dueDate, isCompleted := taskFields(req)
	in := tasks.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		IsCompleted: isCompleted,
	}
	if req.CompletedAt != "" {
		// đã qua validator nên ParseStamp không lỗi
		completed, _ := models.ParseStamp(req.CompletedAt)
		in.CompletedAt = &completed.Time
	}

	task, err := taskService.Update(c.Params("id"), in)
	if err != nil {
		return respondTaskError(c, err)
	}

	events.Publish(events.NewTaskEvent(events.TaskUpdated, task.ID, &task))
	return c.Status(fiber.StatusOK).JSON(TaskEnvelope{Data: task})
}

// HandleDeleteTask godoc
// @Summary  Delete a task
// @Tags     tasks
// @Param    id   path  int  true  "Task ID"
// @Success  204
// @Failure  401  {object}  Message
// @Failure  404  {object}  Message
// @Security BearerAuth
// @Router   /tasks/{id} [delete]
func HandleDeleteTask(c *fiber.Ctx) error {
	task, err := taskService.Delete(c.Params("id"))
	if err != nil {
		return respondTaskError(c, err)
	}

	events.Publish(events.NewTaskEvent(events.TaskDeleted, task.ID, nil))
	return c.SendStatus(fiber.StatusNoContent)
}

// taskFields lấy due_date và is_completed đã được validate
func taskFields(req *models.TaskRequest) (time.Time, bool) {
	dueDate, _ := time.Parse(models.DateLayout, req.DueDate)
	flag, _ := tasks.FlagFromValue(req.IsCompleted)
	return dueDate, flag.Bool()
}

func respondTaskError(c *fiber.Ctx, err error) error {
	if errors.Is(err, tasks.ErrTaskNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(Message{Message: "Task not found"})
	}
	zap.L().Error("task operation failed", zap.String("id", c.Params("id")), zap.Error(err))
	return err
}
