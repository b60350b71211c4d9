package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/funkybooboo/alle-sub000/internal/adapter/http/dto"
	"github.com/funkybooboo/alle-sub000/internal/adapter/http/mapper"
	"github.com/funkybooboo/alle-sub000/internal/adapter/http/validation"
	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
	"github.com/funkybooboo/alle-sub000/pkg/apierrors"
	"github.com/funkybooboo/alle-sub000/pkg/dateutil"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks filters by ?date=, ?from=&to= or ?list_id=; without a filter it
// returns every task.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		tasks []domain.Task
		err   error
	)
	switch {
	case c.Query("date") != "":
		date, ok := queryDate(c, "date")
		if !ok {
			return
		}
		tasks, err = h.taskService.ListTasksByDate(ctx, date)
	case c.Query("from") != "" || c.Query("to") != "":
		from, ok := queryDate(c, "from")
		if !ok {
			return
		}
		to, ok := queryDate(c, "to")
		if !ok {
			return
		}
		tasks, err = h.taskService.ListTasksInRange(ctx, from, to)
	case c.Query("list_id") != "":
		listID, parseErr := strconv.ParseUint(c.Query("list_id"), 10, 64)
		if parseErr != nil || listID == 0 {
			badRequest(c, apierrors.MsgInvalidID, errInvalidID)
			return
		}
		tasks, err = h.taskService.ListTasksByList(ctx, listID)
	default:
		tasks, err = h.taskService.ListTasks(ctx)
	}
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := parseID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload, err)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload, err)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := parseID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload, err)
		return
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload, err)
		return
	}
	var req dto.UpdateTaskRequest
	if err := json.Unmarshal(body, &req); err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload, err)
		return
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload, err)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload, err)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ToggleTask(c *gin.Context) {
	taskID, ok := parseID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	task, err := h.taskService.ToggleTask(c.Request.Context(), taskID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) MoveTask(c *gin.Context) {
	taskID, ok := parseID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	var req dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload, err)
		return
	}
	input, err := validation.BuildMoveTaskInput(req)
	if err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload, err)
		return
	}

	task, err := h.taskService.MoveTask(c.Request.Context(), taskID, input)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

// DeleteTask returns the trash item the task was moved to.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := parseID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	item, err := h.taskService.DeleteTask(c.Request.Context(), taskID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTrashItem(item))
}

func (h *TaskHandler) DeleteAllTasks(c *gin.Context) {
	if err := h.taskService.DeleteAllTasks(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}

var errMissingDate = errors.New("missing date")

func queryDate(c *gin.Context, key string) (time.Time, bool) {
	value := c.Query(key)
	if value == "" {
		badRequest(c, apierrors.MsgInvalidDate, errMissingDate)
		return time.Time{}, false
	}
	date, err := dateutil.Parse(value)
	if err != nil {
		badRequest(c, apierrors.MsgInvalidDate, err)
		return time.Time{}, false
	}
	return date, true
}
