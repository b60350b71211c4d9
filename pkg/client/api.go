// Package client talks to the Alle API and mirrors its state in memory.
package client

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/funkybooboo/alle-sub000/pkg/dateutil"
	"github.com/funkybooboo/alle-sub000/pkg/httpclient"
)

// API maps each server operation to one call.
type API struct {
	http httpclient.Client
}

func NewAPI(c httpclient.Client) *API {
	return &API{http: c}
}

func (a *API) TasksForDate(ctx context.Context, day time.Time) ([]Task, error) {
	var out []Task
	err := a.http.Get(ctx, "/api/tasks?date="+dateutil.Format(day), &out)
	return out, err
}

func (a *API) TasksInRange(ctx context.Context, from, to time.Time) ([]Task, error) {
	q := url.Values{}
	q.Set("from", dateutil.Format(from))
	q.Set("to", dateutil.Format(to))
	var out []Task
	err := a.http.Get(ctx, "/api/tasks?"+q.Encode(), &out)
	return out, err
}

func (a *API) TasksForList(ctx context.Context, listID uint64) ([]Task, error) {
	var out []Task
	err := a.http.Get(ctx, "/api/tasks?list_id="+id(listID), &out)
	return out, err
}

func (a *API) CreateTask(ctx context.Context, in NewTask) (Task, error) {
	var out Task
	err := a.http.Post(ctx, "/api/tasks", in, &out)
	return out, err
}

func (a *API) UpdateTask(ctx context.Context, taskID uint64, in TaskPatch) (Task, error) {
	var out Task
	err := a.http.Patch(ctx, "/api/tasks/"+id(taskID), in, &out)
	return out, err
}

func (a *API) ToggleTask(ctx context.Context, taskID uint64) (Task, error) {
	var out Task
	err := a.http.Post(ctx, "/api/tasks/"+id(taskID)+"/toggle", nil, &out)
	return out, err
}

func (a *API) DeleteTask(ctx context.Context, taskID uint64) (TrashItem, error) {
	var out TrashItem
	err := a.http.Delete(ctx, "/api/tasks/"+id(taskID), &out)
	return out, err
}

func (a *API) SomedayLists(ctx context.Context) ([]SomedayList, error) {
	var out []SomedayList
	err := a.http.Get(ctx, "/api/someday-lists", &out)
	return out, err
}

func (a *API) CreateSomedayList(ctx context.Context, name string) (SomedayList, error) {
	var out SomedayList
	err := a.http.Post(ctx, "/api/someday-lists", map[string]string{"name": name}, &out)
	return out, err
}

func (a *API) Trash(ctx context.Context) ([]TrashItem, error) {
	var out []TrashItem
	err := a.http.Get(ctx, "/api/trash", &out)
	return out, err
}

func (a *API) RestoreTrashItem(ctx context.Context, itemID uint64) (Task, error) {
	var out Task
	err := a.http.Post(ctx, "/api/trash/"+id(itemID)+"/restore", nil, &out)
	return out, err
}

func (a *API) UndoDelete(ctx context.Context) (Task, error) {
	var out Task
	err := a.http.Post(ctx, "/api/trash/undo", nil, &out)
	return out, err
}

func (a *API) DeleteTrashItem(ctx context.Context, itemID uint64) error {
	return a.http.Delete(ctx, "/api/trash/"+id(itemID), nil)
}

func (a *API) EmptyTrash(ctx context.Context) error {
	return a.http.Delete(ctx, "/api/trash", nil)
}

func (a *API) Settings(ctx context.Context) (Settings, error) {
	var out Settings
	err := a.http.Get(ctx, "/api/settings", &out)
	return out, err
}

func (a *API) UpdateSettings(ctx context.Context, in SettingsPatch) (Settings, error) {
	var out Settings
	err := a.http.Patch(ctx, "/api/settings", in, &out)
	return out, err
}

func (a *API) ResetSettings(ctx context.Context) (Settings, error) {
	var out Settings
	err := a.http.Post(ctx, "/api/settings/reset", nil, &out)
	return out, err
}

func id(v uint64) string {
	return strconv.FormatUint(v, 10)
}
