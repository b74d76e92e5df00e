package lifecycle

import (
	"context"
	"errors"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/client"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/logging"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
)

// Notification texts.
const (
	MsgCreated       = "Chart created successfully!"
	MsgUpdated       = "Chart updated successfully!"
	MsgDeleted       = "Chart deleted successfully!"
	MsgCreateFailed  = "Failed to create chart"
	MsgUpdateFailed  = "Failed to update chart"
	MsgDeleteFailed  = "Failed to delete chart"
	MsgConfirmDelete = "Are you sure you want to delete this chart?"
)

// ChartAPI is the subset of the API client the lifecycle needs.
type ChartAPI interface {
	CreateChart(ctx context.Context, uploadID string, cfg models.ChartConfig) (*models.ChartRecord, error)
	UpdateChart(ctx context.Context, chartID string, cfg models.ChartConfig) (*models.ChartRecord, error)
	DeleteChart(ctx context.Context, chartID string) error
	GetChart(ctx context.Context, chartID string) (*models.ChartRecord, error)
}

var _ ChartAPI = (*client.Client)(nil)

// Controller performs chart mutations and reports their outcome.
type Controller struct {
	api     ChartAPI
	notify  Notifier
	confirm Confirmer
	logger  *bolt.Logger
}

// NewController creates a controller. A nil confirmer confirms everything
// and a nil logger uses the default logger.
func NewController(api ChartAPI, notify Notifier, confirm Confirmer, logger *bolt.Logger) *Controller {
	if confirm == nil {
		confirm = AlwaysConfirm
	}
	if logger == nil {
		logger = logging.Get()
	}
	return &Controller{api: api, notify: notify, confirm: confirm, logger: logger}
}

// failed notifies the API's message, or fallback when it sent none.
func (c *Controller) failed(op, id string, err error, fallback string) {
	msg := client.Message(err)
	var verr ValidationError
	if errors.As(err, &verr) {
		msg = verr.Error()
	}
	if msg == "" {
		msg = fallback
	}
	logging.NewEvent(c.logger.Warn()).Add(
		logging.Component("lifecycle"),
		logging.Operation(op),
		logging.ChartID(id),
		logging.ErrorField(err),
	).Msg(fallback)
	c.notify.Error(msg)
}

// Create validates in and creates a chart over upload uploadID.
func (c *Controller) Create(ctx context.Context, uploadID string, in ChartInput) (*models.ChartRecord, error) {
	if err := in.Validate(); err != nil {
		c.failed("create", "", err, MsgCreateFailed)
		return nil, err
	}
	rec, err := c.api.CreateChart(ctx, uploadID, in.Config())
	if err != nil {
		c.failed("create", "", err, MsgCreateFailed)
		return nil, err
	}
	c.notify.Success(MsgCreated)
	return rec, nil
}

// Update validates in and replaces the configuration of chart chartID.
func (c *Controller) Update(ctx context.Context, chartID string, in ChartInput) (*models.ChartRecord, error) {
	if err := in.Validate(); err != nil {
		c.failed("update", chartID, err, MsgUpdateFailed)
		return nil, err
	}
	rec, err := c.api.UpdateChart(ctx, chartID, in.Config())
	if err != nil {
		c.failed("update", chartID, err, MsgUpdateFailed)
		return nil, err
	}
	c.notify.Success(MsgUpdated)
	return rec, nil
}

// Delete asks for confirmation and deletes chart chartID. It reports
// whether the chart was deleted; a declined confirmation is not an error.
func (c *Controller) Delete(ctx context.Context, chartID string) (bool, error) {
	if !c.confirm.Confirm(MsgConfirmDelete) {
		return false, nil
	}
	if err := c.api.DeleteChart(ctx, chartID); err != nil {
		c.failed("delete", chartID, err, MsgDeleteFailed)
		return false, err
	}
	c.notify.Success(MsgDeleted)
	return true, nil
}
