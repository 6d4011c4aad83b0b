package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/SirviTusharChoudhary/InventoryPro/internal/alert"
	"github.com/SirviTusharChoudhary/InventoryPro/internal/handler"
	"github.com/SirviTusharChoudhary/InventoryPro/internal/inventory"
	"github.com/SirviTusharChoudhary/InventoryPro/internal/models"
	"github.com/SirviTusharChoudhary/InventoryPro/pkg/api"
	"github.com/SirviTusharChoudhary/InventoryPro/pkg/api/apiconnect"
)

// InventoryService implements the Connect InventoryService
type InventoryService struct {
	apiconnect.UnimplementedInventoryServiceHandler
	ctrl   *handler.Controller
	toasts *alert.ToastQueue
}

// NewInventoryService creates a new InventoryService over the given controller.
func NewInventoryService(ctrl *handler.Controller, toasts *alert.ToastQueue) *InventoryService {
	return &InventoryService{ctrl: ctrl, toasts: toasts}
}

// GetView returns the projection for the given search text.
func (s *InventoryService) GetView(ctx context.Context, req *connect.Request[api.GetViewRequest]) (*connect.Response[api.GetViewResponse], error) {
	slog.Debug("GetView request received", "search", req.Msg.Search)

	res := s.ctrl.View(req.Msg.Search)
	return connect.NewResponse(&api.GetViewResponse{View: toAPIView(res)}), nil
}

// AddItem creates an item from the add form.
func (s *InventoryService) AddItem(ctx context.Context, req *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error) {
	slog.Info("AddItem request received",
		"name", req.Msg.Name,
		"price", req.Msg.Price,
		"qty", req.Msg.Qty,
		"min", req.Msg.Min,
	)

	res, err := s.ctrl.Add(ctx, req.Msg.Name, req.Msg.Price, req.Msg.Qty, req.Msg.Min, req.Msg.Search)
	if err != nil {
		slog.Warn("AddItem failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.AddItemResponse{
		Item:      toAPIItem(*res.Item),
		View:      toAPIView(res),
		ResetForm: res.ResetForm,
	}), nil
}

// StepQty applies a +/- button press.
func (s *InventoryService) StepQty(ctx context.Context, req *connect.Request[api.StepQtyRequest]) (*connect.Response[api.StepQtyResponse], error) {
	slog.Info("StepQty request received", "item_id", req.Msg.ItemID, "delta", req.Msg.Delta)

	res, err := s.ctrl.Apply(ctx, models.StepQty(req.Msg.ItemID, req.Msg.Delta), req.Msg.Search)
	if err != nil {
		slog.Error("StepQty failed", "item_id", req.Msg.ItemID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.StepQtyResponse{
		View:  toAPIView(res),
		Alert: toAPIAlert(res.Alert),
	}), nil
}

// BeginEdit switches a row's quantity into edit mode.
func (s *InventoryService) BeginEdit(ctx context.Context, req *connect.Request[api.BeginEditRequest]) (*connect.Response[api.BeginEditResponse], error) {
	res, err := s.ctrl.Apply(ctx, models.BeginEdit(req.Msg.ItemID), req.Msg.Search)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.BeginEditResponse{View: toAPIView(res)}), nil
}

// CommitEdit applies the manual quantity typed by the user.
func (s *InventoryService) CommitEdit(ctx context.Context, req *connect.Request[api.CommitEditRequest]) (*connect.Response[api.CommitEditResponse], error) {
	slog.Info("CommitEdit request received", "item_id", req.Msg.ItemID, "value", req.Msg.Value)

	res, err := s.ctrl.Apply(ctx, models.CommitEdit(req.Msg.ItemID, req.Msg.Value), req.Msg.Search)
	if err != nil {
		slog.Error("CommitEdit failed", "item_id", req.Msg.ItemID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.CommitEditResponse{
		View:  toAPIView(res),
		Alert: toAPIAlert(res.Alert),
	}), nil
}

// CancelEdit leaves edit mode without changing the item.
func (s *InventoryService) CancelEdit(ctx context.Context, req *connect.Request[api.CancelEditRequest]) (*connect.Response[api.CancelEditResponse], error) {
	res, err := s.ctrl.Apply(ctx, models.Command{Kind: models.CommandCancelEdit, ItemID: req.Msg.ItemID}, req.Msg.Search)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.CancelEditResponse{View: toAPIView(res)}), nil
}

// DeleteItem removes an item regardless of its quantity.
func (s *InventoryService) DeleteItem(ctx context.Context, req *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error) {
	slog.Info("DeleteItem request received", "item_id", req.Msg.ItemID)

	res, err := s.ctrl.Apply(ctx, models.Delete(req.Msg.ItemID), req.Msg.Search)
	if err != nil {
		slog.Error("DeleteItem failed", "item_id", req.Msg.ItemID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.DeleteItemResponse{View: toAPIView(res)}), nil
}

// ResetAll erases the inventory.
func (s *InventoryService) ResetAll(ctx context.Context, req *connect.Request[api.ResetAllRequest]) (*connect.Response[api.ResetAllResponse], error) {
	slog.Info("ResetAll request received")

	res, err := s.ctrl.Reset(ctx)
	if err != nil {
		slog.Error("ResetAll failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.ResetAllResponse{View: toAPIView(res)}), nil
}

// ToggleLowStockFilter flips the low-stock filter.
func (s *InventoryService) ToggleLowStockFilter(ctx context.Context, req *connect.Request[api.ToggleLowStockFilterRequest]) (*connect.Response[api.ToggleLowStockFilterResponse], error) {
	res := s.ctrl.ToggleLowStockFilter(req.Msg.Search)
	return connect.NewResponse(&api.ToggleLowStockFilterResponse{View: toAPIView(res)}), nil
}

// ImportCSV imports the uploaded file content.
func (s *InventoryService) ImportCSV(ctx context.Context, req *connect.Request[api.ImportCSVRequest]) (*connect.Response[api.ImportCSVResponse], error) {
	slog.Info("ImportCSV request received", "bytes", len(req.Msg.Content))

	res, err := s.ctrl.Import(ctx, req.Msg.Content, req.Msg.Search)
	if err != nil {
		slog.Error("ImportCSV failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.ImportCSVResponse{
		Imported: res.Imported,
		Skipped:  res.Skipped,
		View:     toAPIView(res),
	}), nil
}

// ListToasts returns the banners that are still visible.
func (s *InventoryService) ListToasts(ctx context.Context, req *connect.Request[api.ListToastsRequest]) (*connect.Response[api.ListToastsResponse], error) {
	active := s.toasts.Active()

	toasts := make([]*api.Toast, len(active))
	for i, t := range active {
		toasts[i] = &api.Toast{
			ID:        t.ID,
			Kind:      string(t.Kind),
			Message:   t.Message,
			ExpiresAt: t.ExpiresAt.UnixMilli(),
		}
	}

	return connect.NewResponse(&api.ListToastsResponse{Toasts: toasts}), nil
}

// DismissToast closes a banner early.
func (s *InventoryService) DismissToast(ctx context.Context, req *connect.Request[api.DismissToastRequest]) (*connect.Response[api.DismissToastResponse], error) {
	if !s.toasts.Dismiss(req.Msg.ID) {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("toast not found: %s", req.Msg.ID))
	}
	return connect.NewResponse(&api.DismissToastResponse{}), nil
}

// toConnectError maps domain errors onto Connect codes.
func toConnectError(err error) error {
	var verr *inventory.ValidationError
	if errors.As(err, &verr) {
		return connect.NewError(connect.CodeInvalidArgument, verr)
	}
	return connect.NewError(connect.CodeInternal, err)
}
