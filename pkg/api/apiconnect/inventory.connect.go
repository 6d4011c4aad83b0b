// Package apiconnect wires the inventory.v1.InventoryService messages to
// Connect handlers and clients.
package apiconnect

import (
	context "context"
	errors "errors"
	http "net/http"

	connect "connectrpc.com/connect"

	api "github.com/SirviTusharChoudhary/InventoryPro/pkg/api"
)

const (
	// InventoryServiceName is the fully-qualified name of the InventoryService service.
	InventoryServiceName = "inventory.v1.InventoryService"
)

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
const (
	InventoryServiceGetViewProcedure              = "/inventory.v1.InventoryService/GetView"
	InventoryServiceAddItemProcedure              = "/inventory.v1.InventoryService/AddItem"
	InventoryServiceStepQtyProcedure              = "/inventory.v1.InventoryService/StepQty"
	InventoryServiceBeginEditProcedure            = "/inventory.v1.InventoryService/BeginEdit"
	InventoryServiceCommitEditProcedure           = "/inventory.v1.InventoryService/CommitEdit"
	InventoryServiceCancelEditProcedure           = "/inventory.v1.InventoryService/CancelEdit"
	InventoryServiceDeleteItemProcedure           = "/inventory.v1.InventoryService/DeleteItem"
	InventoryServiceResetAllProcedure             = "/inventory.v1.InventoryService/ResetAll"
	InventoryServiceToggleLowStockFilterProcedure = "/inventory.v1.InventoryService/ToggleLowStockFilter"
	InventoryServiceImportCSVProcedure            = "/inventory.v1.InventoryService/ImportCSV"
	InventoryServiceListToastsProcedure           = "/inventory.v1.InventoryService/ListToasts"
	InventoryServiceDismissToastProcedure         = "/inventory.v1.InventoryService/DismissToast"
)

// InventoryServiceClient is a client for the inventory.v1.InventoryService service.
type InventoryServiceClient interface {
	GetView(context.Context, *connect.Request[api.GetViewRequest]) (*connect.Response[api.GetViewResponse], error)
	AddItem(context.Context, *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error)
	StepQty(context.Context, *connect.Request[api.StepQtyRequest]) (*connect.Response[api.StepQtyResponse], error)
	BeginEdit(context.Context, *connect.Request[api.BeginEditRequest]) (*connect.Response[api.BeginEditResponse], error)
	CommitEdit(context.Context, *connect.Request[api.CommitEditRequest]) (*connect.Response[api.CommitEditResponse], error)
	CancelEdit(context.Context, *connect.Request[api.CancelEditRequest]) (*connect.Response[api.CancelEditResponse], error)
	DeleteItem(context.Context, *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error)
	ResetAll(context.Context, *connect.Request[api.ResetAllRequest]) (*connect.Response[api.ResetAllResponse], error)
	ToggleLowStockFilter(context.Context, *connect.Request[api.ToggleLowStockFilterRequest]) (*connect.Response[api.ToggleLowStockFilterResponse], error)
	ImportCSV(context.Context, *connect.Request[api.ImportCSVRequest]) (*connect.Response[api.ImportCSVResponse], error)
	ListToasts(context.Context, *connect.Request[api.ListToastsRequest]) (*connect.Response[api.ListToastsResponse], error)
	DismissToast(context.Context, *connect.Request[api.DismissToastRequest]) (*connect.Response[api.DismissToastResponse], error)
}

// NewInventoryServiceClient constructs a client for the inventory.v1.InventoryService service.
// Requests use the JSON codec; options passed here are applied after it.
//
// The URL supplied here should be the base URL for the Connect server (for example,
// http://localhost:8080 or https://localhost:8080/api).
func NewInventoryServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) InventoryServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &inventoryServiceClient{
		getView:              connect.NewClient[api.GetViewRequest, api.GetViewResponse](httpClient, baseURL+InventoryServiceGetViewProcedure, opts...),
		addItem:              connect.NewClient[api.AddItemRequest, api.AddItemResponse](httpClient, baseURL+InventoryServiceAddItemProcedure, opts...),
		stepQty:              connect.NewClient[api.StepQtyRequest, api.StepQtyResponse](httpClient, baseURL+InventoryServiceStepQtyProcedure, opts...),
		beginEdit:            connect.NewClient[api.BeginEditRequest, api.BeginEditResponse](httpClient, baseURL+InventoryServiceBeginEditProcedure, opts...),
		commitEdit:           connect.NewClient[api.CommitEditRequest, api.CommitEditResponse](httpClient, baseURL+InventoryServiceCommitEditProcedure, opts...),
		cancelEdit:           connect.NewClient[api.CancelEditRequest, api.CancelEditResponse](httpClient, baseURL+InventoryServiceCancelEditProcedure, opts...),
		deleteItem:           connect.NewClient[api.DeleteItemRequest, api.DeleteItemResponse](httpClient, baseURL+InventoryServiceDeleteItemProcedure, opts...),
		resetAll:             connect.NewClient[api.ResetAllRequest, api.ResetAllResponse](httpClient, baseURL+InventoryServiceResetAllProcedure, opts...),
		toggleLowStockFilter: connect.NewClient[api.ToggleLowStockFilterRequest, api.ToggleLowStockFilterResponse](httpClient, baseURL+InventoryServiceToggleLowStockFilterProcedure, opts...),
		importCSV:            connect.NewClient[api.ImportCSVRequest, api.ImportCSVResponse](httpClient, baseURL+InventoryServiceImportCSVProcedure, opts...),
		listToasts:           connect.NewClient[api.ListToastsRequest, api.ListToastsResponse](httpClient, baseURL+InventoryServiceListToastsProcedure, opts...),
		dismissToast:         connect.NewClient[api.DismissToastRequest, api.DismissToastResponse](httpClient, baseURL+InventoryServiceDismissToastProcedure, opts...),
	}
}

// inventoryServiceClient implements InventoryServiceClient.
type inventoryServiceClient struct {
	getView              *connect.Client[api.GetViewRequest, api.GetViewResponse]
	addItem              *connect.Client[api.AddItemRequest, api.AddItemResponse]
	stepQty              *connect.Client[api.StepQtyRequest, api.StepQtyResponse]
	beginEdit            *connect.Client[api.BeginEditRequest, api.BeginEditResponse]
	commitEdit           *connect.Client[api.CommitEditRequest, api.CommitEditResponse]
	cancelEdit           *connect.Client[api.CancelEditRequest, api.CancelEditResponse]
	deleteItem           *connect.Client[api.DeleteItemRequest, api.DeleteItemResponse]
	resetAll             *connect.Client[api.ResetAllRequest, api.ResetAllResponse]
	toggleLowStockFilter *connect.Client[api.ToggleLowStockFilterRequest, api.ToggleLowStockFilterResponse]
	importCSV            *connect.Client[api.ImportCSVRequest, api.ImportCSVResponse]
	listToasts           *connect.Client[api.ListToastsRequest, api.ListToastsResponse]
	dismissToast         *connect.Client[api.DismissToastRequest, api.DismissToastResponse]
}

func (c *inventoryServiceClient) GetView(ctx context.Context, req *connect.Request[api.GetViewRequest]) (*connect.Response[api.GetViewResponse], error) {
	return c.getView.CallUnary(ctx, req)
}

func (c *inventoryServiceClient) AddItem(ctx context.Context, req *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error) {
	return c.addItem.CallUnary(ctx, req)
}

func (c *inventoryServiceClient) StepQty(ctx context.Context, req *connect.Request[api.StepQtyRequest]) (*connect.Response[api.StepQtyResponse], error) {
	return c.stepQty.CallUnary(ctx, req)
}

func (c *inventoryServiceClient) BeginEdit(ctx context.Context, req *connect.Request[api.BeginEditRequest]) (*connect.Response[api.BeginEditResponse], error) {
	return c.beginEdit.CallUnary(ctx, req)
}

func (c *inventoryServiceClient) CommitEdit(ctx context.Context, req *connect.Request[api.CommitEditRequest]) (*connect.Response[api.CommitEditResponse], error) {
	return c.commitEdit.CallUnary(ctx, req)
}

func (c *inventoryServiceClient) CancelEdit(ctx context.Context, req *connect.Request[api.CancelEditRequest]) (*connect.Response[api.CancelEditResponse], error) {
	return c.cancelEdit.CallUnary(ctx, req)
}

func (c *inventoryServiceClient) DeleteItem(ctx context.Context, req *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error) {
	return c.deleteItem.CallUnary(ctx, req)
}

func (c *inventoryServiceClient) ResetAll(ctx context.Context, req *connect.Request[api.ResetAllRequest]) (*connect.Response[api.ResetAllResponse], error) {
	return c.resetAll.CallUnary(ctx, req)
}

func (c *inventoryServiceClient) ToggleLowStockFilter(ctx context.Context, req *connect.Request[api.ToggleLowStockFilterRequest]) (*connect.Response[api.ToggleLowStockFilterResponse], error) {
	return c.toggleLowStockFilter.CallUnary(ctx, req)
}

func (c *inventoryServiceClient) ImportCSV(ctx context.Context, req *connect.Request[api.ImportCSVRequest]) (*connect.Response[api.ImportCSVResponse], error) {
	return c.importCSV.CallUnary(ctx, req)
}

func (c *inventoryServiceClient) ListToasts(ctx context.Context, req *connect.Request[api.ListToastsRequest]) (*connect.Response[api.ListToastsResponse], error) {
	return c.listToasts.CallUnary(ctx, req)
}

func (c *inventoryServiceClient) DismissToast(ctx context.Context, req *connect.Request[api.DismissToastRequest]) (*connect.Response[api.DismissToastResponse], error) {
	return c.dismissToast.CallUnary(ctx, req)
}

// InventoryServiceHandler is an implementation of the inventory.v1.InventoryService service.
type InventoryServiceHandler interface {
	GetView(context.Context, *connect.Request[api.GetViewRequest]) (*connect.Response[api.GetViewResponse], error)
	AddItem(context.Context, *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error)
	StepQty(context.Context, *connect.Request[api.StepQtyRequest]) (*connect.Response[api.StepQtyResponse], error)
	BeginEdit(context.Context, *connect.Request[api.BeginEditRequest]) (*connect.Response[api.BeginEditResponse], error)
	CommitEdit(context.Context, *connect.Request[api.CommitEditRequest]) (*connect.Response[api.CommitEditResponse], error)
	CancelEdit(context.Context, *connect.Request[api.CancelEditRequest]) (*connect.Response[api.CancelEditResponse], error)
	DeleteItem(context.Context, *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error)
	ResetAll(context.Context, *connect.Request[api.ResetAllRequest]) (*connect.Response[api.ResetAllResponse], error)
	ToggleLowStockFilter(context.Context, *connect.Request[api.ToggleLowStockFilterRequest]) (*connect.Response[api.ToggleLowStockFilterResponse], error)
	ImportCSV(context.Context, *connect.Request[api.ImportCSVRequest]) (*connect.Response[api.ImportCSVResponse], error)
	ListToasts(context.Context, *connect.Request[api.ListToastsRequest]) (*connect.Response[api.ListToastsResponse], error)
	DismissToast(context.Context, *connect.Request[api.DismissToastRequest]) (*connect.Response[api.DismissToastResponse], error)
}

// NewInventoryServiceHandler builds an HTTP handler from the service implementation. It returns
// the path on which to mount the handler and the handler itself.
//
// The JSON codec is registered first; options passed here are applied after it.
func NewInventoryServiceHandler(svc InventoryServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(InventoryServiceGetViewProcedure, connect.NewUnaryHandler(InventoryServiceGetViewProcedure, svc.GetView, opts...))
	mux.Handle(InventoryServiceAddItemProcedure, connect.NewUnaryHandler(InventoryServiceAddItemProcedure, svc.AddItem, opts...))
	mux.Handle(InventoryServiceStepQtyProcedure, connect.NewUnaryHandler(InventoryServiceStepQtyProcedure, svc.StepQty, opts...))
	mux.Handle(InventoryServiceBeginEditProcedure, connect.NewUnaryHandler(InventoryServiceBeginEditProcedure, svc.BeginEdit, opts...))
	mux.Handle(InventoryServiceCommitEditProcedure, connect.NewUnaryHandler(InventoryServiceCommitEditProcedure, svc.CommitEdit, opts...))
	mux.Handle(InventoryServiceCancelEditProcedure, connect.NewUnaryHandler(InventoryServiceCancelEditProcedure, svc.CancelEdit, opts...))
	mux.Handle(InventoryServiceDeleteItemProcedure, connect.NewUnaryHandler(InventoryServiceDeleteItemProcedure, svc.DeleteItem, opts...))
	mux.Handle(InventoryServiceResetAllProcedure, connect.NewUnaryHandler(InventoryServiceResetAllProcedure, svc.ResetAll, opts...))
	mux.Handle(InventoryServiceToggleLowStockFilterProcedure, connect.NewUnaryHandler(InventoryServiceToggleLowStockFilterProcedure, svc.ToggleLowStockFilter, opts...))
	mux.Handle(InventoryServiceImportCSVProcedure, connect.NewUnaryHandler(InventoryServiceImportCSVProcedure, svc.ImportCSV, opts...))
	mux.Handle(InventoryServiceListToastsProcedure, connect.NewUnaryHandler(InventoryServiceListToastsProcedure, svc.ListToasts, opts...))
	mux.Handle(InventoryServiceDismissToastProcedure, connect.NewUnaryHandler(InventoryServiceDismissToastProcedure, svc.DismissToast, opts...))
	return "/" + InventoryServiceName + "/", mux
}

// UnimplementedInventoryServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedInventoryServiceHandler struct{}

func (UnimplementedInventoryServiceHandler) GetView(context.Context, *connect.Request[api.GetViewRequest]) (*connect.Response[api.GetViewResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("inventory.v1.InventoryService.GetView is not implemented"))
}

func (UnimplementedInventoryServiceHandler) AddItem(context.Context, *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("inventory.v1.InventoryService.AddItem is not implemented"))
}

func (UnimplementedInventoryServiceHandler) StepQty(context.Context, *connect.Request[api.StepQtyRequest]) (*connect.Response[api.StepQtyResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("inventory.v1.InventoryService.StepQty is not implemented"))
}

func (UnimplementedInventoryServiceHandler) BeginEdit(context.Context, *connect.Request[api.BeginEditRequest]) (*connect.Response[api.BeginEditResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("inventory.v1.InventoryService.BeginEdit is not implemented"))
}

func (UnimplementedInventoryServiceHandler) CommitEdit(context.Context, *connect.Request[api.CommitEditRequest]) (*connect.Response[api.CommitEditResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("inventory.v1.InventoryService.CommitEdit is not implemented"))
}

func (UnimplementedInventoryServiceHandler) CancelEdit(context.Context, *connect.Request[api.CancelEditRequest]) (*connect.Response[api.CancelEditResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("inventory.v1.InventoryService.CancelEdit is not implemented"))
}

func (UnimplementedInventoryServiceHandler) DeleteItem(context.Context, *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("inventory.v1.InventoryService.DeleteItem is not implemented"))
}

func (UnimplementedInventoryServiceHandler) ResetAll(context.Context, *connect.Request[api.ResetAllRequest]) (*connect.Response[api.ResetAllResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("inventory.v1.InventoryService.ResetAll is not implemented"))
}

func (UnimplementedInventoryServiceHandler) ToggleLowStockFilter(context.Context, *connect.Request[api.ToggleLowStockFilterRequest]) (*connect.Response[api.ToggleLowStockFilterResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("inventory.v1.InventoryService.ToggleLowStockFilter is not implemented"))
}

func (UnimplementedInventoryServiceHandler) ImportCSV(context.Context, *connect.Request[api.ImportCSVRequest]) (*connect.Response[api.ImportCSVResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("inventory.v1.InventoryService.ImportCSV is not implemented"))
}

func (UnimplementedInventoryServiceHandler) ListToasts(context.Context, *connect.Request[api.ListToastsRequest]) (*connect.Response[api.ListToastsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("inventory.v1.InventoryService.ListToasts is not implemented"))
}

func (UnimplementedInventoryServiceHandler) DismissToast(context.Context, *connect.Request[api.DismissToastRequest]) (*connect.Response[api.DismissToastResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("inventory.v1.InventoryService.DismissToast is not implemented"))
}
