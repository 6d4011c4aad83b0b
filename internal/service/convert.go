package service

import (
	"github.com/SirviTusharChoudhary/InventoryPro/internal/alert"
	"github.com/SirviTusharChoudhary/InventoryPro/internal/handler"
	"github.com/SirviTusharChoudhary/InventoryPro/internal/models"
	"github.com/SirviTusharChoudhary/InventoryPro/pkg/api"
)

func toAPIView(res handler.Result) *api.View {
	v := res.View
	rows := make([]*api.Row, len(v.Rows))
	for i, r := range v.Rows {
		controls := make([]*api.Control, len(r.Controls))
		for j, c := range r.Controls {
			controls[j] = &api.Control{
				Label:  c.Label,
				Kind:   string(c.Command.Kind),
				ItemID: c.Command.ItemID,
				Delta:  c.Command.Delta,
			}
		}
		rows[i] = &api.Row{
			ID:           r.ID,
			Name:         r.Name,
			Price:        r.Price,
			PriceDisplay: r.PriceDisplay,
			Qty:          r.Qty,
			Min:          r.Min,
			Status:       string(r.Status),
			Editing:      r.Editing,
			Controls:     controls,
		}
	}

	return &api.View{
		Rows:              rows,
		TotalValue:        v.TotalValue,
		TotalValueDisplay: v.TotalValueDisplay,
		AlertCount:        v.AlertCount,
		FilterActive:      v.FilterActive,
		EditingID:         v.EditingID,
	}
}

func toAPIItem(item models.Item) *api.Item {
	return &api.Item{
		ID:    item.ID,
		Name:  item.Name,
		Price: item.Price,
		Qty:   item.Qty,
		Min:   item.Min,
	}
}

func toAPIAlert(a *alert.Alert) *api.Alert {
	if a == nil {
		return nil
	}
	return &api.Alert{
		Kind:    string(a.Kind),
		ItemID:  a.ItemID,
		Message: a.Message,
	}
}
