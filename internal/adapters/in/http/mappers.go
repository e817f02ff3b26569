package http

import (
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toCartItems(lines []queries.CartLine) []servers.CartItem {
	items := make([]servers.CartItem, len(lines))
	for i, line := range lines {
		items[i] = servers.CartItem{
			ProductId: line.ProductID.Bytes(),
			OwnerId:   line.OwnerID.Bytes(),
			Title:     line.Title,
			Image:     optional(line.Image),
			Price:     line.Price.InexactFloat64(),
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal.InexactFloat64(),
		}
	}
	return items
}

func toPricing(p order.Pricing) servers.Pricing {
	return servers.Pricing{
		Subtotal:          p.Subtotal().InexactFloat64(),
		DeliveryFee:       p.Delivery().Fee.InexactFloat64(),
		IsFreeDelivery:    p.Delivery().IsFree,
		DeliveryBreakdown: p.Delivery().Breakdown,
		DistanceKm:        p.Delivery().DistanceKm,
		Discount:          p.Discount().Amount.InexactFloat64(),
		OfferCode:         optional(p.Discount().OfferCode),
		DiscountMessage:   optional(p.Discount().Message),
		Total:             p.Total().InexactFloat64(),
	}
}

func toAddress(a servers.DeliveryAddress) (order.Address, error) {
	location, err := kernel.NewGeoPoint(a.Lat, a.Lng)
	if err != nil {
		return order.Address{}, err
	}
	return order.NewAddress(a.Name, a.Phone, a.Address, a.City, a.Pincode, deref(a.State), location)
}

func toOrders(views []queries.OrderView) []servers.Order {
	orders := make([]servers.Order, len(views))
	for i, v := range views {
		orders[i] = toOrder(v)
	}
	return orders
}

func toOrder(v queries.OrderView) servers.Order {
	items := make([]servers.OrderItem, len(v.Items))
	for i, item := range v.Items {
		items[i] = servers.OrderItem{
			ProductId: item.ProductID.Bytes(),
			OwnerId:   item.OwnerID.Bytes(),
			Title:     item.Title,
			Image:     optional(item.Image),
			Price:     item.Price.InexactFloat64(),
			Quantity:  item.Quantity,
		}
	}

	shopOwners := make([]openapi_types.UUID, len(v.ShopOwnerIDs))
	for i, id := range v.ShopOwnerIDs {
		shopOwners[i] = id.Bytes()
	}

	paid := v.PaidAmount.InexactFloat64()
	return servers.Order{
		Id:           v.ID.Bytes(),
		OrderNumber:  v.Number,
		UserId:       v.UserID.Bytes(),
		ShopOwnerIds: &shopOwners,
		Items:        items,
		UserProfile:  toProfile(v.Profile),
		DeliveryAddress: servers.DeliveryAddress{
			Name:    v.Delivery.Name,
			Phone:   v.Delivery.Phone,
			Address: v.Delivery.Line,
			City:    v.Delivery.City,
			Pincode: v.Delivery.Pincode,
			State:   optional(v.Delivery.State),
			Lat:     v.Delivery.Lat,
			Lng:     v.Delivery.Lng,
		},
		Note: optional(v.Note),
		Pricing: servers.Pricing{
			Subtotal:          v.Subtotal.InexactFloat64(),
			DeliveryFee:       v.DeliveryFee.InexactFloat64(),
			IsFreeDelivery:    v.DeliveryIsFree,
			DeliveryBreakdown: v.DeliveryBreakdown,
			DistanceKm:        v.DistanceKm,
			Discount:          v.Discount.InexactFloat64(),
			OfferCode:         optional(v.OfferCode),
			DiscountMessage:   optional(v.DiscountMessage),
			Total:             v.Total.InexactFloat64(),
		},
		PaymentMethod:  v.PaymentMethod.String(),
		PaymentStatus:  v.PaymentStatus.String(),
		PaidAmount:     &paid,
		GatewayOrderId: optional(v.GatewayOrderID),
		Status:         v.Status.String(),
		NextStatuses:   statusNames(v.NextStatuses),
		CreatedAt:      v.CreatedAt,
		CancelledAt:    v.CancelledAt,
	}
}

// fromOrder renders a freshly created aggregate the same way the order queries do.
func fromOrder(o *order.Order, viewer kernel.Actor) servers.Order {
	items := make([]servers.OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, servers.OrderItem{
			ProductId: item.ProductID().Bytes(),
			OwnerId:   item.OwnerID().Bytes(),
			Title:     item.Title(),
			Image:     optional(item.Image()),
			Price:     item.Price().InexactFloat64(),
			Quantity:  item.Quantity(),
		})
	}

	shopOwners := make([]openapi_types.UUID, 0, len(o.ShopOwnerIDs()))
	for _, id := range o.ShopOwnerIDs() {
		shopOwners = append(shopOwners, id.Bytes())
	}

	address := o.Address()
	paid := o.PaidAmount().InexactFloat64()
	return servers.Order{
		Id:           o.ID().Bytes(),
		OrderNumber:  o.Number(),
		UserId:       o.UserID().Bytes(),
		ShopOwnerIds: &shopOwners,
		Items:        items,
		UserProfile:  toProfile(o.Profile()),
		DeliveryAddress: servers.DeliveryAddress{
			Name:    address.Name(),
			Phone:   address.Phone(),
			Address: address.Line(),
			City:    address.City(),
			Pincode: address.Pincode(),
			State:   optional(address.State()),
			Lat:     address.Location().Lat(),
			Lng:     address.Location().Lng(),
		},
		Note:           optional(o.Note()),
		Pricing:        toPricing(o.Pricing()),
		PaymentMethod:  o.PaymentMethod().String(),
		PaymentStatus:  o.PaymentStatus().String(),
		PaidAmount:     &paid,
		GatewayOrderId: optional(o.GatewayOrderID()),
		Status:         o.Status().String(),
		NextStatuses:   statusNames(o.NextStatusesFor(viewer)),
		CreatedAt:      o.CreatedAt(),
		CancelledAt:    o.CancelledAt(),
	}
}

func toProfile(p order.ProfileSnapshot) *servers.CustomerProfile {
	return &servers.CustomerProfile{
		Name:    optional(p.Name),
		Phone:   optional(p.Phone),
		Address: optional(p.Address),
		City:    optional(p.City),
		Pincode: optional(p.Pincode),
		State:   optional(p.State),
	}
}

func toStatusChange(id openapi_types.UUID, change order.StatusChange) servers.StatusChange {
	var reduced, restored bool
	for _, delta := range change.Stock {
		if delta.Delta < 0 {
			reduced = true
		}
		if delta.Delta > 0 {
			restored = true
		}
	}
	return servers.StatusChange{
		OrderId:       id,
		From:          change.From.String(),
		To:            change.To.String(),
		StockReduced:  &reduced,
		StockRestored: &restored,
	}
}

func statusNames(statuses []order.Status) []string {
	names := make([]string, len(statuses))
	for i, status := range statuses {
		names[i] = status.String()
	}
	return names
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
