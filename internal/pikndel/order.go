package pikndel

import (
    "context"
    "net/http"
    "strings"

    "pikndelgw/internal/model"
)

// Provider wire schema for order placement. Pickup cash fields are strings
// while Delivery.CashCollection is a number; the live endpoint rejects the
// other way around.

type wireOrder struct {
    UserID       string       `json:"UserId"`
    OrderDetails []wireDetail `json:"OrderDetails"`
}

type wireDetail struct {
    ClientUniqueNo    string     `json:"ClientUniqueNo"`
    VehicleType       string     `json:"VehicleType"`
    OrderType         string     `json:"OrderType"`
    InvoiceValue      string     `json:"InvoiceValue"`
    TotalActualWeight string     `json:"TotalActualWeight"`
    Info              []wireInfo `json:"Info"`
}

type wireInfo struct {
    Pickup   wirePickup   `json:"Pickup"`
    Item     []wireItem   `json:"Item"`
    Delivery wireDelivery `json:"Delivery"`
}

type wirePickup struct {
    Name           string `json:"Name"`
    Mobile         string `json:"Mobile"`
    Address        string `json:"Address"`
    Pincode        string `json:"Pincode"`
    CashCollection string `json:"CashCollection"`
    CashPaid       string `json:"CashPaid"`
    RTOName        string `json:"RTOName"`
    RTOMobile      string `json:"RTOMobile"`
    RTOAddress     string `json:"RTOAddress"`
    RTOPincode     string `json:"RTOPincode"`
}

type wireDelivery struct {
    Name           string  `json:"Name"`
    Mobile         string  `json:"Mobile"`
    Address        string  `json:"Address"`
    Pincode        string  `json:"Pincode"`
    CashCollection float64 `json:"CashCollection"`
}

type wireItem struct {
    Qty        int    `json:"Qty"`
    Type       string `json:"Type"`
    Fragile    string `json:"Fragile"`
    Liquid     string `json:"Liquid"`
    Cost       string `json:"Cost"`
    Length     string `json:"Length"`
    Width      string `json:"Width"`
    Height     string `json:"Height"`
    Weight     string `json:"Weight"`
    EwayBillNo string `json:"EwayBillNo"`
}

// ValidateOrder checks required fields in a fixed order, short-circuiting on
// the first failure, before any network call is made.
func ValidateOrder(p *model.OrderPayload) error {
    if p == nil || p.UserID == "" {
        return missingField("UserId")
    }
    if len(p.OrderDetails) == 0 {
        return missingField("OrderDetails")
    }
    d := p.OrderDetails[0]
    if d.ClientUniqueNo == "" {
        return missingField("ClientUniqueNo")
    }
    if d.TotalActualWeight == "" {
        return missingField("TotalActualWeight")
    }
    if !d.Info.Present() {
        return missingField("Info")
    }
    if d.Info.Pickup == nil {
        return missingField("Pickup")
    }
    if d.Info.Delivery == nil {
        return missingField("Delivery")
    }
    if len(d.Info.Item) == 0 {
        return missingField("Item")
    }
    return nil
}

// translateOrder maps the normalized caller payload into the provider's
// nested schema, applying field defaults and type coercions.
func translateOrder(p *model.OrderPayload) wireOrder {
    out := wireOrder{UserID: p.UserID.String()}
    for _, d := range p.OrderDetails {
        out.OrderDetails = append(out.OrderDetails, translateDetail(d))
    }
    return out
}

func translateDetail(d model.OrderDetail) wireDetail {
    wd := wireDetail{
        ClientUniqueNo:    d.ClientUniqueNo.String(),
        VehicleType:       defStr(d.VehicleType, "Bike"),
        OrderType:         defStr(d.OrderType, "B2C"),
        InvoiceValue:      defStr(d.InvoiceValue.String(), "0.00"),
        TotalActualWeight: d.TotalActualWeight.String(),
    }

    var pk model.PickupIn
    if d.Info.Pickup != nil {
        pk = *d.Info.Pickup
    }
    var dl model.DeliveryIn
    if d.Info.Delivery != nil {
        dl = *d.Info.Delivery
    }

    wp := wirePickup{
        Name:           pk.Name,
        Mobile:         pk.Mobile.String(),
        Address:        pk.Address,
        Pincode:        pk.Pincode.String(),
        CashCollection: defStr(pk.CashCollection.String(), "0"),
        CashPaid:       defStr(pk.CashPaid.String(), "0"),
        // RTO contact falls back to the pickup contact itself.
        RTOName:    defStr(pk.RTOName, pk.Name),
        RTOMobile:  defStr(pk.RTOMobile.String(), pk.Mobile.String()),
        RTOAddress: defStr(pk.RTOAddress, pk.Address),
        RTOPincode: defStr(pk.RTOPincode.String(), pk.Pincode.String()),
    }

    items := make([]wireItem, 0, len(d.Info.Item))
    for _, it := range d.Info.Item {
        items = append(items, wireItem{
            Qty:        int(it.Qty),
            Type:       it.Type,
            Fragile:    it.Fragile.Wire(),
            Liquid:     it.Liquid.Wire(),
            Cost:       defStr(it.Cost.String(), "0"),
            Length:     it.Length.String(),
            Width:      it.Width.String(),
            Height:     it.Height.String(),
            Weight:     it.Weight.String(),
            EwayBillNo: defStr(it.EwayBillNo, it.EWayBillNo),
        })
    }

    wd.Info = []wireInfo{{
        Pickup: wp,
        Item:   items,
        Delivery: wireDelivery{
            Name:           dl.Name,
            Mobile:         dl.Mobile.String(),
            Address:        dl.Address,
            Pincode:        dl.Pincode.String(),
            CashCollection: float64(dl.CashCollection),
        },
    }}
    return wd
}

// PlaceOrder validates, translates, and submits an order. The provider's
// confirmation body is returned verbatim; tracking number and URL inside it
// are not parsed here.
func (c *Client) PlaceOrder(ctx context.Context, payload *model.OrderPayload) (map[string]any, error) {
    if err := ValidateOrder(payload); err != nil {
        return nil, err
    }
    body := translateOrder(payload)
    return c.Call(ctx, http.MethodPost, placeOrderPath, body, placeOrderVersion, true, true)
}

// OrderStatus polls the provider for the current status of a tracking id.
func (c *Client) OrderStatus(ctx context.Context, awbNo string) (map[string]any, error) {
    if strings.TrimSpace(awbNo) == "" {
        return nil, missingField("AWBNo")
    }
    body := map[string]any{"AWBNo": awbNo}
    return c.Call(ctx, http.MethodPost, orderStatusPath, body, orderStatusVersion, true, true)
}

func defStr(v, def string) string {
    if strings.TrimSpace(v) == "" {
        return def
    }
    return v
}
