package model

import (
    "bytes"
    "encoding/json"
    "strconv"
    "strings"
    "time"
)

// Caller-facing order types. Upstream callers are loose about JSON types
// (numbers vs strings, object vs single-element array), so the leaf types
// below normalize at decode time and the translator only sees canonical
// values.

// StringOrNumber decodes a JSON string or number into its string form.
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(b []byte) error {
    b = bytes.TrimSpace(b)
    if len(b) == 0 || string(b) == "null" {
        *s = ""
        return nil
    }
    if b[0] == '"' {
        var v string
        if err := json.Unmarshal(b, &v); err != nil {
            return err
        }
        *s = StringOrNumber(v)
        return nil
    }
    var n json.Number
    if err := json.Unmarshal(b, &n); err != nil {
        return err
    }
    *s = StringOrNumber(n.String())
    return nil
}

func (s StringOrNumber) String() string { return string(s) }

// NumberOrString decodes a JSON number or numeric string into a float64.
type NumberOrString float64

func (n *NumberOrString) UnmarshalJSON(b []byte) error {
    b = bytes.TrimSpace(b)
    if len(b) == 0 || string(b) == "null" {
        *n = 0
        return nil
    }
    if b[0] == '"' {
        var v string
        if err := json.Unmarshal(b, &v); err != nil {
            return err
        }
        v = strings.TrimSpace(v)
        if v == "" {
            *n = 0
            return nil
        }
        f, err := strconv.ParseFloat(v, 64)
        if err != nil {
            return err
        }
        *n = NumberOrString(f)
        return nil
    }
    var f float64
    if err := json.Unmarshal(b, &f); err != nil {
        return err
    }
    *n = NumberOrString(f)
    return nil
}

// Flag decodes a JSON bool, number, or "0"/"1"/"true" string.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
    b = bytes.TrimSpace(b)
    if len(b) == 0 || string(b) == "null" {
        *f = false
        return nil
    }
    switch b[0] {
    case 't', 'f':
        var v bool
        if err := json.Unmarshal(b, &v); err != nil {
            return err
        }
        *f = Flag(v)
    case '"':
        var v string
        if err := json.Unmarshal(b, &v); err != nil {
            return err
        }
        *f = Flag(v == "1" || strings.EqualFold(v, "true"))
    default:
        var v float64
        if err := json.Unmarshal(b, &v); err != nil {
            return err
        }
        *f = Flag(v != 0)
    }
    return nil
}

// Wire renders the flag in the provider's "0"/"1" form.
func (f Flag) Wire() string {
    if f {
        return "1"
    }
    return "0"
}

type OrderPayload struct {
    UserID       StringOrNumber `json:"UserId"`
    OrderDetails []OrderDetail  `json:"OrderDetails"`
}

type OrderDetail struct {
    ClientUniqueNo    StringOrNumber `json:"ClientUniqueNo"`
    VehicleType       string         `json:"VehicleType,omitempty"`
    OrderType         string         `json:"OrderType,omitempty"`
    InvoiceValue      StringOrNumber `json:"InvoiceValue,omitempty"`
    TotalActualWeight StringOrNumber `json:"TotalActualWeight"`
    Info              InfoBlock      `json:"Info"`
}

// InfoBlock accepts either an object or a non-empty array (first element
// wins), a quirk of existing callers.
type InfoBlock struct {
    Pickup   *PickupIn   `json:"Pickup"`
    Item     []ItemIn    `json:"Item"`
    Delivery *DeliveryIn `json:"Delivery"`

    present bool
}

func (in *InfoBlock) UnmarshalJSON(b []byte) error {
    b = bytes.TrimSpace(b)
    if len(b) == 0 || string(b) == "null" {
        return nil
    }
    if b[0] == '[' {
        var arr []json.RawMessage
        if err := json.Unmarshal(b, &arr); err != nil {
            return err
        }
        if len(arr) == 0 {
            return nil
        }
        b = arr[0]
    }
    type plain InfoBlock
    var p plain
    if err := json.Unmarshal(b, &p); err != nil {
        return err
    }
    p.present = true
    *in = InfoBlock(p)
    return nil
}

// Present reports whether the caller supplied an Info block at all.
func (in InfoBlock) Present() bool { return in.present }

type PickupIn struct {
    Name           string         `json:"Name"`
    Mobile         StringOrNumber `json:"Mobile"`
    Address        string         `json:"Address"`
    Pincode        StringOrNumber `json:"Pincode"`
    CashCollection StringOrNumber `json:"CashCollection"`
    CashPaid       StringOrNumber `json:"CashPaid"`
    RTOName        string         `json:"RTOName"`
    RTOMobile      StringOrNumber `json:"RTOMobile"`
    RTOAddress     string         `json:"RTOAddress"`
    RTOPincode     StringOrNumber `json:"RTOPincode"`
}

type DeliveryIn struct {
    Name           string         `json:"Name"`
    Mobile         StringOrNumber `json:"Mobile"`
    Address        string         `json:"Address"`
    Pincode        StringOrNumber `json:"Pincode"`
    CashCollection NumberOrString `json:"CashCollection"`
}

// ItemIn carries both accepted spellings of the eway-bill field; the exact
// struct tag wins per spelling, so each input casing lands in its own field.
type ItemIn struct {
    Qty        NumberOrString `json:"Qty"`
    Type       string         `json:"Type"`
    Fragile    Flag           `json:"Fragile"`
    Liquid     Flag           `json:"Liquid"`
    Cost       StringOrNumber `json:"Cost"`
    Length     StringOrNumber `json:"Length"`
    Width      StringOrNumber `json:"Width"`
    Height     StringOrNumber `json:"Height"`
    Weight     StringOrNumber `json:"Weight"`
    EwayBillNo string         `json:"EwayBillNo"`
    EWayBillNo string         `json:"EWayBillNo"`
}

// WebhookEvent is one received provider push, persisted insert-only with the
// original body retained verbatim.
type WebhookEvent struct {
    ID          string          `json:"id"`
    AWBNo       string          `json:"awbNo"`
    ShortCode   string          `json:"shortCode"`
    StatusLabel string          `json:"statusLabel"`
    Activity    string          `json:"activity"`
    EventTS     int64           `json:"timestamp"`
    RawPayload  json.RawMessage `json:"rawPayload"`
    CreatedAt   time.Time       `json:"createdAt"`
    UpdatedAt   time.Time       `json:"updatedAt"`
}
