package model

import (
    "encoding/json"
    "testing"
)

func TestStringOrNumber(t *testing.T) {
    var v struct {
        A StringOrNumber `json:"a"`
        B StringOrNumber `json:"b"`
        C StringOrNumber `json:"c"`
    }
    if err := json.Unmarshal([]byte(`{"a":"1.5","b":2.5,"c":null}`), &v); err != nil {
        t.Fatal(err)
    }
    if v.A != "1.5" || v.B != "2.5" || v.C != "" {
        t.Fatalf("got %+v", v)
    }
}

func TestNumberOrString(t *testing.T) {
    var v struct {
        A NumberOrString `json:"a"`
        B NumberOrString `json:"b"`
        C NumberOrString `json:"c"`
    }
    if err := json.Unmarshal([]byte(`{"a":"150.5","b":7,"c":""}`), &v); err != nil {
        t.Fatal(err)
    }
    if v.A != 150.5 || v.B != 7 || v.C != 0 {
        t.Fatalf("got %+v", v)
    }
    if err := json.Unmarshal([]byte(`{"a":"not a number"}`), &v); err == nil {
        t.Fatal("non-numeric string must fail")
    }
}

func TestFlagForms(t *testing.T) {
    cases := map[string]bool{
        `true`:   true,
        `false`:  false,
        `"1"`:    true,
        `"0"`:    false,
        `"true"`: true,
        `1`:      true,
        `0`:      false,
        `null`:   false,
    }
    for in, want := range cases {
        var f Flag
        if err := json.Unmarshal([]byte(in), &f); err != nil {
            t.Fatalf("%s: %v", in, err)
        }
        if bool(f) != want {
            t.Errorf("%s: got %v, want %v", in, f, want)
        }
    }
    if (Flag(true)).Wire() != "1" || (Flag(false)).Wire() != "0" {
        t.Fatal("Wire() must render 0/1")
    }
}

func TestInfoBlockObjectAndArray(t *testing.T) {
    var a, b OrderDetail
    obj := `{"Info":{"Pickup":{"Name":"W"},"Delivery":{"Name":"C"},"Item":[{}]}}`
    arr := `{"Info":[{"Pickup":{"Name":"W"},"Delivery":{"Name":"C"},"Item":[{}]},{"Pickup":{"Name":"ignored"}}]}`
    if err := json.Unmarshal([]byte(obj), &a); err != nil { t.Fatal(err) }
    if err := json.Unmarshal([]byte(arr), &b); err != nil { t.Fatal(err) }
    for name, d := range map[string]OrderDetail{"object": a, "array": b} {
        if !d.Info.Present() { t.Fatalf("%s: Info not marked present", name) }
        if d.Info.Pickup == nil || d.Info.Pickup.Name != "W" { t.Fatalf("%s: pickup = %+v", name, d.Info.Pickup) }
    }

    var c OrderDetail
    if err := json.Unmarshal([]byte(`{"Info":[]}`), &c); err != nil { t.Fatal(err) }
    if c.Info.Present() { t.Fatal("empty array must not mark Info present") }

    var d OrderDetail
    if err := json.Unmarshal([]byte(`{}`), &d); err != nil { t.Fatal(err) }
    if d.Info.Present() { t.Fatal("absent Info must not be present") }
}

func TestEwayBillCasingsLandSeparately(t *testing.T) {
    var a, b ItemIn
    if err := json.Unmarshal([]byte(`{"EwayBillNo":"X"}`), &a); err != nil { t.Fatal(err) }
    if err := json.Unmarshal([]byte(`{"EWayBillNo":"Y"}`), &b); err != nil { t.Fatal(err) }
    if a.EwayBillNo != "X" || a.EWayBillNo != "" {
        t.Fatalf("EwayBillNo spelling: %+v", a)
    }
    if b.EWayBillNo != "Y" || b.EwayBillNo != "" {
        t.Fatalf("EWayBillNo spelling: %+v", b)
    }
}
